package dictionary

import (
	"context"

	"github.com/google/uuid"
)

// Entry is a canonical reference record. Dictionaries are read-only from the
// personnel module's perspective: they canonicalize free-text values coming
// from imports and forms.
type Entry struct {
	ID           uuid.UUID
	Name         string
	Abbreviation string
}

type Unit = Entry

type Position = Entry

type Rank struct {
	ID   uuid.UUID
	Name string
}

type Role struct {
	ID   uuid.UUID
	Name string
}

// Direction is a functional direction a unit or person belongs to.
type Direction struct {
	ID   uuid.UUID
	Name string
}

type Repository interface {
	Units(ctx context.Context) ([]Unit, error)
	Positions(ctx context.Context) ([]Position, error)
	Ranks(ctx context.Context) ([]Rank, error)
	Roles(ctx context.Context) ([]Role, error)
	Directions(ctx context.Context) ([]Direction, error)
}
