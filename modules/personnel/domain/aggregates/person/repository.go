package person

import (
	"context"

	"github.com/google/uuid"

	"github.com/oblik-ua/oblik-sdk/pkg/serrors"
)

var ErrNotFound = serrors.NewError("PERSON_NOT_FOUND", "person not found", "")

type FindParams struct {
	Q      string
	UnitID uuid.UUID
	Status Status
	Limit  int
	Offset int
}

// IdentityField is one of the four fields used for duplicate detection.
type IdentityField string

const (
	IdentityCallsign   IdentityField = "callsign"
	IdentityMilitaryID IdentityField = "militaryId"
	IdentityPassport   IdentityField = "passport"
	IdentityTaxID      IdentityField = "taxId"
)

// DuplicateQuery carries the identity fields of one import candidate.
// RowID is the stable correlation key: results are matched back by it, never
// by position in the submitted slice.
type DuplicateQuery struct {
	RowID      uuid.UUID
	Callsign   string
	MilitaryID string
	Passport   string
	TaxID      string
}

type DuplicateMatch struct {
	RowID         uuid.UUID
	IsDuplicate   bool
	MatchedFields []IdentityField
}

type Repository interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	CountByUnit(ctx context.Context) (map[uuid.UUID]int64, error)
	GetAll(ctx context.Context) ([]Person, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]Person, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (Person, error)
	Create(ctx context.Context, p Person) (Person, error)
	Update(ctx context.Context, p Person) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CheckDuplicates scans the whole persisted collection; a query matches a
	// stored person when any identity field is present on both sides and
	// equal. Callsign comparison is case-insensitive, the rest exact. One
	// match per query, all matched fields reported.
	CheckDuplicates(ctx context.Context, queries []DuplicateQuery) ([]DuplicateMatch, error)
}
