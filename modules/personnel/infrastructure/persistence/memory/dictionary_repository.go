package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/entities/dictionary"
)

type DictionaryRepository struct {
	units      []dictionary.Unit
	positions  []dictionary.Position
	ranks      []dictionary.Rank
	roles      []dictionary.Role
	directions []dictionary.Direction
}

func NewDictionaryRepository(
	units []dictionary.Unit,
	positions []dictionary.Position,
	ranks []dictionary.Rank,
	roles []dictionary.Role,
	directions []dictionary.Direction,
) *DictionaryRepository {
	return &DictionaryRepository{
		units:      units,
		positions:  positions,
		ranks:      ranks,
		roles:      roles,
		directions: directions,
	}
}

func (r *DictionaryRepository) Units(ctx context.Context) ([]dictionary.Unit, error) {
	return r.units, nil
}

func (r *DictionaryRepository) Positions(ctx context.Context) ([]dictionary.Position, error) {
	return r.positions, nil
}

func (r *DictionaryRepository) Ranks(ctx context.Context) ([]dictionary.Rank, error) {
	return r.ranks, nil
}

func (r *DictionaryRepository) Roles(ctx context.Context) ([]dictionary.Role, error) {
	return r.roles, nil
}

func (r *DictionaryRepository) Directions(ctx context.Context) ([]dictionary.Direction, error) {
	return r.directions, nil
}

// DefaultRanks is the standard enlisted-to-officer ladder used when no rank
// dictionary is provisioned. Order matters for resolver tie-breaking.
func DefaultRanks() []dictionary.Rank {
	names := []string{
		"солдат",
		"старший солдат",
		"молодший сержант",
		"сержант",
		"старший сержант",
		"головний сержант",
		"штаб-сержант",
		"майстер-сержант",
		"старший майстер-сержант",
		"головний майстер-сержант",
		"молодший лейтенант",
		"лейтенант",
		"старший лейтенант",
		"капітан",
		"майор",
		"підполковник",
		"полковник",
	}
	out := make([]dictionary.Rank, len(names))
	for i, name := range names {
		out[i] = dictionary.Rank{ID: uuid.New(), Name: name}
	}
	return out
}

// DefaultUnits is the demo unit roster provisioned when the memory backend
// starts without its own dictionaries. Imports cannot resolve unit tokens
// against an empty dictionary, so the default backend always carries one.
func DefaultUnits() []dictionary.Unit {
	entries := []struct{ name, abbr string }{
		{"1 рота", "1Р"},
		{"2 рота", "2Р"},
		{"3 рота", "3Р"},
		{"взвод управління", "ВУ"},
		{"рота вогневої підтримки", "РВП"},
		{"медичний пункт", "МП"},
	}
	out := make([]dictionary.Unit, len(entries))
	for i, e := range entries {
		out[i] = dictionary.Unit{ID: uuid.New(), Name: e.name, Abbreviation: e.abbr}
	}
	return out
}

// DefaultPositions mirrors DefaultUnits for position tokens.
func DefaultPositions() []dictionary.Position {
	names := []string{
		"стрілець",
		"старший стрілець",
		"кулеметник",
		"снайпер",
		"гранатометник",
		"водій",
		"санітар",
		"оператор",
		"командир відділення",
	}
	out := make([]dictionary.Position, len(names))
	for i, name := range names {
		out[i] = dictionary.Position{ID: uuid.New(), Name: name}
	}
	return out
}

// DefaultDictionaryRepository provisions the demo dictionaries: units,
// positions and the rank ladder.
func DefaultDictionaryRepository() *DictionaryRepository {
	return NewDictionaryRepository(DefaultUnits(), DefaultPositions(), DefaultRanks(), nil, nil)
}
