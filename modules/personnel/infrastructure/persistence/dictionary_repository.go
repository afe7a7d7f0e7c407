package persistence

import (
	"context"

	gerrors "github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/entities/dictionary"
)

type DictionaryRepository struct {
	pool *pgxpool.Pool
}

func NewDictionaryRepository(pool *pgxpool.Pool) *DictionaryRepository {
	return &DictionaryRepository{pool: pool}
}

func (r *DictionaryRepository) Units(ctx context.Context) ([]dictionary.Unit, error) {
	return r.entries(ctx, `SELECT id, name, COALESCE(abbreviation, '') FROM personnel_units ORDER BY name`)
}

func (r *DictionaryRepository) Positions(ctx context.Context) ([]dictionary.Position, error) {
	return r.entries(ctx, `SELECT id, name, COALESCE(abbreviation, '') FROM personnel_positions ORDER BY name`)
}

func (r *DictionaryRepository) Ranks(ctx context.Context) ([]dictionary.Rank, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM personnel_ranks ORDER BY sort_order`)
	if err != nil {
		return nil, gerrors.Wrap(err, "select ranks")
	}
	defer rows.Close()

	var out []dictionary.Rank
	for rows.Next() {
		var rank dictionary.Rank
		if err := rows.Scan(&rank.ID, &rank.Name); err != nil {
			return nil, gerrors.Wrap(err, "scan rank")
		}
		out = append(out, rank)
	}
	return out, rows.Err()
}

func (r *DictionaryRepository) Roles(ctx context.Context) ([]dictionary.Role, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM personnel_roles ORDER BY name`)
	if err != nil {
		return nil, gerrors.Wrap(err, "select roles")
	}
	defer rows.Close()

	var out []dictionary.Role
	for rows.Next() {
		var role dictionary.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, gerrors.Wrap(err, "scan role")
		}
		out = append(out, role)
	}
	return out, rows.Err()
}

func (r *DictionaryRepository) Directions(ctx context.Context) ([]dictionary.Direction, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM personnel_directions ORDER BY name`)
	if err != nil {
		return nil, gerrors.Wrap(err, "select directions")
	}
	defer rows.Close()

	var out []dictionary.Direction
	for rows.Next() {
		var direction dictionary.Direction
		if err := rows.Scan(&direction.ID, &direction.Name); err != nil {
			return nil, gerrors.Wrap(err, "scan direction")
		}
		out = append(out, direction)
	}
	return out, rows.Err()
}

func (r *DictionaryRepository) entries(ctx context.Context, query string) ([]dictionary.Entry, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, gerrors.Wrap(err, "select dictionary entries")
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]dictionary.Entry, error) {
	var out []dictionary.Entry
	for rows.Next() {
		var e dictionary.Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Abbreviation); err != nil {
			return nil, gerrors.Wrap(err, "scan dictionary entry")
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
