package persistence

import (
	"context"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
)

const personColumns = `
	id, callsign, full_name, rank, birth_date, service_type, unit_id,
	position_id, status, phone, military_id, passport, tax_id, tag_number,
	address, registration_address, citizenship, blood_type, role_ids,
	created_at, updated_at`

type PersonRepository struct {
	pool *pgxpool.Pool
}

func NewPersonRepository(pool *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{pool: pool}
}

func (r *PersonRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM personnel_persons`).Scan(&count)
	if err != nil {
		return 0, gerrors.Wrap(err, "count persons")
	}
	return count, nil
}

func (r *PersonRepository) CountByStatus(ctx context.Context) (map[person.Status]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM personnel_persons GROUP BY status`)
	if err != nil {
		return nil, gerrors.Wrap(err, "count persons by status")
	}
	defer rows.Close()

	out := make(map[person.Status]int64)
	for rows.Next() {
		var status person.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, gerrors.Wrap(err, "scan status count")
		}
		out[status] = count
	}
	return out, rows.Err()
}

func (r *PersonRepository) CountByUnit(ctx context.Context) (map[uuid.UUID]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT unit_id, COUNT(*) FROM personnel_persons GROUP BY unit_id`)
	if err != nil {
		return nil, gerrors.Wrap(err, "count persons by unit")
	}
	defer rows.Close()

	out := make(map[uuid.UUID]int64)
	for rows.Next() {
		var unitID uuid.UUID
		var count int64
		if err := rows.Scan(&unitID, &count); err != nil {
			return nil, gerrors.Wrap(err, "scan unit count")
		}
		out[unitID] = count
	}
	return out, rows.Err()
}

func (r *PersonRepository) GetAll(ctx context.Context) ([]person.Person, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+personColumns+` FROM personnel_persons ORDER BY created_at`)
	if err != nil {
		return nil, gerrors.Wrap(err, "select persons")
	}
	defer rows.Close()
	return scanPersons(rows)
}

func (r *PersonRepository) GetPaginated(ctx context.Context, params *person.FindParams) ([]person.Person, int64, error) {
	if params == nil {
		params = &person.FindParams{}
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	where := []string{"TRUE"}
	args := []any{}
	if q := strings.TrimSpace(params.Q); q != "" {
		args = append(args, "%"+strings.ToLower(q)+"%")
		n := len(args)
		where = append(where, `(LOWER(callsign) LIKE $`+itoa(n)+` OR LOWER(full_name) LIKE $`+itoa(n)+` OR phone LIKE $`+itoa(n)+`)`)
	}
	if params.UnitID != uuid.Nil {
		args = append(args, params.UnitID)
		where = append(where, `unit_id = $`+itoa(len(args)))
	}
	if params.Status != "" {
		args = append(args, params.Status)
		where = append(where, `status = $`+itoa(len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM personnel_persons WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, gerrors.Wrap(err, "count filtered persons")
	}

	args = append(args, limit, offset)
	query := `SELECT ` + personColumns + ` FROM personnel_persons WHERE ` + cond +
		` ORDER BY created_at DESC LIMIT $` + itoa(len(args)-1) + ` OFFSET $` + itoa(len(args))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, gerrors.Wrap(err, "select persons page")
	}
	defer rows.Close()

	items, err := scanPersons(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *PersonRepository) GetByID(ctx context.Context, id uuid.UUID) (person.Person, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+personColumns+` FROM personnel_persons WHERE id = $1`, id)
	p, err := scanPerson(row)
	if err != nil {
		if gerrors.Is(err, pgx.ErrNoRows) {
			return person.Person{}, person.ErrNotFound
		}
		return person.Person{}, gerrors.Wrap(err, "select person")
	}
	return p, nil
}

func (r *PersonRepository) Create(ctx context.Context, p person.Person) (person.Person, error) {
	d := p.Details()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO personnel_persons (
			id, callsign, full_name, rank, birth_date, service_type, unit_id,
			position_id, status, phone, military_id, passport, tax_id,
			tag_number, address, registration_address, citizenship, blood_type,
			role_ids, created_at, updated_at
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, now(), now()
		) RETURNING `+personColumns,
		d.Callsign, d.FullName, d.Rank, d.BirthDate, d.ServiceType,
		d.UnitID, d.PositionID, d.Status, d.Phone, d.MilitaryID, d.Passport,
		d.TaxID, d.TagNumber, d.Address, d.RegistrationAddress, d.Citizenship,
		d.BloodType, d.RoleIDs,
	)
	created, err := scanPerson(row)
	if err != nil {
		return person.Person{}, gerrors.Wrap(err, "insert person")
	}
	return created, nil
}

func (r *PersonRepository) Update(ctx context.Context, p person.Person) error {
	d := p.Details()
	tag, err := r.pool.Exec(ctx, `
		UPDATE personnel_persons SET
			callsign = $2, full_name = $3, rank = $4, birth_date = $5,
			service_type = $6, unit_id = $7, position_id = $8, status = $9,
			phone = $10, military_id = $11, passport = $12, tax_id = $13,
			tag_number = $14, address = $15, registration_address = $16,
			citizenship = $17, blood_type = $18, role_ids = $19,
			updated_at = now()
		WHERE id = $1`,
		p.ID(), d.Callsign, d.FullName, d.Rank, d.BirthDate, d.ServiceType,
		d.UnitID, d.PositionID, d.Status, d.Phone, d.MilitaryID, d.Passport,
		d.TaxID, d.TagNumber, d.Address, d.RegistrationAddress, d.Citizenship,
		d.BloodType, d.RoleIDs,
	)
	if err != nil {
		return gerrors.Wrap(err, "update person")
	}
	if tag.RowsAffected() == 0 {
		return person.ErrNotFound
	}
	return nil
}

func (r *PersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM personnel_persons WHERE id = $1`, id)
	if err != nil {
		return gerrors.Wrap(err, "delete person")
	}
	if tag.RowsAffected() == 0 {
		return person.ErrNotFound
	}
	return nil
}

// CheckDuplicates loads the identity columns once and compares in memory:
// batches are UI-bounded, the persisted collection is the larger side and a
// single scan keeps the comparison semantics in one place.
func (r *PersonRepository) CheckDuplicates(ctx context.Context, queries []person.DuplicateQuery) ([]person.DuplicateMatch, error) {
	rows, err := r.pool.Query(ctx, `SELECT callsign, military_id, passport, tax_id FROM personnel_persons`)
	if err != nil {
		return nil, gerrors.Wrap(err, "select identity fields")
	}
	defer rows.Close()

	type identity struct {
		callsign, militaryID, passport, taxID string
	}
	var existing []identity
	for rows.Next() {
		var rec identity
		if err := rows.Scan(&rec.callsign, &rec.militaryID, &rec.passport, &rec.taxID); err != nil {
			return nil, gerrors.Wrap(err, "scan identity fields")
		}
		existing = append(existing, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, gerrors.Wrap(err, "read identity fields")
	}

	out := make([]person.DuplicateMatch, 0, len(queries))
	for _, q := range queries {
		match := person.DuplicateMatch{RowID: q.RowID}
		seen := make(map[person.IdentityField]struct{})
		for _, rec := range existing {
			if q.Callsign != "" && strings.EqualFold(rec.callsign, q.Callsign) {
				seen[person.IdentityCallsign] = struct{}{}
			}
			if q.MilitaryID != "" && rec.militaryID == q.MilitaryID {
				seen[person.IdentityMilitaryID] = struct{}{}
			}
			if q.Passport != "" && rec.passport == q.Passport {
				seen[person.IdentityPassport] = struct{}{}
			}
			if q.TaxID != "" && rec.taxID == q.TaxID {
				seen[person.IdentityTaxID] = struct{}{}
			}
		}
		for _, f := range []person.IdentityField{
			person.IdentityCallsign, person.IdentityMilitaryID,
			person.IdentityPassport, person.IdentityTaxID,
		} {
			if _, ok := seen[f]; ok {
				match.MatchedFields = append(match.MatchedFields, f)
			}
		}
		match.IsDuplicate = len(match.MatchedFields) > 0
		out = append(out, match)
	}
	return out, nil
}

func scanPersons(rows pgx.Rows) ([]person.Person, error) {
	var out []person.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, gerrors.Wrap(err, "scan person")
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
