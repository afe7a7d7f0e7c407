package memory

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
)

// personRecord is the snapshot wire form of a person.
type personRecord struct {
	ID                  uuid.UUID          `json:"id"`
	Callsign            string             `json:"callsign"`
	FullName            string             `json:"fullName"`
	Rank                string             `json:"rank"`
	BirthDate           string             `json:"birthDate"`
	ServiceType         person.ServiceType `json:"serviceType"`
	UnitID              uuid.UUID          `json:"unitId"`
	PositionID          uuid.UUID          `json:"positionId"`
	Status              person.Status      `json:"status"`
	Phone               string             `json:"phone"`
	MilitaryID          string             `json:"militaryId,omitempty"`
	Passport            string             `json:"passport,omitempty"`
	TaxID               string             `json:"taxId,omitempty"`
	TagNumber           string             `json:"tagNumber,omitempty"`
	Address             string             `json:"address,omitempty"`
	RegistrationAddress string             `json:"registrationAddress,omitempty"`
	Citizenship         string             `json:"citizenship,omitempty"`
	BloodType           string             `json:"bloodType,omitempty"`
	RoleIDs             []uuid.UUID        `json:"roleIds,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

func toRecord(p person.Person) personRecord {
	d := p.Details()
	return personRecord{
		ID:                  p.ID(),
		Callsign:            d.Callsign,
		FullName:            d.FullName,
		Rank:                d.Rank,
		BirthDate:           d.BirthDate,
		ServiceType:         d.ServiceType,
		UnitID:              d.UnitID,
		PositionID:          d.PositionID,
		Status:              d.Status,
		Phone:               d.Phone,
		MilitaryID:          d.MilitaryID,
		Passport:            d.Passport,
		TaxID:               d.TaxID,
		TagNumber:           d.TagNumber,
		Address:             d.Address,
		RegistrationAddress: d.RegistrationAddress,
		Citizenship:         d.Citizenship,
		BloodType:           d.BloodType,
		RoleIDs:             d.RoleIDs,
		CreatedAt:           p.CreatedAt(),
		UpdatedAt:           p.UpdatedAt(),
	}
}

func (r personRecord) toEntity() person.Person {
	return person.Hydrate(r.ID, person.Details{
		Callsign:            r.Callsign,
		FullName:            r.FullName,
		Rank:                r.Rank,
		BirthDate:           r.BirthDate,
		ServiceType:         r.ServiceType,
		UnitID:              r.UnitID,
		PositionID:          r.PositionID,
		Status:              r.Status,
		Phone:               r.Phone,
		MilitaryID:          r.MilitaryID,
		Passport:            r.Passport,
		TaxID:               r.TaxID,
		TagNumber:           r.TagNumber,
		Address:             r.Address,
		RegistrationAddress: r.RegistrationAddress,
		Citizenship:         r.Citizenship,
		BloodType:           r.BloodType,
		RoleIDs:             r.RoleIDs,
	}, r.CreatedAt, r.UpdatedAt)
}

// PersonRepository keeps the collection in memory, with a best-effort JSON
// snapshot on every mutation when a path is configured. Durability beyond
// that snapshot is explicitly not guaranteed.
type PersonRepository struct {
	mu           sync.RWMutex
	records      []personRecord
	snapshotPath string
	log          logrus.FieldLogger
}

func NewPersonRepository(snapshotPath string, log logrus.FieldLogger) *PersonRepository {
	r := &PersonRepository{snapshotPath: snapshotPath, log: log}
	r.restore()
	return r
}

func (r *PersonRepository) restore() {
	if r.snapshotPath == "" {
		return
	}
	data, err := os.ReadFile(r.snapshotPath)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.WithError(err).Warn("person snapshot read failed")
		}
		return
	}
	if err := json.Unmarshal(data, &r.records); err != nil {
		r.log.WithError(err).Warn("person snapshot is corrupt, starting empty")
		r.records = nil
	}
}

func (r *PersonRepository) snapshotLocked() {
	if r.snapshotPath == "" {
		return
	}
	data, err := json.MarshalIndent(r.records, "", "  ")
	if err == nil {
		err = os.WriteFile(r.snapshotPath, data, 0o644)
	}
	if err != nil {
		r.log.WithError(err).Warn("person snapshot write failed")
	}
}

func (r *PersonRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.records)), nil
}

func (r *PersonRepository) CountByStatus(ctx context.Context) (map[person.Status]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[person.Status]int64)
	for _, rec := range r.records {
		out[rec.Status]++
	}
	return out, nil
}

func (r *PersonRepository) CountByUnit(ctx context.Context) (map[uuid.UUID]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[uuid.UUID]int64)
	for _, rec := range r.records {
		out[rec.UnitID]++
	}
	return out, nil
}

func (r *PersonRepository) GetAll(ctx context.Context) ([]person.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]person.Person, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.toEntity()
	}
	return out, nil
}

func matchesQuery(rec personRecord, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(rec.Callsign), q) ||
		strings.Contains(strings.ToLower(rec.FullName), q) ||
		strings.Contains(rec.Phone, q)
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

	r.mu.RLock()
	defer r.mu.RUnlock()

	var filtered []personRecord
	for _, rec := range r.records {
		if !matchesQuery(rec, strings.TrimSpace(params.Q)) {
			continue
		}
		if params.UnitID != uuid.Nil && rec.UnitID != params.UnitID {
			continue
		}
		if params.Status != "" && rec.Status != params.Status {
			continue
		}
		filtered = append(filtered, rec)
	}

	total := int64(len(filtered))
	if offset >= len(filtered) {
		return []person.Person{}, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	out := make([]person.Person, 0, end-offset)
	for _, rec := range filtered[offset:end] {
		out = append(out, rec.toEntity())
	}
	return out, total, nil
}

func (r *PersonRepository) GetByID(ctx context.Context, id uuid.UUID) (person.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec.toEntity(), nil
		}
	}
	return person.Person{}, person.ErrNotFound
}

func (r *PersonRepository) Create(ctx context.Context, p person.Person) (person.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	rec := toRecord(p)
	rec.ID = uuid.New()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	r.records = append(r.records, rec)
	r.snapshotLocked()
	return rec.toEntity(), nil
}

func (r *PersonRepository) Update(ctx context.Context, p person.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.records {
		if rec.ID == p.ID() {
			updated := toRecord(p)
			updated.CreatedAt = rec.CreatedAt
			updated.UpdatedAt = time.Now()
			r.records[i] = updated
			r.snapshotLocked()
			return nil
		}
	}
	return person.ErrNotFound
}

func (r *PersonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			r.snapshotLocked()
			return nil
		}
	}
	return person.ErrNotFound
}

// CheckDuplicates scans the full collection per query. One match per query;
// all matched identity fields are reported.
func (r *PersonRepository) CheckDuplicates(ctx context.Context, queries []person.DuplicateQuery) ([]person.DuplicateMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]person.DuplicateMatch, 0, len(queries))
	for _, q := range queries {
		match := person.DuplicateMatch{RowID: q.RowID}
		fields := make(map[person.IdentityField]struct{})
		for _, rec := range r.records {
			if q.Callsign != "" && strings.EqualFold(rec.Callsign, q.Callsign) {
				fields[person.IdentityCallsign] = struct{}{}
			}
			if q.MilitaryID != "" && rec.MilitaryID == q.MilitaryID {
				fields[person.IdentityMilitaryID] = struct{}{}
			}
			if q.Passport != "" && rec.Passport == q.Passport {
				fields[person.IdentityPassport] = struct{}{}
			}
			if q.TaxID != "" && rec.TaxID == q.TaxID {
				fields[person.IdentityTaxID] = struct{}{}
			}
		}
		for _, f := range []person.IdentityField{
			person.IdentityCallsign, person.IdentityMilitaryID,
			person.IdentityPassport, person.IdentityTaxID,
		} {
			if _, ok := fields[f]; ok {
				match.MatchedFields = append(match.MatchedFields, f)
			}
		}
		match.IsDuplicate = len(match.MatchedFields) > 0
		out = append(out, match)
	}
	return out, nil
}
