package person

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusServing     Status = "Служить"
	StatusTransferred Status = "Переведений"
	StatusDischarged  Status = "Звільнений"
)

type ServiceType string

const (
	ServiceContract  ServiceType = "Контракт"
	ServiceMobilized ServiceType = "Мобілізований"
)

// Details is the full payload of a personnel record, without identity or
// audit columns. Import candidate rows and DTOs carry the same shape.
type Details struct {
	Callsign            string
	FullName            string
	Rank                string
	BirthDate           string
	ServiceType         ServiceType
	UnitID              uuid.UUID
	PositionID          uuid.UUID
	Status              Status
	Phone               string
	MilitaryID          string
	Passport            string
	TaxID               string
	TagNumber           string
	Address             string
	RegistrationAddress string
	Citizenship         string
	BloodType           string
	RoleIDs             []uuid.UUID
}

// Normalize trims all free-text fields in place.
func (d *Details) Normalize() {
	d.Callsign = strings.TrimSpace(d.Callsign)
	d.FullName = strings.TrimSpace(d.FullName)
	d.Rank = strings.TrimSpace(d.Rank)
	d.BirthDate = strings.TrimSpace(d.BirthDate)
	d.Phone = strings.TrimSpace(d.Phone)
	d.MilitaryID = strings.TrimSpace(d.MilitaryID)
	d.Passport = strings.TrimSpace(d.Passport)
	d.TaxID = strings.TrimSpace(d.TaxID)
	d.TagNumber = strings.TrimSpace(d.TagNumber)
	d.Address = strings.TrimSpace(d.Address)
	d.RegistrationAddress = strings.TrimSpace(d.RegistrationAddress)
	d.Citizenship = strings.TrimSpace(d.Citizenship)
	d.BloodType = strings.TrimSpace(d.BloodType)
}

type Person struct {
	id        uuid.UUID
	details   Details
	createdAt time.Time
	updatedAt time.Time
}

func New(details Details) Person {
	details.Normalize()
	return Person{details: details}
}

func Hydrate(id uuid.UUID, details Details, createdAt, updatedAt time.Time) Person {
	return Person{
		id:        id,
		details:   details,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p Person) ID() uuid.UUID               { return p.id }
func (p Person) Details() Details            { return p.details }
func (p Person) Callsign() string            { return p.details.Callsign }
func (p Person) FullName() string            { return p.details.FullName }
func (p Person) Rank() string                { return p.details.Rank }
func (p Person) BirthDate() string           { return p.details.BirthDate }
func (p Person) ServiceType() ServiceType    { return p.details.ServiceType }
func (p Person) UnitID() uuid.UUID           { return p.details.UnitID }
func (p Person) PositionID() uuid.UUID       { return p.details.PositionID }
func (p Person) Status() Status              { return p.details.Status }
func (p Person) Phone() string               { return p.details.Phone }
func (p Person) MilitaryID() string          { return p.details.MilitaryID }
func (p Person) Passport() string            { return p.details.Passport }
func (p Person) TaxID() string               { return p.details.TaxID }
func (p Person) TagNumber() string           { return p.details.TagNumber }
func (p Person) Address() string             { return p.details.Address }
func (p Person) RegistrationAddress() string { return p.details.RegistrationAddress }
func (p Person) Citizenship() string         { return p.details.Citizenship }
func (p Person) BloodType() string           { return p.details.BloodType }
func (p Person) RoleIDs() []uuid.UUID        { return p.details.RoleIDs }
func (p Person) CreatedAt() time.Time        { return p.createdAt }
func (p Person) UpdatedAt() time.Time        { return p.updatedAt }
func (p Person) IsZero() bool                { return p.id == uuid.Nil && p.details.Callsign == "" }
