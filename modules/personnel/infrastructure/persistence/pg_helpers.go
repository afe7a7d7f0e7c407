package persistence

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
)

func itoa(n int) string { return strconv.Itoa(n) }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (person.Person, error) {
	var (
		id        uuid.UUID
		d         person.Details
		createdAt time.Time
		updatedAt time.Time
	)
	err := row.Scan(
		&id, &d.Callsign, &d.FullName, &d.Rank, &d.BirthDate, &d.ServiceType,
		&d.UnitID, &d.PositionID, &d.Status, &d.Phone, &d.MilitaryID,
		&d.Passport, &d.TaxID, &d.TagNumber, &d.Address,
		&d.RegistrationAddress, &d.Citizenship, &d.BloodType, &d.RoleIDs,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return person.Person{}, err
	}
	return person.Hydrate(id, d, createdAt, updatedAt), nil
}
