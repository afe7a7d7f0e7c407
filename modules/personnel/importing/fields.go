package importing

import (
	"strings"

	"github.com/google/uuid"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/entities/dictionary"
)

// setField overwrites one payload field by its wire name. Unit and position
// accept either a dictionary UUID or free text, which goes back through the
// resolver; status and service type are re-classified the same way the
// parser does it.
func setField(d *person.Details, field, value string, dicts Dictionaries) error {
	value = strings.TrimSpace(value)
	switch field {
	case "callsign":
		d.Callsign = value
	case "fullName":
		d.FullName = value
	case "rank":
		if r := ResolveRank(value, dicts.Ranks); r != "" {
			d.Rank = r
		} else {
			d.Rank = value
		}
	case "birthDate":
		d.BirthDate = value
	case "serviceType":
		d.ServiceType = ClassifyServiceType(value)
	case "unitId":
		d.UnitID = entryID(value, dicts.Units)
	case "positionId":
		d.PositionID = entryID(value, dicts.Positions)
	case "status":
		d.Status = ClassifyStatus(value)
	case "phone":
		d.Phone = value
	case "militaryId":
		d.MilitaryID = value
	case "passport":
		d.Passport = value
	case "taxId":
		d.TaxID = value
	case "tagNumber":
		d.TagNumber = value
	case "address":
		d.Address = value
	case "registrationAddress":
		d.RegistrationAddress = value
	case "citizenship":
		d.Citizenship = value
	case "bloodType":
		d.BloodType = value
	default:
		return ErrUnknownField.WithDetails(field)
	}
	return nil
}

func entryID(value string, entries []dictionary.Entry) uuid.UUID {
	if value == "" {
		return uuid.Nil
	}
	if id, err := uuid.Parse(value); err == nil {
		return id
	}
	id, _ := ResolveEntry(value, entries)
	return id
}
