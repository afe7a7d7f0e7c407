package importing

import (
	"strings"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
)

// ClassifyStatus maps free text onto the closed status set by keyword. The
// default is "Служить": anything unrecognized is treated as serving.
func ClassifyStatus(s string) person.Status {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(v, "переведен") || strings.Contains(v, "transfer"):
		return person.StatusTransferred
	case strings.Contains(v, "звільнен") || strings.Contains(v, "discharg") || strings.Contains(v, "dismiss"):
		return person.StatusDischarged
	default:
		return person.StatusServing
	}
}

func ClassifyServiceType(s string) person.ServiceType {
	v := strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(v, "мобіліз") || strings.Contains(v, "mobiliz") {
		return person.ServiceMobilized
	}
	return person.ServiceContract
}

func parseRecord(rec []string, get func(rec []string, field string) string, dicts Dictionaries) person.Details {
	unitID, _ := ResolveEntry(get(rec, "unit"), dicts.Units)
	positionID, _ := ResolveEntry(get(rec, "position"), dicts.Positions)

	return person.Details{
		Callsign:            get(rec, "callsign"),
		FullName:            get(rec, "fullName"),
		Rank:                ResolveRank(get(rec, "rank"), dicts.Ranks),
		BirthDate:           get(rec, "birthDate"),
		ServiceType:         ClassifyServiceType(get(rec, "serviceType")),
		UnitID:              unitID,
		PositionID:          positionID,
		Status:              ClassifyStatus(get(rec, "status")),
		Phone:               get(rec, "phone"),
		MilitaryID:          get(rec, "militaryId"),
		Passport:            get(rec, "passport"),
		TaxID:               get(rec, "taxId"),
		TagNumber:           get(rec, "tagNumber"),
		Address:             get(rec, "address"),
		RegistrationAddress: get(rec, "registrationAddress"),
		Citizenship:         get(rec, "citizenship"),
		BloodType:           get(rec, "bloodType"),
	}
}
