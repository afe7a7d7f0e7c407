package importing

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
)

// requiredFields, in the order their names are reported when missing.
var requiredFields = []string{
	"callsign", "fullName", "rank", "birthDate", "serviceType",
	"unitId", "positionId", "status", "phone",
}

// DuplicateTag builds the human-readable reason recorded on a duplicate
// row. source distinguishes a collision inside the file from one against
// already-persisted records.
func DuplicateTag(field person.IdentityField, source string) string {
	return fmt.Sprintf("duplicate %s (%s)", field, source)
}

const (
	SourceBatch = "batch"
	SourceStore = "datastore"
)

func missingFields(d person.Details) []string {
	var out []string
	for _, f := range requiredFields {
		if fieldEmpty(d, f) {
			out = append(out, f)
		}
	}
	return out
}

func fieldEmpty(d person.Details, field string) bool {
	switch field {
	case "callsign":
		return d.Callsign == ""
	case "fullName":
		return d.FullName == ""
	case "rank":
		return d.Rank == ""
	case "birthDate":
		return d.BirthDate == ""
	case "serviceType":
		return d.ServiceType == ""
	case "unitId":
		return d.UnitID == uuid.Nil
	case "positionId":
		return d.PositionID == uuid.Nil
	case "status":
		return d.Status == ""
	case "phone":
		return d.Phone == ""
	default:
		return false
	}
}

// ValidateBatch recomputes validity, errors and selection for every row.
// It is a pure pass over the whole batch: deduplication needs cross-row
// visibility. Datastore-duplicate tags are carried over untouched; they are
// replaced only by a new datastore check.
//
// Only the second and later occurrences of a colliding identity value are
// flagged; the first occurrence stays clean.
func ValidateBatch(rows []Row) []Row {
	out := make([]Row, len(rows))

	seenCallsigns := make(map[string]struct{})
	seenMilitaryIDs := make(map[string]struct{})
	seenPassports := make(map[string]struct{})
	seenTaxIDs := make(map[string]struct{})

	for i, row := range rows {
		missing := missingFields(row.Fields)

		var dupes []string
		mark := func(seen map[string]struct{}, value string, field person.IdentityField) {
			if value == "" {
				return
			}
			if _, ok := seen[value]; ok {
				dupes = append(dupes, DuplicateTag(field, SourceBatch))
				return
			}
			seen[value] = struct{}{}
		}
		mark(seenCallsigns, strings.ToLower(row.Fields.Callsign), person.IdentityCallsign)
		mark(seenMilitaryIDs, row.Fields.MilitaryID, person.IdentityMilitaryID)
		mark(seenPassports, row.Fields.Passport, person.IdentityPassport)
		mark(seenTaxIDs, row.Fields.TaxID, person.IdentityTaxID)

		meta := RowMeta{
			Selected:        row.Meta.Selected,
			MissingFields:   missing,
			BatchDuplicates: dupes,
			StoreDuplicates: row.Meta.StoreDuplicates,
		}
		meta.Valid = len(missing) == 0 && !meta.HasDuplicate()
		if meta.HasDuplicate() {
			meta.Selected = false
		}

		out[i] = Row{InternalID: row.InternalID, Fields: row.Fields, Meta: meta}
	}
	return out
}
