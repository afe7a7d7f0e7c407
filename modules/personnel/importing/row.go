package importing

import (
	"github.com/google/uuid"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
)

// Row is one import candidate: the domain payload plus session-scoped
// metadata kept out of the payload itself. InternalID is stable for the
// lifetime of the session and never reused, even across edits.
type Row struct {
	InternalID uuid.UUID
	Fields     person.Details
	Meta       RowMeta
}

type RowMeta struct {
	Selected bool
	Valid    bool

	// MissingFields holds required-field names, in the fixed required order.
	MissingFields []string
	// BatchDuplicates holds intra-batch duplicate tags, recomputed on every
	// validation pass.
	BatchDuplicates []string
	// StoreDuplicates holds datastore duplicate tags. They survive
	// validation passes and are replaced only by a new datastore check.
	StoreDuplicates []string
}

// Errors returns the combined, ordered error list for display.
func (m RowMeta) Errors() []string {
	out := make([]string, 0, len(m.MissingFields)+len(m.BatchDuplicates)+len(m.StoreDuplicates))
	out = append(out, m.MissingFields...)
	out = append(out, m.BatchDuplicates...)
	out = append(out, m.StoreDuplicates...)
	return out
}

func (m RowMeta) HasDuplicate() bool {
	return len(m.BatchDuplicates) > 0 || len(m.StoreDuplicates) > 0
}

func newRow(fields person.Details) Row {
	return Row{
		InternalID: uuid.New(),
		Fields:     fields,
		Meta:       RowMeta{Selected: true},
	}
}
