package mappers

import (
	"time"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/importing"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/presentation/viewmodels"
)

func PersonToViewModel(p person.Person) viewmodels.Person {
	d := p.Details()
	return viewmodels.Person{
		ID:                  p.ID(),
		Callsign:            d.Callsign,
		FullName:            d.FullName,
		Rank:                d.Rank,
		BirthDate:           d.BirthDate,
		ServiceType:         string(d.ServiceType),
		UnitID:              d.UnitID,
		PositionID:          d.PositionID,
		Status:              string(d.Status),
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
		CreatedAt:           formatTime(p.CreatedAt()),
		UpdatedAt:           formatTime(p.UpdatedAt()),
	}
}

func RowToViewModel(row importing.Row) viewmodels.ImportRow {
	return viewmodels.ImportRow{
		InternalID:  row.InternalID,
		Callsign:    row.Fields.Callsign,
		FullName:    row.Fields.FullName,
		Rank:        row.Fields.Rank,
		BirthDate:   row.Fields.BirthDate,
		ServiceType: string(row.Fields.ServiceType),
		UnitID:      row.Fields.UnitID,
		PositionID:  row.Fields.PositionID,
		Status:      string(row.Fields.Status),
		Phone:       row.Fields.Phone,
		MilitaryID:  row.Fields.MilitaryID,
		Passport:    row.Fields.Passport,
		TaxID:       row.Fields.TaxID,
		TagNumber:   row.Fields.TagNumber,
		Selected:    row.Meta.Selected,
		Valid:       row.Meta.Valid,
		Errors:      row.Meta.Errors(),
	}
}

func SessionToViewModel(s *importing.Session) viewmodels.ImportSession {
	rows := s.Rows()
	vms := make([]viewmodels.ImportRow, len(rows))
	for i, row := range rows {
		vms[i] = RowToViewModel(row)
	}
	return viewmodels.ImportSession{
		ID:      s.ID(),
		Checked: s.Checked(),
		Rows:    vms,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
