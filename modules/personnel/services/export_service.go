package services

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
)

// ExcelExportService renders the personnel roster as an XLSX workbook.
type ExcelExportService struct {
	persons person.Repository
}

func NewExcelExportService(persons person.Repository) *ExcelExportService {
	return &ExcelExportService{persons: persons}
}

var rosterHeader = []string{
	"Позивний", "ПІБ", "Звання", "Дата народження", "Тип служби",
	"Статус", "Телефон", "Військовий квиток", "Паспорт", "ІПН", "Жетон",
}

func (s *ExcelExportService) ExportRoster(ctx context.Context) ([]byte, error) {
	persons, err := s.persons.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Особовий склад"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheet")
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "failed to drop default sheet")
	}

	header := make([]any, len(rosterHeader))
	for i, h := range rosterHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, errors.Wrap(err, "failed to write header")
	}

	for i, p := range persons {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			p.Callsign(), p.FullName(), p.Rank(), p.BirthDate(),
			string(p.ServiceType()), string(p.Status()), p.Phone(),
			p.MilitaryID(), p.Passport(), p.TaxID(), p.TagNumber(),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to serialize workbook")
	}
	return buf.Bytes(), nil
}
