package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/entities/dictionary"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/infrastructure/persistence/memory"
)

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPersonRepository("", testLogger())

	units := []dictionary.Unit{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "1 рота"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "2 рота"},
	}
	dicts := memory.NewDictionaryRepository(units, nil, memory.DefaultRanks(), nil, nil)

	seed := func(callsign string, unit int, status person.Status) {
		dto := validCreateDTO()
		dto.Callsign = callsign
		dto.UnitID = units[unit].ID
		dto.Status = status
		_, err := repo.Create(ctx, dto.ToEntity())
		require.NoError(t, err)
	}
	seed("Сатурн", 0, person.StatusServing)
	seed("Юпітер", 0, person.StatusServing)
	seed("Марс", 1, person.StatusDischarged)

	summary, err := NewDashboardService(repo, dicts).Summary(ctx)
	require.NoError(t, err)

	require.EqualValues(t, 3, summary.Total)
	require.EqualValues(t, 2, summary.ByStatus[person.StatusServing])
	require.EqualValues(t, 1, summary.ByStatus[person.StatusDischarged])

	require.Len(t, summary.ByUnit, 2)
	require.Equal(t, "1 рота", summary.ByUnit[0].Name)
	require.EqualValues(t, 2, summary.ByUnit[0].Count)
	require.EqualValues(t, 1, summary.ByUnit[1].Count)

	require.Len(t, summary.Recent, 3)
}

func TestExportRoster(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewPersonRepository("", testLogger())

	dto := validCreateDTO()
	_, err := repo.Create(ctx, dto.ToEntity())
	require.NoError(t, err)

	data, err := NewExcelExportService(repo).ExportRoster(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Особовий склад")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Позивний", rows[0][0])
	require.Equal(t, "Сатурн", rows[1][0])
}
