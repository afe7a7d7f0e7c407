package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/importing"
)

func defaultDicts(t *testing.T) importing.Dictionaries {
	t.Helper()
	repo := DefaultDictionaryRepository()
	ctx := context.Background()

	units, err := repo.Units(ctx)
	require.NoError(t, err)
	positions, err := repo.Positions(ctx)
	require.NoError(t, err)
	ranks, err := repo.Ranks(ctx)
	require.NoError(t, err)

	return importing.Dictionaries{Units: units, Positions: positions, Ranks: ranks}
}

func TestDefaultDictionariesAreProvisioned(t *testing.T) {
	dicts := defaultDicts(t)
	require.NotEmpty(t, dicts.Units)
	require.NotEmpty(t, dicts.Positions)
	require.NotEmpty(t, dicts.Ranks)
}

// An out-of-the-box memory backend must be able to take a roster row all the
// way through parsing: unit, position and rank tokens resolve against the
// default dictionaries.
func TestDefaultDictionariesResolveImportTokens(t *testing.T) {
	csv := "позивний;піб;звання;дата народження;тип служби;підрозділ;посада;статус;телефон\n" +
		"Сатурн;Іваненко Іван Іванович;солдат;01.01.1990;контракт;1 рота;стрілець;служить;+380501112233\n" +
		"Юпітер;Коваль Олег Петрович;сержант;02.02.1985;мобілізований;РВП;кулеметник;служить;+380671234567\n"

	rows, err := importing.ParseCSV(strings.NewReader(csv), defaultDicts(t))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		require.True(t, row.Meta.Valid, "row %q: %v", row.Fields.Callsign, row.Meta.Errors())
		require.NotEqual(t, uuid.Nil, row.Fields.UnitID)
		require.NotEqual(t, uuid.Nil, row.Fields.PositionID)
		require.NotEmpty(t, row.Fields.Rank)
	}
	require.Equal(t, "солдат", rows[0].Fields.Rank)
	require.Equal(t, "сержант", rows[1].Fields.Rank)
}
