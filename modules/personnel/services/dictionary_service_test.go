package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/entities/dictionary"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/infrastructure/persistence/memory"
)

func testDictionaryService() *DictionaryService {
	units := []dictionary.Unit{
		{ID: uuid.New(), Name: "1 рота", Abbreviation: "1Р"},
		{ID: uuid.New(), Name: "Рота вогневої підтримки", Abbreviation: "РВП"},
	}
	positions := []dictionary.Position{
		{ID: uuid.New(), Name: "стрілець"},
		{ID: uuid.New(), Name: "старший стрілець"},
	}
	return NewDictionaryService(memory.NewDictionaryRepository(
		units, positions, memory.DefaultRanks(), nil, nil,
	))
}

func TestDictionarySnapshot(t *testing.T) {
	s := testDictionaryService()

	snap, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Units, 2)
	require.Len(t, snap.Positions, 2)
	require.NotEmpty(t, snap.Ranks)
}

func TestDictionarySearch(t *testing.T) {
	s := testDictionaryService()
	ctx := context.Background()

	t.Run("empty query", func(t *testing.T) {
		hits, err := s.Search(ctx, "   ")
		require.NoError(t, err)
		require.Empty(t, hits)
	})

	t.Run("exact match ranks first", func(t *testing.T) {
		hits, err := s.Search(ctx, "стрілець")
		require.NoError(t, err)
		require.NotEmpty(t, hits)
		require.Equal(t, "стрілець", hits[0].Name)
		require.Equal(t, "position", hits[0].Kind)
	})

	t.Run("case folded", func(t *testing.T) {
		hits, err := s.Search(ctx, "РОТА")
		require.NoError(t, err)
		require.NotEmpty(t, hits)
		for _, h := range hits {
			require.Equal(t, "unit", h.Kind)
		}
	})

	t.Run("no match", func(t *testing.T) {
		hits, err := s.Search(ctx, "xyzzy")
		require.NoError(t, err)
		require.Empty(t, hits)
	})
}
