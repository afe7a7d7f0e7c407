package memory

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
)

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newPerson(callsign, fullName string) person.Person {
	return person.New(person.Details{
		Callsign:    callsign,
		FullName:    fullName,
		Rank:        "солдат",
		BirthDate:   "01.01.1990",
		ServiceType: person.ServiceContract,
		UnitID:      uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		PositionID:  uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		Status:      person.StatusServing,
		Phone:       "+380501112233",
	})
}

func TestPersonRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonRepository("", testLogger())

	created, err := repo.Create(ctx, newPerson("Сатурн", "Іваненко Іван"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID())
	require.False(t, created.CreatedAt().IsZero())

	got, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	require.Equal(t, "Сатурн", got.Callsign())

	details := got.Details()
	details.Phone = "+380999999999"
	require.NoError(t, repo.Update(ctx, person.Hydrate(got.ID(), details, got.CreatedAt(), got.UpdatedAt())))

	got, err = repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	require.Equal(t, "+380999999999", got.Phone())

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	require.NoError(t, repo.Delete(ctx, created.ID()))
	_, err = repo.GetByID(ctx, created.ID())
	require.ErrorIs(t, err, person.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, created.ID()), person.ErrNotFound)
}

func TestPersonRepositoryGetPaginated(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonRepository("", testLogger())

	for _, cs := range []string{"Сатурн", "Сокіл", "Юпітер"} {
		_, err := repo.Create(ctx, newPerson(cs, "Тест "+cs))
		require.NoError(t, err)
	}

	items, total, err := repo.GetPaginated(ctx, &person.FindParams{Q: "сатурн"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	require.Equal(t, "Сатурн", items[0].Callsign())

	items, total, err = repo.GetPaginated(ctx, &person.FindParams{Limit: 2})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, items, 2)

	items, _, err = repo.GetPaginated(ctx, &person.FindParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)

	items, total, err = repo.GetPaginated(ctx, &person.FindParams{Offset: 10})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Empty(t, items)
}

func TestPersonRepositoryCheckDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewPersonRepository("", testLogger())

	stored := newPerson("Сатурн", "Іваненко Іван")
	d := stored.Details()
	d.TaxID = "1234567890"
	_, err := repo.Create(ctx, person.New(d))
	require.NoError(t, err)

	rowA := uuid.New()
	rowB := uuid.New()
	rowC := uuid.New()
	matches, err := repo.CheckDuplicates(ctx, []person.DuplicateQuery{
		{RowID: rowA, Callsign: "САТУРН", TaxID: "1234567890"},
		{RowID: rowB, Callsign: "Юпітер"},
		{RowID: rowC, TaxID: ""},
	})
	require.NoError(t, err)
	require.Len(t, matches, 3)

	byID := make(map[uuid.UUID]person.DuplicateMatch)
	for _, m := range matches {
		byID[m.RowID] = m
	}

	require.True(t, byID[rowA].IsDuplicate)
	require.Equal(t, []person.IdentityField{person.IdentityCallsign, person.IdentityTaxID}, byID[rowA].MatchedFields)

	require.False(t, byID[rowB].IsDuplicate, "no stored person uses that callsign")
	require.False(t, byID[rowC].IsDuplicate, "empty identity values never match")
}

func TestPersonRepositorySnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persons.json")

	repo := NewPersonRepository(path, testLogger())
	created, err := repo.Create(ctx, newPerson("Сатурн", "Іваненко Іван"))
	require.NoError(t, err)

	restored := NewPersonRepository(path, testLogger())
	got, err := restored.GetByID(ctx, created.ID())
	require.NoError(t, err)
	require.Equal(t, "Сатурн", got.Callsign())

	count, err := restored.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
