package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/infrastructure/persistence/memory"
	"github.com/oblik-ua/oblik-sdk/pkg/eventbus"
)

const importCSV = "позивний;піб;звання;дата народження;тип служби;підрозділ;посада;статус;телефон\n" +
	"Сатурн;Іваненко Іван;солдат;01.01.1990;контракт;1 рота;стрілець;служить;+380501112233\n" +
	"Юпітер;Коваль Олег;сержант;03.03.1992;контракт;1 рота;старший стрілець;служить;+380991112233\n"

func testImportService() (*ImportService, *memory.PersonRepository, eventbus.EventBus) {
	repo := memory.NewPersonRepository("", testLogger())
	bus := eventbus.NewEventPublisher(testLogger())
	svc := NewImportService(repo, testDictionaryService(), bus, testLogger())
	return svc, repo, bus
}

func TestImportServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, repo, bus := testImportService()

	var imported *person.ImportedEvent
	bus.Subscribe(func(ev *person.ImportedEvent) { imported = ev })

	session, err := svc.Start(ctx, strings.NewReader(importCSV))
	require.NoError(t, err)

	got, err := svc.Get(session.ID())
	require.NoError(t, err)
	require.Equal(t, session.ID(), got.ID())
	require.Len(t, got.Rows(), 2)

	require.NoError(t, svc.CheckDuplicates(ctx, session.ID()))

	result, err := svc.Commit(ctx, session.ID())
	require.NoError(t, err)
	require.Equal(t, 2, result.Attempted)
	require.Equal(t, 2, result.Succeeded)
	require.True(t, result.FullySucceeded())

	require.NotNil(t, imported)
	require.Equal(t, 2, imported.Attempted)
	require.Equal(t, 2, imported.Succeeded)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	// A fully committed session is gone.
	_, err = svc.Get(session.ID())
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestImportServicePartialCommitKeepsSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := testImportService()

	session, err := svc.Start(ctx, strings.NewReader(importCSV))
	require.NoError(t, err)
	rows := session.Rows()

	require.NoError(t, svc.CheckDuplicates(ctx, session.ID()))
	require.NoError(t, svc.ToggleSelection(session.ID(), rows[1].InternalID))

	result, err := svc.Commit(ctx, session.ID())
	require.NoError(t, err)
	require.Equal(t, 1, result.Succeeded)
	require.Equal(t, 1, result.Remaining)

	// One row left, so the session stays open.
	got, err := svc.Get(session.ID())
	require.NoError(t, err)
	require.Len(t, got.Rows(), 1)
	require.Equal(t, "Юпітер", got.Rows()[0].Fields.Callsign)
}

func TestImportServiceUnknownSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := testImportService()
	id := uuid.New()

	_, err := svc.Get(id)
	require.ErrorIs(t, err, ErrSessionNotFound)
	require.ErrorIs(t, svc.UpdateField(id, uuid.New(), "phone", "x"), ErrSessionNotFound)
	require.ErrorIs(t, svc.ToggleSelection(id, uuid.New()), ErrSessionNotFound)
	require.ErrorIs(t, svc.ToggleAll(id, true), ErrSessionNotFound)
	require.ErrorIs(t, svc.CheckDuplicates(ctx, id), ErrSessionNotFound)
	_, err = svc.Commit(ctx, id)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestImportServiceMalformedFile(t *testing.T) {
	svc, _, _ := testImportService()
	_, err := svc.Start(context.Background(), strings.NewReader("\"broken"))
	require.Error(t, err)
}

func TestImportServiceDiscard(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := testImportService()

	session, err := svc.Start(ctx, strings.NewReader(importCSV))
	require.NoError(t, err)

	svc.Discard(session.ID())
	_, err = svc.Get(session.ID())
	require.ErrorIs(t, err, ErrSessionNotFound)
}
