package services

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oblik-ua/oblik-sdk/modules/notification/domain/entities/notification"
	"github.com/oblik-ua/oblik-sdk/modules/notification/infrastructure/persistence/memory"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/pkg/eventbus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNotificationOnPersonCreated(t *testing.T) {
	ctx := context.Background()
	bus := eventbus.NewEventPublisher(testLogger())
	svc := NewNotificationService(memory.NewNotificationRepository(), testLogger())
	svc.RegisterEventListeners(bus)

	created := person.New(person.Details{
		Callsign: "Сатурн",
		FullName: "Іваненко Іван",
	})
	bus.Publish(person.NewCreatedEvent(created))

	items, total, err := svc.GetPaginated(ctx, nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, notification.KindPersonCreated, items[0].Kind())
	require.Equal(t, "Нова картка", items[0].Title())
	require.Contains(t, items[0].Message(), "Іваненко Іван")
	require.Contains(t, items[0].Message(), "Сатурн")
}

func TestNotificationOnImportFinished(t *testing.T) {
	ctx := context.Background()
	bus := eventbus.NewEventPublisher(testLogger())
	svc := NewNotificationService(memory.NewNotificationRepository(), testLogger())
	svc.RegisterEventListeners(bus)

	bus.Publish(&person.ImportedEvent{Attempted: 5, Succeeded: 3})

	items, _, err := svc.GetPaginated(ctx, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, notification.KindImportFinished, items[0].Kind())
	require.Contains(t, items[0].Message(), "3")
	require.Contains(t, items[0].Message(), "5")
}

func TestNotificationMarkRead(t *testing.T) {
	ctx := context.Background()
	svc := NewNotificationService(memory.NewNotificationRepository(), testLogger())

	created, err := svc.Create(ctx, notification.New(notification.KindSystem, "Сервіс", "повідомлення"))
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, created.ID()))
	count, err := svc.CountUnread(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	require.ErrorIs(t, svc.MarkRead(ctx, uuid.New()), notification.ErrNotFound)
}
