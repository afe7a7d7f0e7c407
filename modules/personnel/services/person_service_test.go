package services

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/infrastructure/persistence/memory"
	"github.com/oblik-ua/oblik-sdk/pkg/eventbus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func validCreateDTO() *person.CreateDTO {
	return &person.CreateDTO{
		Callsign:    "Сатурн",
		FullName:    "Іваненко Іван Іванович",
		Rank:        "солдат",
		BirthDate:   "01.01.1990",
		ServiceType: person.ServiceContract,
		UnitID:      uuid.New(),
		PositionID:  uuid.New(),
		Status:      person.StatusServing,
		Phone:       "+380501112233",
	}
}

func TestPersonServiceCreatePublishesEvent(t *testing.T) {
	bus := eventbus.NewEventPublisher(testLogger())
	svc := NewPersonService(memory.NewPersonRepository("", testLogger()), bus)

	var got *person.CreatedEvent
	bus.Subscribe(func(ev *person.CreatedEvent) { got = ev })

	created, err := svc.Create(context.Background(), validCreateDTO())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID())

	require.NotNil(t, got)
	require.Equal(t, created.ID(), got.Result.ID())
	require.Equal(t, "Сатурн", got.Result.Callsign())
}

func TestPersonServiceUpdate(t *testing.T) {
	bus := eventbus.NewEventPublisher(testLogger())
	svc := NewPersonService(memory.NewPersonRepository("", testLogger()), bus)

	created, err := svc.Create(context.Background(), validCreateDTO())
	require.NoError(t, err)

	var updated *person.UpdatedEvent
	bus.Subscribe(func(ev *person.UpdatedEvent) { updated = ev })

	dto := &person.UpdateDTO{CreateDTO: *validCreateDTO()}
	dto.Phone = "+380999999999"
	require.NoError(t, svc.Update(context.Background(), created.ID(), dto))

	got, err := svc.GetByID(context.Background(), created.ID())
	require.NoError(t, err)
	require.Equal(t, "+380999999999", got.Phone())
	require.NotNil(t, updated)
}

func TestPersonServiceUpdateUnknownID(t *testing.T) {
	bus := eventbus.NewEventPublisher(testLogger())
	svc := NewPersonService(memory.NewPersonRepository("", testLogger()), bus)

	dto := &person.UpdateDTO{CreateDTO: *validCreateDTO()}
	err := svc.Update(context.Background(), uuid.New(), dto)
	require.ErrorIs(t, err, person.ErrNotFound)
}

func TestPersonServiceDeletePublishesEvent(t *testing.T) {
	bus := eventbus.NewEventPublisher(testLogger())
	svc := NewPersonService(memory.NewPersonRepository("", testLogger()), bus)

	created, err := svc.Create(context.Background(), validCreateDTO())
	require.NoError(t, err)

	var deleted *person.DeletedEvent
	bus.Subscribe(func(ev *person.DeletedEvent) { deleted = ev })

	entity, err := svc.Delete(context.Background(), created.ID())
	require.NoError(t, err)
	require.Equal(t, created.ID(), entity.ID())
	require.NotNil(t, deleted)

	_, err = svc.GetByID(context.Background(), created.ID())
	require.ErrorIs(t, err, person.ErrNotFound)
}

func TestCreateDTOValidation(t *testing.T) {
	dto := validCreateDTO()
	dto.Callsign = ""
	dto.Phone = ""

	fields, ok := dto.Ok()
	require.False(t, ok)
	require.Contains(t, fields, "Callsign")
	require.Contains(t, fields, "Phone")

	fields, ok = validCreateDTO().Ok()
	require.True(t, ok)
	require.Empty(t, fields)
}
