package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/pkg/eventbus"
)

type PersonService struct {
	repo      person.Repository
	publisher eventbus.EventBus
}

func NewPersonService(repo person.Repository, publisher eventbus.EventBus) *PersonService {
	return &PersonService{repo: repo, publisher: publisher}
}

func (s *PersonService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *PersonService) GetAll(ctx context.Context) ([]person.Person, error) {
	return s.repo.GetAll(ctx)
}

func (s *PersonService) GetPaginated(ctx context.Context, params *person.FindParams) ([]person.Person, int64, error) {
	if params != nil {
		params.Q = strings.TrimSpace(params.Q)
	}
	return s.repo.GetPaginated(ctx, params)
}

func (s *PersonService) GetByID(ctx context.Context, id uuid.UUID) (person.Person, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PersonService) Create(ctx context.Context, dto *person.CreateDTO) (person.Person, error) {
	created, err := s.repo.Create(ctx, dto.ToEntity())
	if err != nil {
		return person.Person{}, err
	}
	s.publisher.Publish(person.NewCreatedEvent(created))
	return created, nil
}

func (s *PersonService) Update(ctx context.Context, id uuid.UUID, dto *person.UpdateDTO) error {
	entity := dto.ToEntity(id)
	if err := s.repo.Update(ctx, entity); err != nil {
		return err
	}
	s.publisher.Publish(person.NewUpdatedEvent(entity))
	return nil
}

func (s *PersonService) Delete(ctx context.Context, id uuid.UUID) (person.Person, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return person.Person{}, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return person.Person{}, err
	}
	s.publisher.Publish(person.NewDeletedEvent(entity))
	return entity, nil
}
