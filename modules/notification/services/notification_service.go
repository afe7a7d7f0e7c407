package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oblik-ua/oblik-sdk/modules/notification/domain/entities/notification"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/pkg/eventbus"
)

type NotificationService struct {
	repo notification.Repository
	log  logrus.FieldLogger
}

func NewNotificationService(repo notification.Repository, log logrus.FieldLogger) *NotificationService {
	return &NotificationService{repo: repo, log: log}
}

// RegisterEventListeners wires the service to the domain events that feed
// the notification center.
func (s *NotificationService) RegisterEventListeners(bus eventbus.EventBus) {
	bus.Subscribe(s.onPersonCreated)
	bus.Subscribe(s.onImportFinished)
}

func (s *NotificationService) onPersonCreated(ev *person.CreatedEvent) {
	_, err := s.repo.Create(context.Background(), notification.New(
		notification.KindPersonCreated,
		"Нова картка",
		fmt.Sprintf("Додано запис: %s (%s)", ev.Result.FullName(), ev.Result.Callsign()),
	))
	if err != nil {
		s.log.WithError(err).Warn("person-created notification not recorded")
	}
}

func (s *NotificationService) onImportFinished(ev *person.ImportedEvent) {
	_, err := s.repo.Create(context.Background(), notification.New(
		notification.KindImportFinished,
		"Імпорт завершено",
		fmt.Sprintf("Імпортовано %d із %d записів", ev.Succeeded, ev.Attempted),
	))
	if err != nil {
		s.log.WithError(err).Warn("import notification not recorded")
	}
}

func (s *NotificationService) GetPaginated(ctx context.Context, params *notification.FindParams) ([]notification.Notification, int64, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *NotificationService) CountUnread(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}

func (s *NotificationService) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	return s.repo.Create(ctx, n)
}

func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}
