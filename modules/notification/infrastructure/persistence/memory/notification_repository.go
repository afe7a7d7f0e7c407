package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oblik-ua/oblik-sdk/modules/notification/domain/entities/notification"
)

type record struct {
	id        uuid.UUID
	kind      notification.Kind
	title     string
	message   string
	read      bool
	createdAt time.Time
}

type NotificationRepository struct {
	mu      sync.RWMutex
	records []record
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) GetPaginated(ctx context.Context, params *notification.FindParams) ([]notification.Notification, int64, error) {
	if params == nil {
		params = &notification.FindParams{}
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first.
	var filtered []record
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if params.UnreadOnly && rec.read {
			continue
		}
		filtered = append(filtered, rec)
	}

	total := int64(len(filtered))
	if offset >= len(filtered) {
		return []notification.Notification{}, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	out := make([]notification.Notification, 0, end-offset)
	for _, rec := range filtered[offset:end] {
		out = append(out, notification.Hydrate(rec.id, rec.kind, rec.title, rec.message, rec.read, rec.createdAt))
	}
	return out, total, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, rec := range r.records {
		if !rec.read {
			count++
		}
	}
	return count, nil
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := record{
		id:        uuid.New(),
		kind:      n.Kind(),
		title:     n.Title(),
		message:   n.Message(),
		createdAt: time.Now(),
	}
	r.records = append(r.records, rec)
	return notification.Hydrate(rec.id, rec.kind, rec.title, rec.message, rec.read, rec.createdAt), nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.records {
		if rec.id == id {
			r.records[i].read = true
			return nil
		}
	}
	return notification.ErrNotFound
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		r.records[i].read = true
	}
	return nil
}
