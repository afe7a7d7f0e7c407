package notification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/oblik-ua/oblik-sdk/pkg/serrors"
)

var ErrNotFound = serrors.NewError("NOTIFICATION_NOT_FOUND", "notification not found", "")

type Kind string

const (
	KindPersonCreated  Kind = "person_created"
	KindImportFinished Kind = "import_finished"
	KindSystem         Kind = "system"
)

type Notification struct {
	id        uuid.UUID
	kind      Kind
	title     string
	message   string
	read      bool
	createdAt time.Time
}

func New(kind Kind, title, message string) Notification {
	return Notification{kind: kind, title: title, message: message}
}

func Hydrate(id uuid.UUID, kind Kind, title, message string, read bool, createdAt time.Time) Notification {
	return Notification{
		id:        id,
		kind:      kind,
		title:     title,
		message:   message,
		read:      read,
		createdAt: createdAt,
	}
}

func (n Notification) ID() uuid.UUID        { return n.id }
func (n Notification) Kind() Kind           { return n.kind }
func (n Notification) Title() string        { return n.title }
func (n Notification) Message() string      { return n.message }
func (n Notification) Read() bool           { return n.read }
func (n Notification) CreatedAt() time.Time { return n.createdAt }

type FindParams struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Notification, int64, error)
	CountUnread(ctx context.Context) (int64, error)
	Create(ctx context.Context, n Notification) (Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) error
}
