package mappers

import (
	"time"

	"github.com/oblik-ua/oblik-sdk/modules/notification/domain/entities/notification"
	"github.com/oblik-ua/oblik-sdk/modules/notification/presentation/viewmodels"
)

func NotificationToViewModel(n notification.Notification) viewmodels.Notification {
	return viewmodels.Notification{
		ID:        n.ID(),
		Kind:      string(n.Kind()),
		Title:     n.Title(),
		Message:   n.Message(),
		Read:      n.Read(),
		CreatedAt: formatTime(n.CreatedAt()),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
