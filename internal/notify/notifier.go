package notify

import (
	"log/slog"
	"sync"

	"github.com/smartmarket/storefront/internal/domain"
)

// SlogNotifier writes toasts to the structured log.
type SlogNotifier struct {
	log *slog.Logger
}

func NewSlogNotifier(log *slog.Logger) *SlogNotifier {
	return &SlogNotifier{log: log}
}

func (n *SlogNotifier) Notify(notification domain.Notification) {
	n.log.Info("toast",
		"title", notification.Title,
		"description", notification.Description,
		"variant", string(notification.Variant),
	)
}

// Recorder collects notifications for assertions in tests.
type Recorder struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(notification domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, notification)
}

func (r *Recorder) Notifications() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Notification, len(r.notifications))
	copy(out, r.notifications)

	return out
}
