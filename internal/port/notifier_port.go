package port

import "github.com/smartmarket/storefront/internal/domain"

// Notifier accepts user-visible toasts. Fire-and-forget: callers do not
// depend on the outcome.
type Notifier interface {
	Notify(n domain.Notification)
}
