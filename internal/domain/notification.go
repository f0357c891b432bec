package domain

import "time"

type NotificationVariant string

const (
	VariantDefault     NotificationVariant = "default"
	VariantDestructive NotificationVariant = "destructive"
)

// Notification is a user-visible toast.
type Notification struct {
	Title       string
	Description string
	Variant     NotificationVariant
	Duration    time.Duration
}
