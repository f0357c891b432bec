package port

import (
	"context"

	"github.com/smartmarket/storefront/internal/domain"
)

// SessionRepository persists the single user record for the current session.
type SessionRepository interface {
	Save(ctx context.Context, user domain.User) error
	// Load returns the persisted user, or ok=false when no session exists.
	Load(ctx context.Context) (user domain.User, ok bool, err error)
	Delete(ctx context.Context) error
}
