package session

import (
	"context"
	"sync"

	"github.com/smartmarket/storefront/internal/domain"
)

// SessionKey is the fixed key the user record is stored under.
const SessionKey = "smartMarketUser"

// MemoryRepository holds the session record in process memory. Default
// wiring for tests and single-process runs.
type MemoryRepository struct {
	mu   sync.RWMutex
	user domain.User
	set  bool
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Save(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.user = user
	r.set = true

	return nil
}

func (r *MemoryRepository) Load(_ context.Context) (domain.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.set {
		return domain.User{}, false, nil
	}

	return r.user, true, nil
}

func (r *MemoryRepository) Delete(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.user = domain.User{}
	r.set = false

	return nil
}
