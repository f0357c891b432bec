package cart

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/smartmarket/storefront/internal/domain"
	"golang.org/x/text/currency"
)

var (
	// ErrQuantityInvalid is returned for quantities below 1. The store is
	// defensive here rather than trusting callers to guard, so a line can
	// never be observed with a zero or negative quantity.
	ErrQuantityInvalid = errors.New("quantity must be at least 1")

	// ErrCurrencyMismatch is returned when a product priced in a different
	// currency than the store's is added. Keeps Subtotal well-defined.
	ErrCurrencyMismatch = errors.New("product currency differs from cart currency")
)

// Store owns the authoritative list of cart lines for the current session.
// There is at most one line per product ID; adding an existing product merges
// quantities instead of creating a duplicate. All reads return copies.
type Store struct {
	mu       sync.RWMutex
	items    []domain.CartItem
	currency currency.Unit

	nextSubID int
	subs      map[int]chan domain.Cart

	now func() time.Time
}

func NewStore(unit currency.Unit) *Store {
	return &Store{
		currency: unit,
		subs:     make(map[int]chan domain.Cart),
		now:      time.Now,
	}
}

// AddItem appends a new line snapshotted from the product, or merges into an
// existing line for the same product ID by incrementing its quantity.
func (s *Store) AddItem(product domain.Product, quantity int) error {
	if product.ID == "" {
		return fmt.Errorf("product.ID is empty")
	}

	if quantity < 1 {
		return fmt.Errorf("quantity[%d]: %w", quantity, ErrQuantityInvalid)
	}

	if product.Price.Currency.String() != s.currency.String() {
		return fmt.Errorf("currency[%s]: %w", product.Price.Currency, ErrCurrencyMismatch)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			s.publishLocked()
			return nil
		}
	}

	s.items = append(s.items, domain.NewCartItem(product, quantity, s.now()))
	s.publishLocked()

	return nil
}

// SetQuantity replaces the quantity of the line matching productID. A miss is
// a silent no-op; all other line fields are left untouched.
func (s *Store) SetQuantity(productID string, quantity int) error {
	if productID == "" {
		return fmt.Errorf("productID is empty")
	}

	if quantity < 1 {
		return fmt.Errorf("quantity[%d]: %w", quantity, ErrQuantityInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.publishLocked()
			return nil
		}
	}

	return nil
}

// RemoveItem deletes the line matching productID, if present.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.publishLocked()
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.publishLocked()
}

// Snapshot returns a copy of the current cart state.
func (s *Store) Snapshot() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// Subtotal is the sum of price times quantity over all lines. Zero for an
// empty cart.
func (s *Store) Subtotal() domain.Money {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := domain.ZeroMoney(s.currency)
	for _, item := range s.items {
		// cannot fail: AddItem enforces a single currency
		total, _ = total.Add(item.LineTotal())
	}

	return total
}

// ItemCount is the sum of line quantities, shown on the cart badge.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Cart{Items: s.items}.ItemCount()
}

// Subscribe registers for cart snapshots after each mutation. Delivery is
// coalescing: a subscriber that falls behind sees only the latest state and
// never blocks a mutation. The returned func cancels the subscription.
func (s *Store) Subscribe() (<-chan domain.Cart, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++

	ch := make(chan domain.Cart, 1)
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()

			delete(s.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

func (s *Store) snapshotLocked() domain.Cart {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)

	return domain.Cart{Items: items}
}

func (s *Store) publishLocked() {
	snap := s.snapshotLocked()

	for _, ch := range s.subs {
		// drop the stale snapshot, then offer the fresh one
		select {
		case <-ch:
		default:
		}

		select {
		case ch <- snap:
		default:
		}
	}
}
