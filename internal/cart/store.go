package cart

import (
	"sync"

	"github.com/ItaloOlivier/shopcrypto/internal/logger"

	"go.uber.org/zap"
)

// Store is the client-resident authority for pending purchase intent. All
// mutations succeed synchronously against the in-memory collection and are
// persisted to the configured Storage as a side effect; a persistence failure
// is logged, never surfaced, so the cart keeps working offline.
type Store struct {
	mu      sync.Mutex
	items   []Item
	storage Storage
}

// NewStore loads the persisted snapshot from storage. A corrupt or unreadable
// snapshot degrades to an empty cart.
func NewStore(storage Storage) *Store {
	if storage == nil {
		storage = NewMemoryStorage()
	}

	items, err := storage.Load()
	if err != nil {
		logger.L().Warn("failed to load cart snapshot, starting empty", zap.Error(err))
		items = nil
	}

	return &Store{items: items, storage: storage}
}

// AddItem merges by product ID: an existing line has its quantity increased
// (by item.Quantity, or 1 when unset), otherwise the item is appended.
// Always succeeds.
func (s *Store) AddItem(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := item.Quantity
	if count < 1 {
		count = 1
	}

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += count
			s.persistLocked()
			return
		}
	}

	item.Quantity = count
	s.items = append(s.items, item)
	s.persistLocked()
}

// RemoveItem deletes the matching line; absent IDs are a no-op.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity; anything below 1 removes the line.
// Stock limits are deliberately not checked here.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		s.RemoveItem(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persistLocked()
			return
		}
	}
}

// Clear empties the cart; called after a server-confirmed order. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persistLocked()
}

// Items returns a copy of the current lines in display order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Subtotal is recomputed on every read; the collection is small enough that
// caching would only add staleness risk.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) persistLocked() {
	snapshot := make([]Item, len(s.items))
	copy(snapshot, s.items)

	if err := s.storage.Save(snapshot); err != nil {
		logger.L().Warn("failed to persist cart snapshot", zap.Error(err))
	}
}
