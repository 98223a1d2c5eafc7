// Package cart owns the in-memory cart aggregate. All mutation goes
// through the Store; nothing else touches the line slice.
package cart

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/converse98/pizzeria-pos/internal/domain"
)

// ErrRegistering is returned by shape-changing operations while an
// order submission is in flight.
var ErrRegistering = errors.New("order registration in progress, cart is locked")

// Store holds the ordered collection of cart lines. Lines are always
// sorted by ascending creation timestamp after any mutation.
type Store struct {
	mu          sync.RWMutex
	items       []domain.CartItem
	registering bool

	now   func() time.Time
	newID func() string
}

func NewStore() *Store {
	return &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Add creates a new line from the given template. The store assigns the
// id, quantity and timestamp; the caller supplies the priced snapshot.
func (s *Store) Add(item domain.CartItem) domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.newID()
	item.Quantity = 1
	item.Timestamp = s.now()

	s.items = append(s.items, item)
	s.sortLocked()

	return item
}

// UpdateQuantity adds delta to a line's quantity. A resulting quantity
// of zero or below removes the line entirely. Unknown ids are a silent
// no-op. Rejected while a submission is in flight.
func (s *Store) UpdateQuantity(id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registering {
		return ErrRegistering
	}

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.items[i].Quantity += delta
		if s.items[i].Quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		}
		s.sortLocked()
		return nil
	}

	return nil
}

// Remove deletes a line unconditionally. Unknown ids are a silent
// no-op. Rejected while a submission is in flight.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registering {
		return ErrRegistering
	}

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.sortLocked()
			return nil
		}
	}

	return nil
}

// Clear empties the cart. Only called after a confirmed successful
// submission.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Item looks up a line by id.
func (s *Store) Item(id string) (domain.CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.CartItem{}, false
}

// Items returns an ordered snapshot of the cart. Reads are never gated
// by an in-flight submission.
func (s *Store) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Totals recomputes the item count and total price from current state.
func (s *Store) Totals() (int, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	var total float64
	for _, item := range s.items {
		count += item.Quantity
		total += item.FinalPrice * float64(item.Quantity)
	}
	return count, total
}

// BeginRegister marks a submission as in flight, gating out shape
// mutations. It returns false if one is already in flight.
func (s *Store) BeginRegister() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registering {
		return false
	}
	s.registering = true
	return true
}

// EndRegister clears the in-flight flag once the submission reached a
// terminal state.
func (s *Store) EndRegister() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registering = false
}

// sortLocked restores the timestamp ordering invariant. A no-op for
// pure appends, but kept as an explicit step after every mutation.
func (s *Store) sortLocked() {
	sort.SliceStable(s.items, func(i, j int) bool {
		return s.items[i].Timestamp.Before(s.items[j].Timestamp)
	})
}
