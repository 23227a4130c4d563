package counter

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// ErrPoisoned is returned by every Store operation after a panic escaped
// while the store was locked for writing. The value can no longer be trusted.
var ErrPoisoned = errors.New("counter store poisoned by a panic during an update")

// Store owns the counter value.
type Store struct {
	// mu guards count and poisoned. Dispatcher takes it exclusively.
	mu       sync.RWMutex
	count    int64
	poisoned bool
}

// NewStore creates a store with the counter at zero.
func NewStore() *Store {
	return &Store{}
}

// Value returns the current counter value.
func (s *Store) Value() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.poisoned {
		return 0, ErrPoisoned
	}
	return s.count, nil
}

// apply performs the state transition for a. Caller must hold mu for writing.
// The counter saturates at the int64 bounds instead of wrapping.
// An action outside the closed set is a programming error and panics.
func (s *Store) apply(a Action) {
	switch a {
	case Increment:
		if s.count < math.MaxInt64 {
			s.count++
		}
	case Decrement:
		if s.count > math.MinInt64 {
			s.count--
		}
	default:
		panic(fmt.Sprintf("counter: unknown %v", a))
	}
}
