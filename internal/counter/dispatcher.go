package counter

import (
	"context"

	"github.com/grindlemire/go-tui-counter/internal/logger"
)

// Dispatcher forwards actions to a Store. It is the only type allowed to
// take the store's write lock.
type Dispatcher struct {
	store *Store
}

// NewDispatcher creates a dispatcher for store.
func NewDispatcher(store *Store) *Dispatcher {
	return &Dispatcher{store: store}
}

// Dispatch applies a to the store under its exclusive lock.
//
// If the store is poisoned, Dispatch returns ErrPoisoned and changes nothing.
// If applying the action panics, the store is marked poisoned, the lock is
// released, and the panic continues up the stack.
func (d *Dispatcher) Dispatch(ctx context.Context, a Action) error {
	value, err := d.dispatch(a)
	if err != nil {
		return err
	}

	logger.DebugKV(ctx, "Action dispatched", "action", a, "value", value)

	return nil
}

func (d *Dispatcher) dispatch(a Action) (int64, error) {
	s := d.store

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		return 0, ErrPoisoned
	}

	// Runs before the unlock above, so no reader can see the state
	// between the panic and the poisoned flag.
	defer func() {
		if r := recover(); r != nil {
			s.poisoned = true
			panic(r)
		}
	}()

	s.apply(a)

	return s.count, nil
}
