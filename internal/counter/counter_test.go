package counter

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func dispatchN(t *testing.T, d *Dispatcher, a Action, n int) {
	t.Helper()
	for range n {
		require.NoError(t, d.Dispatch(context.Background(), a))
	}
}

func value(t *testing.T, s *Store) int64 {
	t.Helper()
	v, err := s.Value()
	require.NoError(t, err)
	return v
}

func TestStore_StartsAtZero(t *testing.T) {
	require.Equal(t, int64(0), value(t, NewStore()))
}

func TestDispatch_IncrementsThenDecrements(t *testing.T) {
	tests := map[string]struct {
		inc, dec int
		want     int64
	}{
		"nothing":            {want: 0},
		"three increments":   {inc: 3, want: 3},
		"three up five down": {inc: 3, dec: 5, want: -2},
		"balanced":           {inc: 40, dec: 40, want: 0},
		"only decrements":    {dec: 7, want: -7},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewStore()
			d := NewDispatcher(s)

			dispatchN(t, d, Increment, tt.inc)
			dispatchN(t, d, Decrement, tt.dec)

			require.Equal(t, tt.want, value(t, s))
			require.Equal(t, int64(tt.inc-tt.dec), value(t, s))
		})
	}
}

func TestDispatch_ConcurrentUpdatesAreNotLost(t *testing.T) {
	const (
		workers   = 16
		perWorker = 500
	)

	s := NewStore()
	d := NewDispatcher(s)

	var g errgroup.Group
	for i := range workers {
		a := Increment
		if i%4 == 0 {
			a = Decrement
		}
		g.Go(func() error {
			for range perWorker {
				if err := d.Dispatch(context.Background(), a); err != nil {
					return err
				}
				if _, err := s.Value(); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// 4 of 16 workers decrement.
	require.Equal(t, int64((12-4)*perWorker), value(t, s))
}

func TestDispatch_Saturates(t *testing.T) {
	tests := map[string]struct {
		start  int64
		action Action
		want   int64
	}{
		"increment at max": {start: math.MaxInt64, action: Increment, want: math.MaxInt64},
		"decrement at min": {start: math.MinInt64, action: Decrement, want: math.MinInt64},
		"decrement at max": {start: math.MaxInt64, action: Decrement, want: math.MaxInt64 - 1},
		"increment at min": {start: math.MinInt64, action: Increment, want: math.MinInt64 + 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewStore()
			s.count = tt.start

			require.NoError(t, NewDispatcher(s).Dispatch(context.Background(), tt.action))
			require.Equal(t, tt.want, value(t, s))
		})
	}
}

func TestDispatch_PanicPoisonsStore(t *testing.T) {
	s := NewStore()
	d := NewDispatcher(s)
	dispatchN(t, d, Increment, 2)

	require.PanicsWithValue(t, "counter: unknown action(99)", func() {
		_ = d.Dispatch(context.Background(), Action(99))
	})

	_, err := s.Value()
	require.ErrorIs(t, err, ErrPoisoned)

	require.ErrorIs(t, d.Dispatch(context.Background(), Increment), ErrPoisoned)
	require.Equal(t, int64(2), s.count)

	// The lock was released on the way out.
	require.True(t, s.mu.TryLock())
	s.mu.Unlock()
}

func TestDispatch_ZeroActionPanics(t *testing.T) {
	require.Panics(t, func() {
		_ = NewDispatcher(NewStore()).Dispatch(context.Background(), Action(0))
	})
}

func TestActionString(t *testing.T) {
	require.Equal(t, "increment", Increment.String())
	require.Equal(t, "decrement", Decrement.String())
	require.Equal(t, "action(0)", Action(0).String())
}
