// Package reconcile implements the fetch → mutate → re-fetch protocol shared
// by every list-bearing screen.
//
// A screen never patches its local collection after a mutation: the mutation
// request is sent, and on success the owning collection is re-read from the
// backend so computed fields (counts, favorited flags, ordering) come from
// the canonical copy. On failure the previously loaded state stays displayed
// unmodified. Load failures degrade to an empty collection and are reported
// on the developer log channel only.
package reconcile

import (
	"context"
	"errors"
	"sync"

	"github.com/Yvancedric/partage-recettes-optimisation/internal/logging"
)

// ErrPending is returned when a mutation is attempted while a previous
// mutation on the same collection has not finished reconciling.
var ErrPending = errors.New("previous mutation is still reconciling")

// Reconciler owns one screen's view of a collection or detail resource.
// It lives only as long as the screen and holds no cross-screen cache.
type Reconciler[T any] struct {
	fetch func(ctx context.Context) (T, error)
	log   logging.Logger

	mu      sync.Mutex
	state   T
	pending bool
}

func New[T any](fetch func(ctx context.Context) (T, error), log logging.Logger) *Reconciler[T] {
	return &Reconciler[T]{fetch: fetch, log: log}
}

// State returns the last reconciled state.
func (r *Reconciler[T]) State() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Refresh re-reads the resource. On failure the state is reset to its zero
// value (the screen shows an empty state, not an error dialog) and the
// condition goes to the developer log.
func (r *Reconciler[T]) Refresh(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refreshLocked(ctx)
}

func (r *Reconciler[T]) refreshLocked(ctx context.Context) {
	state, err := r.fetch(ctx)
	if err != nil {
		var zero T
		r.state = zero
		r.log.Error(ctx, "resource fetch failed", "error", err)
		return
	}
	r.state = state
}

// Apply runs one mutation against the backend. The mutation must settle
// before the reconcile fetch is issued; on success exactly one re-fetch
// happens before Apply returns and further mutations are accepted. On
// failure the state is left untouched and the error is returned for the
// caller to surface as a transient notification.
func (r *Reconciler[T]) Apply(ctx context.Context, mutate func(ctx context.Context) error) error {
	r.mu.Lock()
	if r.pending {
		r.mu.Unlock()
		return ErrPending
	}
	r.pending = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.pending = false
		r.mu.Unlock()
	}()

	if err := mutate(ctx); err != nil {
		return err
	}

	r.Refresh(ctx)
	return nil
}
