// Package tokens persists the credential pair that lets a session survive
// a restart. The access and refresh tokens are always written and cleared
// together, never independently.
package tokens

import "context"

// Pair is the persisted credential pair. A zero Pair means no session.
type Pair struct {
	Access  string
	Refresh string
}

// IsZero reports whether no credential is stored.
func (p Pair) IsZero() bool {
	return p.Access == "" && p.Refresh == ""
}

type Repository interface {
	// Load returns the stored pair, or a zero Pair when nothing is stored.
	Load(ctx context.Context) (Pair, error)

	// Save stores both tokens atomically.
	Save(ctx context.Context, pair Pair) error

	// Clear removes both tokens atomically. Clearing an empty store is
	// not an error.
	Clear(ctx context.Context) error
}
