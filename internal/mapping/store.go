package mapping

import (
	"context"
	"time"
)

// Store is the mapping service's view of the external key-value store.
// Records are addressed by short code, owner indexes by owner id. Put and
// Remove keep the record and the owner index in step using the store's
// multi-key primitive; the remaining operations are single-key.
type Store interface {
	// Exists reports whether a record is present for the code.
	Exists(ctx context.Context, code Code) (bool, error)

	// Get returns the record for the code, or ErrNotFound when absent.
	// A record past its expiry may still be returned; liveness is the
	// caller's concern.
	Get(ctx context.Context, code Code) (*Mapping, error)

	// Put writes the record with the given TTL and adds the code to its
	// owner's index in a single multi-key operation.
	Put(ctx context.Context, m *Mapping, ttl time.Duration) error

	// SetWithTTL rewrites the record with a refreshed TTL, leaving the
	// owner index untouched.
	SetWithTTL(ctx context.Context, m *Mapping, ttl time.Duration) error

	// Remove deletes the record and drops the code from the owner's index
	// in a single multi-key operation.
	Remove(ctx context.Context, code Code, ownerID string) error

	// IndexRemove drops a stale code from an owner's index.
	IndexRemove(ctx context.Context, ownerID string, code Code) error

	// IndexMembers returns all codes in an owner's index, unordered.
	IndexMembers(ctx context.Context, ownerID string) ([]Code, error)
}
