package mapping

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

// DefaultTTL is the lifetime granted to a mapping at creation and added
// on each renewal.
const DefaultTTL = 48 * time.Hour

// maxGenerateAttempts bounds the collision-retry loop in Create.
const maxGenerateAttempts = 10

// Page is one page of an owner's mappings, newest first.
type Page struct {
	Mappings   []*Mapping
	TotalPages int
}

// Service orchestrates the mapping lifecycle on top of a Store. It holds
// no mutable state of its own, so a single instance is safe to share
// across concurrent callers.
type Service struct {
	store    Store
	generate CodeGenerator
	ttl      time.Duration
	now      func() time.Time
}

// NewService creates a mapping service. A non-positive ttl falls back to
// DefaultTTL.
func NewService(store Store, generate CodeGenerator, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Service{
		store:    store,
		generate: generate,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create maps longURL to a freshly generated short code owned by ownerID.
// Candidate codes are retried on collision up to maxGenerateAttempts times
// before giving up with ErrCodeSpaceExhausted.
func (s *Service) Create(ctx context.Context, longURL, ownerID string) (Code, error) {
	if ownerID == "" {
		return "", fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	if err := ValidateURL(longURL); err != nil {
		return "", err
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		code := Code(s.generate())

		taken, err := s.store.Exists(ctx, code)
		if err != nil {
			return "", err
		}

		if taken {
			continue
		}

		now := s.now()
		m := &Mapping{
			ShortCode: code,
			LongURL:   longURL,
			CreatedAt: now,
			ExpiresAt: now.Add(s.ttl),
			OwnerID:   ownerID,
		}

		if err := s.store.Put(ctx, m, ttlUntil(now, m.ExpiresAt)); err != nil {
			return "", err
		}

		return code, nil
	}

	return "", ErrCodeSpaceExhausted
}

// Resolve returns the live mapping for code. An empty ownerID is a public
// lookup; a non-empty ownerID must match the mapping's owner or the call
// fails with ErrUnauthorized. An expired mapping is deleted on discovery,
// its index entry pruned, and ErrNotFound returned.
func (s *Service) Resolve(ctx context.Context, code Code, ownerID string) (*Mapping, error) {
	m, err := s.store.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	if ownerID != "" && ownerID != m.OwnerID {
		return nil, ErrUnauthorized
	}

	if !m.LiveAt(s.now()) {
		// The record carries its owner, so even a public lookup can prune
		// the right index.
		if err := s.store.Remove(ctx, code, m.OwnerID); err != nil {
			return nil, err
		}

		return nil, ErrNotFound
	}

	return m, nil
}

// Renew extends a live mapping's expiry by the service TTL, counted from
// the current expiry rather than from now, so successive renewals stack.
// Expired mappings cannot be renewed; they are cleaned up and reported
// as ErrNotFound.
func (s *Service) Renew(ctx context.Context, code Code, ownerID string) (*Mapping, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	m, err := s.store.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	if m.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}

	now := s.now()
	if !m.LiveAt(now) {
		if err := s.store.Remove(ctx, code, m.OwnerID); err != nil {
			return nil, err
		}

		return nil, ErrNotFound
	}

	m.ExpiresAt = m.ExpiresAt.Add(s.ttl)

	if err := s.store.SetWithTTL(ctx, m, ttlUntil(now, m.ExpiresAt)); err != nil {
		return nil, err
	}

	return m, nil
}

// List returns one page of ownerID's live mappings, newest first. Stale
// index entries discovered during the scan are reconciled: missing records
// are pruned from the index, expired records are deleted and pruned, and
// records owned by someone else (a code reissued after expiry) are pruned
// from this owner's index without touching the record itself.
func (s *Service) List(ctx context.Context, ownerID string, page, pageSize int) (*Page, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf("%w: page and page size must be positive", ErrInvalidInput)
	}

	codes, err := s.store.IndexMembers(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	live := make([]*Mapping, 0, len(codes))

	for _, code := range codes {
		m, err := s.store.Get(ctx, code)
		if errors.Is(err, ErrNotFound) {
			if err := s.store.IndexRemove(ctx, ownerID, code); err != nil {
				return nil, err
			}

			continue
		}

		if err != nil {
			return nil, err
		}

		if m.OwnerID != ownerID {
			if err := s.store.IndexRemove(ctx, ownerID, code); err != nil {
				return nil, err
			}

			continue
		}

		if !m.LiveAt(now) {
			if err := s.store.Remove(ctx, code, ownerID); err != nil {
				return nil, err
			}

			continue
		}

		live = append(live, m)
	}

	// Stable sort keeps index-scan order deterministic within a call for
	// records created at the same instant.
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].CreatedAt.After(live[j].CreatedAt)
	})

	totalPages := (len(live) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start > len(live) {
		start = len(live)
	}

	end := start + pageSize
	if end > len(live) {
		end = len(live)
	}

	return &Page{Mappings: live[start:end], TotalPages: totalPages}, nil
}

// ttlUntil is the remaining lifetime from now to deadline, rounded up to
// a whole second so the persisted TTL never undercuts the expiry.
func ttlUntil(now, deadline time.Time) time.Duration {
	remaining := deadline.Sub(now)
	if rem := remaining % time.Second; rem != 0 {
		remaining += time.Second - rem
	}

	return remaining
}
