package store

import (
	"context"
	"sync"
	"time"

	"github.com/serroba/linkstash/internal/mapping"
)

type memoryEntry struct {
	record   mapping.Mapping
	deadline time.Time // simulated store-level TTL eviction
}

// MemoryStore is an in-memory implementation of mapping.Store used in
// tests. It simulates Redis per-key TTL by dropping entries whose
// deadline has passed at read time.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[mapping.Code]memoryEntry
	index   map[string]map[mapping.Code]struct{} // ownerID -> codes
}

// NewMemoryStore creates a new in-memory mapping store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[mapping.Code]memoryEntry),
		index:   make(map[string]map[mapping.Code]struct{}),
	}
}

func (m *MemoryStore) Exists(_ context.Context, code mapping.Code) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.records[code]

	return ok && entry.deadline.After(time.Now()), nil
}

func (m *MemoryStore) Get(_ context.Context, code mapping.Code) (*mapping.Mapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.records[code]
	if !ok || !entry.deadline.After(time.Now()) {
		return nil, mapping.ErrNotFound
	}

	record := entry.record

	return &record, nil
}

func (m *MemoryStore) Put(_ context.Context, rec *mapping.Mapping, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[rec.ShortCode] = memoryEntry{record: *rec, deadline: time.Now().Add(ttl)}
	m.indexAddLocked(rec.OwnerID, rec.ShortCode)

	return nil
}

func (m *MemoryStore) SetWithTTL(_ context.Context, rec *mapping.Mapping, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[rec.ShortCode] = memoryEntry{record: *rec, deadline: time.Now().Add(ttl)}

	return nil
}

func (m *MemoryStore) Delete(_ context.Context, code mapping.Code) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, code)

	return nil
}

func (m *MemoryStore) Remove(_ context.Context, code mapping.Code, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, code)
	m.indexRemoveLocked(ownerID, code)

	return nil
}

func (m *MemoryStore) IndexAdd(_ context.Context, ownerID string, code mapping.Code) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.indexAddLocked(ownerID, code)

	return nil
}

func (m *MemoryStore) IndexRemove(_ context.Context, ownerID string, code mapping.Code) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.indexRemoveLocked(ownerID, code)

	return nil
}

func (m *MemoryStore) IndexMembers(_ context.Context, ownerID string) ([]mapping.Code, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	codes := make([]mapping.Code, 0, len(m.index[ownerID]))
	for code := range m.index[ownerID] {
		codes = append(codes, code)
	}

	return codes, nil
}

func (m *MemoryStore) indexAddLocked(ownerID string, code mapping.Code) {
	if m.index[ownerID] == nil {
		m.index[ownerID] = make(map[mapping.Code]struct{})
	}

	m.index[ownerID][code] = struct{}{}
}

func (m *MemoryStore) indexRemoveLocked(ownerID string, code mapping.Code) {
	delete(m.index[ownerID], code)
}

// Compile-time check.
var _ mapping.Store = (*MemoryStore)(nil)
