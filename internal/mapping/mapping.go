package mapping

import "time"

// Code represents a short mapping code.
type Code string

// Mapping binds a short code to a long URL for a limited lifetime,
// scoped to the opaque owner that created it.
type Mapping struct {
	ShortCode Code      `json:"shortUrl"`
	LongURL   string    `json:"longUrl"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	OwnerID   string    `json:"ownerId"`
}

// LiveAt reports whether the mapping has not yet expired at the given instant.
// The store's own TTL eviction is a backstop; liveness is always checked here.
func (m *Mapping) LiveAt(t time.Time) bool {
	return m.ExpiresAt.After(t)
}
