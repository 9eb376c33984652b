package store

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/deepgram-starters/text-to-speech-go/ports"
)

// DefaultNonceTTL is how long a generated nonce stays consumable.
const DefaultNonceTTL = 5 * time.Minute

// nonceSize is the entropy of a nonce in bytes, hex-encoded on the wire.
const nonceSize = 16

// MemoryStore is an in-memory implementation of the NonceStore interface.
// All operations are serialized under one mutex so that two concurrent
// Consume calls can never both succeed on the same nonce.
type MemoryStore struct {
	mu     sync.Mutex
	nonces map[string]time.Time
	ttl    time.Duration

	now func() time.Time
}

// NewMemoryStore creates a new in-memory nonce store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultNonceTTL
	}
	return &MemoryStore{
		nonces: make(map[string]time.Time),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Generate creates a cryptographically random nonce and records it with
// expiry = now + TTL
func (s *MemoryStore) Generate() (string, error) {
	buf := make([]byte, nonceSize)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	nonce := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nonces[nonce] = s.now().Add(s.ttl)
	return nonce, nil
}

// Consume removes the nonce and reports whether it was present and still
// unexpired. An expired nonce is removed too (lazy eviction) but reports
// false.
func (s *MemoryStore) Consume(nonce string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.nonces[nonce]
	if !ok {
		return false
	}
	delete(s.nonces, nonce)

	return s.now().Before(expiry)
}

// Cleanup evicts all expired nonces. Invoked opportunistically on each
// entry-page serve; cadence only affects memory footprint, not
// correctness.
func (s *MemoryStore) Cleanup() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for nonce, expiry := range s.nonces {
		if !expiry.After(now) {
			delete(s.nonces, nonce)
		}
	}
}

var _ ports.NonceStore = (*MemoryStore)(nil)
