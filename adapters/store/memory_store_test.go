package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducesUniqueNonces(t *testing.T) {
	s := NewMemoryStore(time.Minute)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		nonce, err := s.Generate()
		require.NoError(t, err)
		assert.Len(t, nonce, 32) // 16 bytes hex-encoded
		assert.False(t, seen[nonce], "nonce %q generated twice", nonce)
		seen[nonce] = true
	}
}

func TestConsumeSucceedsExactlyOnce(t *testing.T) {
	s := NewMemoryStore(time.Minute)

	nonce, err := s.Generate()
	require.NoError(t, err)

	assert.True(t, s.Consume(nonce))
	assert.False(t, s.Consume(nonce))
	assert.False(t, s.Consume(nonce))
}

func TestConsumeUnknownNonce(t *testing.T) {
	s := NewMemoryStore(time.Minute)

	assert.False(t, s.Consume("never-generated"))
	assert.False(t, s.Consume(""))
}

func TestConsumeExpiredNonce(t *testing.T) {
	s := NewMemoryStore(time.Minute)

	nonce, err := s.Generate()
	require.NoError(t, err)

	// Move the clock past the nonce's expiry
	s.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	assert.False(t, s.Consume(nonce))

	// Lazy eviction removed it, so a second attempt is also false
	s.now = time.Now
	assert.False(t, s.Consume(nonce))
}

func TestCleanupEvictsOnlyExpired(t *testing.T) {
	s := NewMemoryStore(time.Minute)

	expired, err := s.Generate()
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	fresh, err := s.Generate()
	require.NoError(t, err)

	s.Cleanup()

	assert.False(t, s.Consume(expired))
	assert.True(t, s.Consume(fresh))
}

func TestConcurrentConsumeSingleWinner(t *testing.T) {
	s := NewMemoryStore(time.Minute)

	nonce, err := s.Generate()
	require.NoError(t, err)

	const goroutines = 50
	var wg sync.WaitGroup
	results := make(chan bool, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.Consume(nonce)
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "exactly one Consume may succeed")
}
