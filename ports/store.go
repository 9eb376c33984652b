package ports

// NonceStore holds single-use page nonces until they are consumed or expire
type NonceStore interface {
	// Generate creates a fresh nonce and records it with its expiry
	Generate() (string, error)

	// Consume removes the nonce and reports whether it was present and
	// still unexpired. A nonce can succeed at most once.
	Consume(nonce string) bool

	// Cleanup evicts expired nonces
	Cleanup()
}
