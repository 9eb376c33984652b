package ports

import "github.com/deepgram-starters/text-to-speech-go/core"

// Tokenizer converts between sessions and signed tokens
type Tokenizer interface {
	// SessionToToken signs a session into a compact token string
	SessionToToken(session *core.Session) (string, error)

	// TokenToSession verifies a token string and returns the session it
	// carries. Returns core.ErrTokenExpired for a verified-but-expired
	// token and core.ErrInvalidToken for anything else that fails.
	TokenToSession(token string) (*core.Session, error)
}
