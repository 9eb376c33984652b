package service

import (
	"fmt"
	"time"

	"github.com/deepgram-starters/text-to-speech-go/core"
	"github.com/deepgram-starters/text-to-speech-go/ports"
)

// DefaultTokenTTL is the lifetime of an issued session token. There is
// no refresh; an expired client repeats the nonce handshake.
const DefaultTokenTTL = time.Hour

// SessionService gates access to synthesis behind short-lived signed
// session tokens, optionally requiring a fresh page nonce at issuance
type SessionService struct {
	nonces    ports.NonceStore
	tokenizer ports.Tokenizer
	mode      core.Mode
	tokenTTL  time.Duration

	now func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(nonces ports.NonceStore, tokenizer ports.Tokenizer, mode core.Mode) *SessionService {
	return &SessionService{
		nonces:    nonces,
		tokenizer: tokenizer,
		mode:      mode,
		tokenTTL:  DefaultTokenTTL,
		now:       time.Now,
	}
}

// Mode reports the enforcement mode decided at startup
func (s *SessionService) Mode() core.Mode {
	return s.mode
}

// IssueNonce sweeps expired nonces then generates a fresh one for
// embedding in the entry page
func (s *SessionService) IssueNonce() (string, error) {
	s.nonces.Cleanup()

	nonce, err := s.nonces.Generate()
	if err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	return nonce, nil
}

// IssueToken mints a signed session token. When enforcement is active
// the presented nonce must consume successfully first.
func (s *SessionService) IssueToken(nonce string) (string, error) {
	if s.mode == core.ModeEnforced {
		if nonce == "" || !s.nonces.Consume(nonce) {
			return "", core.ErrInvalidNonce
		}
	}

	now := s.now()
	session := &core.Session{
		IssuedAt:  now,
		ExpiresAt: now.Add(s.tokenTTL),
	}

	token, err := s.tokenizer.SessionToToken(session)
	if err != nil {
		return "", fmt.Errorf("failed to create session token: %w", err)
	}

	return token, nil
}

// ValidateToken verifies a bearer token. The check is stateless: the
// token is valid iff its signature verifies and it has not expired.
func (s *SessionService) ValidateToken(token string) (*core.Session, error) {
	if token == "" {
		return nil, core.ErrMissingToken
	}

	session, err := s.tokenizer.TokenToSession(token)
	if err != nil {
		return nil, err
	}

	if s.now().After(session.ExpiresAt) {
		return nil, core.ErrTokenExpired
	}

	return session, nil
}
