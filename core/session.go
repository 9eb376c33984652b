package core

import "time"

// Mode controls whether token issuance requires a fresh page nonce.
// It is decided once at startup from the provenance of the signing
// secret and never re-derived afterwards.
type Mode int

const (
	// ModeEnforced requires a valid single-use nonce before a session
	// token is issued. Active when the signing secret was supplied
	// through configuration.
	ModeEnforced Mode = iota

	// ModeBypassed issues session tokens unconditionally. Active when
	// the signing secret was generated at startup (development mode).
	ModeBypassed
)

func (m Mode) String() string {
	if m == ModeBypassed {
		return "bypassed"
	}
	return "enforced"
}

// Session represents an authenticated client session
type Session struct {
	IssuedAt  time.Time // When the session token was minted
	ExpiresAt time.Time // When the session token expires
}
