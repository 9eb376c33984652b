package tokenizer

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the standard claims carried by a session token.
// Sessions are anonymous, so only issued-at and expiry matter.
type SessionClaims struct {
	jwt.RegisteredClaims
}
