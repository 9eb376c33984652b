package core

import "errors"

var (
	ErrMissingToken    = errors.New("missing bearer token")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token has expired")
	ErrInvalidNonce    = errors.New("invalid nonce")
	ErrEmptyText       = errors.New("text is empty")
	ErrTextTooLong     = errors.New("text exceeds maximum length")
	ErrSynthesisFailed = errors.New("synthesis failed")
)
