package core

// DefaultModel is the synthesis model used when the client selects none.
const DefaultModel = "aura-asteria-en"

// Speech is the result of a synthesis call against the upstream provider.
type Speech struct {
	Audio       []byte // Raw audio bytes as returned by the provider
	ContentType string // MIME type of the audio payload
}
