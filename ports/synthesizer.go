package ports

import (
	"context"

	"github.com/deepgram-starters/text-to-speech-go/core"
)

// Synthesizer is the upstream text-to-speech provider.
// Implementations report length violations as core.ErrTextTooLong,
// distinct from generic upstream failures.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, model string) (*core.Speech, error)
}
