package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/deepgram-starters/text-to-speech-go/core"
	"github.com/deepgram-starters/text-to-speech-go/ports"
)

// SpeechService validates synthesis input and delegates to the upstream
// provider
type SpeechService struct {
	synthesizer ports.Synthesizer
	log         *slog.Logger
}

// NewSpeechService creates a new speech service
func NewSpeechService(synthesizer ports.Synthesizer, log *slog.Logger) *SpeechService {
	return &SpeechService{
		synthesizer: synthesizer,
		log:         log,
	}
}

// Synthesize converts text to audio. Empty or whitespace-only text is
// rejected before the upstream provider is contacted. Unclassified
// upstream failures are logged server-side and surfaced only as the
// generic core.ErrSynthesisFailed.
func (s *SpeechService) Synthesize(ctx context.Context, text, model string) (*core.Speech, error) {
	if strings.TrimSpace(text) == "" {
		return nil, core.ErrEmptyText
	}

	if model == "" {
		model = core.DefaultModel
	}

	speech, err := s.synthesizer.Synthesize(ctx, text, model)
	if err != nil {
		if errors.Is(err, core.ErrTextTooLong) {
			return nil, core.ErrTextTooLong
		}

		s.log.Error("synthesis failed", "model", model, "error", err)
		return nil, core.ErrSynthesisFailed
	}

	s.log.Info("synthesized speech", "model", model, "bytes", len(speech.Audio))

	return speech, nil
}
