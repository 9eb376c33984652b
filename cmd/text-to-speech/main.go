package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/deepgram-starters/text-to-speech-go/adapters/deepgram"
	"github.com/deepgram-starters/text-to-speech-go/adapters/store"
	"github.com/deepgram-starters/text-to-speech-go/adapters/tokenizer"
	"github.com/deepgram-starters/text-to-speech-go/config"
	"github.com/deepgram-starters/text-to-speech-go/internal/logging"
	"github.com/deepgram-starters/text-to-speech-go/metadata"
	"github.com/deepgram-starters/text-to-speech-go/service"
	"github.com/deepgram-starters/text-to-speech-go/transport/http"
)

const frontendDist = "frontend/dist"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	// No built frontend is fine in dev mode; the entry page then 404s
	var indexHTML string
	if raw, err := os.ReadFile(filepath.Join(frontendDist, "index.html")); err == nil {
		indexHTML = string(raw)
	}

	var assetsDir string
	if info, err := os.Stat(filepath.Join(frontendDist, "assets")); err == nil && info.IsDir() {
		assetsDir = filepath.Join(frontendDist, "assets")
	}

	nonces := store.NewMemoryStore(store.DefaultNonceTTL)
	jwtTokenizer := tokenizer.NewJWTTokenizer(cfg.SessionSecret)
	synthesizer := deepgram.NewClient(cfg.DeepgramAPIKey)

	sessions := service.NewSessionService(nonces, jwtTokenizer, cfg.Mode)
	speech := service.NewSpeechService(synthesizer, logger)

	handlers := http.NewHandlers(sessions, speech, indexHTML, metadata.DefaultPath)
	router := http.SetupRouter(handlers, sessions, logger, assetsDir)

	logger.Info("starting server", "addr", cfg.Addr(), "nonce_gating", cfg.Mode.String())

	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
