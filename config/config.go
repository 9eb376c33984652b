package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/deepgram-starters/text-to-speech-go/core"
)

// Environment variables read at startup
const (
	EnvHost          = "HOST"
	EnvPort          = "PORT"
	EnvSessionSecret = "SESSION_SECRET"
	EnvAPIKey        = "DEEPGRAM_API_KEY"
	EnvLogLevel      = "LOG_LEVEL"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8081"
)

// ErrMissingAPIKey aborts startup; the gateway is useless without an
// upstream key.
var ErrMissingAPIKey = errors.New(EnvAPIKey + " required")

// Config holds process configuration, resolved once at startup
type Config struct {
	Host           string
	Port           string
	SessionSecret  []byte
	Mode           core.Mode
	DeepgramAPIKey string
	LogLevel       string
}

// Load reads configuration from the environment. The presence of an
// externally supplied SESSION_SECRET decides the enforcement mode; when
// absent, a random secret is generated and nonce gating is bypassed.
func Load() (*Config, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &Config{
		Host:           getenv(EnvHost, defaultHost),
		Port:           getenv(EnvPort, defaultPort),
		DeepgramAPIKey: apiKey,
		LogLevel:       getenv(EnvLogLevel, "info"),
	}

	if secret := os.Getenv(EnvSessionSecret); secret != "" {
		cfg.SessionSecret = []byte(secret)
		cfg.Mode = core.ModeEnforced
		return cfg, nil
	}

	generated, err := generateSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}
	cfg.SessionSecret = generated
	cfg.Mode = core.ModeBypassed

	return cfg, nil
}

// Addr returns the bind address for the HTTP server
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// generateSecret produces a 32-byte random signing key, hex-encoded.
// Generated secrets live for the process lifetime and are never
// persisted.
func generateSecret() ([]byte, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return []byte(hex.EncodeToString(buf)), nil
}
