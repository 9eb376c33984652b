package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deepgram-starters/text-to-speech-go/core"
	"github.com/deepgram-starters/text-to-speech-go/service"
)

// AuthMiddleware creates middleware that validates bearer session tokens
func AuthMiddleware(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")

		if !strings.HasPrefix(auth, "Bearer ") {
			abortWithError(c, http.StatusUnauthorized, TypeAuthentication, CodeMissingToken,
				"Authorization header with Bearer token is required")
			return
		}

		token := strings.TrimPrefix(auth, "Bearer ")

		if _, err := sessions.ValidateToken(token); err != nil {
			switch {
			case errors.Is(err, core.ErrMissingToken):
				abortWithError(c, http.StatusUnauthorized, TypeAuthentication, CodeMissingToken,
					"Authorization header with Bearer token is required")
			case errors.Is(err, core.ErrTokenExpired):
				abortWithError(c, http.StatusUnauthorized, TypeAuthentication, CodeInvalidToken,
					"Session expired, please refresh the page")
			default:
				abortWithError(c, http.StatusUnauthorized, TypeAuthentication, CodeInvalidToken,
					"Invalid session token")
			}
			return
		}

		c.Next()
	}
}

// RequestLogger logs each request with a correlation ID
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.New().String()
		c.Header("X-Request-ID", requestID)

		c.Next()

		log.Info("request",
			"id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
