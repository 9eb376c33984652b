package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deepgram-starters/text-to-speech-go/core"
	"github.com/deepgram-starters/text-to-speech-go/metadata"
	"github.com/deepgram-starters/text-to-speech-go/service"
)

// Handlers contains the HTTP handlers of the gateway
type Handlers struct {
	sessions     *service.SessionService
	speech       *service.SpeechService
	indexHTML    string
	metadataPath string
}

// NewHandlers creates the gateway handlers. indexHTML is the raw entry
// page template, empty when no frontend has been built.
func NewHandlers(sessions *service.SessionService, speech *service.SpeechService, indexHTML, metadataPath string) *Handlers {
	return &Handlers{
		sessions:     sessions,
		speech:       speech,
		indexHTML:    indexHTML,
		metadataPath: metadataPath,
	}
}

// Index serves the entry page with a freshly generated nonce injected
// as page metadata
func (h *Handlers) Index(c *gin.Context) {
	if h.indexHTML == "" {
		abortWithError(c, http.StatusNotFound, TypeNotFound, CodeNotFound,
			"Frontend not built. Run make build first.")
		return
	}

	nonce, err := h.sessions.IssueNonce()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, TypeAuthentication, CodeInvalidNonce,
			"Failed to generate session nonce")
		return
	}

	html := strings.Replace(h.indexHTML, "</head>",
		`<meta name="session-nonce" content="`+nonce+`">`+"\n</head>", 1)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Session exchanges a page nonce for a signed session token
func (h *Handlers) Session(c *gin.Context) {
	nonce := c.GetHeader("X-Session-Nonce")

	token, err := h.sessions.IssueToken(nonce)
	if err != nil {
		if errors.Is(err, core.ErrInvalidNonce) {
			abortWithError(c, http.StatusForbidden, TypeAuthentication, CodeInvalidNonce,
				"Valid session nonce required. Please refresh the page.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, TypeSynthesis, CodeSynthesisFailed,
			"Failed to create session token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// TTSRequest is the synthesis request body
type TTSRequest struct {
	Text string `json:"text"`
}

// TextToSpeech converts text to audio via the upstream provider
func (h *Handlers) TextToSpeech(c *gin.Context) {
	var req TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, TypeValidation, CodeInvalidInput,
			"Invalid request")
		return
	}

	model := c.Query("model")

	speech, err := h.speech.Synthesize(c.Request.Context(), req.Text, model)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrEmptyText):
			abortWithError(c, http.StatusBadRequest, TypeValidation, CodeInvalidInput,
				"Text required")
		case errors.Is(err, core.ErrTextTooLong):
			abortWithError(c, http.StatusBadRequest, TypeValidation, CodeTextTooLong,
				"Text exceeds maximum allowed length")
		default:
			abortWithError(c, http.StatusInternalServerError, TypeSynthesis, CodeSynthesisFailed,
				"TTS synthesis failed")
		}
		return
	}

	c.Data(http.StatusOK, speech.ContentType, speech.Audio)
}

// Metadata serves the [meta] table of deepgram.toml
func (h *Handlers) Metadata(c *gin.Context) {
	meta, err := metadata.Load(h.metadataPath)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, TypeMetadata, CodeMetadataReadFailed,
			"Metadata read failed")
		return
	}

	c.JSON(http.StatusOK, meta)
}
