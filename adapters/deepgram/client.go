package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deepgram-starters/text-to-speech-go/core"
	"github.com/deepgram-starters/text-to-speech-go/ports"
)

const (
	defaultBaseURL = "https://api.deepgram.com"
	defaultTimeout = 30 * time.Second

	// MaxTextLength is the character limit the speak endpoint accepts
	// per request
	MaxTextLength = 2000

	// errCodeTextTooLong is the upstream error code for over-limit text
	errCodeTextTooLong = "TEXT_TOO_LONG"
)

// Client calls the Deepgram speak API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new speak client using the given API key
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

type speakRequest struct {
	Text string `json:"text"`
}

// apiError is the JSON error body the speak endpoint returns on non-200
type apiError struct {
	Code    string `json:"err_code"`
	Message string `json:"err_msg"`
}

// Synthesize converts text to audio bytes via the speak endpoint.
// Length violations are reported as core.ErrTextTooLong, checked locally
// against the documented limit and also mapped from the upstream error
// code; any other failure wraps core.ErrSynthesisFailed.
func (c *Client) Synthesize(ctx context.Context, text, model string) (*core.Speech, error) {
	if len([]rune(text)) > MaxTextLength {
		return nil, core.ErrTextTooLong
	}

	payload, err := json.Marshal(speakRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSynthesisFailed, err)
	}

	// Fall back to a default timeout when the caller set no deadline
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	endpoint := c.baseURL + "/v1/speak?model=" + url.QueryEscape(model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSynthesisFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSynthesisFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && resp.StatusCode == http.StatusBadRequest && apiErr.Code == errCodeTextTooLong {
			return nil, core.ErrTextTooLong
		}

		return nil, fmt.Errorf("%w: upstream status %d: %s", core.ErrSynthesisFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrSynthesisFailed, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}

	return &core.Speech{
		Audio:       audio,
		ContentType: contentType,
	}, nil
}

var _ ports.Synthesizer = (*Client)(nil)
