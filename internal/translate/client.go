// Package translate provides a rate-limited client for the public Google
// translate endpoint. Translation is best-effort: callers treat a failure
// as "no translation", never as a reason to drop a quotation.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andrei/quote-harvester/internal/types"
)

// DefaultEndpoint is the unauthenticated translate endpoint, the same one
// the deep-translator ecosystem uses.
const DefaultEndpoint = "https://translate.googleapis.com/translate_a/single"

// DefaultInterval is the mandatory minimum gap between translation calls.
const DefaultInterval = 500 * time.Millisecond

// DefaultTimeout is the per-call HTTP timeout.
const DefaultTimeout = 10 * time.Second

// Config configures the translation client.
type Config struct {
	Endpoint  string
	Interval  time.Duration
	Timeout   time.Duration
	UserAgent string
}

// Client translates quotation text between the supported language pair.
// All calls are serialized through a shared minimum-interval gate.
type Client struct {
	endpoint   string
	httpClient *http.Client
	gate       *Gate
	userAgent  string
}

// New creates a translation client. Zero-value config fields fall back to
// package defaults.
func New(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		gate:       NewGate(cfg.Interval),
		userAgent:  cfg.UserAgent,
	}
}

// Translate renders text from the source into the target language. The
// target must be the source's fixed counterpart; anything else returns
// ErrUnsupportedPair before any network activity.
func (c *Client) Translate(ctx context.Context, text string, source, target types.Language) (string, error) {
	counterpart, ok := source.Counterpart()
	if !ok || target != counterpart {
		return "", fmt.Errorf("%w: %s -> %s", ErrUnsupportedPair, source, target)
	}

	if err := c.gate.Wait(ctx); err != nil {
		return "", &Error{Message: "rate gate wait interrupted", Cause: err}
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", string(source))
	query.Set("tl", string(target))
	query.Set("dt", "t")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", &Error{Message: "failed to create request", Cause: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Message: "failed to read response", Cause: err}
	}

	translated, err := parseResponse(body)
	if err != nil {
		return "", err
	}
	if translated == "" {
		return "", &Error{Message: "empty translation"}
	}
	return translated, nil
}

// parseResponse extracts the translated text from the gtx response shape:
// a nested array whose first element lists segments, each segment holding
// the translated chunk in position zero.
func parseResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", &Error{Message: "malformed response", Cause: err}
	}
	if len(payload) == 0 {
		return "", &Error{Message: "malformed response: no segments"}
	}

	var segments []json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", &Error{Message: "malformed response: bad segment list", Cause: err}
	}

	var sb strings.Builder
	for _, seg := range segments {
		var parts []json.RawMessage
		if err := json.Unmarshal(seg, &parts); err != nil || len(parts) == 0 {
			continue
		}
		var chunk string
		if err := json.Unmarshal(parts[0], &chunk); err != nil {
			continue
		}
		sb.WriteString(chunk)
	}
	return strings.TrimSpace(sb.String()), nil
}
