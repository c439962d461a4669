package direct

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"direct-ads/internal/config/configs"
	"direct-ads/internal/core/domain"
)

// Client implements port.DirectGateway over HTTP. It talks to the modern
// JSON API (service endpoints under APIURL) and to the legacy live API
// (LegacyURL). The access token is pulled from the token source on every
// call; Client never stores it.
type Client struct {
	apiURL    string
	legacyURL string
	locale    string

	tokens  oauth2.TokenSource
	http    *http.Client
	logger  *slog.Logger
	metrics *Metrics
}

// Options configures a Client. Zero values fall back to configuration
// defaults: http.DefaultClient-like behaviour without timeout, a discarded
// logger and unregistered metrics.
type Options struct {
	Tokens     oauth2.TokenSource
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *Metrics
}

// NewClient creates a gateway from configuration. When opts.Tokens is nil
// the configured static token is used.
func NewClient(cfg configs.Direct, opts Options) (*Client, error) {
	if strings.TrimSpace(cfg.APIURL) == "" {
		return nil, errors.New("direct: api url is required")
	}
	if strings.TrimSpace(cfg.LegacyURL) == "" {
		return nil, errors.New("direct: legacy url is required")
	}
	tokens := opts.Tokens
	if tokens == nil {
		tokens = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.OAuthToken})
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	locale := cfg.Locale
	if locale == "" {
		locale = "ru"
	}
	return &Client{
		apiURL:    strings.TrimRight(cfg.APIURL, "/") + "/",
		legacyURL: cfg.LegacyURL,
		locale:    locale,
		tokens:    tokens,
		http:      hc,
		logger:    logger,
		metrics:   metrics,
	}, nil
}

func (c *Client) accessToken() (string, error) {
	tok, err := c.tokens.Token()
	if err != nil {
		return "", fmt.Errorf("token source: %w", err)
	}
	return tok.AccessToken, nil
}

// post sends body as JSON and decodes the JSON reply into out. Non-2xx
// replies are still decoded because the platform reports logical errors
// inside the body. statusErr is set for a decoded non-2xx reply and callers
// return it when the body carries no platform error.
func (c *Client) post(ctx context.Context, url string, headers http.Header, body, out any) (statusErr, err error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr = fmt.Errorf("http status %d: %s", resp.StatusCode, truncate(raw, 512))
	}
	if err = json.Unmarshal(raw, out); err != nil {
		if statusErr != nil {
			return nil, statusErr
		}
		return nil, fmt.Errorf("parse response: %w", err)
	}
	return statusErr, nil
}

func (c *Client) observe(api, method string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.metrics.calls.WithLabelValues(api, method, outcome).Inc()
	c.metrics.duration.WithLabelValues(api, method).Observe(time.Since(start).Seconds())
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

func transportError(method string, err error) error {
	return &domain.RemoteError{Method: method, Err: err}
}
