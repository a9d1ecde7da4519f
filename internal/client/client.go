package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"InvestorClassifier/internal/config"
	"InvestorClassifier/internal/model"
)

// maxErrorBody caps how much of an error response is kept.
const maxErrorBody = 4 << 10

// StatusError is returned for any non-2xx reply from the server.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Body)
}

// Retryable reports whether the request may succeed if sent again.
func (e *StatusError) Retryable() bool {
	return e.Code >= 500
}

// Client talks to a remote classifier over HTTP.
type Client struct {
	BaseURL    string
	HTTP       *http.Client
	MaxRetries int
	// Backoff is the first retry delay; it doubles on every attempt.
	Backoff time.Duration
	Log     *zap.Logger
}

// New creates a client with optional proxy support.
func New(cfg config.ClientConfig, log *zap.Logger) (*Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Proxy != "" {
		u, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, eris.Wrapf(err, "client: parse proxy %q", cfg.Proxy)
		}
		transport.Proxy = http.ProxyURL(u)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		BaseURL:    cfg.BaseURL,
		MaxRetries: cfg.MaxRetries,
		Backoff:    time.Second,
		Log:        log,
		HTTP: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}, nil
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/health", nil)
	if err != nil {
		return eris.Wrap(err, "client: build health request")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return eris.Wrapf(err, "client: health check %s", c.BaseURL)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return eris.Wrap(err, "client: health check")
	}
	return nil
}

// Classify posts p to /classify, retrying transport errors and 5xx
// replies with exponential backoff. Client errors are returned at once.
func (c *Client) Classify(ctx context.Context, p model.InvestorProfile) (*model.ClassificationResult, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, eris.Wrap(err, "client: marshal profile")
	}

	var lastErr error
	for i := 0; i <= c.MaxRetries; i++ {
		res, err := c.classifyOnce(ctx, body)
		if err == nil {
			return res, nil
		}
		lastErr = err

		var se *StatusError
		if errors.As(err, &se) && !se.Retryable() {
			return nil, eris.Wrap(err, "client: classify")
		}
		if ctx.Err() != nil {
			return nil, eris.Wrap(ctx.Err(), "client: classify")
		}
		if i == c.MaxRetries {
			break
		}

		backoff := c.Backoff << uint(i)
		c.Log.Warn("classify request failed, retrying",
			zap.Int("attempt", i+1),
			zap.Int("attempts", c.MaxRetries+1),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return nil, eris.Wrap(ctx.Err(), "client: classify")
		case <-time.After(backoff):
		}
	}
	return nil, eris.Wrapf(lastErr, "client: all %d attempts failed", c.MaxRetries+1)
}

func (c *Client) classifyOnce(ctx context.Context, body []byte) (*model.ClassificationResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "client: build classify request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "client: post classify")
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	var res model.ClassificationResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, eris.Wrap(err, "client: decode classification")
	}
	return &res, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{Code: resp.StatusCode, Body: string(bytes.TrimSpace(b))}
}
