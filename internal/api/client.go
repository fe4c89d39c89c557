// internal/api/client.go

// Package api talks to the homework status service. The adapter is
// transport-only: it issues exactly one GET per call, applies the
// status-code and payload checks, and hands the body upward undecoded
// beyond JSON well-formedness. Retrying is the caller's job.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tamzrod/homewatch/internal/apperr"
)

// bodySnippetLen bounds how much of a bad response body lands in an
// error string.
const bodySnippetLen = 200

// Config is minimal transport config.
type Config struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
}

// Client is a stateless HTTP adapter for the status service.
type Client struct {
	endpoint string
	token    string
	httpc    *http.Client
}

// New creates a client. The token is kept only for the Authorization
// header and is never reproduced in errors or logs.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("api client: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		httpc:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// HomeworkStatuses fetches status changes at or after the from watermark
// (unix seconds). On success it returns the raw JSON body; shape
// validation past well-formedness belongs to the review package.
func (c *Client) HomeworkStatuses(ctx context.Context, from int64) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, apperr.Wrap(err, "build request")
	}

	q := url.Values{}
	q.Set("from_date", strconv.FormatInt(from, 10))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s from_date=%d: %v",
			apperr.ErrNetwork, c.endpoint, from, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body from %s: %v",
			apperr.ErrNetwork, c.endpoint, err)
	}

	// 503 is called out separately for diagnosability; same retryable kind.
	if resp.StatusCode == http.StatusServiceUnavailable {
		return nil, fmt.Errorf("%w: service unavailable (503) from %s, from_date=%d, body: %s",
			apperr.ErrAPIStatus, c.endpoint, from, snippet(body))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d from %s, from_date=%d, body: %s",
			apperr.ErrAPIStatus, resp.StatusCode, c.endpoint, from, snippet(body))
	}

	if err := checkBusinessError(body, c.endpoint); err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}

// checkBusinessError rejects 200 responses that carry an embedded
// failure. The service signals errors through "code"/"error" keys while
// still answering 200.
func checkBusinessError(body []byte, endpoint string) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// Valid JSON, just not an object. Shape validation will
			// reject it with the precise schema error.
			return nil
		}
		return fmt.Errorf("%w: from %s: %v", apperr.ErrDecode, endpoint, err)
	}

	for _, key := range []string{"code", "error"} {
		if _, ok := probe[key]; !ok {
			continue
		}
		detail := errorDetail{Message: "No message"}
		_ = json.Unmarshal(body, &detail)
		return fmt.Errorf("%w: from %s: code=%s error=%s message=%q",
			apperr.ErrAPIBusiness, endpoint,
			compact(probe["code"]), compact(probe["error"]), detail.Message)
	}

	return nil
}

type errorDetail struct {
	Message string `json:"message"`
}

func compact(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "<absent>"
	}
	return string(raw)
}

func snippet(body []byte) string {
	if len(body) > bodySnippetLen {
		body = body[:bodySnippetLen]
	}
	return string(body)
}
