// internal/notify/telegram/client.go

// Package telegram is a minimal Bot API adapter: one sendMessage call,
// one POST. Stateless; credentials are fixed at construction.
package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// Config is minimal transport config.
type Config struct {
	Token   string
	Timeout time.Duration

	// BaseURL overrides the Bot API host. Tests only.
	BaseURL string
}

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("telegram client: token required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL: base,
		token:   cfg.Token,
		httpc:   &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// apiResult is the envelope every Bot API method answers with.
type apiResult struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage delivers text to a chat. A non-200 answer or ok=false in
// the envelope is a delivery failure.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	form := url.Values{}
	form.Set("chat_id", chatID)
	form.Set("text", text)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return fmt.Errorf("telegram: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: sendMessage: %w", err)
	}
	defer resp.Body.Close()

	var result apiResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("telegram: decode sendMessage response (http %d): %w",
			resp.StatusCode, err)
	}
	if !result.OK {
		return fmt.Errorf("telegram: sendMessage rejected (http %d): %s",
			resp.StatusCode, result.Description)
	}

	return nil
}
