// Package slack posts messages to a Slack incoming webhook.
// Uses raw HTTP calls (no SDK); the webhook URL is the only credential.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts messages to a Slack webhook.
type Client interface {
	// PostMessage delivers msg. It returns ErrNotConfigured when no webhook
	// URL is set and a *StatusError when Slack answers with a non-2xx status.
	PostMessage(ctx context.Context, msg Message) error
}

// WebhookClient is the raw HTTP implementation of Client.
type WebhookClient struct {
	WebhookURL string
	httpClient *http.Client
}

// NewWebhookClient creates a WebhookClient. A zero timeout means the
// request is bounded only by its context.
func NewWebhookClient(webhookURL string, timeout time.Duration) *WebhookClient {
	return &WebhookClient{
		WebhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ErrNotConfigured is returned when the webhook URL is empty.
var ErrNotConfigured = errors.New("slack: webhook not configured")

// StatusError reports a non-2xx webhook response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Slack API error: %d", e.StatusCode)
}

// maxErrorBody caps how much of an error response is kept for logging.
const maxErrorBody = 512

// PostMessage sends msg as JSON to the webhook URL.
func (c *WebhookClient) PostMessage(ctx context.Context, msg Message) error {
	if c.WebhookURL == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("slack: encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("slack: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("slack: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
