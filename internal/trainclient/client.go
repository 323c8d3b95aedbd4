package trainclient

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

// ErrUnreachable marks connection-level failures (refused, DNS, timeout).
// The loader aborts its run on this error class, since every subsequent
// submission would fail identically. HTTP-level rejections do not wrap it.
var ErrUnreachable = errors.New("query service unreachable")

// Client is a client for the query service's training and query endpoints.
// The service is treated as an opaque remote capability: response bodies
// beyond the status envelope are not interpreted.
type Client struct {
	BaseURL string
	client  *http.Client
}

// NewClient creates a new training client. timeout bounds every request so a
// slow remote service cannot hang a run indefinitely.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// statusResponse is the envelope every endpoint returns.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health checks that the service is reachable. Any HTTP response counts as
// reachable; only connection-level failures return an error.
func (c *Client) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/health", c.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// TrainAuto triggers auto-training from the live database schema.
func (c *Client) TrainAuto(ctx context.Context) error {
	return c.post(ctx, "/train/auto", nil)
}

// TrainDDL submits one DDL statement block.
func (c *Client) TrainDDL(ctx context.Context, ddl string) error {
	return c.post(ctx, "/train/ddl", map[string]string{"ddl": ddl})
}

// TrainDocumentation submits one documentation block.
func (c *Client) TrainDocumentation(ctx context.Context, documentation string) error {
	return c.post(ctx, "/train/documentation", map[string]string{"documentation": documentation})
}

// TrainQuestionSQL submits one question/SQL example pair.
func (c *Client) TrainQuestionSQL(ctx context.Context, question, sql string) error {
	return c.post(ctx, "/train/question-sql", map[string]string{"question": question, "sql": sql})
}

// post sends one training submission and interprets the status envelope.
func (c *Client) post(ctx context.Context, path string, payload any) error {
	url := c.BaseURL + path

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if status.Status != "success" {
		return fmt.Errorf("submission rejected: %s", status.Message)
	}
	return nil
}
