// Package ollama implements lumi.Asker and lumi.HealthChecker on top of a
// local Ollama server.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/lumi"
	"github.com/ollama/ollama/api"
)

// Defaults match a stock local Ollama install.
const (
	DefaultBaseURL = "http://127.0.0.1:11434"
	DefaultModel   = "gemma:2b"
	DefaultTimeout = 60 * time.Second

	// HealthTimeout bounds the model listing done by CheckHealth.
	HealthTimeout = 3 * time.Second
)

var (
	_ lumi.Asker         = (*Client)(nil)
	_ lumi.HealthChecker = (*Client)(nil)
)

// Client talks to the Ollama chat and tags endpoints.
type Client struct {
	client  *api.Client
	model   string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithModel sets the model used for chat requests.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithTimeout sets the HTTP timeout for a single request.
// Defaults to DefaultTimeout (60s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a Client for the server at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama URL %q: %w", baseURL, err)
	}

	c := &Client{
		model:   DefaultModel,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = api.NewClient(u, &http.Client{Timeout: c.timeout})

	return c, nil
}

// Model returns the model name used for chat requests.
func (c *Client) Model() string {
	return c.model
}

// Ask sends prompt as a single non-streaming user message.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", lumi.Errorf(lumi.EINVALID, "prompt required")
	}

	stream := false
	req := &api.ChatRequest{
		Model:    c.model,
		Messages: []api.Message{{Role: "user", Content: prompt}},
		Stream:   &stream,
	}

	var reply strings.Builder
	if err := c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	}); err != nil {
		return "", classifyError(err)
	}

	if reply.Len() == 0 {
		return "", lumi.Errorf(lumi.EMALFORMED, "ollama reply has no content")
	}
	return reply.String(), nil
}

// CheckHealth lists the installed models and reports whether the configured
// model is among them.
func (c *Client) CheckHealth(ctx context.Context) lumi.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
	defer cancel()

	resp, err := c.client.List(ctx)
	if err != nil {
		var statusErr api.StatusError
		if errors.As(err, &statusErr) {
			return lumi.HealthStatus{
				Status: lumi.HealthError,
				Detail: fmt.Sprintf("ollama status code: %d", statusErr.StatusCode),
			}
		}
		return lumi.HealthStatus{
			Status: lumi.HealthNotFound,
			Detail: fmt.Sprintf("could not connect to ollama: %v", err),
		}
	}

	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		if m.Name == c.model || m.Model == c.model {
			return lumi.HealthStatus{
				Status: lumi.HealthOK,
				Detail: fmt.Sprintf("ollama connected, model %q available", c.model),
			}
		}
		names = append(names, m.Name)
	}

	return lumi.HealthStatus{
		Status: lumi.HealthWarn,
		Detail: fmt.Sprintf("ollama is running but model %q was not found; available models: %s",
			c.model, strings.Join(names, ", ")),
	}
}

// classifyError separates transport failures from failures reported by the server.
func classifyError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return lumi.Errorf(lumi.EUNAVAILABLE, "ollama unreachable: %v", urlErr.Err)
	}
	var statusErr api.StatusError
	if errors.As(err, &statusErr) {
		return lumi.Errorf(lumi.EUPSTREAM, "ollama status code: %d, body=%s", statusErr.StatusCode, statusErr.ErrorMessage)
	}
	return lumi.Errorf(lumi.EUPSTREAM, "ollama request failed: %v", err)
}
