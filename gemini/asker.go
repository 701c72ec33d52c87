package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/lumi"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// HealthTimeout bounds the model lookup done by CheckHealth.
const HealthTimeout = 3 * time.Second

// Ensure Asker implements lumi.Asker and lumi.HealthChecker at compile time.
var (
	_ lumi.Asker         = (*Asker)(nil)
	_ lumi.HealthChecker = (*Asker)(nil)
)

// Asker implements lumi.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker. An empty model selects DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model}
}

// Model returns the model name used for requests.
func (a *Asker) Model() string {
	return a.model
}

// Ask sends prompt as a single user turn and returns the reply text.
func (a *Asker) Ask(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", lumi.Errorf(lumi.EINVALID, "prompt required")
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", classifyError(err)
	}
	if result == nil {
		return "", lumi.Errorf(lumi.EMALFORMED, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", lumi.Errorf(lumi.EMALFORMED, "gemini reply has no text")
	}
	return text, nil
}

// CheckHealth looks up the configured model.
func (a *Asker) CheckHealth(ctx context.Context) lumi.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
	defer cancel()

	if _, err := a.client.Models.Get(ctx, a.model, nil); err != nil {
		var apiErr genai.APIError
		switch {
		case errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound:
			return lumi.HealthStatus{
				Status: lumi.HealthWarn,
				Detail: fmt.Sprintf("gemini is reachable but model %q was not found", a.model),
			}
		case errors.As(err, &apiErr):
			return lumi.HealthStatus{
				Status: lumi.HealthError,
				Detail: fmt.Sprintf("gemini status code: %d", apiErr.Code),
			}
		}
		return lumi.HealthStatus{
			Status: lumi.HealthNotFound,
			Detail: fmt.Sprintf("could not connect to gemini: %v", err),
		}
	}

	return lumi.HealthStatus{
		Status: lumi.HealthOK,
		Detail: fmt.Sprintf("gemini connected, model %q available", a.model),
	}
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}

func classifyError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return lumi.Errorf(lumi.EUPSTREAM, "gemini status code: %d, message=%s", apiErr.Code, apiErr.Message)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return lumi.Errorf(lumi.EUNAVAILABLE, "gemini unreachable: %v", urlErr.Err)
	}
	return lumi.Errorf(lumi.EUPSTREAM, "gemini request failed: %v", err)
}
