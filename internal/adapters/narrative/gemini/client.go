// Package gemini generates report narratives with the Gemini generateContent API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/club_manager_app/internal/apperrors"
	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/middleware"
	"google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// EmptyResponseText is returned when the model answers without any text.
const EmptyResponseText = "Không thể tạo báo cáo lúc này."

const (
	DefaultModel    = "gemini-3-flash-preview"
	DefaultEndpoint = "https://generativelanguage.googleapis.com/"
	DefaultTimeout  = 60 * time.Second
)

// Config configures the Gemini client.
type Config struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
}

// Client implements NarrativeGenerator. A Client without an API key is valid;
// every call then fails with ErrNarrativeUnavailable.
type Client struct {
	svc    *generativelanguage.Service
	apiKey string
	model  string
}

var _ portssvc.NarrativeGenerator = (*Client)(nil)

// NewClient builds the generativelanguage service. The key is sent as the
// "key" query parameter on each call.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	svc, err := generativelanguage.NewService(ctx,
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		option.WithEndpoint(cfg.Endpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generativelanguage service: %w", err)
	}
	return &Client{svc: svc, apiKey: cfg.APIKey, model: cfg.Model}, nil
}

func (c *Client) GenerateNarrative(ctx context.Context, input domain.NarrativeInput) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: GEMINI_API_KEY is not configured", apperrors.ErrNarrativeUnavailable)
	}

	prompt, err := BuildPrompt(input)
	if err != nil {
		return "", fmt.Errorf("failed to build narrative prompt: %w", err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	start := time.Now()

	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{{
			Role:  "user",
			Parts: []*generativelanguage.Part{{Text: prompt}},
		}},
	}
	resp, err := c.svc.Models.GenerateContent("models/"+c.model, req).
		Context(ctx).
		Do(googleapi.QueryParameter("key", c.apiKey))
	if err != nil {
		logger.Error("Gemini request failed", slog.String("model", c.model), slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %s", apperrors.ErrNarrativeUnavailable, err.Error())
	}

	text := responseText(resp)
	logger.Info("Gemini narrative generated",
		slog.String("model", c.model),
		slog.Int("chars", len(text)),
		slog.Duration("elapsed", time.Since(start)))
	if text == "" {
		return EmptyResponseText, nil
	}
	return text, nil
}

func responseText(resp *generativelanguage.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
		// only the first candidate is used
		break
	}
	return strings.TrimSpace(b.String())
}
