// Package generative calls a hosted text model.
package generative

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"multipost/config"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/service"
	"multipost/internal/errors"

	"go.uber.org/fx"
	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-1.5-flash"
	platformName = "gemini"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type geminiGenerator struct {
	models *genai.Models
	model  string
	logger *slog.Logger
}

// unconfiguredGenerator answers every call with ErrProviderNotConfigured.
type unconfiguredGenerator struct{}

func (unconfiguredGenerator) GenerateText(context.Context, string, string) (string, error) {
	return "", domainerrors.ErrProviderNotConfigured.WithDetails(platformName)
}

// NewTextGenerator builds the Gemini client. Without an API key the
// generator still resolves so the rest of the service can start.
func NewTextGenerator(params Params) (service.TextGenerator, error) {
	cfg := params.Config.Generative
	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Info("Generative model not configured, SEO suggestions disabled")

		return unconfiguredGenerator{}, nil
	}

	client, err := genai.NewClient(params.Ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.Endpoint},
	})
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &geminiGenerator{
		models: client.Models,
		model:  strings.TrimPrefix(model, "models/"),
		logger: params.Logger,
	}, nil
}

// GenerateText makes a single generateContent call and joins the text
// parts of the first candidate.
func (g *geminiGenerator) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var cfg *genai.GenerateContentConfig
	if systemPrompt != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		}
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", exchangeError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		g.logger.WarnContext(ctx, "Generative model returned no candidates")

		return "", nil
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			text.WriteString(part.Text)
		}
	}

	return text.String(), nil
}

func exchangeError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return domainerrors.NewProviderExchangeError(platformName, apiMessage(apiErr), apiErr.Code, err)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return domainerrors.NewProviderExchangeError(platformName, apiMessage(*apiErrPtr), apiErrPtr.Code, err)
	}

	return domainerrors.NewProviderExchangeError(platformName, "text generation failed", 0, err)
}

func apiMessage(apiErr genai.APIError) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}

	return http.StatusText(apiErr.Code)
}
