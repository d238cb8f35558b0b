package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/service"
	"multipost/internal/usecase"

	"go.uber.org/fx"
)

const seoSystemPrompt = `Output ONLY raw JSON, no prose and no markdown. Structure: ` +
	`{"youtube":{"title":"","description":"","hashtags":""},` +
	`"tiktok":{"caption":"","hashtags":""},` +
	`"instagram":{"caption":"","hashtags":""}}. ` +
	`Hashtags are one space-separated string.`

// seoService implements the SEOUsecase interface.
type seoService struct {
	generator service.TextGenerator
	logger    *slog.Logger
}

// SEOServiceParams holds dependencies for SEOService, injected by Fx.
type SEOServiceParams struct {
	fx.In

	Generator service.TextGenerator
	Logger    *slog.Logger
}

// NewSEOService is the constructor for seoService.
func NewSEOService(params SEOServiceParams) usecase.SEOUsecase {
	return &seoService{
		generator: params.Generator,
		logger:    params.Logger,
	}
}

// GenerateSEO calls the model once. A failed call or unusable output
// degrades to empty fields.
func (srv *seoService) GenerateSEO(ctx context.Context, prompt string) (*usecase.SEOSuggestions, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, domainerrors.ErrValidation.WithMessage("prompt is required")
	}

	text, err := srv.generator.GenerateText(ctx, seoSystemPrompt, prompt)
	if err != nil {
		requestLogger(ctx, srv.logger).Warn("Text generation failed, returning empty suggestions", slog.Any("error", err))

		return &usecase.SEOSuggestions{}, nil
	}

	suggestions, err := parseSEO(text)
	if err != nil {
		requestLogger(ctx, srv.logger).Warn("Model output is not valid JSON, returning empty suggestions", slog.Any("error", err))

		return &usecase.SEOSuggestions{}, nil
	}

	return suggestions, nil
}

// looseString accepts a JSON string or an array of strings.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = looseString(single)

		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = looseString(strings.Join(many, " "))

	return nil
}

type seoPayload struct {
	YouTube struct {
		Title       looseString `json:"title"`
		Description looseString `json:"description"`
		Hashtags    looseString `json:"hashtags"`
	} `json:"youtube"`
	TikTok    captionPayload `json:"tiktok"`
	Instagram captionPayload `json:"instagram"`
}

type captionPayload struct {
	Caption  looseString `json:"caption"`
	Hashtags looseString `json:"hashtags"`
}

func parseSEO(text string) (*usecase.SEOSuggestions, error) {
	var payload seoPayload
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &payload); err != nil {
		return nil, domainerrors.ErrParse.WithDetails(err.Error())
	}

	return &usecase.SEOSuggestions{
		YouTube: usecase.YouTubeSEO{
			Title:       string(payload.YouTube.Title),
			Description: string(payload.YouTube.Description),
			Hashtags:    string(payload.YouTube.Hashtags),
		},
		TikTok: usecase.CaptionSEO{
			Caption:  string(payload.TikTok.Caption),
			Hashtags: string(payload.TikTok.Hashtags),
		},
		Instagram: usecase.CaptionSEO{
			Caption:  string(payload.Instagram.Caption),
			Hashtags: string(payload.Instagram.Hashtags),
		},
	}, nil
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if newline := strings.IndexByte(text, '\n'); newline >= 0 {
		text = text[newline+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}
