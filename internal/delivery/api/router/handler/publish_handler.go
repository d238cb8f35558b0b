package handler

import (
	"log/slog"

	"multipost/internal/delivery/api/response"
	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/service"
	"multipost/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PublishHandlerParams holds dependencies for PublishHandler, injected by Fx.
type PublishHandlerParams struct {
	fx.In

	PublishUC usecase.PublishUsecase
	SEOUC     usecase.SEOUsecase
	Logger    *slog.Logger
}

// PublishHandler forwards uploads and caption requests.
type PublishHandler struct {
	publishUC usecase.PublishUsecase
	seoUC     usecase.SEOUsecase
	logger    *slog.Logger
}

// NewPublishHandler is the constructor for PublishHandler
func NewPublishHandler(params PublishHandlerParams) *PublishHandler {
	return &PublishHandler{
		publishUC: params.PublishUC,
		seoUC:     params.SEOUC,
		logger:    params.Logger,
	}
}

// PostVideoRequest mixes the legacy body fields with the canonical
// folder/account pair passed as query parameters.
type PostVideoRequest struct {
	FolderID       string `query:"folder_id"`
	TokenAccountID string `query:"token_account_id"`

	AccountID    string `json:"account_id"`
	Platform     string `json:"platform" validate:"required,platform"`
	VideoURL     string `json:"video_url" validate:"required"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PrivacyLevel string `json:"privacy_level"`
}

// GenerateSEORequest carries the free-form description of the video.
type GenerateSEORequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// PostVideo publishes a hosted video with the freshest credential.
func (h *PublishHandler) PostVideo(c echo.Context) error {
	var req PostVideoRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return domainerrors.ErrValidation.WithMessage("malformed query")
	}
	if err := bind(c, &req); err != nil {
		return err
	}

	platform, ok := entity.ParsePlatform(req.Platform)
	if !ok {
		return domainerrors.ErrUnsupportedPlatform.WithDetails(req.Platform)
	}

	ack, err := h.publishUC.Publish(c.Request().Context(), &usecase.PublishInput{
		Platform:          platform,
		LegacyAccountID:   req.AccountID,
		WorkspaceID:       req.FolderID,
		ExternalAccountID: req.TokenAccountID,
		Request: service.PublishRequest{
			Title:        req.Title,
			Description:  req.Description,
			VideoURL:     req.VideoURL,
			PrivacyLevel: req.PrivacyLevel,
		},
	})
	if err != nil {
		return err
	}

	return response.Success(c, ack)
}

// GenerateSEO proposes titles, captions and hashtags for a prompt.
func (h *PublishHandler) GenerateSEO(c echo.Context) error {
	var req GenerateSEORequest
	if err := bind(c, &req); err != nil {
		return err
	}

	suggestions, err := h.seoUC.GenerateSEO(c.Request().Context(), req.Prompt)
	if err != nil {
		return err
	}

	return response.Success(c, suggestions)
}
