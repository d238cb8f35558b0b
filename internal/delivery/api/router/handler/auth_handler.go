package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"multipost/config"
	deliverycontext "multipost/internal/delivery/context"
	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var linkFailedPage = template.Must(template.New("link-failed").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Account linking failed</title>
</head>
<body>
<h1>Account linking failed</h1>
<p>{{.Message}}</p>
{{if .BackURL}}<p><a href="{{.BackURL}}">Back to Multipost</a></p>{{end}}
</body>
</html>
`))

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	OAuthUC usecase.OAuthUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// AuthHandler drives the browser through the provider consent screens.
type AuthHandler struct {
	oauthUC usecase.OAuthUsecase
	appURL  string
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		oauthUC: params.OAuthUC,
		appURL:  params.Config.App.PublicBaseURL,
		logger:  params.Logger,
	}
}

// AuthorizeRequest starts linking an account into a folder.
type AuthorizeRequest struct {
	Platform string `param:"platform"`
	FolderID string `query:"folder_id"`
	UserID   string `query:"user_id"`
	Owner    string `query:"owner"`
}

// CallbackRequest is what the provider appends to the redirect URI.
type CallbackRequest struct {
	Platform         string `param:"platform"`
	Code             string `query:"code"`
	State            string `query:"state"`
	Error            string `query:"error"`
	ErrorDescription string `query:"error_description"`
}

// Authorize redirects to the provider consent screen.
func (h *AuthHandler) Authorize(c echo.Context) error {
	var req AuthorizeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	platform, ok := entity.ParsePlatform(req.Platform)
	if !ok {
		return domainerrors.ErrUnsupportedPlatform.WithDetails(req.Platform)
	}

	authURL, err := h.oauthUC.BeginLink(c.Request().Context(), platform, req.FolderID, owner(req.UserID, req.Owner))
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, authURL)
}

// Callback finishes the link and sends the browser back to the folder page.
// Failures render a page instead of JSON since a browser is on the other end.
func (h *AuthHandler) Callback(c echo.Context) error {
	var req CallbackRequest
	if err := bind(c, &req); err != nil {
		return h.renderFailure(c, err)
	}

	platform, ok := entity.ParsePlatform(req.Platform)
	if !ok {
		return h.renderFailure(c, domainerrors.ErrUnsupportedPlatform.WithDetails(req.Platform))
	}

	redirect, err := h.oauthUC.CompleteLink(c.Request().Context(), platform, &usecase.CallbackParams{
		Code:             req.Code,
		State:            req.State,
		Error:            req.Error,
		ErrorDescription: req.ErrorDescription,
	})
	if err != nil {
		return h.renderFailure(c, err)
	}

	return c.Redirect(http.StatusFound, redirect)
}

func (h *AuthHandler) renderFailure(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Something went wrong while linking your account."

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPCode()
		message = appErr.Message()
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Warn("Account link failed",
		slog.Int("status", status),
		slog.Any("error", err),
	)

	var page strings.Builder
	if execErr := linkFailedPage.Execute(&page, map[string]string{
		"Message": message,
		"BackURL": h.appURL,
	}); execErr != nil {
		return errors.WithStack(execErr)
	}

	return c.HTML(status, page.String())
}
