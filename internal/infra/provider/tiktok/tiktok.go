// Package tiktok links TikTok accounts and initializes direct posts.
package tiktok

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"multipost/config"
	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/service"
	"multipost/internal/errors"
	"multipost/internal/infra/provider"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultAuthURL      = "https://www.tiktok.com/v2/auth/authorize/"
	defaultAPIBaseURL   = "https://open.tiktokapis.com"
	scopes              = "user.info.basic,video.upload,video.publish"
	defaultPrivacyLevel = "SELF_ONLY"

	maxResponseBytes = 1 << 20
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Codec      service.StateCodec
	HTTPClient *http.Client
}

type adapter struct {
	clientKey    string
	clientSecret string
	authURL      string
	apiBaseURL   string
	redirectURI  string
	codec        service.StateCodec
	httpClient   *http.Client
	logger       *slog.Logger
}

// New creates the TikTok adapter.
func New(params Params) service.ProviderAdapter {
	cfg := params.Config.Providers.TikTok
	if cfg == nil {
		cfg = &config.TikTokConfig{}
	}

	a := &adapter{
		clientKey:    cfg.ClientKey,
		clientSecret: cfg.ClientSecret,
		authURL:      cfg.AuthURL,
		apiBaseURL:   strings.TrimRight(cfg.APIBaseURL, "/"),
		redirectURI:  provider.CallbackURL(params.Config.App.PublicBaseURL, entity.PlatformTikTok),
		codec:        params.Codec,
		httpClient:   params.HTTPClient,
		logger:       params.Logger,
	}
	if a.authURL == "" {
		a.authURL = defaultAuthURL
	}
	if a.apiBaseURL == "" {
		a.apiBaseURL = defaultAPIBaseURL
	}

	return a
}

func (a *adapter) Platform() entity.Platform {
	return entity.PlatformTikTok
}

// BuildAuthorizationURL disables silent re-authorization so the user can
// pick a different account each time.
func (a *adapter) BuildAuthorizationURL(workspaceID uuid.UUID) (string, error) {
	if a.clientKey == "" {
		return "", domainerrors.ErrProviderNotConfigured.WithDetails(entity.PlatformTikTok.String())
	}

	state, err := a.codec.Encode(workspaceID.String(), entity.PlatformTikTok)
	if err != nil {
		return "", errors.Wrap(err, "encode state")
	}

	query := url.Values{}
	query.Set("client_key", a.clientKey)
	query.Set("scope", scopes)
	query.Set("response_type", "code")
	query.Set("redirect_uri", a.redirectURI)
	query.Set("state", state)
	query.Set("disable_auto_auth", "1")

	return a.authURL + "?" + query.Encode(), nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	OpenID       string `json:"open_id"`
	Scope        string `json:"scope"`
}

type userInfoResponse struct {
	Data struct {
		User struct {
			OpenID      string `json:"open_id"`
			DisplayName string `json:"display_name"`
		} `json:"user"`
	} `json:"data"`
}

// ExchangeCode posts the code to the v2 token endpoint. TikTok names the
// client "client_key", so the exchange is a plain form post.
func (a *adapter) ExchangeCode(ctx context.Context, code string) (*service.ExchangeResult, error) {
	form := url.Values{}
	form.Set("client_key", a.clientKey)
	form.Set("client_secret", a.clientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", a.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiBaseURL+"/v2/oauth/token/", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, status, err := a.do(req)
	if err != nil {
		return nil, err
	}
	if providerErr, ok := provider.DecodeError(body, provider.DecodeFlatError, provider.DecodeNestedDataError); ok {
		return nil, providerErr.ToDomain(entity.PlatformTikTok, status, nil)
	}
	if !isSuccess(status) {
		return nil, statusError(status)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, domainerrors.NewProviderExchangeError(entity.PlatformTikTok.String(), "malformed token response", status, err)
	}
	if token.AccessToken == "" {
		return nil, domainerrors.NewProviderExchangeError(entity.PlatformTikTok.String(), "token response has no access_token", status, nil)
	}

	result := &service.ExchangeResult{
		AccessToken:       token.AccessToken,
		RefreshToken:      token.RefreshToken,
		ExpiresIn:         token.ExpiresIn,
		ExternalAccountID: token.OpenID,
		Nickname:          provider.FallbackNicknameTikTok,
		Scope:             token.Scope,
	}

	displayName, err := a.lookupDisplayName(ctx, token.AccessToken)
	if err != nil {
		a.logger.WarnContext(ctx, "TikTok user info lookup failed, using placeholder nickname", slog.Any("error", err))

		return result, nil
	}
	if displayName != "" {
		result.Nickname = displayName
	}

	return result, nil
}

func (a *adapter) lookupDisplayName(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.apiBaseURL+"/v2/user/info/?fields=open_id,display_name", nil)
	if err != nil {
		return "", errors.Wrap(err, "build user info request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	body, status, err := a.do(req)
	if err != nil {
		return "", err
	}
	if providerErr, ok := provider.DecodeError(body, provider.DecodeEnvelopeError); ok {
		return "", providerErr.ToDomain(entity.PlatformTikTok, status, nil)
	}
	if !isSuccess(status) {
		return "", statusError(status)
	}

	var info userInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return "", errors.Wrap(err, "decode user info")
	}

	return info.Data.User.DisplayName, nil
}

type publishInitRequest struct {
	PostInfo   postInfo   `json:"post_info"`
	SourceInfo sourceInfo `json:"source_info"`
}

type postInfo struct {
	Title          string `json:"title"`
	PrivacyLevel   string `json:"privacy_level"`
	DisableDuet    bool   `json:"disable_duet"`
	DisableComment bool   `json:"disable_comment"`
}

type sourceInfo struct {
	Source   string `json:"source"`
	VideoURL string `json:"video_url"`
}

// Publish initializes a pull-from-URL direct post. The provider's response
// is returned untouched.
func (a *adapter) Publish(ctx context.Context, accessToken string, req *service.PublishRequest) (json.RawMessage, error) {
	if req == nil || strings.TrimSpace(req.VideoURL) == "" {
		return nil, domainerrors.ErrValidation.WithMessage("video_url is required")
	}

	privacy := strings.TrimSpace(req.PrivacyLevel)
	if privacy == "" {
		privacy = defaultPrivacyLevel
	}

	payload, err := json.Marshal(publishInitRequest{
		PostInfo: postInfo{
			Title:        req.Title,
			PrivacyLevel: privacy,
		},
		SourceInfo: sourceInfo{
			Source:   "PULL_FROM_URL",
			VideoURL: req.VideoURL,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal publish request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.apiBaseURL+"/v2/post/publish/video/init/", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "build publish request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)
	httpReq.Header.Set("Content-Type", "application/json; charset=UTF-8")

	body, status, err := a.do(httpReq)
	if err != nil {
		return nil, err
	}
	if providerErr, ok := provider.DecodeError(body, provider.DecodeEnvelopeError, provider.DecodeFlatError); ok {
		return nil, providerErr.ToDomain(entity.PlatformTikTok, status, nil)
	}
	if !isSuccess(status) {
		return nil, statusError(status)
	}
	if !json.Valid(body) {
		return nil, domainerrors.NewProviderExchangeError(entity.PlatformTikTok.String(), "malformed publish response", status, nil)
	}

	return json.RawMessage(body), nil
}

func (a *adapter) do(req *http.Request) ([]byte, int, error) {
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, 0, domainerrors.NewProviderExchangeError(entity.PlatformTikTok.String(), "request to TikTok failed", 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, domainerrors.NewProviderExchangeError(entity.PlatformTikTok.String(), "read TikTok response", resp.StatusCode, err)
	}

	return body, resp.StatusCode, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func statusError(status int) error {
	return provider.ProviderError{Shape: provider.ShapeFlat, Message: http.StatusText(status)}.
		ToDomain(entity.PlatformTikTok, status, nil)
}
