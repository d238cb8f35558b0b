// Package youtube links YouTube channels through Google OAuth and uploads videos.
package youtube

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"multipost/config"
	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/service"
	"multipost/internal/errors"
	"multipost/internal/infra/provider"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
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
	oauth        *oauth2.Config
	apiEndpoint  string
	codec        service.StateCodec
	httpClient   *http.Client
	sourceClient *http.Client
	logger       *slog.Logger
}

// New creates the YouTube adapter.
func New(params Params) service.ProviderAdapter {
	cfg := params.Config.Providers.YouTube
	if cfg == nil {
		cfg = &config.YouTubeConfig{}
	}

	endpoint := google.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	return &adapter{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     endpoint,
			RedirectURL:  provider.CallbackURL(params.Config.App.PublicBaseURL, entity.PlatformYouTube),
			Scopes:       []string{ytapi.YoutubeUploadScope, ytapi.YoutubeReadonlyScope},
		},
		apiEndpoint:  cfg.APIEndpoint,
		codec:        params.Codec,
		httpClient:   params.HTTPClient,
		sourceClient: provider.NewSourceClient(),
		logger:       params.Logger,
	}
}

func (a *adapter) Platform() entity.Platform {
	return entity.PlatformYouTube
}

// BuildAuthorizationURL requests offline access and forces the account chooser.
func (a *adapter) BuildAuthorizationURL(workspaceID uuid.UUID) (string, error) {
	if a.oauth.ClientID == "" {
		return "", domainerrors.ErrProviderNotConfigured.WithDetails(entity.PlatformYouTube.String())
	}

	state, err := a.codec.Encode(workspaceID.String(), entity.PlatformYouTube)
	if err != nil {
		return "", errors.Wrap(err, "encode state")
	}

	return a.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "select_account consent"),
		oauth2.SetAuthURLParam("include_granted_scopes", "true"),
	), nil
}

// ExchangeCode swaps the code and resolves the channel behind the grant.
func (a *adapter) ExchangeCode(ctx context.Context, code string) (*service.ExchangeResult, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)

	token, err := a.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, provider.FromOAuth2Error(entity.PlatformYouTube, err, provider.DecodeFlatError)
	}

	result := &service.ExchangeResult{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    expiresIn(token),
		Nickname:     provider.FallbackNicknameYouTube,
	}
	if scope, ok := token.Extra("scope").(string); ok {
		result.Scope = scope
	}

	channel, err := a.lookupChannel(ctx, token.AccessToken)
	if err != nil {
		a.logger.WarnContext(ctx, "YouTube channel lookup failed, using placeholder identity", slog.Any("error", err))

		return result, nil
	}

	result.ExternalAccountID = channel.Id
	if channel.Snippet != nil && channel.Snippet.Title != "" {
		result.Nickname = channel.Snippet.Title
	}

	return result, nil
}

// Publish streams the source video into videos.insert.
func (a *adapter) Publish(ctx context.Context, accessToken string, req *service.PublishRequest) (json.RawMessage, error) {
	if req == nil || strings.TrimSpace(req.VideoURL) == "" {
		return nil, domainerrors.ErrValidation.WithMessage("video_url is required")
	}

	sourceURL, err := provider.ParseSourceURL(req.VideoURL)
	if err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)

	source, err := a.openSource(ctx, sourceURL.String())
	if err != nil {
		return nil, err
	}
	defer source.Body.Close()

	svc, err := a.newService(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	video := &ytapi.Video{
		Snippet: &ytapi.VideoSnippet{
			Title:       req.Title,
			Description: req.Description,
		},
		Status: &ytapi.VideoStatus{
			PrivacyStatus: privacyStatus(req.PrivacyLevel),
		},
	}

	created, err := svc.Videos.Insert([]string{"snippet", "status"}, video).
		Media(source.Body).
		Context(ctx).
		Do()
	if err != nil {
		return nil, apiError(err)
	}

	raw, err := json.Marshal(created)
	if err != nil {
		return nil, errors.Wrap(err, "marshal upload response")
	}

	return raw, nil
}

func (a *adapter) lookupChannel(ctx context.Context, accessToken string) (*ytapi.Channel, error) {
	svc, err := a.newService(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Channels.List([]string{"snippet"}).Mine(true).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "channels.list")
	}
	if len(resp.Items) == 0 {
		return nil, errors.New("no channel on this account")
	}

	return resp.Items[0], nil
}

func (a *adapter) newService(ctx context.Context, accessToken string) (*ytapi.Service, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if a.apiEndpoint != "" {
		opts = append(opts, option.WithEndpoint(a.apiEndpoint))
	}

	svc, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create youtube service")
	}

	return svc, nil
}

// openSource fetches caller-supplied media through the restricted source client.
func (a *adapter) openSource(ctx context.Context, videoURL string) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, videoURL, nil)
	if err != nil {
		return nil, domainerrors.ErrValidation.WithMessage("video_url is not a valid URL")
	}

	resp, err := a.sourceClient.Do(httpReq)
	if errors.Is(err, provider.ErrBlockedAddress) {
		return nil, domainerrors.ErrValidation.WithMessage("video_url must point to a public host")
	}
	if err != nil {
		return nil, domainerrors.NewProviderExchangeError(entity.PlatformYouTube.String(), "could not fetch source video", 0, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()

		return nil, domainerrors.NewProviderExchangeError(entity.PlatformYouTube.String(), "could not fetch source video", resp.StatusCode, nil)
	}

	return resp, nil
}

func apiError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		message := gerr.Message
		if message == "" {
			message = http.StatusText(gerr.Code)
		}

		return domainerrors.NewProviderExchangeError(entity.PlatformYouTube.String(), message, gerr.Code, err)
	}

	return domainerrors.NewProviderExchangeError(entity.PlatformYouTube.String(), "upload failed", 0, err)
}

func expiresIn(token *oauth2.Token) int64 {
	if token.ExpiresIn > 0 {
		return token.ExpiresIn
	}
	if token.Expiry.IsZero() {
		return 0
	}

	return int64(time.Until(token.Expiry).Round(time.Second).Seconds())
}

// privacyStatus maps TikTok-style privacy levels onto YouTube's.
func privacyStatus(level string) string {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "PUBLIC", "PUBLIC_TO_EVERYONE":
		return "public"
	case "UNLISTED", "MUTUAL_FOLLOW_FRIENDS", "FOLLOWER_OF_CREATOR":
		return "unlisted"
	default:
		return "private"
	}
}
