// Package facebook links Facebook accounts for page publishing.
package facebook

import (
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
	"golang.org/x/oauth2"
)

const (
	defaultGraphVersion = "v18.0"
	defaultDialogHost   = "https://www.facebook.com"
	defaultGraphBaseURL = "https://graph.facebook.com"

	maxResponseBytes = 1 << 20
)

var scopes = []string{"pages_manage_posts", "pages_show_list"}

// Params defines the required parameters
type Params struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Codec      service.StateCodec
	HTTPClient *http.Client
}

type adapter struct {
	oauth      *oauth2.Config
	graphURL   string
	codec      service.StateCodec
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates the Facebook adapter.
func New(params Params) service.ProviderAdapter {
	cfg := params.Config.Providers.Facebook
	if cfg == nil {
		cfg = &config.FacebookConfig{}
	}

	version := cfg.GraphVersion
	if version == "" {
		version = defaultGraphVersion
	}
	graphBase := strings.TrimRight(cfg.GraphBaseURL, "/")
	if graphBase == "" {
		graphBase = defaultGraphBaseURL
	}
	dialogURL := cfg.DialogURL
	if dialogURL == "" {
		dialogURL = defaultDialogHost + "/" + version + "/dialog/oauth"
	}
	graphURL := graphBase + "/" + version

	return &adapter{
		oauth: &oauth2.Config{
			ClientID:     cfg.AppID,
			ClientSecret: cfg.AppSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:   dialogURL,
				TokenURL:  graphURL + "/oauth/access_token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
			RedirectURL: provider.CallbackURL(params.Config.App.PublicBaseURL, entity.PlatformFacebook),
			Scopes:      scopes,
		},
		graphURL:   graphURL,
		codec:      params.Codec,
		httpClient: params.HTTPClient,
		logger:     params.Logger,
	}
}

func (a *adapter) Platform() entity.Platform {
	return entity.PlatformFacebook
}

// BuildAuthorizationURL forces re-authentication so a different account
// can be linked into the same folder.
func (a *adapter) BuildAuthorizationURL(workspaceID uuid.UUID) (string, error) {
	if a.oauth.ClientID == "" {
		return "", domainerrors.ErrProviderNotConfigured.WithDetails(entity.PlatformFacebook.String())
	}

	state, err := a.codec.Encode(workspaceID.String(), entity.PlatformFacebook)
	if err != nil {
		return "", errors.Wrap(err, "encode state")
	}

	nonce, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "generate auth nonce")
	}

	return a.oauth.AuthCodeURL(state,
		oauth2.SetAuthURLParam("auth_type", "reauthenticate"),
		oauth2.SetAuthURLParam("auth_nonce", nonce.String()),
	), nil
}

type meResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ExchangeCode swaps the code and resolves the user behind the grant.
// Facebook tokens carry no refresh token.
func (a *adapter) ExchangeCode(ctx context.Context, code string) (*service.ExchangeResult, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)

	token, err := a.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, provider.FromOAuth2Error(entity.PlatformFacebook, err, provider.DecodeEnvelopeError, provider.DecodeFlatError)
	}

	result := &service.ExchangeResult{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    token.ExpiresIn,
		Nickname:     provider.FallbackNicknameFacebook,
	}

	me, err := a.lookupMe(ctx, token.AccessToken)
	if err != nil {
		a.logger.WarnContext(ctx, "Facebook identity lookup failed, using placeholder identity", slog.Any("error", err))

		return result, nil
	}

	result.ExternalAccountID = me.ID
	if me.Name != "" {
		result.Nickname = me.Name
	}

	return result, nil
}

func (a *adapter) lookupMe(ctx context.Context, accessToken string) (*meResponse, error) {
	query := url.Values{}
	query.Set("fields", "id,name")
	query.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.graphURL+"/me?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build identity request")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "identity request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read identity response")
	}
	if providerErr, ok := provider.DecodeError(body, provider.DecodeEnvelopeError); ok {
		return nil, providerErr.ToDomain(entity.PlatformFacebook, resp.StatusCode, nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("identity lookup returned %d", resp.StatusCode)
	}

	var me meResponse
	if err := json.Unmarshal(body, &me); err != nil {
		return nil, errors.Wrap(err, "decode identity response")
	}

	return &me, nil
}

// Publish is not offered for Facebook yet.
func (a *adapter) Publish(context.Context, string, *service.PublishRequest) (json.RawMessage, error) {
	return nil, domainerrors.ErrNotImplemented.WithDetails("publishing to facebook is not supported")
}
