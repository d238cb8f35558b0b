package facebook

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"multipost/config"
	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/service"
	mockSvc "multipost/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type facebookFixtures struct {
	adapter service.ProviderAdapter
	codec   *mockSvc.MockStateCodec
}

func createTestAdapter(t *testing.T, mux *http.ServeMux, appID string) facebookFixtures {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	codec := mockSvc.NewMockStateCodec(t)
	cfg := &config.Config{
		App: config.AppConfig{PublicBaseURL: "https://app.example"},
		Providers: config.ProvidersConfig{
			Facebook: &config.FacebookConfig{
				AppID:        appID,
				AppSecret:    "app-secret",
				GraphVersion: "v18.0",
				GraphBaseURL: server.URL,
			},
		},
	}

	return facebookFixtures{
		adapter: New(Params{
			Config:     cfg,
			Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
			Codec:      codec,
			HTTPClient: server.Client(),
		}),
		codec: codec,
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestAdapter_BuildAuthorizationURL(t *testing.T) {
	fx := createTestAdapter(t, http.NewServeMux(), "app-id")
	workspaceID := uuid.New()

	fx.codec.EXPECT().Encode(workspaceID.String(), entity.PlatformFacebook).Return("fb-state", nil)

	raw, err := fx.adapter.BuildAuthorizationURL(workspaceID)
	require.NoError(t, err)

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	query := parsed.Query()

	assert.Equal(t, "www.facebook.com", parsed.Host)
	assert.Equal(t, "/v18.0/dialog/oauth", parsed.Path)
	assert.Equal(t, "app-id", query.Get("client_id"))
	assert.Equal(t, "https://app.example/api/auth/callback/facebook", query.Get("redirect_uri"))
	assert.Equal(t, "fb-state", query.Get("state"))
	assert.Equal(t, "reauthenticate", query.Get("auth_type"))
	assert.NotEmpty(t, query.Get("auth_nonce"))
	assert.Equal(t, "pages_manage_posts pages_show_list", query.Get("scope"))
}

func TestAdapter_BuildAuthorizationURL_NotConfigured(t *testing.T) {
	fx := createTestAdapter(t, http.NewServeMux(), "")

	_, err := fx.adapter.BuildAuthorizationURL(uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrProviderNotConfigured))
}

func TestAdapter_ExchangeCode_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v18.0/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "app-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "app-secret", r.PostForm.Get("client_secret"))
		writeJSON(w, http.StatusOK, `{"access_token":"fb-token","token_type":"bearer","expires_in":5183944}`)
	})
	mux.HandleFunc("/v18.0/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fb-token", r.URL.Query().Get("access_token"))
		writeJSON(w, http.StatusOK, `{"id":"10001","name":"Store Page Admin"}`)
	})
	fx := createTestAdapter(t, mux, "app-id")

	result, err := fx.adapter.ExchangeCode(context.Background(), "fb-code")

	require.NoError(t, err)
	assert.Equal(t, "fb-token", result.AccessToken)
	assert.Empty(t, result.RefreshToken)
	assert.Equal(t, int64(5183944), result.ExpiresIn)
	assert.Equal(t, "10001", result.ExternalAccountID)
	assert.Equal(t, "Store Page Admin", result.Nickname)
}

func TestAdapter_ExchangeCode_EnvelopeError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v18.0/oauth/access_token", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":{"message":"This authorization code has been used.","type":"OAuthException","code":100}}`)
	})
	fx := createTestAdapter(t, mux, "app-id")

	_, err := fx.adapter.ExchangeCode(context.Background(), "fb-code")

	var exchangeErr *domainerrors.ProviderExchangeError
	require.True(t, errors.As(err, &exchangeErr))
	assert.Equal(t, "This authorization code has been used.", exchangeErr.Message())
	assert.Equal(t, http.StatusBadRequest, exchangeErr.StatusCode())
}

func TestAdapter_ExchangeCode_IdentityFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v18.0/oauth/access_token", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"access_token":"fb-token","token_type":"bearer"}`)
	})
	mux.HandleFunc("/v18.0/me", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":{"message":"Invalid OAuth access token.","code":190}}`)
	})
	fx := createTestAdapter(t, mux, "app-id")

	result, err := fx.adapter.ExchangeCode(context.Background(), "fb-code")

	require.NoError(t, err)
	assert.Empty(t, result.ExternalAccountID)
	assert.Equal(t, "Linked Facebook", result.Nickname)
}

func TestAdapter_Publish_NotImplemented(t *testing.T) {
	fx := createTestAdapter(t, http.NewServeMux(), "app-id")

	_, err := fx.adapter.Publish(context.Background(), "fb-token", &service.PublishRequest{VideoURL: "https://cdn.example/v.mp4"})

	assert.True(t, errors.Is(err, domainerrors.ErrNotImplemented))
}
