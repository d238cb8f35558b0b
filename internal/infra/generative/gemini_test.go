package generative

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"multipost/config"
	domainerrors "multipost/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T, handler http.HandlerFunc) (*httptest.Server, Params) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server, Params{
		Ctx: context.Background(),
		Config: &config.Config{Generative: &config.GenerativeConfig{
			APIKey:   "test-key",
			Model:    "gemini-test",
			Endpoint: server.URL + "/",
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestGeminiGenerator_GenerateText(t *testing.T) {
	_, params := newGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "contents")
		assert.Contains(t, body, "systemInstruction")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"{\"a\":"},{"text":"1}"}]}}]}`)
	})

	generator, err := NewTextGenerator(params)
	require.NoError(t, err)

	text, err := generator.GenerateText(context.Background(), "system", "new sneaker drop")

	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)
}

func TestGeminiGenerator_WithoutSystemPrompt(t *testing.T) {
	_, params := newGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "systemInstruction")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]}}]}`)
	})

	generator, err := NewTextGenerator(params)
	require.NoError(t, err)

	text, err := generator.GenerateText(context.Background(), "", "prompt")

	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestGeminiGenerator_NoCandidates(t *testing.T) {
	_, params := newGenerator(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})

	generator, err := NewTextGenerator(params)
	require.NoError(t, err)

	text, err := generator.GenerateText(context.Background(), "", "prompt")

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGeminiGenerator_UpstreamError(t *testing.T) {
	_, params := newGenerator(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"code":429,"message":"Resource has been exhausted"}}`)
	})

	generator, err := NewTextGenerator(params)
	require.NoError(t, err)

	_, err = generator.GenerateText(context.Background(), "", "prompt")

	var exchangeErr *domainerrors.ProviderExchangeError
	require.True(t, errors.As(err, &exchangeErr))
	assert.Equal(t, http.StatusTooManyRequests, exchangeErr.StatusCode())
	assert.Equal(t, "Resource has been exhausted", exchangeErr.Message())
}

func TestNewTextGenerator_Unconfigured(t *testing.T) {
	generator, err := NewTextGenerator(Params{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	_, err = generator.GenerateText(context.Background(), "", "prompt")
	assert.True(t, errors.Is(err, domainerrors.ErrProviderNotConfigured))
}
