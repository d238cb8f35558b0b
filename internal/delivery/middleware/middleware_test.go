package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"multipost/config"
	deliverycontext "multipost/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_PropagatesHeaderAndLogger(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	req := httptest.NewRequest(http.MethodGet, "/api/get-folders", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenID string
	var seenLogger *slog.Logger
	err := mw.Process(func(c echo.Context) error {
		seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		seenLogger = deliverycontext.GetLogger(c.Request().Context())

		return nil
	})(c)
	require.NoError(t, err)

	assert.Equal(t, "req-123", seenID)
	assert.NotNil(t, seenLogger)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesOversizedID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
	rec := httptest.NewRecorder()

	require.NoError(t, mw.Process(func(echo.Context) error { return nil })(e.NewContext(req, rec)))

	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestLoggerMiddleware_RedactsCallbackQuery(t *testing.T) {
	e := echo.New()
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/callback/youtube?code=secret-code&state=abc", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusFound)
	})(e.NewContext(req, rec)))

	assert.Contains(t, buf.String(), "HTTP Request")
	assert.NotContains(t, buf.String(), "secret-code")
}

func TestLoggerMiddleware_SkipsHealthOutsideDebug(t *testing.T) {
	e := echo.New()
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(e.NewContext(req, rec)))

	assert.Empty(t, buf.String())
}
