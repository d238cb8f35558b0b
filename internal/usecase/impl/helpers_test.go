package impl

import (
	"io"
	"log/slog"

	"multipost/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(multiTenant bool) *config.Config {
	return &config.Config{
		App: config.AppConfig{
			PublicBaseURL: "https://app.example",
			LandingPath:   "/folder.html",
		},
		Tenancy: config.TenancyConfig{MultiTenant: multiTenant},
	}
}

func strPtr(s string) *string {
	return &s
}
