package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"providers": map[string]any{
			"youtube": map[string]any{
				"clientId": "",
			},
		},
		"tenancy": map[string]any{
			"multiTenant": false,
		},
		"app": map[string]any{
			"publicBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PROVIDERS_YOUTUBE_CLIENTID", want: "providers.youtube.clientId"},
		{envKey: "TENANCY_MULTITENANT", want: "tenancy.multiTenant"},
		{envKey: "APP_PUBLICBASEURL", want: "app.publicBaseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.App.PublicBaseURL = "https://multipost.example.com/"

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultLandingPath, cfg.App.LandingPath)
	assert.Equal(t, "https://multipost.example.com", cfg.App.PublicBaseURL)
	assert.Equal(t, 15*time.Minute, cfg.State.TTL)
	assert.Equal(t, DatabaseDriverPostgres, cfg.Database.Driver)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	assert.Equal(t, []ConnectionConfig{{Host: "replica-0", Port: "5432", UserName: "reader"}}, replicas)
}
