// Package provider holds the platform adapters and what they share.
package provider

import (
	"net/http"
	"net/url"

	"multipost/internal/domain/entity"
	"multipost/internal/domain/service"

	"go.uber.org/fx"
)

// Placeholder nicknames used when the identity lookup after an exchange fails.
const (
	FallbackNicknameYouTube  = "Linked YouTube"
	FallbackNicknameTikTok   = "Linked TikTok"
	FallbackNicknameFacebook = "Linked Facebook"
)

// NewHTTPClient is the client shared by every adapter. Cancellation comes
// from the request context.
func NewHTTPClient() *http.Client {
	return &http.Client{Transport: http.DefaultTransport}
}

// CallbackURL is the fixed redirect URI registered with a provider.
func CallbackURL(publicBaseURL string, platform entity.Platform) string {
	return publicBaseURL + "/api/auth/callback/" + url.PathEscape(platform.String())
}

// RegistryParams defines the required parameters
type RegistryParams struct {
	fx.In

	Adapters []service.ProviderAdapter `group:"providers"`
}

// registry maps each platform to its adapter.
type registry struct {
	adapters map[entity.Platform]service.ProviderAdapter
}

// NewRegistry indexes the adapters by platform.
func NewRegistry(params RegistryParams) service.ProviderRegistry {
	return NewRegistryFromAdapters(params.Adapters...)
}

// NewRegistryFromAdapters builds a registry without fx.
func NewRegistryFromAdapters(adapters ...service.ProviderAdapter) service.ProviderRegistry {
	r := &registry{adapters: make(map[entity.Platform]service.ProviderAdapter, len(adapters))}
	for _, adapter := range adapters {
		r.adapters[adapter.Platform()] = adapter
	}

	return r
}

func (r *registry) Adapter(platform entity.Platform) (service.ProviderAdapter, bool) {
	adapter, ok := r.adapters[platform]

	return adapter, ok
}
