package service

import (
	"context"
	"encoding/json"

	"multipost/internal/domain/entity"

	"github.com/google/uuid"
)

// ExchangeResult is the canonical outcome of an authorization-code exchange.
type ExchangeResult struct {
	AccessToken       string
	RefreshToken      string
	ExpiresIn         int64 // seconds, zero when the provider omits it
	ExternalAccountID string // empty when the identity lookup failed
	Nickname          string
	Scope             string
}

// PublishRequest carries the fields forwarded to a platform's publish endpoint.
type PublishRequest struct {
	Title        string
	Description  string
	VideoURL     string
	PrivacyLevel string
}

// ProviderAdapter implements the OAuth and publish contract for one platform.
type ProviderAdapter interface {
	Platform() entity.Platform

	// BuildAuthorizationURL returns the provider authorize URL with an encoded state.
	BuildAuthorizationURL(workspaceID uuid.UUID) (string, error)

	// ExchangeCode swaps a single-use authorization code for a credential and
	// resolves the external identity. Identity lookup failures fall back to a
	// placeholder nickname instead of failing.
	ExchangeCode(ctx context.Context, code string) (*ExchangeResult, error)

	// Publish initiates a publish and returns the provider's raw acknowledgement.
	Publish(ctx context.Context, accessToken string, req *PublishRequest) (json.RawMessage, error)
}

// ProviderRegistry resolves the adapter for a platform.
type ProviderRegistry interface {
	Adapter(platform entity.Platform) (ProviderAdapter, bool)
}
