package usecase

import (
	"context"

	"multipost/internal/domain/entity"
)

// CallbackParams are the query parameters a provider sends back.
type CallbackParams struct {
	Code             string
	State            string
	Error            string
	ErrorDescription string
}

// OAuthUsecase drives authorize -> callback -> exchange -> persist.
type OAuthUsecase interface {
	// BeginLink validates the folder and returns the provider authorize URL.
	BeginLink(ctx context.Context, platform entity.Platform, workspaceID, owner string) (string, error)

	// CompleteLink exchanges the code, stores the credential, and returns the
	// application URL to redirect the browser to.
	CompleteLink(ctx context.Context, platform entity.Platform, params *CallbackParams) (string, error)
}
