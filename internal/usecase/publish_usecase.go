package usecase

import (
	"context"
	"encoding/json"

	"multipost/internal/domain/entity"
	"multipost/internal/domain/service"
)

// PublishInput identifies the credential and carries the publish payload.
// The canonical key (WorkspaceID, ExternalAccountID) is preferred over the
// legacy account ID when both resolve.
type PublishInput struct {
	Platform          entity.Platform
	LegacyAccountID   string
	WorkspaceID       string
	ExternalAccountID string
	Request           service.PublishRequest
}

// PublishUsecase resolves a credential and forwards the publish request.
type PublishUsecase interface {
	Publish(ctx context.Context, input *PublishInput) (json.RawMessage, error)
}
