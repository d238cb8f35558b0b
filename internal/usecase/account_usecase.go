package usecase

import (
	"context"

	"multipost/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase reads and unlinks stored credentials.
type AccountUsecase interface {
	// ListAccounts returns the legacy account rows of a folder.
	ListAccounts(ctx context.Context, workspaceID uuid.UUID, owner string) ([]*entity.Account, error)

	// DeleteAccount unlinks one legacy account row.
	DeleteAccount(ctx context.Context, accountID uuid.UUID, owner string) error

	// ListTokens returns canonical tokens without credential material.
	ListTokens(ctx context.Context, workspaceID uuid.UUID, platform *entity.Platform, owner string) ([]entity.TokenSummary, error)

	// DeleteToken unlinks one canonical token.
	DeleteToken(ctx context.Context, workspaceID uuid.UUID, platform entity.Platform, externalAccountID, owner string) error
}
