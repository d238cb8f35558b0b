package repository

import (
	"context"

	"multipost/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when no canonical token matches the key.
var ErrTokenNotFound = errors.New("token not found")

// TokenRepository persists canonical credentials keyed by
// (workspace, platform, external account).
type TokenRepository interface {
	// UpsertToken inserts or, on key conflict, overwrites the credential fields in
	// a single statement. Incomplete records are ignored.
	UpsertToken(ctx context.Context, token *entity.Token) error

	// FindToken retrieves the credential for one external account.
	FindToken(ctx context.Context, workspaceID uuid.UUID, platform entity.Platform, externalAccountID string) (*entity.Token, error)

	// ListTokens returns the tokens of a workspace, optionally filtered by platform.
	ListTokens(ctx context.Context, workspaceID uuid.UUID, platform *entity.Platform) ([]*entity.Token, error)

	// DeleteToken removes one credential. Deleting a missing row is not an error.
	DeleteToken(ctx context.Context, workspaceID uuid.UUID, platform entity.Platform, externalAccountID string) error

	// DeleteTokensByWorkspace removes every credential of a workspace.
	DeleteTokensByWorkspace(ctx context.Context, workspaceID uuid.UUID) error
}
