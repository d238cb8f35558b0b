// Package usecase defines the application operations exposed to delivery.
package usecase

import (
	"context"

	"multipost/internal/domain/entity"

	"github.com/google/uuid"
)

// WorkspaceUsecase manages folders and their ownership scope. The owner is the
// raw identifier sent by the client; it is only enforced in multi-tenant mode.
type WorkspaceUsecase interface {
	// ListWorkspaces returns the caller's folders, newest first.
	ListWorkspaces(ctx context.Context, owner string) ([]*entity.Workspace, error)

	// CreateWorkspace creates a folder with a non-empty name.
	CreateWorkspace(ctx context.Context, name, owner string) (*entity.Workspace, error)

	// GetWorkspace returns a folder visible to the caller.
	GetWorkspace(ctx context.Context, id uuid.UUID, owner string) (*entity.Workspace, error)

	// RenameWorkspace changes the name of a folder visible to the caller.
	RenameWorkspace(ctx context.Context, id uuid.UUID, name, owner string) error

	// DeleteWorkspace removes the folder with its accounts and tokens in one transaction.
	DeleteWorkspace(ctx context.Context, id uuid.UUID, owner string) error
}
