// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"multipost/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrWorkspaceNotFound is returned when no workspace is visible under the given scope.
var ErrWorkspaceNotFound = errors.New("workspace not found")

// WorkspaceRepository defines workspace persistence. A nil owner means the
// query is not scoped by owner.
type WorkspaceRepository interface {
	// CreateWorkspace persists a new workspace.
	CreateWorkspace(ctx context.Context, workspace *entity.Workspace) error

	// FindWorkspace retrieves a workspace by ID, optionally scoped to an owner.
	FindWorkspace(ctx context.Context, id uuid.UUID, owner *string) (*entity.Workspace, error)

	// ListWorkspaces returns workspaces newest first.
	ListWorkspaces(ctx context.Context, owner *string) ([]*entity.Workspace, error)

	// RenameWorkspace changes the name only; the owner is never touched.
	RenameWorkspace(ctx context.Context, id uuid.UUID, owner *string, name string) error

	// DeleteWorkspace removes the workspace row. Deleting a missing row is not an error.
	DeleteWorkspace(ctx context.Context, id uuid.UUID, owner *string) error
}
