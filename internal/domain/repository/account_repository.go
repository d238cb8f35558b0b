package repository

import (
	"context"

	"multipost/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAccountNotFound is returned when a legacy account row is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository persists legacy link records. Inserts are append-only.
type AccountRepository interface {
	// CreateAccount always inserts a new row.
	CreateAccount(ctx context.Context, account *entity.Account) error

	// FindAccountByID retrieves a single account.
	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// ListAccountsByWorkspace returns every account row of a workspace.
	ListAccountsByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*entity.Account, error)

	// DeleteAccount removes one row, optionally scoped to an owner.
	DeleteAccount(ctx context.Context, id uuid.UUID, owner *string) error

	// DeleteAccountsByWorkspace removes every row of a workspace.
	DeleteAccountsByWorkspace(ctx context.Context, workspaceID uuid.UUID) error
}
