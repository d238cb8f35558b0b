package impl

import (
	"context"
	"log/slog"
	"strings"

	"multipost/config"
	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/repository"
	"multipost/internal/errors"
	"multipost/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// workspaceService implements the WorkspaceUsecase interface.
type workspaceService struct {
	txManager     repository.TransactionManager
	workspaceRepo repository.WorkspaceRepository
	tenancy       tenancy
	logger        *slog.Logger
}

// WorkspaceServiceParams holds dependencies for WorkspaceService, injected by Fx.
type WorkspaceServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	WorkspaceRepo repository.WorkspaceRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewWorkspaceService is the constructor for workspaceService.
func NewWorkspaceService(params WorkspaceServiceParams) usecase.WorkspaceUsecase {
	return &workspaceService{
		txManager:     params.TxManager,
		workspaceRepo: params.WorkspaceRepo,
		tenancy:       newTenancy(params.Config),
		logger:        params.Logger,
	}
}

func (srv *workspaceService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *workspaceService) ListWorkspaces(ctx context.Context, owner string) ([]*entity.Workspace, error) {
	scope, err := srv.tenancy.scope(owner)
	if err != nil {
		return nil, err
	}

	workspaces, err := srv.workspaceRepo.ListWorkspaces(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list folders")
	}

	return workspaces, nil
}

func (srv *workspaceService) CreateWorkspace(ctx context.Context, name, owner string) (*entity.Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidation.WithMessage("folder name is required")
	}

	scope, err := srv.tenancy.scope(owner)
	if err != nil {
		return nil, err
	}

	workspace := &entity.Workspace{
		Name:    name,
		OwnerID: scope,
	}
	if err := srv.workspaceRepo.CreateWorkspace(ctx, workspace); err != nil {
		return nil, errors.Wrap(err, "failed to create folder")
	}

	srv.log(ctx).Info("Folder created", slog.String("folder_id", workspace.ID.String()))

	return workspace, nil
}

func (srv *workspaceService) GetWorkspace(ctx context.Context, id uuid.UUID, owner string) (*entity.Workspace, error) {
	scope, err := srv.tenancy.scope(owner)
	if err != nil {
		return nil, err
	}

	return findWorkspace(ctx, srv.workspaceRepo, id, scope)
}

// RenameWorkspace never touches the owner.
func (srv *workspaceService) RenameWorkspace(ctx context.Context, id uuid.UUID, name, owner string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domainerrors.ErrValidation.WithMessage("folder name is required")
	}

	scope, err := srv.tenancy.scope(owner)
	if err != nil {
		return err
	}

	err = srv.workspaceRepo.RenameWorkspace(ctx, id, scope, name)
	if errors.Is(err, repository.ErrWorkspaceNotFound) {
		return domainerrors.ErrWorkspaceNotFound.WithDetails(id.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to rename folder")
	}

	return nil
}

// DeleteWorkspace removes legacy accounts, canonical tokens and the folder
// atomically. An absent folder is a no-op.
func (srv *workspaceService) DeleteWorkspace(ctx context.Context, id uuid.UUID, owner string) error {
	scope, err := srv.tenancy.scope(owner)
	if err != nil {
		return err
	}

	deleted := false
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		workspaceRepo := repoFactory.NewWorkspaceRepository()

		_, err := workspaceRepo.FindWorkspace(ctx, id, scope)
		if errors.Is(err, repository.ErrWorkspaceNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := repoFactory.NewAccountRepository().DeleteAccountsByWorkspace(ctx, id); err != nil {
			return err
		}
		if err := repoFactory.NewTokenRepository().DeleteTokensByWorkspace(ctx, id); err != nil {
			return err
		}
		if err := workspaceRepo.DeleteWorkspace(ctx, id, scope); err != nil {
			return err
		}
		deleted = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete folder", slog.String("folder_id", id.String()), slog.Any("error", err))

		return domainerrors.NewPersistenceError(err, "failed to delete folder")
	}

	if deleted {
		srv.log(ctx).Info("Folder deleted", slog.String("folder_id", id.String()))
	}

	return nil
}

// findWorkspace maps the repository sentinel onto the domain NotFound error.
func findWorkspace(ctx context.Context, repo repository.WorkspaceRepository, id uuid.UUID, scope *string) (*entity.Workspace, error) {
	workspace, err := repo.FindWorkspace(ctx, id, scope)
	if errors.Is(err, repository.ErrWorkspaceNotFound) {
		return nil, domainerrors.ErrWorkspaceNotFound.WithDetails(id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find folder")
	}

	return workspace, nil
}
