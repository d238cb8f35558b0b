package postgres

import (
	"context"

	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/repository"
	"multipost/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workspaceRepository implements the repository.WorkspaceRepository interface.
type workspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository is the constructor for workspaceRepository.
func NewWorkspaceRepository(db *gorm.DB) repository.WorkspaceRepository {
	return &workspaceRepository{
		db: db,
	}
}

// CreateWorkspace persists a new workspace, assigning an ID when missing.
func (repo *workspaceRepository) CreateWorkspace(ctx context.Context, workspace *entity.Workspace) error {
	if workspace.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate workspace id")
		}
		workspace.ID = id
	}

	workspaceM := fromWorkspaceDomain(workspace)
	if err := repo.db.WithContext(ctx).Create(workspaceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required folder information")
		}

		return domainerrors.NewPersistenceError(err, "failed to create folder")
	}

	workspace.CreatedAt = workspaceM.CreatedAt

	return nil
}

// FindWorkspace retrieves a workspace by ID, optionally scoped to an owner.
func (repo *workspaceRepository) FindWorkspace(ctx context.Context, id uuid.UUID, owner *string) (*entity.Workspace, error) {
	var workspaceM model.WorkspaceModel

	if err := scopeByOwner(repo.db.WithContext(ctx), owner).
		Where("id = ?", id).
		First(&workspaceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkspaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find folder by ID")
	}

	return toWorkspaceDomain(&workspaceM), nil
}

// ListWorkspaces returns workspaces newest first.
func (repo *workspaceRepository) ListWorkspaces(ctx context.Context, owner *string) ([]*entity.Workspace, error) {
	var workspaceModels []*model.WorkspaceModel

	if err := scopeByOwner(repo.db.WithContext(ctx), owner).
		Order("created_at DESC").
		Find(&workspaceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list folders")
	}

	workspaces := make([]*entity.Workspace, 0, len(workspaceModels))
	for _, workspaceM := range workspaceModels {
		workspaces = append(workspaces, toWorkspaceDomain(workspaceM))
	}

	return workspaces, nil
}

// RenameWorkspace updates the name column only.
func (repo *workspaceRepository) RenameWorkspace(ctx context.Context, id uuid.UUID, owner *string, name string) error {
	result := scopeByOwner(repo.db.WithContext(ctx).Model(&model.WorkspaceModel{}), owner).
		Where("id = ?", id).
		Update("name", name)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to rename folder")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWorkspaceNotFound
	}

	return nil
}

// DeleteWorkspace removes the workspace row; a missing row is a no-op.
func (repo *workspaceRepository) DeleteWorkspace(ctx context.Context, id uuid.UUID, owner *string) error {
	if err := scopeByOwner(repo.db.WithContext(ctx), owner).
		Where("id = ?", id).
		Delete(&model.WorkspaceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete folder")
	}

	return nil
}

func scopeByOwner(db *gorm.DB, owner *string) *gorm.DB {
	if owner == nil {
		return db
	}

	return db.Where("user_id = ?", *owner)
}

// --- Mapper Functions ---

func toWorkspaceDomain(data *model.WorkspaceModel) *entity.Workspace {
	if data == nil {
		return nil
	}

	return &entity.Workspace{
		ID:        data.ID,
		Name:      data.Name,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
	}
}

func fromWorkspaceDomain(data *entity.Workspace) *model.WorkspaceModel {
	if data == nil {
		return nil
	}

	return &model.WorkspaceModel{
		ID:        data.ID,
		Name:      data.Name,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
	}
}
