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

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// CreateAccount inserts a new legacy row. Repeated links of the same
// external identity produce additional rows.
func (repo *accountRepository) CreateAccount(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate account id")
		}
		account.ID = id
	}

	accountM := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required account information")
		}

		return domainerrors.NewPersistenceError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt

	return nil
}

// FindAccountByID retrieves a single account.
func (repo *accountRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&accountM), nil
}

// ListAccountsByWorkspace returns every legacy row of a workspace, oldest first.
func (repo *accountRepository) ListAccountsByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("folder_id = ?", workspaceID).
		Order("created_at ASC").
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts by folder")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// DeleteAccount removes one row; a missing row is reported as not found.
func (repo *accountRepository) DeleteAccount(ctx context.Context, id uuid.UUID, owner *string) error {
	result := scopeByOwner(repo.db.WithContext(ctx), owner).
		Where("id = ?", id).
		Delete(&model.AccountModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete account")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// DeleteAccountsByWorkspace removes every legacy row of a workspace.
func (repo *accountRepository) DeleteAccountsByWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("folder_id = ?", workspaceID).
		Delete(&model.AccountModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete accounts by folder")
	}

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		WorkspaceID:  data.WorkspaceID,
		OwnerID:      data.OwnerID,
		Platform:     entity.Platform(data.Platform),
		Nickname:     data.Nickname,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		WorkspaceID:  data.WorkspaceID,
		OwnerID:      data.OwnerID,
		Platform:     data.Platform.String(),
		Nickname:     data.Nickname,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		ExpiresAt:    data.ExpiresAt,
		CreatedAt:    data.CreatedAt,
	}
}
