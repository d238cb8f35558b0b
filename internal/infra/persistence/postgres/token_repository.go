package postgres

import (
	"context"
	"time"

	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/repository"
	"multipost/internal/domain/service"
	"multipost/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenIdentityColumns is the conflict target of every token write.
var tokenIdentityColumns = []clause.Column{
	{Name: "workspace_id"},
	{Name: "platform"},
	{Name: "external_account_id"},
}

// tokenRefreshColumns are overwritten when the identity already exists.
var tokenRefreshColumns = []string{
	"access_token",
	"refresh_token",
	"expires_at",
	"scope",
	"updated_at",
}

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db     *gorm.DB
	cipher service.TokenCipher
}

// NewTokenRepository is the constructor for tokenRepository. A nil cipher
// stores credentials as given.
func NewTokenRepository(db *gorm.DB, cipher service.TokenCipher) repository.TokenRepository {
	return &tokenRepository{
		db:     db,
		cipher: cipher,
	}
}

// UpsertToken writes the credential with a single INSERT ... ON CONFLICT DO UPDATE.
func (repo *tokenRepository) UpsertToken(ctx context.Context, token *entity.Token) error {
	if !token.IsComplete() {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate token id")
	}

	tokenM, err := repo.fromTokenDomain(ctx, token)
	if err != nil {
		return err
	}
	tokenM.ID = id
	now := time.Now().UTC()
	tokenM.CreatedAt = now
	tokenM.UpdatedAt = now

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   tokenIdentityColumns,
			DoUpdates: clause.AssignmentColumns(tokenRefreshColumns),
		}).
		Create(tokenM).Error; err != nil {
		return domainerrors.NewPersistenceError(err, "failed to upsert token")
	}

	token.UpdatedAt = now

	return nil
}

// FindToken retrieves the credential for one external account.
func (repo *tokenRepository) FindToken(
	ctx context.Context,
	workspaceID uuid.UUID,
	platform entity.Platform,
	externalAccountID string,
) (*entity.Token, error) {
	var tokenM model.TokenModel

	if err := repo.db.WithContext(ctx).
		Where("workspace_id = ? AND platform = ? AND external_account_id = ?", workspaceID, platform.String(), externalAccountID).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find token")
	}

	return repo.toTokenDomain(ctx, &tokenM)
}

// ListTokens returns the tokens of a workspace, most recently refreshed first.
func (repo *tokenRepository) ListTokens(ctx context.Context, workspaceID uuid.UUID, platform *entity.Platform) ([]*entity.Token, error) {
	var tokenModels []*model.TokenModel

	query := repo.db.WithContext(ctx).Where("workspace_id = ?", workspaceID)
	if platform != nil {
		query = query.Where("platform = ?", platform.String())
	}

	if err := query.Order("updated_at DESC").Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tokens")
	}

	tokens := make([]*entity.Token, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		token, err := repo.toTokenDomain(ctx, tokenM)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// DeleteToken removes one credential; a missing row is a no-op.
func (repo *tokenRepository) DeleteToken(
	ctx context.Context,
	workspaceID uuid.UUID,
	platform entity.Platform,
	externalAccountID string,
) error {
	if err := repo.db.WithContext(ctx).
		Where("workspace_id = ? AND platform = ? AND external_account_id = ?", workspaceID, platform.String(), externalAccountID).
		Delete(&model.TokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete token")
	}

	return nil
}

// DeleteTokensByWorkspace removes every credential of a workspace.
func (repo *tokenRepository) DeleteTokensByWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Delete(&model.TokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete tokens by folder")
	}

	return nil
}

func (repo *tokenRepository) seal(ctx context.Context, plaintext string) (string, error) {
	if repo.cipher == nil || plaintext == "" {
		return plaintext, nil
	}

	sealed, err := repo.cipher.Encrypt(ctx, plaintext)
	if err != nil {
		return "", errors.Wrap(err, "failed to encrypt credential")
	}

	return sealed, nil
}

func (repo *tokenRepository) open(ctx context.Context, ciphertext string) (string, error) {
	if repo.cipher == nil || ciphertext == "" {
		return ciphertext, nil
	}

	plain, err := repo.cipher.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "failed to decrypt credential")
	}

	return plain, nil
}

// --- Mapper Functions ---

func (repo *tokenRepository) toTokenDomain(ctx context.Context, data *model.TokenModel) (*entity.Token, error) {
	accessToken, err := repo.open(ctx, data.AccessToken)
	if err != nil {
		return nil, err
	}
	refreshToken, err := repo.open(ctx, data.RefreshToken)
	if err != nil {
		return nil, err
	}

	return &entity.Token{
		ID:                data.ID,
		WorkspaceID:       data.WorkspaceID,
		Platform:          entity.Platform(data.Platform),
		ExternalAccountID: data.ExternalAccountID,
		AccessToken:       accessToken,
		RefreshToken:      refreshToken,
		ExpiresAt:         data.ExpiresAt,
		Scope:             data.Scope,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}, nil
}

func (repo *tokenRepository) fromTokenDomain(ctx context.Context, data *entity.Token) (*model.TokenModel, error) {
	accessToken, err := repo.seal(ctx, data.AccessToken)
	if err != nil {
		return nil, err
	}
	refreshToken, err := repo.seal(ctx, data.RefreshToken)
	if err != nil {
		return nil, err
	}

	return &model.TokenModel{
		ID:                data.ID,
		WorkspaceID:       data.WorkspaceID,
		Platform:          data.Platform.String(),
		ExternalAccountID: data.ExternalAccountID,
		AccessToken:       accessToken,
		RefreshToken:      refreshToken,
		ExpiresAt:         data.ExpiresAt,
		Scope:             data.Scope,
	}, nil
}
