package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"multipost/internal/domain/entity"
	"multipost/internal/domain/repository"
	"multipost/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), nil),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func strPtr(s string) *string {
	return &s
}

// reverseCipher is a reversible stand-in for the keeper-backed cipher.
type reverseCipher struct{}

func (reverseCipher) Encrypt(_ context.Context, plaintext string) (string, error) {
	return "rev:" + reverse(plaintext), nil
}

func (reverseCipher) Decrypt(_ context.Context, ciphertext string) (string, error) {
	return reverse(strings.TrimPrefix(ciphertext, "rev:")), nil
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}

	return string(r)
}

func TestWorkspaceRepository_CreateListRename(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkspaceRepository(newTestDB(t))

	first := &entity.Workspace{Name: "Brand A"}
	require.NoError(t, repo.CreateWorkspace(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second := &entity.Workspace{Name: "Brand B", CreatedAt: first.CreatedAt.Add(time.Second)}
	require.NoError(t, repo.CreateWorkspace(ctx, second))

	workspaces, err := repo.ListWorkspaces(ctx, nil)
	require.NoError(t, err)
	require.Len(t, workspaces, 2)
	assert.Equal(t, "Brand B", workspaces[0].Name)

	require.NoError(t, repo.RenameWorkspace(ctx, first.ID, nil, "Brand A+"))
	found, err := repo.FindWorkspace(ctx, first.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "Brand A+", found.Name)
	assert.Nil(t, found.OwnerID)

	err = repo.RenameWorkspace(ctx, uuid.New(), nil, "ghost")
	assert.ErrorIs(t, err, repository.ErrWorkspaceNotFound)
}

func TestWorkspaceRepository_ScopedIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkspaceRepository(newTestDB(t))

	ownedByA := &entity.Workspace{Name: "A", OwnerID: strPtr("owner-a")}
	ownedByB := &entity.Workspace{Name: "B", OwnerID: strPtr("owner-b")}
	require.NoError(t, repo.CreateWorkspace(ctx, ownedByA))
	require.NoError(t, repo.CreateWorkspace(ctx, ownedByB))

	listA, err := repo.ListWorkspaces(ctx, strPtr("owner-a"))
	require.NoError(t, err)
	require.Len(t, listA, 1)
	assert.Equal(t, ownedByA.ID, listA[0].ID)

	_, err = repo.FindWorkspace(ctx, ownedByB.ID, strPtr("owner-a"))
	assert.ErrorIs(t, err, repository.ErrWorkspaceNotFound)

	err = repo.RenameWorkspace(ctx, ownedByB.ID, strPtr("owner-a"), "hijack")
	assert.ErrorIs(t, err, repository.ErrWorkspaceNotFound)

	require.NoError(t, repo.DeleteWorkspace(ctx, ownedByB.ID, strPtr("owner-a")))
	stillThere, err := repo.FindWorkspace(ctx, ownedByB.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "B", stillThere.Name)
	assert.Equal(t, "owner-b", *stillThere.OwnerID)
}

func TestAccountRepository_AppendOnly(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))
	workspaceID := uuid.New()

	for range 2 {
		require.NoError(t, repo.CreateAccount(ctx, &entity.Account{
			WorkspaceID: workspaceID,
			Platform:    entity.PlatformYouTube,
			Nickname:    "My Channel",
			AccessToken: "access",
			ExpiresAt:   time.Now().Add(time.Hour),
		}))
	}

	accounts, err := repo.ListAccountsByWorkspace(ctx, workspaceID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.NotEqual(t, accounts[0].ID, accounts[1].ID)

	found, err := repo.FindAccountByID(ctx, accounts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "access", found.AccessToken)
	assert.Equal(t, entity.PlatformYouTube, found.Platform)

	require.NoError(t, repo.DeleteAccount(ctx, accounts[0].ID, nil))
	assert.ErrorIs(t, repo.DeleteAccount(ctx, accounts[0].ID, nil), repository.ErrAccountNotFound)

	_, err = repo.FindAccountByID(ctx, accounts[0].ID)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestTokenRepository_UpsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTokenRepository(db, nil)
	workspaceID := uuid.New()

	firstExpiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, repo.UpsertToken(ctx, &entity.Token{
		WorkspaceID:       workspaceID,
		Platform:          entity.PlatformYouTube,
		ExternalAccountID: "UC123",
		AccessToken:       "first",
		RefreshToken:      "refresh-1",
		ExpiresAt:         &firstExpiry,
		Scope:             "youtube.upload",
	}))

	secondExpiry := firstExpiry.Add(time.Hour)
	require.NoError(t, repo.UpsertToken(ctx, &entity.Token{
		WorkspaceID:       workspaceID,
		Platform:          entity.PlatformYouTube,
		ExternalAccountID: "UC123",
		AccessToken:       "second",
		RefreshToken:      "refresh-2",
		ExpiresAt:         &secondExpiry,
		Scope:             "youtube.upload youtube.readonly",
	}))

	var count int64
	require.NoError(t, db.Model(&model.TokenModel{}).Where("workspace_id = ?", workspaceID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	token, err := repo.FindToken(ctx, workspaceID, entity.PlatformYouTube, "UC123")
	require.NoError(t, err)
	assert.Equal(t, "second", token.AccessToken)
	assert.Equal(t, "refresh-2", token.RefreshToken)
	assert.Equal(t, "youtube.upload youtube.readonly", token.Scope)
	require.NotNil(t, token.ExpiresAt)
	assert.True(t, secondExpiry.Equal(*token.ExpiresAt))
}

func TestTokenRepository_IncompleteRecordIsNoOp(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTokenRepository(db, nil)
	workspaceID := uuid.New()

	records := []*entity.Token{
		{Platform: entity.PlatformTikTok, ExternalAccountID: "open-1", AccessToken: "a"},
		{WorkspaceID: workspaceID, ExternalAccountID: "open-1", AccessToken: "a"},
		{WorkspaceID: workspaceID, Platform: entity.PlatformTikTok, AccessToken: "a"},
		{WorkspaceID: workspaceID, Platform: entity.PlatformTikTok, ExternalAccountID: "open-1"},
		nil,
	}
	for _, record := range records {
		require.NoError(t, repo.UpsertToken(ctx, record))
	}

	var count int64
	require.NoError(t, db.Model(&model.TokenModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTokenRepository_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(newTestDB(t), nil)
	workspaceID := uuid.New()

	for _, record := range []*entity.Token{
		{WorkspaceID: workspaceID, Platform: entity.PlatformYouTube, ExternalAccountID: "UC1", AccessToken: "a"},
		{WorkspaceID: workspaceID, Platform: entity.PlatformYouTube, ExternalAccountID: "UC2", AccessToken: "b"},
		{WorkspaceID: workspaceID, Platform: entity.PlatformTikTok, ExternalAccountID: "open-1", AccessToken: "c"},
	} {
		require.NoError(t, repo.UpsertToken(ctx, record))
	}

	all, err := repo.ListTokens(ctx, workspaceID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	youtube := entity.PlatformYouTube
	onlyYouTube, err := repo.ListTokens(ctx, workspaceID, &youtube)
	require.NoError(t, err)
	assert.Len(t, onlyYouTube, 2)

	require.NoError(t, repo.DeleteToken(ctx, workspaceID, entity.PlatformYouTube, "UC1"))
	require.NoError(t, repo.DeleteToken(ctx, workspaceID, entity.PlatformYouTube, "UC1"))
	_, err = repo.FindToken(ctx, workspaceID, entity.PlatformYouTube, "UC1")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)

	require.NoError(t, repo.DeleteTokensByWorkspace(ctx, workspaceID))
	remaining, err := repo.ListTokens(ctx, workspaceID, nil)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestTokenRepository_EncryptsAtRest(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTokenRepository(db, reverseCipher{})
	workspaceID := uuid.New()

	require.NoError(t, repo.UpsertToken(ctx, &entity.Token{
		WorkspaceID:       workspaceID,
		Platform:          entity.PlatformTikTok,
		ExternalAccountID: "open-1",
		AccessToken:       "act.123",
		RefreshToken:      "rft.456",
	}))

	var stored model.TokenModel
	require.NoError(t, db.Where("workspace_id = ?", workspaceID).First(&stored).Error)
	assert.Equal(t, "rev:321.tca", stored.AccessToken)
	assert.Equal(t, "rev:654.tfr", stored.RefreshToken)

	token, err := repo.FindToken(ctx, workspaceID, entity.PlatformTikTok, "open-1")
	require.NoError(t, err)
	assert.Equal(t, "act.123", token.AccessToken)
	assert.Equal(t, "rft.456", token.RefreshToken)
}

func TestTransactionManager_CascadeDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	workspaces := NewWorkspaceRepository(db)
	accounts := NewAccountRepository(db)
	tokens := NewTokenRepository(db, nil)
	tm := NewTransactionManager(db, nil)

	workspace := &entity.Workspace{Name: "Brand A"}
	require.NoError(t, workspaces.CreateWorkspace(ctx, workspace))
	require.NoError(t, accounts.CreateAccount(ctx, &entity.Account{
		WorkspaceID: workspace.ID, Platform: entity.PlatformYouTube, Nickname: "Channel", AccessToken: "a",
	}))
	require.NoError(t, tokens.UpsertToken(ctx, &entity.Token{
		WorkspaceID: workspace.ID, Platform: entity.PlatformYouTube, ExternalAccountID: "UC1", AccessToken: "a",
	}))

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewAccountRepository().DeleteAccountsByWorkspace(ctx, workspace.ID); err != nil {
			return err
		}
		if err := f.NewTokenRepository().DeleteTokensByWorkspace(ctx, workspace.ID); err != nil {
			return err
		}

		return f.NewWorkspaceRepository().DeleteWorkspace(ctx, workspace.ID, nil)
	})
	require.NoError(t, err)

	remainingAccounts, err := accounts.ListAccountsByWorkspace(ctx, workspace.ID)
	require.NoError(t, err)
	assert.Empty(t, remainingAccounts)

	remainingTokens, err := tokens.ListTokens(ctx, workspace.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, remainingTokens)

	_, err = workspaces.FindWorkspace(ctx, workspace.ID, nil)
	assert.ErrorIs(t, err, repository.ErrWorkspaceNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	accounts := NewAccountRepository(db)
	tm := NewTransactionManager(db, nil)
	workspaceID := uuid.New()

	require.NoError(t, accounts.CreateAccount(ctx, &entity.Account{
		WorkspaceID: workspaceID, Platform: entity.PlatformTikTok, Nickname: "Linked TikTok", AccessToken: "a",
	}))

	boom := fmt.Errorf("boom")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewAccountRepository().DeleteAccountsByWorkspace(ctx, workspaceID); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	remaining, err := accounts.ListAccountsByWorkspace(ctx, workspaceID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
