package impl

import (
	"context"
	"testing"

	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/repository"
	mockRepo "multipost/internal/mocks/repository"
	"multipost/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// workspaceServiceFixtures holds all test dependencies for workspace service tests.
type workspaceServiceFixtures struct {
	service       usecase.WorkspaceUsecase
	txManager     *mockRepo.MockTransactionManager
	workspaceRepo *mockRepo.MockWorkspaceRepository
}

func createTestWorkspaceService(t *testing.T, multiTenant bool) workspaceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	workspaceRepo := mockRepo.NewMockWorkspaceRepository(t)

	service := NewWorkspaceService(WorkspaceServiceParams{
		TxManager:     txManager,
		WorkspaceRepo: workspaceRepo,
		Config:        newTestConfig(multiTenant),
		Logger:        newDiscardLogger(),
	})

	return workspaceServiceFixtures{
		service:       service,
		txManager:     txManager,
		workspaceRepo: workspaceRepo,
	}
}

func TestWorkspaceService_CreateWorkspace_SingleTenantIgnoresOwner(t *testing.T) {
	fx := createTestWorkspaceService(t, false)
	ctx := context.Background()

	fx.workspaceRepo.EXPECT().
		CreateWorkspace(ctx, mock.AnythingOfType("*entity.Workspace")).
		Run(func(_ context.Context, workspace *entity.Workspace) {
			workspace.ID = uuid.New()
		}).
		Return(nil)

	workspace, err := fx.service.CreateWorkspace(ctx, "  Spring launch  ", "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Spring launch", workspace.Name)
	assert.Nil(t, workspace.OwnerID)
}

func TestWorkspaceService_CreateWorkspace_MultiTenantSetsOwner(t *testing.T) {
	fx := createTestWorkspaceService(t, true)
	ctx := context.Background()

	fx.workspaceRepo.EXPECT().
		CreateWorkspace(ctx, mock.MatchedBy(func(workspace *entity.Workspace) bool {
			return workspace.OwnerID != nil && *workspace.OwnerID == "user-1"
		})).
		Return(nil)

	workspace, err := fx.service.CreateWorkspace(ctx, "Spring launch", " user-1 ")

	require.NoError(t, err)
	require.NotNil(t, workspace.OwnerID)
	assert.Equal(t, "user-1", *workspace.OwnerID)
}

func TestWorkspaceService_CreateWorkspace_EmptyName(t *testing.T) {
	fx := createTestWorkspaceService(t, false)

	_, err := fx.service.CreateWorkspace(context.Background(), "   ", "")

	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}

func TestWorkspaceService_MultiTenantRejectsPlaceholderOwner(t *testing.T) {
	fx := createTestWorkspaceService(t, true)
	ctx := context.Background()

	for _, owner := range []string{"", "  ", "null", "undefined"} {
		_, err := fx.service.ListWorkspaces(ctx, owner)
		assert.True(t, errors.Is(err, domainerrors.ErrAuthorization), "owner %q", owner)

		_, err = fx.service.CreateWorkspace(ctx, "name", owner)
		assert.True(t, errors.Is(err, domainerrors.ErrAuthorization), "owner %q", owner)
	}
}

func TestWorkspaceService_ListWorkspaces_ScopedByOwner(t *testing.T) {
	fx := createTestWorkspaceService(t, true)
	ctx := context.Background()
	owned := []*entity.Workspace{{ID: uuid.New(), Name: "mine", OwnerID: strPtr("user-1")}}

	fx.workspaceRepo.EXPECT().ListWorkspaces(ctx, strPtr("user-1")).Return(owned, nil)

	workspaces, err := fx.service.ListWorkspaces(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, owned, workspaces)
}

func TestWorkspaceService_ListWorkspaces_SingleTenantIsGlobal(t *testing.T) {
	fx := createTestWorkspaceService(t, false)
	ctx := context.Background()

	fx.workspaceRepo.EXPECT().ListWorkspaces(ctx, (*string)(nil)).Return([]*entity.Workspace{}, nil)

	workspaces, err := fx.service.ListWorkspaces(ctx, "anyone")

	require.NoError(t, err)
	assert.Empty(t, workspaces)
}

func TestWorkspaceService_RenameWorkspace_NotVisible(t *testing.T) {
	fx := createTestWorkspaceService(t, true)
	ctx := context.Background()
	id := uuid.New()

	fx.workspaceRepo.EXPECT().
		RenameWorkspace(ctx, id, strPtr("user-2"), "New name").
		Return(repository.ErrWorkspaceNotFound)

	err := fx.service.RenameWorkspace(ctx, id, "New name", "user-2")

	assert.True(t, errors.Is(err, domainerrors.ErrWorkspaceNotFound))
}

func TestWorkspaceService_RenameWorkspace_EmptyName(t *testing.T) {
	fx := createTestWorkspaceService(t, false)

	err := fx.service.RenameWorkspace(context.Background(), uuid.New(), "", "")

	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}

func TestWorkspaceService_GetWorkspace_NotFound(t *testing.T) {
	fx := createTestWorkspaceService(t, false)
	ctx := context.Background()
	id := uuid.New()

	fx.workspaceRepo.EXPECT().FindWorkspace(ctx, id, (*string)(nil)).Return(nil, repository.ErrWorkspaceNotFound)

	_, err := fx.service.GetWorkspace(ctx, id, "")

	assert.True(t, errors.Is(err, domainerrors.ErrWorkspaceNotFound))
}

func TestWorkspaceService_DeleteWorkspace_Cascades(t *testing.T) {
	fx := createTestWorkspaceService(t, false)
	ctx := context.Background()
	id := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txWorkspaceRepo := mockRepo.NewMockWorkspaceRepository(t)
	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txTokenRepo := mockRepo.NewMockTokenRepository(t)

	factory.EXPECT().NewWorkspaceRepository().Return(txWorkspaceRepo)
	factory.EXPECT().NewAccountRepository().Return(txAccountRepo)
	factory.EXPECT().NewTokenRepository().Return(txTokenRepo)

	txWorkspaceRepo.EXPECT().FindWorkspace(ctx, id, (*string)(nil)).Return(&entity.Workspace{ID: id}, nil)
	txAccountRepo.EXPECT().DeleteAccountsByWorkspace(ctx, id).Return(nil)
	txTokenRepo.EXPECT().DeleteTokensByWorkspace(ctx, id).Return(nil)
	txWorkspaceRepo.EXPECT().DeleteWorkspace(ctx, id, (*string)(nil)).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	require.NoError(t, fx.service.DeleteWorkspace(ctx, id, ""))
}

func TestWorkspaceService_DeleteWorkspace_AbsentIsNoop(t *testing.T) {
	fx := createTestWorkspaceService(t, false)
	ctx := context.Background()
	id := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txWorkspaceRepo := mockRepo.NewMockWorkspaceRepository(t)
	factory.EXPECT().NewWorkspaceRepository().Return(txWorkspaceRepo)
	txWorkspaceRepo.EXPECT().FindWorkspace(ctx, id, (*string)(nil)).Return(nil, repository.ErrWorkspaceNotFound)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	require.NoError(t, fx.service.DeleteWorkspace(ctx, id, ""))
}

func TestWorkspaceService_DeleteWorkspace_FailureIsPersistenceError(t *testing.T) {
	fx := createTestWorkspaceService(t, false)
	ctx := context.Background()
	id := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txWorkspaceRepo := mockRepo.NewMockWorkspaceRepository(t)
	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	factory.EXPECT().NewWorkspaceRepository().Return(txWorkspaceRepo)
	factory.EXPECT().NewAccountRepository().Return(txAccountRepo)
	txWorkspaceRepo.EXPECT().FindWorkspace(ctx, id, (*string)(nil)).Return(&entity.Workspace{ID: id}, nil)
	txAccountRepo.EXPECT().DeleteAccountsByWorkspace(ctx, id).Return(errors.New("disk full"))

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := fx.service.DeleteWorkspace(ctx, id, "")

	var persistenceErr *domainerrors.PersistenceError
	assert.True(t, errors.As(err, &persistenceErr))
}
