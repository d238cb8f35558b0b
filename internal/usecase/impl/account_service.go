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

// accountService implements the AccountUsecase interface.
type accountService struct {
	workspaceRepo repository.WorkspaceRepository
	accountRepo   repository.AccountRepository
	tokenRepo     repository.TokenRepository
	tenancy       tenancy
	logger        *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	WorkspaceRepo repository.WorkspaceRepository
	AccountRepo   repository.AccountRepository
	TokenRepo     repository.TokenRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		workspaceRepo: params.WorkspaceRepo,
		accountRepo:   params.AccountRepo,
		tokenRepo:     params.TokenRepo,
		tenancy:       newTenancy(params.Config),
		logger:        params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// authorizeWorkspace checks folder ownership in multi-tenant mode only.
func (srv *accountService) authorizeWorkspace(ctx context.Context, workspaceID uuid.UUID, owner string) error {
	scope, err := srv.tenancy.scope(owner)
	if err != nil {
		return err
	}
	if scope == nil {
		return nil
	}

	_, err = findWorkspace(ctx, srv.workspaceRepo, workspaceID, scope)

	return err
}

func (srv *accountService) ListAccounts(ctx context.Context, workspaceID uuid.UUID, owner string) ([]*entity.Account, error) {
	if err := srv.authorizeWorkspace(ctx, workspaceID, owner); err != nil {
		return nil, err
	}

	accounts, err := srv.accountRepo.ListAccountsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

func (srv *accountService) DeleteAccount(ctx context.Context, accountID uuid.UUID, owner string) error {
	scope, err := srv.tenancy.scope(owner)
	if err != nil {
		return err
	}

	err = srv.accountRepo.DeleteAccount(ctx, accountID, scope)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound.WithDetails(accountID.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account unlinked", slog.String("account_id", accountID.String()))

	return nil
}

func (srv *accountService) ListTokens(ctx context.Context, workspaceID uuid.UUID, platform *entity.Platform, owner string) ([]entity.TokenSummary, error) {
	if err := srv.authorizeWorkspace(ctx, workspaceID, owner); err != nil {
		return nil, err
	}

	tokens, err := srv.tokenRepo.ListTokens(ctx, workspaceID, platform)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tokens")
	}

	summaries := make([]entity.TokenSummary, 0, len(tokens))
	for _, token := range tokens {
		summaries = append(summaries, token.Summary())
	}

	return summaries, nil
}

func (srv *accountService) DeleteToken(ctx context.Context, workspaceID uuid.UUID, platform entity.Platform, externalAccountID, owner string) error {
	externalAccountID = strings.TrimSpace(externalAccountID)
	if externalAccountID == "" {
		return domainerrors.ErrValidation.WithMessage("external_account_id is required")
	}

	if err := srv.authorizeWorkspace(ctx, workspaceID, owner); err != nil {
		return err
	}

	if err := srv.tokenRepo.DeleteToken(ctx, workspaceID, platform, externalAccountID); err != nil {
		return errors.Wrap(err, "failed to delete token")
	}

	srv.log(ctx).Info("Token unlinked",
		slog.String("folder_id", workspaceID.String()),
		slog.String("platform", platform.String()),
	)

	return nil
}
