package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/repository"
	"multipost/internal/domain/service"
	"multipost/internal/errors"
	"multipost/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// publishService implements the PublishUsecase interface.
type publishService struct {
	registry    service.ProviderRegistry
	accountRepo repository.AccountRepository
	tokenRepo   repository.TokenRepository
	logger      *slog.Logger
}

// PublishServiceParams holds dependencies for PublishService, injected by Fx.
type PublishServiceParams struct {
	fx.In

	Registry    service.ProviderRegistry
	AccountRepo repository.AccountRepository
	TokenRepo   repository.TokenRepository
	Logger      *slog.Logger
}

// NewPublishService is the constructor for publishService.
func NewPublishService(params PublishServiceParams) usecase.PublishUsecase {
	return &publishService{
		registry:    params.Registry,
		accountRepo: params.AccountRepo,
		tokenRepo:   params.TokenRepo,
		logger:      params.Logger,
	}
}

func (srv *publishService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Publish resolves the credential, canonical first, and forwards the
// payload to the platform adapter.
func (srv *publishService) Publish(ctx context.Context, input *usecase.PublishInput) (json.RawMessage, error) {
	adapter, ok := srv.registry.Adapter(input.Platform)
	if !ok {
		return nil, domainerrors.ErrUnsupportedPlatform.WithDetails(input.Platform.String())
	}

	accessToken, source, err := srv.resolveCredential(ctx, input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Publishing video",
		slog.String("platform", input.Platform.String()),
		slog.String("credential", source),
	)

	ack, err := adapter.Publish(ctx, accessToken, &input.Request)
	if err != nil {
		srv.log(ctx).Warn("Publish failed", slog.String("platform", input.Platform.String()), slog.Any("error", err))

		return nil, err
	}

	return ack, nil
}

func (srv *publishService) resolveCredential(ctx context.Context, input *usecase.PublishInput) (string, string, error) {
	token, err := srv.findCanonical(ctx, input)
	if err != nil {
		return "", "", err
	}
	if token != nil {
		return token.AccessToken, "token", nil
	}

	account, err := srv.findLegacy(ctx, input)
	if err != nil {
		return "", "", err
	}
	if account != nil {
		return account.AccessToken, "account", nil
	}

	return "", "", domainerrors.ErrCredentialNotFound.WithDetails(input.Platform.String())
}

// findCanonical needs all of folder, external account and platform.
func (srv *publishService) findCanonical(ctx context.Context, input *usecase.PublishInput) (*entity.Token, error) {
	externalAccountID := strings.TrimSpace(input.ExternalAccountID)
	if externalAccountID == "" {
		return nil, nil
	}

	workspaceID, err := uuid.Parse(strings.TrimSpace(input.WorkspaceID))
	if err != nil {
		return nil, nil
	}

	token, err := srv.tokenRepo.FindToken(ctx, workspaceID, input.Platform, externalAccountID)
	if errors.Is(err, repository.ErrTokenNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find token")
	}
	if token.AccessToken == "" {
		return nil, nil
	}

	return token, nil
}

// findLegacy only accepts an account linked to the requested platform.
func (srv *publishService) findLegacy(ctx context.Context, input *usecase.PublishInput) (*entity.Account, error) {
	accountID, err := uuid.Parse(strings.TrimSpace(input.LegacyAccountID))
	if err != nil {
		return nil, nil
	}

	account, err := srv.accountRepo.FindAccountByID(ctx, accountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}
	if account.Platform != input.Platform || account.AccessToken == "" {
		return nil, nil
	}

	return account, nil
}
