package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"multipost/config"
	deliverycontext "multipost/internal/delivery/context"
	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/domain/repository"
	"multipost/internal/domain/service"
	"multipost/internal/errors"
	"multipost/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// oauthService implements the OAuthUsecase interface.
type oauthService struct {
	registry      service.ProviderRegistry
	codec         service.StateCodec
	workspaceRepo repository.WorkspaceRepository
	accountRepo   repository.AccountRepository
	tokenRepo     repository.TokenRepository
	publisher     service.EventPublisher
	tenancy       tenancy
	appURL        string
	landingPath   string
	now           func() time.Time
	logger        *slog.Logger
}

// OAuthServiceParams holds dependencies for OAuthService, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	Registry      service.ProviderRegistry
	Codec         service.StateCodec
	WorkspaceRepo repository.WorkspaceRepository
	AccountRepo   repository.AccountRepository
	TokenRepo     repository.TokenRepository
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOAuthService is the constructor for oauthService.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	return &oauthService{
		registry:      params.Registry,
		codec:         params.Codec,
		workspaceRepo: params.WorkspaceRepo,
		accountRepo:   params.AccountRepo,
		tokenRepo:     params.TokenRepo,
		publisher:     params.Publisher,
		tenancy:       newTenancy(params.Config),
		appURL:        params.Config.App.PublicBaseURL,
		landingPath:   params.Config.App.LandingPath,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *oauthService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *oauthService) stage(ctx context.Context, stage entity.LinkStage, platform entity.Platform, attrs ...any) {
	args := append([]any{slog.String("stage", string(stage)), slog.String("platform", platform.String())}, attrs...)
	if stage == entity.LinkStageFailed {
		srv.log(ctx).Warn("Account link stage", args...)

		return
	}
	srv.log(ctx).Info("Account link stage", args...)
}

func (srv *oauthService) adapter(platform entity.Platform) (service.ProviderAdapter, error) {
	adapter, ok := srv.registry.Adapter(platform)
	if !ok {
		return nil, domainerrors.ErrUnsupportedPlatform.WithDetails(platform.String())
	}

	return adapter, nil
}

// BeginLink validates the folder before any provider redirect is built.
func (srv *oauthService) BeginLink(ctx context.Context, platform entity.Platform, workspaceID, owner string) (string, error) {
	srv.stage(ctx, entity.LinkStageInitiated, platform, slog.String("folder_id", workspaceID))

	adapter, err := srv.adapter(platform)
	if err != nil {
		return "", err
	}

	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return "", domainerrors.ErrValidation.WithMessage("folder_id is required")
	}

	scope, err := srv.tenancy.scope(owner)
	if err != nil {
		return "", err
	}

	id, err := uuid.Parse(workspaceID)
	if err != nil {
		return "", domainerrors.ErrWorkspaceNotFound.WithDetails(workspaceID)
	}

	if _, err := findWorkspace(ctx, srv.workspaceRepo, id, scope); err != nil {
		return "", err
	}

	authURL, err := adapter.BuildAuthorizationURL(id)
	if err != nil {
		srv.stage(ctx, entity.LinkStageFailed, platform, slog.Any("error", err))

		return "", err
	}

	srv.stage(ctx, entity.LinkStageRedirected, platform, slog.String("folder_id", workspaceID))

	return authURL, nil
}

// CompleteLink runs the callback half of the flow. The route platform wins
// over a platform carried in the state.
func (srv *oauthService) CompleteLink(ctx context.Context, platform entity.Platform, params *usecase.CallbackParams) (string, error) {
	srv.stage(ctx, entity.LinkStageCallbackReceived, platform)

	adapter, err := srv.adapter(platform)
	if err != nil {
		return "", err
	}

	state := srv.codec.Decode(params.State)
	if state.Platform != nil && *state.Platform != platform {
		srv.log(ctx).Warn("State platform does not match callback route, using route platform",
			slog.String("state_platform", state.Platform.String()),
			slog.String("route_platform", platform.String()),
		)
	}

	if params.Error != "" {
		message := params.ErrorDescription
		if message == "" {
			message = params.Error
		}
		srv.stage(ctx, entity.LinkStageFailed, platform, slog.String("provider_error", params.Error))

		return "", domainerrors.NewProviderExchangeError(platform.String(), message, 0, nil)
	}

	if strings.TrimSpace(params.Code) == "" {
		return "", domainerrors.ErrValidation.WithMessage("authorization code is missing")
	}

	workspaceID, err := uuid.Parse(strings.TrimSpace(state.WorkspaceID))
	if err != nil {
		return "", domainerrors.ErrWorkspaceNotFound.WithDetails(state.WorkspaceID)
	}

	workspace, err := findWorkspace(ctx, srv.workspaceRepo, workspaceID, nil)
	if err != nil {
		return "", err
	}

	result, err := adapter.ExchangeCode(ctx, params.Code)
	if err != nil {
		srv.stage(ctx, entity.LinkStageFailed, platform, slog.Any("error", err))

		return "", err
	}
	srv.stage(ctx, entity.LinkStageExchanged, platform,
		slog.String("folder_id", workspaceID.String()),
		slog.Bool("has_identity", result.ExternalAccountID != ""),
	)

	if err := srv.persist(ctx, workspace, platform, result); err != nil {
		srv.stage(ctx, entity.LinkStageFailed, platform, slog.Any("error", err))

		return "", err
	}
	srv.stage(ctx, entity.LinkStagePersisted, platform, slog.String("folder_id", workspaceID.String()))

	srv.publishLinked(ctx, workspaceID, platform, result)

	redirect := srv.appURL + srv.landingPath + "?id=" + url.QueryEscape(workspaceID.String())
	srv.stage(ctx, entity.LinkStageRedirectedToApp, platform, slog.String("folder_id", workspaceID.String()))

	return redirect, nil
}

// persist writes the legacy account and the canonical token independently;
// both are attempted even when the first fails.
func (srv *oauthService) persist(ctx context.Context, workspace *entity.Workspace, platform entity.Platform, result *service.ExchangeResult) error {
	now := srv.now()

	var expiresAt *time.Time
	if result.ExpiresIn > 0 {
		t := now.Add(time.Duration(result.ExpiresIn) * time.Second)
		expiresAt = &t
	}

	account := &entity.Account{
		WorkspaceID:  workspace.ID,
		OwnerID:      workspace.OwnerID,
		Platform:     platform,
		Nickname:     result.Nickname,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}
	if expiresAt != nil {
		account.ExpiresAt = *expiresAt
	}

	token := &entity.Token{
		WorkspaceID:       workspace.ID,
		Platform:          platform,
		ExternalAccountID: result.ExternalAccountID,
		AccessToken:       result.AccessToken,
		RefreshToken:      result.RefreshToken,
		ExpiresAt:         expiresAt,
		Scope:             result.Scope,
	}

	accountErr := srv.accountRepo.CreateAccount(ctx, account)
	tokenErr := srv.tokenRepo.UpsertToken(ctx, token)

	if err := errors.Join(accountErr, tokenErr); err != nil {
		return domainerrors.NewPersistenceError(err, "failed to store linked account")
	}

	return nil
}

func (srv *oauthService) publishLinked(ctx context.Context, workspaceID uuid.UUID, platform entity.Platform, result *service.ExchangeResult) {
	event := &service.AccountLinkedEvent{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		WorkspaceID:       workspaceID.String(),
		Platform:          platform.String(),
		ExternalAccountID: result.ExternalAccountID,
		Nickname:          result.Nickname,
		LinkedAt:          srv.now().UTC(),
	}

	if err := srv.publisher.PublishAccountLinked(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account linked event",
			slog.String("folder_id", event.WorkspaceID),
			slog.Any("error", err),
		)
	}
}
