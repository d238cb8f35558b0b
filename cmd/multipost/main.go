package main

import (
	"context"
	"log/slog"
	"os"

	"multipost/config"
	"multipost/internal/delivery"
	"multipost/internal/delivery/api"
	"multipost/internal/delivery/api/router/handler"
	"multipost/internal/infra/auth"
	"multipost/internal/infra/generative"
	logs "multipost/internal/infra/log"
	"multipost/internal/infra/persistence/postgres"
	"multipost/internal/infra/provider"
	"multipost/internal/infra/provider/facebook"
	"multipost/internal/infra/provider/tiktok"
	"multipost/internal/infra/provider/youtube"
	"multipost/internal/infra/pubsub"
	"multipost/internal/infra/secrets"
	"multipost/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectProvider(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewWorkspaceRepository,
			postgres.NewAccountRepository,
			postgres.NewTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewStateCodec,
			secrets.NewTokenCipher,
			generative.NewTextGenerator,
		),
	)
}

func injectProvider() fx.Option {
	return fx.Options(
		fx.Provide(
			provider.NewHTTPClient,
			provider.NewRegistry,
			fx.Annotate(
				youtube.New,
				fx.ResultTags(`group:"providers"`),
			),
			fx.Annotate(
				tiktok.New,
				fx.ResultTags(`group:"providers"`),
			),
			fx.Annotate(
				facebook.New,
				fx.ResultTags(`group:"providers"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewWorkspaceService,
			impl.NewAccountService,
			impl.NewOAuthService,
			impl.NewPublishService,
			impl.NewSEOService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewFolderHandler,
			handler.NewAccountHandler,
			handler.NewAuthHandler,
			handler.NewPublishHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
