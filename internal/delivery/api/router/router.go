// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"multipost/config"
	"multipost/internal/delivery/api/middleware"
	"multipost/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FolderHandler  *handler.FolderHandler
	AccountHandler *handler.AccountHandler
	AuthHandler    *handler.AuthHandler
	PublishHandler *handler.PublishHandler
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	folderHandler  *handler.FolderHandler
	accountHandler *handler.AccountHandler
	authHandler    *handler.AuthHandler
	publishHandler *handler.PublishHandler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		folderHandler:  params.FolderHandler,
		accountHandler: params.AccountHandler,
		authHandler:    params.AuthHandler,
		publishHandler: params.PublishHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.GET("/get-folders", r.folderHandler.ListFolders)
		api.POST("/add-folder", r.folderHandler.AddFolder)
		api.POST("/rename-folder", r.folderHandler.RenameFolder)
		api.POST("/delete-folder", r.folderHandler.DeleteFolder)

		api.GET("/get-accounts", r.accountHandler.GetAccounts)
		api.POST("/delete-account", r.accountHandler.DeleteAccount)
		api.GET("/get-tokens", r.accountHandler.GetTokens)
		api.POST("/delete-token", r.accountHandler.DeleteToken)

		api.POST("/post-video", r.publishHandler.PostVideo)
		api.POST("/generate-seo", r.publishHandler.GenerateSEO)
	}

	// OAuth routes. A missing folder on authorize is a real 404.
	authGroup := api.Group("/auth")
	{
		authGroup.GET("/callback/:platform", r.authHandler.Callback)
		authGroup.GET("/:platform", r.authHandler.Authorize, middleware.AllowNotFound)
	}

	r.registerStatic(e)
}

// registerStatic serves the dashboard for every non-API path, or a plain
// banner at the root when no asset directory is configured.
func (r *router) registerStatic(e *echo.Echo) {
	if r.config.HTTP.StaticDir == "" {
		e.GET("/", handler.Root)

		return
	}

	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root:  r.config.HTTP.StaticDir,
		Index: "index.html",
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path

			return path == "/health" || path == "/api" || strings.HasPrefix(path, "/api/")
		},
	}))
}
