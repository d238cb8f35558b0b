package handler

import (
	"log/slog"

	"multipost/internal/delivery/api/response"
	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler lists and unlinks stored credentials.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// GetAccountsRequest selects the folder whose legacy accounts are listed.
type GetAccountsRequest struct {
	FolderID string `query:"folder_id" validate:"required,uuid"`
	UserID   string `query:"user_id"`
	Owner    string `query:"owner"`
}

// DeleteAccountRequest identifies one legacy account row.
type DeleteAccountRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	UserID string `json:"user_id"`
	Owner  string `json:"owner"`
}

// GetTokensRequest selects canonical tokens, optionally for one platform.
type GetTokensRequest struct {
	FolderID string `query:"folder_id" validate:"required,uuid"`
	Platform string `query:"platform" validate:"omitempty,platform"`
	UserID   string `query:"user_id"`
	Owner    string `query:"owner"`
}

// DeleteTokenRequest identifies one canonical token.
type DeleteTokenRequest struct {
	FolderID          string `json:"folder_id" validate:"required,uuid"`
	Platform          string `json:"platform" validate:"required,platform"`
	ExternalAccountID string `json:"external_account_id" validate:"required"`
	UserID            string `json:"user_id"`
	Owner             string `json:"owner"`
}

// GetAccounts returns the legacy account rows of a folder.
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	var req GetAccountsRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	accounts, err := h.accountUC.ListAccounts(c.Request().Context(), parseID(req.FolderID), owner(req.UserID, req.Owner))
	if err != nil {
		return err
	}

	return response.Success(c, list(accounts))
}

// DeleteAccount unlinks one legacy account.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	var req DeleteAccountRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), parseID(req.ID), owner(req.UserID, req.Owner)); err != nil {
		return err
	}

	return response.Success(c, nil)
}

// GetTokens returns token summaries without credential material.
func (h *AccountHandler) GetTokens(c echo.Context) error {
	var req GetTokensRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	var platform *entity.Platform
	if req.Platform != "" {
		p, _ := entity.ParsePlatform(req.Platform)
		platform = &p
	}

	tokens, err := h.accountUC.ListTokens(c.Request().Context(), parseID(req.FolderID), platform, owner(req.UserID, req.Owner))
	if err != nil {
		return err
	}

	return response.Success(c, list(tokens))
}

// DeleteToken unlinks one canonical account.
func (h *AccountHandler) DeleteToken(c echo.Context) error {
	var req DeleteTokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	platform, ok := entity.ParsePlatform(req.Platform)
	if !ok {
		return domainerrors.ErrUnsupportedPlatform.WithDetails(req.Platform)
	}

	err := h.accountUC.DeleteToken(c.Request().Context(), parseID(req.FolderID), platform, req.ExternalAccountID, owner(req.UserID, req.Owner))
	if err != nil {
		return err
	}

	return response.Success(c, nil)
}
