package handler

import (
	"log/slog"

	"multipost/internal/delivery/api/response"
	"multipost/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FolderHandlerParams holds dependencies for FolderHandler, injected by Fx.
type FolderHandlerParams struct {
	fx.In

	WorkspaceUC usecase.WorkspaceUsecase
	Logger      *slog.Logger
}

// FolderHandler serves folder (workspace) management.
type FolderHandler struct {
	workspaceUC usecase.WorkspaceUsecase
	logger      *slog.Logger
}

// NewFolderHandler is the constructor for FolderHandler
func NewFolderHandler(params FolderHandlerParams) *FolderHandler {
	return &FolderHandler{
		workspaceUC: params.WorkspaceUC,
		logger:      params.Logger,
	}
}

// ListFoldersRequest carries the caller identity.
type ListFoldersRequest struct {
	UserID string `query:"user_id"`
	Owner  string `query:"owner"`
}

// AddFolderRequest represents the request body for creating a folder
type AddFolderRequest struct {
	Name   string `json:"name" validate:"required"`
	UserID string `json:"user_id"`
	Owner  string `json:"owner"`
}

// RenameFolderRequest represents the request body for renaming a folder
type RenameFolderRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	Name   string `json:"name" validate:"required"`
	UserID string `json:"user_id"`
	Owner  string `json:"owner"`
}

// DeleteFolderRequest represents the request body for deleting a folder
type DeleteFolderRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	UserID string `json:"user_id"`
	Owner  string `json:"owner"`
}

// ListFolders returns the caller's folders.
func (h *FolderHandler) ListFolders(c echo.Context) error {
	var req ListFoldersRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	workspaces, err := h.workspaceUC.ListWorkspaces(c.Request().Context(), owner(req.UserID, req.Owner))
	if err != nil {
		return err
	}

	return response.Success(c, list(workspaces))
}

// AddFolder creates a folder.
func (h *FolderHandler) AddFolder(c echo.Context) error {
	var req AddFolderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	workspace, err := h.workspaceUC.CreateWorkspace(c.Request().Context(), req.Name, owner(req.UserID, req.Owner))
	if err != nil {
		return err
	}

	return response.Success(c, workspace)
}

// RenameFolder renames a folder the caller can see.
func (h *FolderHandler) RenameFolder(c echo.Context) error {
	var req RenameFolderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.workspaceUC.RenameWorkspace(c.Request().Context(), parseID(req.ID), req.Name, owner(req.UserID, req.Owner)); err != nil {
		return err
	}

	return response.Success(c, nil)
}

// DeleteFolder removes a folder with everything linked to it.
func (h *FolderHandler) DeleteFolder(c echo.Context) error {
	var req DeleteFolderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.workspaceUC.DeleteWorkspace(c.Request().Context(), parseID(req.ID), owner(req.UserID, req.Owner)); err != nil {
		return err
	}

	return response.Success(c, nil)
}
