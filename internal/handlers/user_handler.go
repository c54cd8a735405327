// internal/handlers/user_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_fit_keep/internal/middleware"
	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/service"
	"go_5_fit_keep/internal/webutil"
)

type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

func NewUserHandler(s service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		service: s,
		logger:  logger,
	}
}

// RegisterResponse は登録APIのレスポンス（プロフィール + アクセストークン）
type RegisterResponse struct {
	User  *model.UserResponse `json:"user"`
	Token string              `json:"token"`
}

// Register は新規ユーザー登録のハンドラ（認証不要）
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Register"))

	var req model.CreateUserRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	user, token, err := h.service.Register(r.Context(), &req)
	if err != nil {
		logger.Warn("Error registering user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User registered successfully", slog.String("user_id", user.UserID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, RegisterResponse{User: user.ToResponse(), Token: token})
}

// GetMe は認証済みユーザー自身のプロフィールを返すハンドラ
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMe"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		logger.Warn("Error getting user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, user.ToResponse())
}

// PatchMe はプロフィールの部分更新を行うハンドラ
func (h *UserHandler) PatchMe(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchMe"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchUserRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		logger.Warn("Error updating user in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, user.ToResponse())
}
