// internal/handlers/nutrition_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_5_fit_keep/internal/middleware"
	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/service"
	"go_5_fit_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type NutritionHandler struct {
	service service.NutritionService
	logger  *slog.Logger
}

func NewNutritionHandler(s service.NutritionService, logger *slog.Logger) *NutritionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NutritionHandler{
		service: s,
		logger:  logger,
	}
}

// dateFromRequest はURLの日付パラメータを検証して返します
func dateFromRequest(r *http.Request) (string, error) {
	isoDate := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", isoDate); err != nil {
		return "", model.NewAppError("INVALID_DATE", "日付は YYYY-MM-DD 形式で指定してください。", "date", model.ErrInvalidInput)
	}
	return isoDate, nil
}

// GetDailyLog は1日分の食事ログを返すハンドラ
func (h *NutritionHandler) GetDailyLog(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDailyLog"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	isoDate, err := dateFromRequest(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	log, err := h.service.GetDailyLog(r.Context(), userID, isoDate)
	if err != nil {
		logger.Error("Error getting daily log in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, log)
}

// PostMeal は食事を追加するハンドラ
func (h *NutritionHandler) PostMeal(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostMeal"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	isoDate, err := dateFromRequest(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PutMealRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	log, err := h.service.AddMeal(r.Context(), userID, isoDate, &req)
	if err != nil {
		logger.Warn("Error adding meal in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, log)
}

// PutMeal は食事全体を置き換えるハンドラ
func (h *NutritionHandler) PutMeal(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutMeal"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	isoDate, err := dateFromRequest(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	mealID, err := uuid.Parse(chi.URLParam(r, "mealID"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_MEAL_ID", "食事IDの形式が正しくありません。", "meal_id", model.ErrInvalidInput))
		return
	}

	var req model.PutMealRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	log, err := h.service.ReplaceMeal(r.Context(), userID, isoDate, mealID, &req)
	if err != nil {
		logger.Warn("Error replacing meal in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, log)
}

// DeleteMeal は食事を削除するハンドラ
func (h *NutritionHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteMeal"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	isoDate, err := dateFromRequest(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	mealID, err := uuid.Parse(chi.URLParam(r, "mealID"))
	if err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_MEAL_ID", "食事IDの形式が正しくありません。", "meal_id", model.ErrInvalidInput))
		return
	}

	log, err := h.service.DeleteMeal(r.Context(), userID, isoDate, mealID)
	if err != nil {
		logger.Warn("Error deleting meal in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, log)
}

// GetTargets は目標カロリーとPFCを返すハンドラ
func (h *NutritionHandler) GetTargets(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTargets"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	targets, err := h.service.Targets(r.Context(), userID)
	if err != nil {
		logger.Error("Error calculating targets in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, targets)
}
