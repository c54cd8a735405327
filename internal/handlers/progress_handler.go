// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_fit_keep/internal/middleware"
	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/service"
	"go_5_fit_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ProgressHandler struct {
	service service.TrackerService
	logger  *slog.Logger
}

func NewProgressHandler(s service.TrackerService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// progressKeyFromRequest はURLパスから進捗キーを組み立てます
func progressKeyFromRequest(r *http.Request) model.ProgressKey {
	return model.ProgressKey{
		ProgramID: chi.URLParam(r, "programID"),
		WeekID:    chi.URLParam(r, "weekID"),
		DayID:     chi.URLParam(r, "dayID"),
	}
}

// GetDayProgress は1日分の進捗ビューを返すハンドラ
func (h *ProgressHandler) GetDayProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDayProgress"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	dp, err := h.service.GetDayProgress(r.Context(), userID, progressKeyFromRequest(r))
	if err != nil {
		logger.Error("Error getting day progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, dp)
}

// ToggleExercise は種目チェックのトグルを行うハンドラ
func (h *ProgressHandler) ToggleExercise(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ToggleExercise"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.ToggleExerciseRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	dp, err := h.service.ToggleExercise(r.Context(), userID, progressKeyFromRequest(r), req.ExerciseID)
	if err != nil {
		logger.Warn("Error toggling exercise in service", slog.Any("error", err), slog.String("exercise_id", req.ExerciseID))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, dp)
}

// AddNote は進捗レコードへのメモ追記を行うハンドラ
func (h *ProgressHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AddNote"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.AddNoteRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}

	dp, err := h.service.AddNote(r.Context(), userID, progressKeyFromRequest(r), &req)
	if err != nil {
		logger.Warn("Error adding note in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, dp)
}

// CompleteDay は1日分の進捗を確定（ロック）するハンドラ
func (h *ProgressHandler) CompleteDay(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CompleteDay"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	dp, err := h.service.CompleteDay(r.Context(), userID, progressKeyFromRequest(r))
	if err != nil {
		logger.Warn("Error completing day in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Day completed", slog.String("key", progressKeyFromRequest(r).String()))
	webutil.RespondWithJSON(w, http.StatusOK, dp)
}

// GetWeekStatus は週単位の進捗集計を返すハンドラ
func (h *ProgressHandler) GetWeekStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWeekStatus"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	ws, err := h.service.WeekStatus(r.Context(), userID, chi.URLParam(r, "programID"), chi.URLParam(r, "weekID"))
	if err != nil {
		logger.Error("Error getting week status in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, ws)
}

// GetProgramStatus はプログラム単位の進捗集計を返すハンドラ
func (h *ProgressHandler) GetProgramStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgramStatus"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	ps, err := h.service.ProgramStatus(r.Context(), userID, chi.URLParam(r, "programID"))
	if err != nil {
		logger.Error("Error getting program status in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, ps)
}
