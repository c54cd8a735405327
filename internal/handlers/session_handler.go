// internal/handlers/session_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_fit_keep/internal/middleware"
	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/service"
	"go_5_fit_keep/internal/webutil"

	"github.com/google/uuid"
)

// SessionHandler は画面選択状態（ドリルダウンナビゲーション）のAPIです
type SessionHandler struct {
	service service.SessionService
	logger  *slog.Logger
}

func NewSessionHandler(s service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		service: s,
		logger:  logger,
	}
}

// sessionCall は全アクション共通の認証→実行→応答の流れをまとめたヘルパー
func (h *SessionHandler) sessionCall(w http.ResponseWriter, r *http.Request, name string, fn func(userID uuid.UUID) (*model.SessionState, error)) {
	logger := h.logger.With(slog.String("handler", name))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	state, err := fn(userID)
	if err != nil {
		logger.Warn("Session action failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, state)
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.sessionCall(w, r, "GetSession", func(userID uuid.UUID) (*model.SessionState, error) {
		return h.service.GetSession(r.Context(), userID)
	})
}

func (h *SessionHandler) SelectProgram(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SelectProgram"))
	var req model.SelectProgramRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}
	h.sessionCall(w, r, "SelectProgram", func(userID uuid.UUID) (*model.SessionState, error) {
		return h.service.SelectProgram(r.Context(), userID, req.ProgramID)
	})
}

func (h *SessionHandler) StartProgram(w http.ResponseWriter, r *http.Request) {
	h.sessionCall(w, r, "StartProgram", func(userID uuid.UUID) (*model.SessionState, error) {
		return h.service.StartProgram(r.Context(), userID)
	})
}

func (h *SessionHandler) SelectWeek(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SelectWeek"))
	var req model.SelectWeekRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}
	h.sessionCall(w, r, "SelectWeek", func(userID uuid.UUID) (*model.SessionState, error) {
		return h.service.SelectWeek(r.Context(), userID, req.WeekID)
	})
}

func (h *SessionHandler) SelectDay(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SelectDay"))
	var req model.SelectDayRequest
	if !bindJSON(w, r, logger, &req) {
		return
	}
	h.sessionCall(w, r, "SelectDay", func(userID uuid.UUID) (*model.SessionState, error) {
		return h.service.SelectDay(r.Context(), userID, req.DayID)
	})
}

func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.sessionCall(w, r, "Back", func(userID uuid.UUID) (*model.SessionState, error) {
		return h.service.Back(r.Context(), userID)
	})
}

func (h *SessionHandler) OpenCalendar(w http.ResponseWriter, r *http.Request) {
	h.sessionCall(w, r, "OpenCalendar", func(userID uuid.UUID) (*model.SessionState, error) {
		return h.service.OpenCalendar(r.Context(), userID)
	})
}

func (h *SessionHandler) CloseCalendar(w http.ResponseWriter, r *http.Request) {
	h.sessionCall(w, r, "CloseCalendar", func(userID uuid.UUID) (*model.SessionState, error) {
		return h.service.CloseCalendar(r.Context(), userID)
	})
}
