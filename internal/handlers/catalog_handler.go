// internal/handlers/catalog_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_fit_keep/internal/service"
	"go_5_fit_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler はワークアウトカタログとフードカタログの読み取りAPIです
type CatalogHandler struct {
	service service.CatalogService
	logger  *slog.Logger
}

func NewCatalogHandler(s service.CatalogService, logger *slog.Logger) *CatalogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogHandler{
		service: s,
		logger:  logger,
	}
}

func (h *CatalogHandler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListPrograms"))

	programs, err := h.service.ListPrograms(r.Context())
	if err != nil {
		logger.Error("Error listing programs in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, programs)
}

func (h *CatalogHandler) GetProgram(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgram"))

	program, err := h.service.GetProgram(r.Context(), chi.URLParam(r, "programID"))
	if err != nil {
		logger.Warn("Error getting program in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, program)
}

func (h *CatalogHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWeek"))

	week, err := h.service.GetWeek(r.Context(), chi.URLParam(r, "programID"), chi.URLParam(r, "weekID"))
	if err != nil {
		logger.Warn("Error getting week in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, week)
}

func (h *CatalogHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDay"))

	day, err := h.service.GetDay(r.Context(), chi.URLParam(r, "programID"), chi.URLParam(r, "weekID"), chi.URLParam(r, "dayID"))
	if err != nil {
		logger.Warn("Error getting day in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, day)
}

func (h *CatalogHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListFoods"))

	foods, err := h.service.ListFoods(r.Context())
	if err != nil {
		logger.Error("Error listing foods in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, foods)
}

func (h *CatalogHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetFood"))

	food, err := h.service.GetFood(r.Context(), chi.URLParam(r, "foodID"))
	if err != nil {
		logger.Warn("Error getting food in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, food)
}
