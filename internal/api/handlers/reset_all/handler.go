package reset_all

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/reset
// Подтверждение запрашивает клиент до вызова
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResetAll(r.Context()); err != nil {
		h.logger.Error("POST /admin/reset - Failed to reset data: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Warn("POST /admin/reset - All reservation data removed")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
