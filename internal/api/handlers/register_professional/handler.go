package register_professional

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	professional, err := h.service.RegisterProfessional(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.logger.Error("POST /professionals - Failed to register professional: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /professionals - Professional registered: professional_id=%s", professional.ID)
	handlers.RespondJSON(w, http.StatusCreated, professional)
}
