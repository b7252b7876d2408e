package offer_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректное время начала, ожидается RFC 3339 или YYYY-MM-DDTHH:MM"
	msgSelectProfessional = "выберите специалиста"
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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req OfferSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /slots - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	slot, err := h.service.OfferSlot(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrValidation):
			h.logger.Warn("POST /slots - Professional not selected")
			handlers.RespondBadRequest(w, msgSelectProfessional)

		default:
			h.logger.Error("POST /slots - Failed to offer slot: professional_id=%s, error=%v", req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot offered: slot_id=%s, professional_id=%s", slot.ID, slot.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}
