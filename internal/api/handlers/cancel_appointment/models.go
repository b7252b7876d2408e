package cancel_appointment

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	cancelAppointment "github.com/m04kA/SMC-ReservationService/internal/usecase/cancel_appointment"
)

// CancelAppointmentResponse HTTP ответ на отмену
type CancelAppointmentResponse struct {
	Cancelled    bool         `json:"cancelled"`
	ReleasedSlot *domain.Slot `json:"releasedSlot,omitempty"`
}

// FromUseCaseResult конвертирует результат use case в HTTP ответ
func FromUseCaseResult(res *cancelAppointment.Result) CancelAppointmentResponse {
	return CancelAppointmentResponse{
		Cancelled:    res.Cancelled,
		ReleasedSlot: res.ReleasedSlot,
	}
}
