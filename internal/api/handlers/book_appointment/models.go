package book_appointment

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookAppointment "github.com/m04kA/SMC-ReservationService/internal/usecase/book_appointment"
)

// BookAppointmentRequest HTTP запрос на запись
type BookAppointmentRequest struct {
	ProfessionalID string        `json:"professionalId"`
	SlotID         string        `json:"slotId"`
	Client         ClientRequest `json:"client"`
}

type ClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest() *bookAppointment.Request {
	return &bookAppointment.Request{
		ProfessionalID: r.ProfessionalID,
		SlotID:         r.SlotID,
		Client: domain.Client{
			Name:  r.Client.Name,
			Email: r.Client.Email,
			Phone: r.Client.Phone,
		},
	}
}
