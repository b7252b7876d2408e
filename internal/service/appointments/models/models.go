package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// AppointmentView запись вместе с данными специалиста
type AppointmentView struct {
	ID              string               `json:"id"`
	ProfessionalID  string               `json:"professionalId"`
	SlotID          string               `json:"slotId"`
	StartTime       *time.Time           `json:"startTime,omitempty"`
	DurationMinutes *int                 `json:"durationMinutes,omitempty"`
	Client          domain.Client        `json:"client"`
	Professional    *domain.Professional `json:"professional"` // nil, если специалист удален из каталога
}

// FromDomainAppointment конвертирует domain модель в view
func FromDomainAppointment(a domain.Appointment, professional *domain.Professional) AppointmentView {
	return AppointmentView{
		ID:              a.ID,
		ProfessionalID:  a.ProfessionalID,
		SlotID:          a.SlotID,
		StartTime:       a.StartTime,
		DurationMinutes: a.DurationMinutes,
		Client:          a.Client,
		Professional:    professional,
	}
}
