package domain

import "time"

// Slot represents an offerable, not yet booked interval of a professional's calendar.
// A slot is either present in the slot collection (available) or consumed by exactly
// one appointment; it is never marked, only inserted or removed.
type Slot struct {
	ID              string    `json:"id"`
	ProfessionalID  string    `json:"professionalId"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
}

// BelongsTo returns true if the slot is offered by the given professional
func (s *Slot) BelongsTo(professionalID string) bool {
	return professionalID != "" && s.ProfessionalID == professionalID
}
