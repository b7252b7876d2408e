package domain

import "time"

// Client holds the contact details of the person who booked an appointment
type Client struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Appointment represents a confirmed booking that consumed one slot.
// StartTime and DurationMinutes are a snapshot of the slot terms at booking time,
// nil when the slot had already vanished from the pool.
type Appointment struct {
	ID              string     `json:"id"`
	ProfessionalID  string     `json:"professionalId"`
	SlotID          string     `json:"slotId"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	Client          Client     `json:"client"`
}

// HasTerms returns true if the appointment carries the booked slot terms
func (a *Appointment) HasTerms() bool {
	return a.StartTime != nil && a.DurationMinutes != nil
}

// ReleasedSlot builds the slot that becomes available again when the appointment is cancelled.
// The slot identity is not preserved: the caller supplies a fresh id.
// Missing terms are released as zero values.
func (a *Appointment) ReleasedSlot(id string) Slot {
	slot := Slot{
		ID:             id,
		ProfessionalID: a.ProfessionalID,
	}
	if a.StartTime != nil {
		slot.StartTime = *a.StartTime
	}
	if a.DurationMinutes != nil {
		slot.DurationMinutes = *a.DurationMinutes
	}
	return slot
}
