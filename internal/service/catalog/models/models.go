package models

import "time"

// RegisterProfessionalRequest данные нового специалиста
// Поля не валидируются, уникальность не проверяется
type RegisterProfessionalRequest struct {
	Name          string
	LicenseNumber string
	Specialty     string
	Email         string
}

// OfferSlotRequest данные нового слота
type OfferSlotRequest struct {
	ProfessionalID  string
	StartTime       time.Time
	DurationMinutes int
}
