package register_professional

import "github.com/m04kA/SMC-ReservationService/internal/service/catalog/models"

// RegisterProfessionalRequest HTTP запрос на регистрацию специалиста
type RegisterProfessionalRequest struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	Specialty     string `json:"specialty"`
	Email         string `json:"email"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterProfessionalRequest) ToServiceRequest() *models.RegisterProfessionalRequest {
	return &models.RegisterProfessionalRequest{
		Name:          r.Name,
		LicenseNumber: r.LicenseNumber,
		Specialty:     r.Specialty,
		Email:         r.Email,
	}
}
