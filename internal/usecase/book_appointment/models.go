package book_appointment

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// Request модель запроса на запись
type Request struct {
	ProfessionalID string        // ID специалиста
	SlotID         string        // ID выбранного слота
	Client         domain.Client // Контактные данные клиента, не валидируются
}
