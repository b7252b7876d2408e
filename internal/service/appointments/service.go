package appointments

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/appointments/models"
)

// Service сервис чтения записей
type Service struct {
	store  EntityStore
	logger Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(store EntityStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// ListAppointments возвращает записи в порядке создания
// Ссылка на отсутствующего специалиста не является ошибкой
func (s *Service) ListAppointments(ctx context.Context) ([]models.AppointmentView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := s.store.View(ctx)
	appointments := snap.Appointments()

	views := make([]models.AppointmentView, 0, len(appointments))
	dangling := 0
	for _, a := range appointments {
		var professional *domain.Professional
		if p, ok := snap.FindProfessional(a.ProfessionalID); ok {
			professional = &p
		} else {
			dangling++
		}
		views = append(views, models.FromDomainAppointment(a, professional))
	}

	if dangling > 0 {
		s.logger.Warn("ListAppointments: %d appointment(s) reference a removed professional", dangling)
	}
	return views, nil
}
