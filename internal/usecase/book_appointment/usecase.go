package book_appointment

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/entitystore"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// UseCase use case записи клиента на слот
type UseCase struct {
	store  EntityStore
	ids    IDGenerator
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store EntityStore, ids IDGenerator, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		ids:    ids,
		logger: logger,
	}
}

// Execute создает запись и изымает слот из свободных одной мутацией хранилища
//
// Если слот уже отсутствует, запись все равно создается без времени и длительности,
// а коллекция слотов не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("BookAppointment: professional=%s, slot=%s", req.ProfessionalID, req.SlotID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	var appointment domain.Appointment
	err := uc.store.Mutate(ctx, func(snap *entitystore.Snapshot) error {
		appointment = domain.Appointment{
			ID:             uc.ids.New(),
			ProfessionalID: req.ProfessionalID,
			SlotID:         req.SlotID,
			Client:         req.Client,
		}

		slot, found := snap.FindSlot(req.SlotID)
		if found {
			appointment.StartTime = ptr.Ptr(slot.StartTime)
			appointment.DurationMinutes = ptr.Ptr(slot.DurationMinutes)
		} else {
			uc.logger.Warn("BookAppointment: slot=%s not found, booking without terms", req.SlotID)
		}

		snap.AddAppointment(appointment)
		snap.RemoveSlot(req.SlotID)
		return nil
	})
	if err != nil {
		uc.logger.Error("BookAppointment: failed to persist appointment for slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: persist: %v", ErrInternal, err)
	}

	uc.logger.Info("BookAppointment: appointment id=%s booked for slot=%s", appointment.ID, appointment.SlotID)
	return &appointment, nil
}
