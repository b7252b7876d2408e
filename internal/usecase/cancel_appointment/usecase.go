package cancel_appointment

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/entitystore"
)

// UseCase use case отмены записи
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

// Execute отменяет запись и возвращает её условия в свободные слоты под новым ID
// Неизвестный ID записи не является ошибкой: состояние не меняется
func (uc *UseCase) Execute(ctx context.Context, appointmentID string) (*Result, error) {
	uc.logger.Info("CancelAppointment: appointment=%s", appointmentID)

	result := &Result{}
	err := uc.store.Mutate(ctx, func(snap *entitystore.Snapshot) error {
		appointment, found := snap.RemoveAppointment(appointmentID)
		if !found {
			return nil
		}

		released := appointment.ReleasedSlot(uc.ids.New())
		snap.AddSlot(released)

		result.Cancelled = true
		result.ReleasedSlot = &released
		return nil
	})
	if err != nil {
		uc.logger.Error("CancelAppointment: failed to persist cancellation of %s: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: persist: %v", ErrInternal, err)
	}

	if !result.Cancelled {
		uc.logger.Warn("CancelAppointment: appointment=%s not found, nothing to cancel", appointmentID)
		return result, nil
	}

	uc.logger.Info("CancelAppointment: appointment=%s cancelled, slot id=%s released",
		appointmentID, result.ReleasedSlot.ID)
	return result, nil
}
