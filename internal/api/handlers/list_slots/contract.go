package list_slots

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type ListSlotsUseCase interface {
	Execute(ctx context.Context, professionalID string) ([]domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
