package list_slots

import (
	"context"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// UseCase use case получения свободных слотов специалиста
type UseCase struct {
	store  EntityStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store EntityStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute возвращает свободные слоты специалиста по возрастанию времени начала
// Для пустого или неизвестного ID возвращается пустой список
func (uc *UseCase) Execute(ctx context.Context, professionalID string) ([]domain.Slot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(professionalID) == "" {
		return []domain.Slot{}, nil
	}

	slots := slotsOf(uc.store.View(ctx).Slots(), professionalID)
	uc.logger.Info("ListSlots: professional=%s, found %d slot(s)", professionalID, len(slots))
	return slots, nil
}
