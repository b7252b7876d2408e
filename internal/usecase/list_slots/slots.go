package list_slots

import (
	"sort"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// slotsOf отбирает слоты специалиста и сортирует их по времени начала
// При равном времени сохраняется порядок вставки
func slotsOf(slots []domain.Slot, professionalID string) []domain.Slot {
	result := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.BelongsTo(professionalID) {
			result = append(result, slot)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result
}
