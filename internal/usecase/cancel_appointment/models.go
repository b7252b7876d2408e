package cancel_appointment

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// Result результат отмены
type Result struct {
	Cancelled    bool         // false, если запись с таким ID не найдена
	ReleasedSlot *domain.Slot // Слот, возвращённый в свободные, nil если отмены не было
}
