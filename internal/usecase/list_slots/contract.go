package list_slots

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/entitystore"
)

// EntityStore интерфейс хранилища коллекций
type EntityStore interface {
	View(ctx context.Context) *entitystore.Snapshot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
