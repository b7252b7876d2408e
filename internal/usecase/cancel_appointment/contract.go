package cancel_appointment

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/entitystore"
)

// EntityStore интерфейс хранилища коллекций
type EntityStore interface {
	Mutate(ctx context.Context, fn func(*entitystore.Snapshot) error) error
}

// IDGenerator интерфейс генератора идентификаторов
type IDGenerator interface {
	New() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
