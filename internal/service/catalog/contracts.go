package catalog

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/entitystore"
)

// EntityStore интерфейс хранилища коллекций
type EntityStore interface {
	View(ctx context.Context) *entitystore.Snapshot
	Mutate(ctx context.Context, fn func(*entitystore.Snapshot) error) error
	ResetAll(ctx context.Context) error
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
