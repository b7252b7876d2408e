package get_professional

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type CatalogService interface {
	GetProfessional(ctx context.Context, id string) (*domain.Professional, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
