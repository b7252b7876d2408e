package list_professionals

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

type CatalogService interface {
	ListProfessionals(ctx context.Context) ([]domain.Professional, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
