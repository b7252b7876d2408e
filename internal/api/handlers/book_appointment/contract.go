package book_appointment

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookAppointment "github.com/m04kA/SMC-ReservationService/internal/usecase/book_appointment"
)

type BookAppointmentUseCase interface {
	Execute(ctx context.Context, req *bookAppointment.Request) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
