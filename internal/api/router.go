// Package api собирает HTTP маршруты сервиса
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookAppointmentHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/cancel_appointment"
	getProfessionalHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_professional"
	listAppointmentsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_appointments"
	listProfessionalsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_professionals"
	listSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_slots"
	offerSlotHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/offer_slot"
	registerProfessionalHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/register_professional"
	resetAllHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/reset_all"
	withdrawSlotHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/withdraw_slot"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/service/appointments"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog"
	bookAppointmentUC "github.com/m04kA/SMC-ReservationService/internal/usecase/book_appointment"
	cancelAppointmentUC "github.com/m04kA/SMC-ReservationService/internal/usecase/cancel_appointment"
	listSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/list_slots"
)

// APIPrefix префикс всех маршрутов API
const APIPrefix = "/api/v1"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dependencies сервисы и use case, из которых собираются обработчики
type Dependencies struct {
	Catalog           *catalog.Service
	Appointments      *appointments.Service
	BookAppointment   *bookAppointmentUC.UseCase
	CancelAppointment *cancelAppointmentUC.UseCase
	ListSlots         *listSlotsUC.UseCase
	Logger            Logger

	// Metrics nil отключает middleware и endpoint метрик
	Metrics     middleware.HTTPMetrics
	MetricsPath string
}

// NewRouter создает роутер со всеми маршрутами API
func NewRouter(deps Dependencies) *mux.Router {
	log := deps.Logger

	registerProfessional := registerProfessionalHandler.NewHandler(deps.Catalog, log)
	listProfessionals := listProfessionalsHandler.NewHandler(deps.Catalog, log)
	getProfessional := getProfessionalHandler.NewHandler(deps.Catalog, log)
	offerSlot := offerSlotHandler.NewHandler(deps.Catalog, log)
	withdrawSlot := withdrawSlotHandler.NewHandler(deps.Catalog, log)
	resetAll := resetAllHandler.NewHandler(deps.Catalog, log)
	listSlots := listSlotsHandler.NewHandler(deps.ListSlots, log)
	bookAppointment := bookAppointmentHandler.NewHandler(deps.BookAppointment, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(deps.CancelAppointment, log)
	listAppointments := listAppointmentsHandler.NewHandler(deps.Appointments, log)

	r := mux.NewRouter()

	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
		r.Handle(deps.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix(APIPrefix).Subrouter()

	// --- Специалисты ---
	api.HandleFunc("/professionals", registerProfessional.Handle).Methods(http.MethodPost)
	api.HandleFunc("/professionals", listProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}", getProfessional.Handle).Methods(http.MethodGet)

	// --- Слоты ---
	api.HandleFunc("/professionals/{professionalId}/slots", listSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", offerSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots/{slotId}", withdrawSlot.Handle).Methods(http.MethodDelete)

	// --- Записи ---
	api.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// --- Администрирование ---
	api.HandleFunc("/admin/reset", resetAll.Handle).Methods(http.MethodPost)

	return r
}
