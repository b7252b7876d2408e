package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/entitystore"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/kv"
	appointmentsService "github.com/m04kA/SMC-ReservationService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-ReservationService/internal/service/catalog"
	bookAppointmentUC "github.com/m04kA/SMC-ReservationService/internal/usecase/book_appointment"
	cancelAppointmentUC "github.com/m04kA/SMC-ReservationService/internal/usecase/cancel_appointment"
	listSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/list_slots"
	"github.com/m04kA/SMC-ReservationService/pkg/idgen"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Открываем бэкенд хранилища
	openCtx, cancelOpen := context.WithTimeout(context.Background(), 30*time.Second)
	backend, err := storage.Open(openCtx, cfg.Storage)
	cancelOpen()
	if err != nil {
		log.Fatal("Failed to open storage (driver=%s): %v", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Error("Failed to close storage: %v", err)
		}
	}()
	log.Info("Storage opened (driver=%s)", cfg.Storage.Driver)

	// Хранилище сущностей (с метриками или без)
	var store *entitystore.Store
	if cfg.Metrics.Enabled {
		var instrumented kv.Backend = storage.Instrument(backend, cfg.Storage.Driver, metricsCollector)
		store = entitystore.NewStore(instrumented, metricsCollector, log)
		log.Info("Storage metrics collection started")
	} else {
		store = entitystore.NewStore(backend, nil, log)
	}

	ids := idgen.New()

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(store, ids, log)
	appointmentsSvc := appointmentsService.NewService(store, log)

	// Инициализируем use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(store, ids, log)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(store, ids, log)
	listSlotsUseCase := listSlotsUC.NewUseCase(store, log)

	deps := api.Dependencies{
		Catalog:           catalogSvc,
		Appointments:      appointmentsSvc,
		BookAppointment:   bookAppointmentUseCase,
		CancelAppointment: cancelAppointmentUseCase,
		ListSlots:         listSlotsUseCase,
		Logger:            log,
		MetricsPath:       cfg.Metrics.Path,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metricsCollector
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r := api.NewRouter(deps)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
