package integration

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/entitystore"
	"github.com/m04kA/SMC-ReservationService/internal/service/appointments"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog"
	catalogModels "github.com/m04kA/SMC-ReservationService/internal/service/catalog/models"
	bookAppointment "github.com/m04kA/SMC-ReservationService/internal/usecase/book_appointment"
	cancelAppointment "github.com/m04kA/SMC-ReservationService/internal/usecase/cancel_appointment"
	listSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/list_slots"
	"github.com/m04kA/SMC-ReservationService/pkg/idgen"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

var (
	scenarioStart = time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	scenarioCli   = domain.Client{Name: "X", Email: "x@x.com", Phone: "123"}
)

// engine связывает все операции бронирования поверх одного хранилища
type engine struct {
	store        *entitystore.Store
	catalog      *catalog.Service
	appointments *appointments.Service
	book         *bookAppointment.UseCase
	cancel       *cancelAppointment.UseCase
	slots        *listSlots.UseCase
}

func newEngine(t *testing.T, cfg config.StorageConfig) *engine {
	t.Helper()
	backend, err := storage.Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	log := logger.NewNop()
	store := entitystore.NewStore(backend, nil, log)
	ids := idgen.New()
	return &engine{
		store:        store,
		catalog:      catalog.NewService(store, ids, log),
		appointments: appointments.NewService(store, log),
		book:         bookAppointment.NewUseCase(store, ids, log),
		cancel:       cancelAppointment.NewUseCase(store, ids, log),
		slots:        listSlots.NewUseCase(store, log),
	}
}

func backends(t *testing.T) map[string]config.StorageConfig {
	dir := t.TempDir()
	srv := miniredis.RunT(t)
	return map[string]config.StorageConfig{
		config.DriverMemory: {Driver: config.DriverMemory},
		config.DriverFilesystem: {
			Driver:     config.DriverFilesystem,
			Filesystem: config.FilesystemConfig{Root: filepath.Join(dir, "fs")},
		},
		config.DriverSQLite: {
			Driver: config.DriverSQLite,
			SQLite: config.SQLiteConfig{Path: filepath.Join(dir, "reservations.db")},
		},
		config.DriverRedis: {
			Driver: config.DriverRedis,
			Redis:  config.RedisConfig{Addr: srv.Addr(), Prefix: "it"},
		},
	}
}

func (e *engine) listSlots(t *testing.T, professionalID string) []domain.Slot {
	t.Helper()
	slots, err := e.slots.Execute(context.Background(), professionalID)
	require.NoError(t, err)
	return slots
}

func (e *engine) assertNoDoubleBooking(t *testing.T) {
	t.Helper()
	snap := e.store.View(context.Background())
	for _, a := range snap.Appointments() {
		_, stillOffered := snap.FindSlot(a.SlotID)
		assert.False(t, stillOffered, "slot %s is both offered and booked by %s", a.SlotID, a.ID)
	}
}

func TestReservationScenarios(t *testing.T) {
	for name, cfg := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			e := newEngine(t, cfg)

			// A: специалист и один слот
			p1, err := e.catalog.RegisterProfessional(ctx, &catalogModels.RegisterProfessionalRequest{
				Name: "P1", LicenseNumber: "L-1", Specialty: "Psychology", Email: "p1@x.com",
			})
			require.NoError(t, err)
			s1, err := e.catalog.OfferSlot(ctx, &catalogModels.OfferSlotRequest{
				ProfessionalID: p1.ID, StartTime: scenarioStart, DurationMinutes: 60,
			})
			require.NoError(t, err)

			slots := e.listSlots(t, p1.ID)
			require.Len(t, slots, 1)
			assert.Equal(t, s1.ID, slots[0].ID)

			// B: запись на слот
			appt, err := e.book.Execute(ctx, &bookAppointment.Request{ProfessionalID: p1.ID, SlotID: s1.ID, Client: scenarioCli})
			require.NoError(t, err)
			assert.Empty(t, e.listSlots(t, p1.ID))
			e.assertNoDoubleBooking(t)

			views, err := e.appointments.ListAppointments(ctx)
			require.NoError(t, err)
			require.Len(t, views, 1)
			require.NotNil(t, views[0].StartTime)
			assert.True(t, scenarioStart.Equal(*views[0].StartTime))
			assert.Equal(t, 60, *views[0].DurationMinutes)

			// C: отмена возвращает слот под новым ID
			res, err := e.cancel.Execute(ctx, appt.ID)
			require.NoError(t, err)
			require.True(t, res.Cancelled)

			views, err = e.appointments.ListAppointments(ctx)
			require.NoError(t, err)
			assert.Empty(t, views)

			slots = e.listSlots(t, p1.ID)
			require.Len(t, slots, 1)
			assert.True(t, scenarioStart.Equal(slots[0].StartTime))
			assert.Equal(t, 60, slots[0].DurationMinutes)
			assert.NotEqual(t, s1.ID, slots[0].ID)

			// D: пустой выбор отклоняется без изменений
			before := e.store.View(ctx)
			_, err = e.book.Execute(ctx, &bookAppointment.Request{Client: scenarioCli})
			require.ErrorIs(t, err, bookAppointment.ErrValidation)
			after := e.store.View(ctx)
			assert.Equal(t, before.Slots(), after.Slots())
			assert.Equal(t, before.Appointments(), after.Appointments())

			// E: несуществующий слот, запись без условий
			ghost, err := e.book.Execute(ctx, &bookAppointment.Request{ProfessionalID: p1.ID, SlotID: "nonexistent-id", Client: scenarioCli})
			require.NoError(t, err)
			assert.Nil(t, ghost.StartTime)
			assert.Nil(t, ghost.DurationMinutes)
			assert.Equal(t, slots, e.listSlots(t, p1.ID))
			e.assertNoDoubleBooking(t)
		})
	}
}

func TestReservation_OrderingAndWithdrawal(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, config.StorageConfig{Driver: config.DriverMemory})

	for _, hour := range []int{16, 9, 13, 11} {
		_, err := e.catalog.OfferSlot(ctx, &catalogModels.OfferSlotRequest{
			ProfessionalID: "p1",
			StartTime:      time.Date(2025, 1, 10, hour, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	slots := e.listSlots(t, "p1")
	require.Len(t, slots, 4)
	for i := 1; i < len(slots); i++ {
		assert.False(t, slots[i].StartTime.Before(slots[i-1].StartTime))
	}

	require.NoError(t, e.catalog.WithdrawSlot(ctx, slots[0].ID))
	once := e.listSlots(t, "p1")
	require.NoError(t, e.catalog.WithdrawSlot(ctx, slots[0].ID))
	assert.Equal(t, once, e.listSlots(t, "p1"))
	assert.Len(t, once, 3)
}

func TestReservation_ConcurrentBookingsNeverDoubleBook(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t, config.StorageConfig{Driver: config.DriverMemory})

	slot, err := e.catalog.OfferSlot(ctx, &catalogModels.OfferSlotRequest{
		ProfessionalID: "p1", StartTime: scenarioStart, DurationMinutes: 30,
	})
	require.NoError(t, err)

	const clients = 20
	var wg sync.WaitGroup
	results := make([]*domain.Appointment, clients)
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			appt, err := e.book.Execute(ctx, &bookAppointment.Request{ProfessionalID: "p1", SlotID: slot.ID, Client: scenarioCli})
			if err == nil {
				results[i] = appt
			}
		}(i)
	}
	wg.Wait()

	withTerms := 0
	for _, appt := range results {
		require.NotNil(t, appt)
		if appt.HasTerms() {
			withTerms++
		}
	}
	assert.Equal(t, 1, withTerms)
	assert.Empty(t, e.listSlots(t, "p1"))
	e.assertNoDoubleBooking(t)
}

func TestReservation_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := config.StorageConfig{
		Driver: config.DriverSQLite,
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "restart.db")},
	}

	first := newEngine(t, cfg)
	slot, err := first.catalog.OfferSlot(ctx, &catalogModels.OfferSlotRequest{
		ProfessionalID: "p1", StartTime: scenarioStart, DurationMinutes: 45,
	})
	require.NoError(t, err)
	_, err = first.book.Execute(ctx, &bookAppointment.Request{ProfessionalID: "p1", SlotID: slot.ID, Client: scenarioCli})
	require.NoError(t, err)

	second := newEngine(t, cfg)
	views, err := second.appointments.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 45, *views[0].DurationMinutes)
	assert.Empty(t, second.listSlots(t, "p1"))
}
