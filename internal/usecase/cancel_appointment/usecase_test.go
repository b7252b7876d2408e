package cancel_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/entitystore"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/kv"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ReservationService/pkg/idgen"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

var start = time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

func seededStore(t *testing.T, appointments ...domain.Appointment) *entitystore.Store {
	t.Helper()
	store := entitystore.NewStore(memory.NewRepository(), nil, logger.NewNop())
	require.NoError(t, entitystore.Write(context.Background(), store, domain.CollectionAppointments, appointments))
	return store
}

func TestUseCase_ReleasesSlotWithFreshID(t *testing.T) {
	ctx := context.Background()
	appt := domain.Appointment{
		ID:              "a1",
		ProfessionalID:  "p1",
		SlotID:          "s1",
		StartTime:       ptr.Ptr(start),
		DurationMinutes: ptr.Ptr(60),
		Client:          domain.Client{Name: "X"},
	}
	store := seededStore(t, appt, domain.Appointment{ID: "a2", ProfessionalID: "p2", SlotID: "s9"})
	uc := NewUseCase(store, idgen.NewSequence("slot"), logger.NewNop())

	res, err := uc.Execute(ctx, "a1")
	require.NoError(t, err)
	require.True(t, res.Cancelled)

	want := domain.Slot{ID: "slot-1", ProfessionalID: "p1", StartTime: start, DurationMinutes: 60}
	assert.Equal(t, want, *res.ReleasedSlot)
	assert.NotEqual(t, appt.SlotID, res.ReleasedSlot.ID)

	snap := store.View(ctx)
	assert.Equal(t, []domain.Slot{want}, snap.Slots())
	require.Len(t, snap.Appointments(), 1)
	assert.Equal(t, "a2", snap.Appointments()[0].ID)
}

func TestUseCase_UnknownAppointmentIsNoop(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t, domain.Appointment{ID: "a1", ProfessionalID: "p1", SlotID: "s1"})
	uc := NewUseCase(store, idgen.NewSequence("slot"), logger.NewNop())

	res, err := uc.Execute(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, res.Cancelled)
	assert.Nil(t, res.ReleasedSlot)

	snap := store.View(ctx)
	assert.Empty(t, snap.Slots())
	assert.Len(t, snap.Appointments(), 1)
}

func TestUseCase_AppointmentWithoutTermsReleasesZeroTerms(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t, domain.Appointment{ID: "a1", ProfessionalID: "p1", SlotID: "gone"})
	uc := NewUseCase(store, idgen.NewSequence("slot"), logger.NewNop())

	res, err := uc.Execute(ctx, "a1")
	require.NoError(t, err)
	require.True(t, res.Cancelled)
	assert.True(t, res.ReleasedSlot.StartTime.IsZero())
	assert.Zero(t, res.ReleasedSlot.DurationMinutes)
	assert.Equal(t, "p1", res.ReleasedSlot.ProfessionalID)
}

type failingBackend struct{ *memory.Repository }

func (failingBackend) PutBatch(context.Context, []kv.Entry) error { return errors.New("offline") }

func TestUseCase_PersistFailure(t *testing.T) {
	backend := failingBackend{memory.NewRepository()}
	backend.Set("appointments", []byte(`[{"id":"a1","professionalId":"p1","slotId":"s1","client":{"name":"","email":"","phone":""}}]`))
	store := entitystore.NewStore(backend, nil, logger.NewNop())
	uc := NewUseCase(store, idgen.NewSequence("slot"), logger.NewNop())

	_, err := uc.Execute(context.Background(), "a1")
	require.ErrorIs(t, err, ErrInternal)
}
