package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/entitystore"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

func TestService_ListAppointments(t *testing.T) {
	ctx := context.Background()
	store := entitystore.NewStore(memory.NewRepository(), nil, logger.NewNop())
	require.NoError(t, entitystore.Write(ctx, store, domain.CollectionProfessionals, []domain.Professional{
		{ID: "p1", Name: "Ana", Specialty: "Psychology"},
	}))
	require.NoError(t, entitystore.Write(ctx, store, domain.CollectionAppointments, []domain.Appointment{
		{ID: "a2", ProfessionalID: "p1", SlotID: "s2"},
		{ID: "a1", ProfessionalID: "removed", SlotID: "s1"},
	}))

	svc := NewService(store, logger.NewNop())
	views, err := svc.ListAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Порядок вставки, без сортировки
	assert.Equal(t, "a2", views[0].ID)
	require.NotNil(t, views[0].Professional)
	assert.Equal(t, "Ana", views[0].Professional.Name)

	assert.Equal(t, "a1", views[1].ID)
	assert.Nil(t, views[1].Professional)
}

func TestService_ListAppointments_Empty(t *testing.T) {
	store := entitystore.NewStore(memory.NewRepository(), nil, logger.NewNop())
	views, err := NewService(store, logger.NewNop()).ListAppointments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}
