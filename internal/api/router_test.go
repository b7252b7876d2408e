package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/entitystore"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ReservationService/internal/service/appointments"
	appointmentModels "github.com/m04kA/SMC-ReservationService/internal/service/appointments/models"
	"github.com/m04kA/SMC-ReservationService/internal/service/catalog"
	bookAppointmentUC "github.com/m04kA/SMC-ReservationService/internal/usecase/book_appointment"
	cancelAppointmentUC "github.com/m04kA/SMC-ReservationService/internal/usecase/cancel_appointment"
	listSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/list_slots"
	"github.com/m04kA/SMC-ReservationService/pkg/idgen"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
)

func newTestServer(t *testing.T, m *metrics.Metrics) *httptest.Server {
	t.Helper()
	log := logger.NewNop()
	store := entitystore.NewStore(memory.NewRepository(), nil, log)
	ids := idgen.New()

	deps := Dependencies{
		Catalog:           catalog.NewService(store, ids, log),
		Appointments:      appointments.NewService(store, log),
		BookAppointment:   bookAppointmentUC.NewUseCase(store, ids, log),
		CancelAppointment: cancelAppointmentUC.NewUseCase(store, ids, log),
		ListSlots:         listSlotsUC.NewUseCase(store, log),
		Logger:            log,
		MetricsPath:       "/metrics",
	}
	if m != nil {
		deps.Metrics = m
	}

	srv := httptest.NewServer(NewRouter(deps))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path string, body interface{}, out interface{}) int {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+APIPrefix+path, reader)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestRouter_BookingFlow(t *testing.T) {
	srv := newTestServer(t, nil)

	var professional domain.Professional
	status := call(t, srv, http.MethodPost, "/professionals", map[string]string{
		"name": "Ana", "licenseNumber": "CRP-1", "specialty": "Psychology", "email": "ana@x.com",
	}, &professional)
	require.Equal(t, http.StatusCreated, status)

	var slot domain.Slot
	status = call(t, srv, http.MethodPost, "/slots", map[string]interface{}{
		"professionalId": professional.ID, "startTime": "2025-01-10T10:00", "durationMinutes": 60,
	}, &slot)
	require.Equal(t, http.StatusCreated, status)

	var slots []domain.Slot
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/professionals/"+professional.ID+"/slots", nil, &slots))
	require.Equal(t, []domain.Slot{slot}, slots)

	var appt domain.Appointment
	status = call(t, srv, http.MethodPost, "/appointments", map[string]interface{}{
		"professionalId": professional.ID,
		"slotId":         slot.ID,
		"client":         map[string]string{"name": "X", "email": "x@x.com", "phone": "123"},
	}, &appt)
	require.Equal(t, http.StatusCreated, status)
	require.True(t, appt.HasTerms())

	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/professionals/"+professional.ID+"/slots", nil, &slots))
	assert.Empty(t, slots)

	var views []appointmentModels.AppointmentView
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/appointments", nil, &views))
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Professional)
	assert.Equal(t, "Ana", views[0].Professional.Name)

	var cancelled map[string]interface{}
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodDelete, "/appointments/"+appt.ID, nil, &cancelled))
	assert.Equal(t, true, cancelled["cancelled"])

	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/professionals/"+professional.ID+"/slots", nil, &slots))
	require.Len(t, slots, 1)
	assert.NotEqual(t, slot.ID, slots[0].ID)
	assert.True(t, slot.StartTime.Equal(slots[0].StartTime))

	require.Equal(t, http.StatusNoContent, call(t, srv, http.MethodDelete, "/slots/"+slots[0].ID, nil, nil))
	require.Equal(t, http.StatusNoContent, call(t, srv, http.MethodDelete, "/slots/"+slots[0].ID, nil, nil))

	require.Equal(t, http.StatusNoContent, call(t, srv, http.MethodPost, "/admin/reset", nil, nil))
	var professionals []domain.Professional
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/professionals", nil, &professionals))
	assert.Empty(t, professionals)
}

func TestRouter_ValidationAndNotFound(t *testing.T) {
	srv := newTestServer(t, nil)

	var errBody map[string]string
	status := call(t, srv, http.MethodPost, "/appointments", map[string]interface{}{
		"professionalId": "", "slotId": "", "client": map[string]string{"name": "X"},
	}, &errBody)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, errBody["error"])

	var appts []appointmentModels.AppointmentView
	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/appointments", nil, &appts))
	assert.Empty(t, appts)

	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodGet, "/professionals/missing", nil, nil))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	m := metrics.NewWithRegisterer("reservation-test", prometheus.NewRegistry())
	srv := newTestServer(t, m)

	require.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/professionals", nil, nil))

	resp, err := srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
