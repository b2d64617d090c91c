package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medibook/models"
	bookingsvc "medibook/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubBookingService struct {
	bookErr   error
	booked    *models.Appointment
	cancelErr error
}

func (s *stubBookingService) Book(_ context.Context, req bookingsvc.Request) (*models.Appointment, error) {
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	if s.booked != nil {
		return s.booked, nil
	}
	return &models.Appointment{
		ID:         "appt-1",
		ProviderID: req.ProviderID,
		PatientID:  req.PatientID,
		Date:       req.Date,
		Time:       req.Time,
		Status:     models.StatusScheduled,
	}, nil
}

func (s *stubBookingService) Cancel(_ context.Context, id, _ string) (*models.Appointment, error) {
	if s.cancelErr != nil {
		return nil, s.cancelErr
	}
	return &models.Appointment{ID: id, Status: models.StatusCancelled}, nil
}

func (s *stubBookingService) Complete(_ context.Context, id, _ string) (*models.Appointment, error) {
	return &models.Appointment{ID: id, Status: models.StatusCompleted}, nil
}

func (s *stubBookingService) ListForPatient(context.Context, string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubBookingService) ListForProvider(context.Context, string, string) ([]models.Appointment, error) {
	return nil, nil
}

func appointmentRouter(svc bookingsvc.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAppointmentHandler(svc)

	asUser := func(c *gin.Context) { c.Set("userID", "patient-1") }
	asCaller := func(c *gin.Context) { c.Set("callerID", "patient-1") }

	r.POST("/api/appointments", asUser, h.CreateAppointmentHandler)
	r.PUT("/api/appointments/:id/cancel", asCaller, h.CancelAppointmentHandler)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

const bookingBody = `{"providerId":"prov-1","date":"2025-06-02","time":"09:30","mode":"in-person"}`

func TestCreateAppointment(t *testing.T) {
	r := appointmentRouter(&stubBookingService{})

	w := postJSON(r, "/api/appointments", bookingBody)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"09:30"`)
	assert.Contains(t, w.Body.String(), models.StatusScheduled)
}

func TestCreateAppointmentStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"slot conflict", bookingsvc.ErrSlotConflict, http.StatusConflict},
		{"past date", bookingsvc.ErrPastDateTime, http.StatusBadRequest},
		{"validation", &bookingsvc.ValidationError{Field: "time", Reason: "out of range"}, http.StatusBadRequest},
		{"unknown provider", bookingsvc.ErrProviderNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := appointmentRouter(&stubBookingService{bookErr: tc.err})

			w := postJSON(r, "/api/appointments", bookingBody)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestCreateAppointmentMalformedTime(t *testing.T) {
	r := appointmentRouter(&stubBookingService{})

	w := postJSON(r, "/api/appointments", `{"providerId":"prov-1","date":"2025-06-02","time":"quarter past nine","mode":"video"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAppointmentUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAppointmentHandler(&stubBookingService{})
	r.POST("/api/appointments", h.CreateAppointmentHandler)

	w := postJSON(r, "/api/appointments", bookingBody)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCancelAppointmentErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", bookingsvc.ErrAppointmentNotFound, http.StatusNotFound},
		{"not permitted", bookingsvc.ErrNotPermitted, http.StatusForbidden},
		{"already terminal", bookingsvc.ErrInvalidTransition, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := appointmentRouter(&stubBookingService{cancelErr: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/appointments/appt-1/cancel", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}
