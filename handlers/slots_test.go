package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"medibook/models"
	"medibook/services/schedule"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	schedule *models.DaySchedule
	err      error
}

func (s *stubResolver) DaySchedule(context.Context, string, string) (*models.DaySchedule, error) {
	return s.schedule, s.err
}

func slotsRouter(resolver schedule.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSlotsHandler(resolver)
	r.GET("/api/providers/:id/slots", h.GetProviderSlotsHandler)
	return r
}

func TestGetProviderSlots(t *testing.T) {
	resolver := &stubResolver{schedule: &models.DaySchedule{
		Data: []models.Slot{
			{Time: 540, Available: true},
			{Time: 570, Available: false},
		},
		AvailabilityDays: []string{"Monday"},
	}}
	r := slotsRouter(resolver)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers/prov-1/slots?date=2025-06-02", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []struct {
			Time      string `json:"time"`
			Available bool   `json:"available"`
		} `json:"data"`
		AvailabilityDays []string `json:"availabilityDays"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "09:00", body.Data[0].Time)
	assert.True(t, body.Data[0].Available)
	assert.Equal(t, "09:30", body.Data[1].Time)
	assert.False(t, body.Data[1].Available)
	assert.Equal(t, []string{"Monday"}, body.AvailabilityDays)
}

func TestGetProviderSlotsMissingDate(t *testing.T) {
	r := slotsRouter(&stubResolver{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/providers/prov-1/slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProviderSlotsErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"unknown provider", schedule.ErrProviderNotFound, http.StatusNotFound},
		{"bad date", schedule.ErrInvalidDate, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := slotsRouter(&stubResolver{err: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/providers/prov-1/slots?date=2025-06-02", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}
