// File: handlers/appointment.go
package handlers

import (
	"net/http"

	bookingsvc "medibook/services/booking"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler bundles booking and appointment lifecycle endpoints.
type AppointmentHandler struct {
	Service bookingsvc.Service
}

func NewAppointmentHandler(svc bookingsvc.Service) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// CreateAppointmentHandler books one slot for the authenticated patient.
// A conflicting active appointment yields 409; a past date/time yields 400.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	patientID, ok := callerFromContext(c, "userID")
	if !ok {
		return
	}

	var req bookingsvc.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	req.PatientID = patientID

	appt, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListMyAppointmentsHandler lists the authenticated patient's appointments.
func (h *AppointmentHandler) ListMyAppointmentsHandler(c *gin.Context) {
	patientID, ok := callerFromContext(c, "userID")
	if !ok {
		return
	}

	appts, err := h.Service.ListForPatient(c.Request.Context(), patientID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListProviderDayHandler lists the authenticated provider's appointments
// for one date.
func (h *AppointmentHandler) ListProviderDayHandler(c *gin.Context) {
	providerID, ok := callerFromContext(c, "providerID")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date query parameter", "expected date=YYYY-MM-DD")
		return
	}

	appts, err := h.Service.ListForProvider(c.Request.Context(), providerID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// CancelAppointmentHandler cancels a scheduled appointment. Either party
// may cancel; the freed slot becomes bookable again.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	callerID, ok := callerFromContext(c, "callerID")
	if !ok {
		return
	}

	appointmentID := c.Param("id")
	if appointmentID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing appointment ID in path", "")
		return
	}

	appt, err := h.Service.Cancel(c.Request.Context(), appointmentID, callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment cancelled",
		"appointment": appt,
	})
}

// CompleteAppointmentHandler marks a scheduled appointment completed.
// Provider only.
func (h *AppointmentHandler) CompleteAppointmentHandler(c *gin.Context) {
	providerID, ok := callerFromContext(c, "providerID")
	if !ok {
		return
	}

	appointmentID := c.Param("id")
	if appointmentID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing appointment ID in path", "")
		return
	}

	appt, err := h.Service.Complete(c.Request.Context(), appointmentID, providerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment completed",
		"appointment": appt,
	})
}
