// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	providerRepo "medibook/database/repository/provider"
	"medibook/models"
)

// Request is a reservation attempt for exactly one candidate slot.
type Request struct {
	ProviderID string           `json:"providerId"`
	PatientID  string           `json:"-"`
	Date       string           `json:"date"`
	Time       models.TimeOfDay `json:"time"`
	Mode       string           `json:"mode"`
	Category   string           `json:"category"`
	Notes      string           `json:"notes"`
}

// Service is the booking coordinator: it commits reservations and drives
// the forward-only status transitions.
type Service interface {
	Book(ctx context.Context, req Request) (*models.Appointment, error)
	Cancel(ctx context.Context, appointmentID, callerID string) (*models.Appointment, error)
	Complete(ctx context.Context, appointmentID, callerProviderID string) (*models.Appointment, error)
	ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListForProvider(ctx context.Context, providerID, date string) ([]models.Appointment, error)
}

// ReminderScheduler queues an appointment reminder for later dispatch.
// Delivery itself is an external collaborator.
type ReminderScheduler interface {
	Schedule(ctx context.Context, appt models.Appointment) error
}

// DefaultCoordinator is the production implementation.
type DefaultCoordinator struct {
	Providers    providerRepo.ProviderRepository
	Appointments appointmentRepo.AppointmentRepository
	Reminders    ReminderScheduler

	// Now supplies the current wall-clock time; injected for deterministic
	// past-date checks under test.
	Now func() time.Time
}
