// File: services/booking/updates.go
package booking

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
)

// Cancel moves a scheduled appointment to cancelled and clears its active
// flag, which removes it from the unique-index subset and frees the slot
// for re-booking. The record itself is kept. Either party may cancel.
func (c *DefaultCoordinator) Cancel(ctx context.Context, appointmentID, callerID string) (*models.Appointment, error) {
	appt, err := c.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}
	if callerID != appt.PatientID && callerID != appt.ProviderID {
		return nil, ErrNotPermitted
	}

	updated, err := c.Appointments.SetStatus(ctx, appointmentID, models.StatusScheduled, models.StatusCancelled, false)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotTransitionable) {
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("cancel failed: %w", err)
	}
	return updated, nil
}

// Complete moves a scheduled appointment to completed. Only the provider
// may complete; the slot key stays occupied since completed appointments
// remain active (they were consumed, not freed).
func (c *DefaultCoordinator) Complete(ctx context.Context, appointmentID, callerProviderID string) (*models.Appointment, error) {
	appt, err := c.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointment: %w", err)
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}
	if callerProviderID != appt.ProviderID {
		return nil, ErrNotPermitted
	}

	updated, err := c.Appointments.SetStatus(ctx, appointmentID, models.StatusScheduled, models.StatusCompleted, true)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotTransitionable) {
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("complete failed: %w", err)
	}
	return updated, nil
}

func (c *DefaultCoordinator) ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return c.Appointments.ListByPatient(ctx, patientID)
}

func (c *DefaultCoordinator) ListForProvider(ctx context.Context, providerID, date string) ([]models.Appointment, error) {
	return c.Appointments.ListByProviderAndDate(ctx, providerID, date)
}
