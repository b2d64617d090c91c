// File: services/booking/booking.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/schedule"
	"medibook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Book validates the reservation request, then commits it through the
// ledger's conditional insert. The insert is the only write: a rejected
// commit leaves no record behind, and a duplicate-key rejection from the
// active-slot index surfaces as ErrSlotConflict rather than a server error.
func (c *DefaultCoordinator) Book(ctx context.Context, req Request) (*models.Appointment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	day, err := time.Parse(schedule.DateLayout, req.Date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}

	now := c.Now()
	startsAt := time.Date(day.Year(), day.Month(), day.Day(),
		int(req.Time)/60, int(req.Time)%60, 0, 0, now.Location())
	if !startsAt.After(now) {
		return nil, ErrPastDateTime
	}

	provider, err := c.Providers.GetByID(ctx, req.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}
	if provider == nil || provider.Availability == nil {
		return nil, ErrProviderNotFound
	}

	// The requested time must be a boundary the generator would produce for
	// this provider and date under the current template. The availability
	// listing is advisory only; the current template is what we hold the
	// caller to, and the unique index absorbs any read/write drift beyond it.
	if err := checkSlotBoundary(*provider.Availability, day, req.Time); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:         uuid.New().String(),
		ProviderID: req.ProviderID,
		PatientID:  req.PatientID,
		Date:       req.Date,
		Time:       req.Time,
		Status:     models.StatusScheduled,
		Active:     true,
		Mode:       req.Mode,
		Category:   req.Category,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.Appointments.Create(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("booking commit failed: %w", err)
	}

	// Reminder scheduling rides on the committed booking; a queue hiccup
	// must not fail a booking that is already persisted.
	if c.Reminders != nil {
		if err := c.Reminders.Schedule(ctx, *appt); err != nil {
			utils.GetLogger().Warn("failed to schedule appointment reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}

func validateRequest(req Request) error {
	switch {
	case req.ProviderID == "":
		return &ValidationError{Field: "providerId", Reason: "required"}
	case req.PatientID == "":
		return &ValidationError{Field: "patientId", Reason: "required"}
	case req.Date == "":
		return &ValidationError{Field: "date", Reason: "required"}
	case !req.Time.Valid():
		return &ValidationError{Field: "time", Reason: "out of range"}
	case req.Mode != models.ModeInPerson && req.Mode != models.ModeVideo:
		return &ValidationError{Field: "mode", Reason: "must be in-person or video"}
	}
	return nil
}

// checkSlotBoundary verifies the requested time against the grid the
// current template defines: a working weekday, aligned to the slot
// duration, inside working hours and clear of the lunch window.
func checkSlotBoundary(av models.Availability, day time.Time, t models.TimeOfDay) error {
	for _, candidate := range schedule.CandidateSlots(av, day) {
		if candidate == t {
			return nil
		}
	}
	return &ValidationError{Field: "time", Reason: "not a bookable slot for this provider and date"}
}
