// File: services/schedule/resolver.go
package schedule

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	providerRepo "medibook/database/repository/provider"
	"medibook/models"
)

// Service exposes the client-facing slot listing.
type Service interface {
	DaySchedule(ctx context.Context, providerID, date string) (*models.DaySchedule, error)
}

// DefaultResolver turns generated candidates into the externally visible
// slot list: candidates masked by booked times, with elapsed slots removed
// when the date is today. Reads only; always re-validated at commit time
// by the booking side.
type DefaultResolver struct {
	Providers    providerRepo.ProviderRepository
	Appointments appointmentRepo.AppointmentRepository

	// Now supplies the current wall-clock time. Injected so "today" and
	// past-time filtering are deterministic under test.
	Now func() time.Time
}

func (r *DefaultResolver) DaySchedule(ctx context.Context, providerID, date string) (*models.DaySchedule, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	provider, err := r.Providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider: %w", err)
	}
	if provider == nil || provider.Availability == nil {
		return nil, ErrProviderNotFound
	}
	av := *provider.Availability

	candidates := CandidateSlots(av, day)

	bookedTimes, err := r.Appointments.ActiveTimes(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked times: %w", err)
	}
	booked := make(map[models.TimeOfDay]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	now := r.Now()
	today := now.Format(DateLayout) == date
	nowMinutes := models.TimeOfDay(now.Hour()*60 + now.Minute())

	slots := make([]models.Slot, 0, len(candidates))
	for _, start := range candidates {
		// A slot that has already begun cannot be booked anymore.
		if today && start <= nowMinutes {
			continue
		}
		_, taken := booked[start]
		slots = append(slots, models.Slot{Time: start, Available: !taken})
	}

	return &models.DaySchedule{
		Data:             slots,
		AvailabilityDays: av.WorkingDays,
	}, nil
}
