// File: services/provider/availability.go
package provider

import (
	"context"
	"fmt"
	"strings"

	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var weekdayNames = map[string]string{
	"sunday":    "Sunday",
	"monday":    "Monday",
	"tuesday":   "Tuesday",
	"wednesday": "Wednesday",
	"thursday":  "Thursday",
	"friday":    "Friday",
	"saturday":  "Saturday",
}

// ValidateAvailability checks a weekly template before it is persisted and
// returns it with weekday names normalized to canonical form. An invalid
// template is rejected outright, never clamped.
func ValidateAvailability(av models.Availability) (models.Availability, error) {
	if av.SlotDuration <= 0 {
		return av, &AvailabilityError{Reason: "slotDuration must be positive"}
	}
	if !av.WorkingHours.Start.Valid() || !av.WorkingHours.End.Valid() ||
		!av.LunchBreak.Start.Valid() || !av.LunchBreak.End.Valid() {
		return av, &AvailabilityError{Reason: "times must fall within a single day"}
	}
	if av.WorkingHours.Start >= av.WorkingHours.End {
		return av, &AvailabilityError{Reason: "workingHours.start must be before workingHours.end"}
	}
	if av.LunchBreak.Start > av.LunchBreak.End {
		return av, &AvailabilityError{Reason: "lunchBreak.start must not be after lunchBreak.end"}
	}
	if av.LunchBreak.Start < av.WorkingHours.Start || av.LunchBreak.End > av.WorkingHours.End {
		return av, &AvailabilityError{Reason: "lunchBreak must fall within workingHours"}
	}
	if len(av.WorkingDays) == 0 {
		return av, &AvailabilityError{Reason: "workingDays must not be empty"}
	}

	seen := make(map[string]bool, len(av.WorkingDays))
	normalized := make([]string, 0, len(av.WorkingDays))
	for _, day := range av.WorkingDays {
		canonical, ok := weekdayNames[strings.ToLower(day)]
		if !ok {
			return av, &AvailabilityError{Reason: fmt.Sprintf("unrecognized weekday %q", day)}
		}
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		normalized = append(normalized, canonical)
	}
	av.WorkingDays = normalized
	return av, nil
}

// SetAvailability validates and atomically replaces the provider's weekly
// template. Appointments booked under the old template are not touched.
func (s *DefaultProviderService) SetAvailability(ctx context.Context, providerID string, availability models.Availability) (*models.Provider, error) {
	normalized, err := ValidateAvailability(availability)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateAvailability(ctx, providerID, normalized); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to store availability: %w", err)
	}

	prov, err := s.Repo.GetByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload provider: %w", err)
	}
	if prov == nil {
		return nil, ErrNotFound
	}
	sanitize(prov)
	return prov, nil
}
