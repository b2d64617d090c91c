package provider

import (
	"testing"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, s string) models.TimeOfDay {
	t.Helper()
	v, err := models.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func validTemplate(t *testing.T) models.Availability {
	t.Helper()
	return models.Availability{
		WorkingDays: []string{"Monday", "Wednesday"},
		WorkingHours: models.HoursWindow{
			Start: mustClock(t, "09:00"),
			End:   mustClock(t, "17:00"),
		},
		LunchBreak: models.HoursWindow{
			Start: mustClock(t, "13:00"),
			End:   mustClock(t, "14:00"),
		},
		SlotDuration: 30,
	}
}

func TestValidateAvailabilityAccepts(t *testing.T) {
	av, err := ValidateAvailability(validTemplate(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"Monday", "Wednesday"}, av.WorkingDays)
}

func TestValidateAvailabilityNormalizesWeekdays(t *testing.T) {
	tpl := validTemplate(t)
	tpl.WorkingDays = []string{"monday", "MONDAY", "weDNESday"}

	av, err := ValidateAvailability(tpl)
	require.NoError(t, err)
	assert.Equal(t, []string{"Monday", "Wednesday"}, av.WorkingDays)
}

func TestValidateAvailabilityRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(t *testing.T, av *models.Availability)
	}{
		{"zero duration", func(t *testing.T, av *models.Availability) {
			av.SlotDuration = 0
		}},
		{"negative duration", func(t *testing.T, av *models.Availability) {
			av.SlotDuration = -15
		}},
		{"start after end", func(t *testing.T, av *models.Availability) {
			av.WorkingHours.Start = mustClock(t, "18:00")
		}},
		{"start equals end", func(t *testing.T, av *models.Availability) {
			av.WorkingHours.End = av.WorkingHours.Start
		}},
		{"lunch inverted", func(t *testing.T, av *models.Availability) {
			av.LunchBreak = models.HoursWindow{
				Start: mustClock(t, "14:00"),
				End:   mustClock(t, "13:00"),
			}
		}},
		{"lunch before opening", func(t *testing.T, av *models.Availability) {
			av.LunchBreak.Start = mustClock(t, "08:00")
		}},
		{"lunch past closing", func(t *testing.T, av *models.Availability) {
			av.LunchBreak.End = mustClock(t, "18:00")
		}},
		{"time out of range", func(t *testing.T, av *models.Availability) {
			av.WorkingHours.End = models.TimeOfDay(models.MinutesPerDay + 30)
		}},
		{"no working days", func(t *testing.T, av *models.Availability) {
			av.WorkingDays = nil
		}},
		{"bogus weekday", func(t *testing.T, av *models.Availability) {
			av.WorkingDays = []string{"Monday", "Funday"}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			av := validTemplate(t)
			tc.mutate(t, &av)

			_, err := ValidateAvailability(av)
			var aerr *AvailabilityError
			assert.ErrorAs(t, err, &aerr)
		})
	}
}

func TestValidateAvailabilityAllowsZeroLengthLunch(t *testing.T) {
	tpl := validTemplate(t)
	tpl.LunchBreak = models.HoursWindow{
		Start: mustClock(t, "13:00"),
		End:   mustClock(t, "13:00"),
	}

	_, err := ValidateAvailability(tpl)
	assert.NoError(t, err)
}
