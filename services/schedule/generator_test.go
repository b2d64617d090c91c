package schedule

import (
	"testing"
	"time"

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

func weekdayTemplate(t *testing.T) models.Availability {
	t.Helper()
	return models.Availability{
		WorkingDays: []string{"Monday"},
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

// 2025-06-02 is a Monday.
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func TestCandidateSlotsReferenceDay(t *testing.T) {
	slots := CandidateSlots(weekdayTemplate(t), monday)

	want := []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	}
	require.Len(t, slots, len(want))
	for i, s := range slots {
		assert.Equal(t, want[i], s.String())
	}
}

func TestCandidateSlotsNonWorkingDay(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	assert.Empty(t, CandidateSlots(weekdayTemplate(t), tuesday))
}

func TestCandidateSlotsSpacingAndOrder(t *testing.T) {
	av := weekdayTemplate(t)
	slots := CandidateSlots(av, monday)

	for i := 1; i < len(slots); i++ {
		assert.Greater(t, slots[i], slots[i-1], "slots must be ascending")
		gap := int(slots[i] - slots[i-1])
		// Consecutive slots are one duration apart except across lunch.
		assert.Zero(t, gap%av.SlotDuration)
	}
}

func TestCandidateSlotsPartialLunchOverlapDropped(t *testing.T) {
	av := weekdayTemplate(t)
	av.SlotDuration = 45

	slots := CandidateSlots(av, monday)

	lunchStart := av.LunchBreak.Start
	lunchEnd := av.LunchBreak.End
	for _, s := range slots {
		end := s + models.TimeOfDay(av.SlotDuration)
		assert.False(t, s < lunchEnd && end > lunchStart,
			"slot %s-%s intersects lunch", s, end)
	}
	// 12:45 would run into lunch and must be gone even though it starts
	// before the break.
	assert.NotContains(t, slots, mustClock(t, "12:45"))
}

func TestCandidateSlotsOverrunOmittedNotTruncated(t *testing.T) {
	av := weekdayTemplate(t)
	av.WorkingHours.End = mustClock(t, "10:15")
	av.LunchBreak = models.HoursWindow{Start: mustClock(t, "10:00"), End: mustClock(t, "10:00")}

	slots := CandidateSlots(av, monday)

	for _, s := range slots {
		assert.LessOrEqual(t, s+models.TimeOfDay(av.SlotDuration), av.WorkingHours.End)
	}
	// The 10:00 slot would end at 10:30, past closing: omitted entirely.
	assert.NotContains(t, slots, mustClock(t, "10:00"))
}

func TestCandidateSlotsDeterministic(t *testing.T) {
	av := weekdayTemplate(t)
	first := CandidateSlots(av, monday)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, CandidateSlots(av, monday))
	}
}
