// File: services/schedule/generator.go
package schedule

import (
	"time"

	"medibook/models"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// CandidateSlots generates the ordered candidate slot start times for one
// date from a weekly availability template. Pure computation: no I/O, no
// clock, no hidden state. A non-working weekday yields an empty list, which
// is a valid outcome rather than an error; malformed templates are rejected
// at write time and never reach this function.
func CandidateSlots(av models.Availability, date time.Time) []models.TimeOfDay {
	if !av.WorksOn(date.Weekday().String()) {
		return nil
	}

	duration := models.TimeOfDay(av.SlotDuration)
	var slots []models.TimeOfDay
	for start := av.WorkingHours.Start; start+duration <= av.WorkingHours.End; start += duration {
		if overlapsLunch(av.LunchBreak, start, start+duration) {
			continue
		}
		slots = append(slots, start)
	}
	return slots
}

// overlapsLunch applies the half-open interval test: a slot is dropped when
// it intersects [lunch.Start, lunch.End) at all, not only when fully inside.
func overlapsLunch(lunch models.HoursWindow, slotStart, slotEnd models.TimeOfDay) bool {
	return slotStart < lunch.End && slotEnd > lunch.Start
}
