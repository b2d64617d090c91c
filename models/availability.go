package models

// HoursWindow is a [Start, End) window within a single day.
type HoursWindow struct {
	Start TimeOfDay `bson:"start" json:"start"`
	End   TimeOfDay `bson:"end" json:"end"`
}

// Availability is a provider's recurring weekly template. It lives as an
// embedded sub-document of the provider record and is replaced wholesale
// on update; slot generation reads it and nothing else.
type Availability struct {
	WorkingDays  []string    `bson:"workingDays" json:"workingDays" binding:"required"` // canonical weekday names, e.g. "Monday"
	WorkingHours HoursWindow `bson:"workingHours" json:"workingHours" binding:"required"`
	LunchBreak   HoursWindow `bson:"lunchBreak" json:"lunchBreak" binding:"required"`
	SlotDuration int         `bson:"slotDuration" json:"slotDuration" binding:"required"` // minutes
}

// WorksOn reports whether the weekday name is part of the template.
func (a Availability) WorksOn(weekday string) bool {
	for _, d := range a.WorkingDays {
		if d == weekday {
			return true
		}
	}
	return false
}
