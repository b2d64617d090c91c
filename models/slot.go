package models

// Slot is a computed booking candidate. Slots are produced fresh per
// request and never persisted.
type Slot struct {
	Time      TimeOfDay `json:"time"`
	Available bool      `json:"available"`
}

// DaySchedule is the client-facing slot list for one provider and date.
// AvailabilityDays lets the caller explain empty days.
type DaySchedule struct {
	Data             []Slot   `json:"data"`
	AvailabilityDays []string `json:"availabilityDays"`
}
