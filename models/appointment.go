package models

import "time"

// Appointment statuses. Status only moves forward: scheduled appointments
// become completed or cancelled, never scheduled again.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment modes.
const (
	ModeInPerson = "in-person"
	ModeVideo    = "video"
)

// Appointment is one reserved slot. Active mirrors "status != cancelled"
// and backs the partial unique index on (providerId, date, time): at most
// one active appointment may hold a given key at any instant. Cancelling
// clears Active, which frees the slot without deleting the record.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	PatientID  string    `bson:"patientId" json:"patientId"`
	Date       string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time       TimeOfDay `bson:"time" json:"time"` // slot start, minutes from midnight
	Status     string    `bson:"status" json:"status"`
	Active     bool      `bson:"active" json:"-"`
	Mode       string    `bson:"mode" json:"mode"`
	Category   string    `bson:"category" json:"category,omitempty"`
	Notes      string    `bson:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
