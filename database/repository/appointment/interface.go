// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned by Create when another active appointment already
// holds the same (providerId, date, time) key. The partial unique index makes
// this check atomic at the storage level.
var ErrSlotTaken = errors.New("slot already booked")

// ErrNotTransitionable is returned by SetStatus when no appointment matches
// the id and expected current status.
var ErrNotTransitionable = errors.New("appointment missing or not in expected status")

// AppointmentRepository is the reservation ledger: the persisted set of
// appointments with insert-if-absent semantics over the active-slot key.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ActiveTimes(ctx context.Context, providerID, date string) ([]models.TimeOfDay, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Appointment, error)
	SetStatus(ctx context.Context, id, fromStatus, toStatus string, active bool) (*models.Appointment, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
