// File: services/notification/interface.go
package notification

import (
	"context"

	"medibook/models"

	"go.uber.org/zap"
)

// NotificationService dispatches appointment reminders to the booking
// parties. Actual delivery channels (email, SMS, push) are external
// collaborators behind this interface.
type NotificationService interface {
	SendAppointmentReminder(ctx context.Context, appt models.Appointment) error
}

// LogNotificationService records reminder dispatches in the service log.
// It stands in wherever no delivery backend is wired.
type LogNotificationService struct {
	Logger *zap.Logger
}

func (s *LogNotificationService) SendAppointmentReminder(ctx context.Context, appt models.Appointment) error {
	s.Logger.Info("appointment reminder",
		zap.String("appointmentID", appt.ID),
		zap.String("providerID", appt.ProviderID),
		zap.String("patientID", appt.PatientID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time.String()),
	)
	return nil
}
