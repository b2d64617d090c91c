// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medibook/config"
	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/notification"
	"medibook/services/schedule"
	"medibook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

type reminderPayload struct {
	AppointmentID string `json:"appointmentId"`
}

// ReminderScheduler enqueues reminder tasks against the appointment's
// start time, minus the configured lead.
type ReminderScheduler struct {
	client *asynq.Client
}

func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(redisOpts())}
}

func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}

// Schedule queues a reminder for the appointment. Appointments starting
// within the lead window get an immediate reminder instead of none.
func (s *ReminderScheduler) Schedule(ctx context.Context, appt models.Appointment) error {
	payload, err := json.Marshal(reminderPayload{AppointmentID: appt.ID})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	day, err := time.Parse(schedule.DateLayout, appt.Date)
	if err != nil {
		return fmt.Errorf("invalid appointment date %q: %w", appt.Date, err)
	}
	startsAt := day.Add(time.Duration(appt.Time) * time.Minute)
	fireAt := startsAt.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async reminder worker in background. The
// appointment is re-read at dispatch time so reminders for appointments
// cancelled after booking are silently dropped.
func InitReminderWorker(repo appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(repo, notifSvc))

	go func() {
		logger.Info("starting reminder worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("reminder worker stopped", zap.Error(err))
		}
	}()
}

func handleReminderTask(repo appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p reminderPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			// A payload that cannot be decoded will never succeed; drop it.
			return fmt.Errorf("bad reminder payload: %v: %w", err, asynq.SkipRetry)
		}

		appt, err := repo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			return fmt.Errorf("failed to load appointment %s: %w", p.AppointmentID, err)
		}
		if appt == nil || appt.Status != models.StatusScheduled {
			return nil
		}

		if err := notifSvc.SendAppointmentReminder(ctx, *appt); err != nil {
			return fmt.Errorf("reminder dispatch failed for %s: %w", appt.ID, err)
		}
		return nil
	}
}
