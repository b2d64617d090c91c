// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	appointmentRepo "medibook/database/repository/appointment"
	providerRepo "medibook/database/repository/provider"
	userRepoPkg "medibook/database/repository/user"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/booking"
	"medibook/services/notification"
	"medibook/services/provider"
	"medibook/services/schedule"
	"medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	for _, ensure := range []func() error{provRepo.EnsureIndexes, userRepo.EnsureIndexes, apptRepo.EnsureIndexes} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	providerService := &provider.DefaultProviderService{
		Repo: provRepo,
	}
	resolver := &schedule.DefaultResolver{
		Providers:    provRepo,
		Appointments: apptRepo,
		Now:          time.Now,
	}

	reminderScheduler := cron.NewReminderScheduler()
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultCoordinator{
		Providers:    provRepo,
		Appointments: apptRepo,
		Reminders:    reminderScheduler,
		Now:          time.Now,
	}

	notificationService := &notification.LogNotificationService{Logger: logger}
	cron.InitReminderWorker(apptRepo, notificationService)

	providerHandler := handlers.NewProviderHandler(providerService)
	userHandler := handlers.NewUserHandler(userService)
	slotsHandler := handlers.NewSlotsHandler(resolver)
	appointmentHandler := handlers.NewAppointmentHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProviderRepo: provRepo,
		UserRepo:     userRepo,

		// Provider endpoints.
		RegisterProviderHandler:     providerHandler.RegisterProviderHandler,
		AuthenticateProviderHandler: providerHandler.AuthenticateProviderHandler,
		GetProviderByIDHandler:      providerHandler.GetProviderByIDHandler,
		SetAvailabilityHandler:      providerHandler.SetAvailabilityHandler,
		GetProviderSlotsHandler:     slotsHandler.GetProviderSlotsHandler,
		ListProviderDayHandler:      appointmentHandler.ListProviderDayHandler,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,

		// Appointment endpoints.
		CreateAppointmentHandler:   appointmentHandler.CreateAppointmentHandler,
		ListMyAppointmentsHandler:  appointmentHandler.ListMyAppointmentsHandler,
		CancelAppointmentHandler:   appointmentHandler.CancelAppointmentHandler,
		CompleteAppointmentHandler: appointmentHandler.CompleteAppointmentHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
