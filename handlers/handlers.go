// File: handlers/handlers.go
package handlers

import (
	"errors"
	"net/http"

	providerRepo "medibook/database/repository/provider"
	userRepo "medibook/database/repository/user"
	bookingsvc "medibook/services/booking"
	providersvc "medibook/services/provider"
	"medibook/services/schedule"
	usersvc "medibook/services/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerBundle collects the route handlers and the repositories the auth
// middleware needs, assembled once in main.
type HandlerBundle struct {
	ProviderRepo providerRepo.ProviderRepository
	UserRepo     userRepo.UserRepository

	// Provider endpoints.
	RegisterProviderHandler     gin.HandlerFunc
	AuthenticateProviderHandler gin.HandlerFunc
	GetProviderByIDHandler      gin.HandlerFunc
	SetAvailabilityHandler      gin.HandlerFunc
	GetProviderSlotsHandler     gin.HandlerFunc
	ListProviderDayHandler      gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc

	// Appointment endpoints.
	CreateAppointmentHandler   gin.HandlerFunc
	ListMyAppointmentsHandler  gin.HandlerFunc
	CancelAppointmentHandler   gin.HandlerFunc
	CompleteAppointmentHandler gin.HandlerFunc
}

// respondServiceError maps typed service errors onto HTTP status codes. A
// slot conflict stays distinguishable from a server fault so clients can
// re-fetch slots and retry.
func respondServiceError(c *gin.Context, err error) {
	var availErr *providersvc.AvailabilityError
	var valErr *bookingsvc.ValidationError

	switch {
	case errors.As(err, &availErr), errors.As(err, &valErr),
		errors.Is(err, schedule.ErrInvalidDate),
		errors.Is(err, bookingsvc.ErrPastDateTime):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())

	case errors.Is(err, schedule.ErrProviderNotFound),
		errors.Is(err, bookingsvc.ErrProviderNotFound),
		errors.Is(err, bookingsvc.ErrAppointmentNotFound),
		errors.Is(err, providersvc.ErrNotFound),
		errors.Is(err, usersvc.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())

	case errors.Is(err, bookingsvc.ErrSlotConflict),
		errors.Is(err, bookingsvc.ErrInvalidTransition),
		errors.Is(err, providersvc.ErrEmailTaken),
		errors.Is(err, usersvc.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "Conflict", err.Error())

	case errors.Is(err, bookingsvc.ErrNotPermitted):
		utils.JSONError(c, http.StatusForbidden, "Forbidden", err.Error())

	case errors.Is(err, providersvc.ErrBadCredentials),
		errors.Is(err, usersvc.ErrBadCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", err.Error())

	default:
		utils.GetLogger().Error("unhandled service error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
