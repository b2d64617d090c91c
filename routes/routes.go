// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"medibook/handlers"
	"medibook/middleware"
	"medibook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers patient account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
	}
}

// RegisterProviderRoutes registers provider management endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public provider endpoints (registration, login).
		api.POST("/register", hb.RegisterProviderHandler)
		api.POST("/login", hb.AuthenticateProviderHandler)

		// Read endpoints open to any authenticated caller.
		reads := api.Group("")
		reads.Use(middleware.JWTAuthAnyMiddleware())
		reads.GET("/:id", hb.GetProviderByIDHandler)
		reads.GET("/:id/slots", hb.GetProviderSlotsHandler)

		// Endpoints that modify provider data require the provider role.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		protected.PUT("/availability", hb.SetAvailabilityHandler)
		protected.GET("/appointments", hb.ListProviderDayHandler)
	}
}

// RegisterAppointmentRoutes sets up the booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		patient := api.Group("")
		patient.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		patient.POST("", hb.CreateAppointmentHandler)
		patient.GET("", hb.ListMyAppointmentsHandler)

		// Cancellation is open to either party to the appointment.
		any := api.Group("")
		any.Use(middleware.JWTAuthAnyMiddleware())
		any.PUT("/:id/cancel", hb.CancelAppointmentHandler)

		prov := api.Group("")
		prov.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		prov.PUT("/:id/complete", hb.CompleteAppointmentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterHealthRoute(r)
}
