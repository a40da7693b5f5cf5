package routes

import (
	"devseva/handlers"
	"devseva/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Provider     *handlers.ProviderHandler
}

// SetupRoutes registers every endpoint on the router.
func SetupRoutes(r *gin.Engine, b *HandlerBundle) {
	r.GET("/health", handlers.HealthHandler)

	// Public provider surface.
	providers := r.Group("/api/providers")
	{
		providers.POST("", b.Provider.RegisterProviderHandler)
		providers.GET("/:id", b.Provider.GetProviderHandler)
		providers.GET("/:id/slots", b.Availability.GetAvailableSlotsHandler)
	}

	RegisterBookingRoutes(r, b)

	// Provider self-management.
	providerAuth := r.Group("/api/provider")
	providerAuth.Use(middleware.JWTAuthProviderMiddleware())
	{
		providerAuth.PUT("/schedule", b.Provider.UpdateScheduleHandler)
		providerAuth.PUT("/policy", b.Provider.UpdatePolicyHandler)
		providerAuth.PUT("/availability", b.Provider.SetAvailabilityHandler)
		providerAuth.GET("/reservations", b.Booking.ListProviderBookingsHandler)
		providerAuth.PUT("/reservations/:id/status", b.Booking.UpdateBookingStatusHandler)
	}
}
