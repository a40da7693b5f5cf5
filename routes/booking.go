package routes

import (
	"devseva/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, b *HandlerBundle) {
	booking := r.Group("/api/bookings")
	{
		// Advisory check; creation re-validates under the provider lock.
		booking.POST("/check", b.Booking.CheckBookableHandler)
	}

	authed := r.Group("/api/bookings")
	authed.Use(middleware.JWTAuthUserMiddleware())
	{
		authed.POST("", b.Booking.CreateBookingHandler)
		authed.GET("", b.Booking.ListMyBookingsHandler)
		authed.GET("/:id", b.Booking.GetBookingHandler)
		authed.PUT("/:id/reschedule", b.Booking.RescheduleBookingHandler)
		authed.DELETE("/:id", b.Booking.CancelBookingHandler)
	}
}
