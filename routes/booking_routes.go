package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sagarikadotcom/canaan-pet-resort/controllers/booking_controller"
)

// RegisterBookingRoutes mounts the booking API under /bookings and the
// /api/bookings alias the dashboard posts to.
func RegisterBookingRoutes(r *gin.Engine, bc *booking_controller.BookingController, authMW, writeLimit gin.HandlerFunc) {
	for _, prefix := range []string{"/bookings", "/api/bookings"} {
		group := r.Group(prefix)
		group.Use(authMW)
		{
			group.POST("", writeLimit, bc.CreateBooking)
			group.PUT("", writeLimit, bc.UpdateBooking)
			group.GET("", bc.ListBookings)
			group.GET("/:id", bc.GetBooking)
		}
	}
}
