package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/sagarikadotcom/canaan-pet-resort/controllers/boarding_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/booking_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/dog_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/kennel_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/owner_controller"
	middleware "github.com/sagarikadotcom/canaan-pet-resort/middlewares"
	"github.com/sagarikadotcom/canaan-pet-resort/middlewares/auth"
)

// Controllers bundles everything the router needs.
type Controllers struct {
	Bookings  *booking_controller.BookingController
	Boardings *boarding_controller.BoardingController
	Kennels   *kennel_controller.KennelController
	Owners    *owner_controller.OwnerController
	Dogs      *dog_controller.DogController
}

// Options configures the protection applied to admin routes.
type Options struct {
	JWTSecret      string
	WriteRateLimit string
	Redis          *redis.Client
}

// RegisterRoutes mounts every admin route plus the health check.
func RegisterRoutes(r *gin.Engine, ctl Controllers, opts Options) {
	RegisterHealthRoutes(r)

	authMW := auth.AuthMiddleware(opts.JWTSecret)
	RegisterBookingRoutes(r, ctl.Bookings, authMW, middleware.NewRateLimiter(opts.Redis, opts.WriteRateLimit, "bookings-write"))
	RegisterBoardingRoutes(r, ctl.Boardings, authMW, middleware.NewRateLimiter(opts.Redis, opts.WriteRateLimit, "check-in"))
	RegisterKennelRoutes(r, ctl.Kennels, authMW)
	RegisterOwnerRoutes(r, ctl.Owners, ctl.Dogs, authMW)
}

func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok from kennel admin service"})
	})
	r.HEAD("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}
