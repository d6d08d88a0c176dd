package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sagarikadotcom/canaan-pet-resort/controllers/boarding_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/booking_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/dog_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/kennel_controller"
	"github.com/sagarikadotcom/canaan-pet-resort/controllers/owner_controller"
)

func newRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, Controllers{
		Bookings:  booking_controller.NewBookingController(nil),
		Boardings: boarding_controller.NewBoardingController(nil, nil),
		Kennels:   kennel_controller.NewKennelController(nil),
		Owners:    owner_controller.NewOwnerController(nil),
		Dogs:      dog_controller.NewDogController(nil),
	}, Options{JWTSecret: secret, WriteRateLimit: "30-1m"})
	return r
}

func TestRegisterRoutes(t *testing.T) {
	r := newRouter("")

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"HEAD /health",
		"POST /bookings",
		"PUT /bookings",
		"GET /bookings",
		"GET /bookings/:id",
		"POST /api/bookings",
		"PUT /api/bookings",
		"GET /boardings",
		"POST /boardings/check-in",
		"GET /kennels",
		"GET /kennels/:id",
		"GET /kennels/:id/sub-kennels",
		"GET /owners",
		"GET /owners/:id",
		"GET /dogs",
		"GET /dogs/:id",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestHealth(t *testing.T) {
	r := newRouter("secret")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newRouter("secret")

	for _, path := range []string{"/bookings", "/boardings", "/kennels", "/owners", "/dogs"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
