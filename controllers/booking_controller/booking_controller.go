package booking_controller

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sagarikadotcom/canaan-pet-resort/logger"
	"github.com/sagarikadotcom/canaan-pet-resort/models/booking_models"
	"github.com/sagarikadotcom/canaan-pet-resort/services/booking_service"
	"github.com/sagarikadotcom/canaan-pet-resort/utils"
)

// BookingLifecycle is the booking API the controller drives.
type BookingLifecycle interface {
	CreateBooking(ctx context.Context, req booking_service.CreateBookingRequest) (*booking_models.Booking, error)
	UpdateBooking(ctx context.Context, req booking_service.UpdateBookingRequest) (*booking_models.Booking, error)
	GetBooking(ctx context.Context, rawID string) (*booking_models.Booking, error)
	ListBookings(ctx context.Context, f booking_models.BookingFilter) ([]booking_models.Booking, error)
}

// BookingController holds dependencies for booking operations.
type BookingController struct {
	Bookings BookingLifecycle
}

func NewBookingController(bookings BookingLifecycle) *BookingController {
	return &BookingController{Bookings: bookings}
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	logger.InfoLogger.Info("CreateBooking controller called")

	// An empty body binds to an empty request and fails the required-field check.
	var req booking_service.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.WarnLogger.Warnf("Invalid create booking body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	booking, err := bc.Bookings.CreateBooking(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	logger.InfoLogger.WithFields(logrus.Fields{"booking_id": booking.ID, "owner_id": booking.OwnerID}).Info("Booking created")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully!",
		"booking": booking,
	})
}

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	logger.InfoLogger.Info("UpdateBooking controller called")

	var req booking_service.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnLogger.Warnf("Invalid update booking body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	booking, err := bc.Bookings.UpdateBooking(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	logger.InfoLogger.WithFields(logrus.Fields{
		"booking_id":      booking.ID,
		"status":          booking.Status,
		"boarding_status": booking.BoardingStatus,
	}).Info("Booking updated")
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking updated successfully!",
		"booking": booking,
	})
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	logger.InfoLogger.Info("GetBooking controller called")

	booking, err := bc.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// ListBookings serves GET /bookings?status=&boardingStatus=.
func (bc *BookingController) ListBookings(c *gin.Context) {
	logger.InfoLogger.Info("ListBookings controller called")

	filter, err := booking_service.ParseFilter(c.Query("status"), c.Query("boardingStatus"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	bookings, err := bc.Bookings.ListBookings(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
