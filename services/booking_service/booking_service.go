package booking_service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sagarikadotcom/canaan-pet-resort/logger"
	"github.com/sagarikadotcom/canaan-pet-resort/models/booking_models"
	"github.com/sagarikadotcom/canaan-pet-resort/models/dog_models"
	"github.com/sagarikadotcom/canaan-pet-resort/models/owner_models"
	"github.com/sagarikadotcom/canaan-pet-resort/utils"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, b *booking_models.Booking) (*booking_models.Booking, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (*booking_models.Booking, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, p booking_models.BookingPatch) (*booking_models.Booking, error)
	ListBookings(ctx context.Context, f booking_models.BookingFilter) ([]booking_models.Booking, error)
}

type OwnerFinder interface {
	GetOwnerByID(ctx context.Context, id uuid.UUID) (*owner_models.Owner, error)
}

type DogFinder interface {
	GetDogByID(ctx context.Context, id uuid.UUID) (*dog_models.Dog, error)
}

// BookingService validates booking writes and enforces the lifecycle rules.
type BookingService struct {
	bookings BookingRepository
	owners   OwnerFinder
	dogs     DogFinder
}

func NewBookingService(bookings BookingRepository, owners OwnerFinder, dogs DogFinder) *BookingService {
	return &BookingService{bookings: bookings, owners: owners, dogs: dogs}
}

type CreateBookingRequest struct {
	OwnerID           string   `json:"ownerId"`
	DogID             string   `json:"dogId"`
	CheckInDate       string   `json:"checkInDate"`
	CheckInTime       string   `json:"checkInTime"`
	CheckOutDate      string   `json:"checkOutDate"`
	CheckOutTime      string   `json:"checkOutTime"`
	DayBoarding       bool     `json:"dayBoarding"`
	OvernightBoarding bool     `json:"overnightBoarding"`
	Services          []string `json:"services"`
	TotalAmount       *float64 `json:"totalAmount"`
}

// UpdateBookingRequest uses pointers so that an absent (or null) field is
// distinguishable from an empty one.
type UpdateBookingRequest struct {
	BookingID      string  `json:"bookingId"`
	CheckInDate    *string `json:"checkInDate"`
	CheckInTime    *string `json:"checkInTime"`
	CheckOutDate   *string `json:"checkOutDate"`
	CheckOutTime   *string `json:"checkOutTime"`
	Status         *string `json:"status"`
	BoardingStatus *string `json:"boardingStatus"`
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// CreateBooking validates req, checks that the owner and dog exist and stores
// a new Pending / PaymentPending booking. Owner and dog are not locked: either
// may disappear between the check and the insert.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*booking_models.Booking, error) {
	if blank(req.OwnerID) || blank(req.DogID) || blank(req.CheckInDate) || blank(req.CheckInTime) ||
		blank(req.CheckOutDate) || blank(req.CheckOutTime) {
		return nil, utils.ValidationError("Missing required fields")
	}

	ownerID, err := parseID(req.OwnerID, "Invalid owner ID")
	if err != nil {
		return nil, err
	}
	dogID, err := parseID(req.DogID, "Invalid dog ID")
	if err != nil {
		return nil, err
	}
	checkInDate, ok := ParseDate(req.CheckInDate)
	if !ok {
		return nil, utils.ValidationError("Invalid check-in date")
	}
	checkInTime, ok := ParseTimeOfDay(req.CheckInTime)
	if !ok {
		return nil, utils.ValidationError("Invalid check-in time")
	}
	checkOutDate, ok := ParseDate(req.CheckOutDate)
	if !ok {
		return nil, utils.ValidationError("Invalid check-out date")
	}
	checkOutTime, ok := ParseTimeOfDay(req.CheckOutTime)
	if !ok {
		return nil, utils.ValidationError("Invalid check-out time")
	}
	services, err := parseServices(req.Services)
	if err != nil {
		return nil, err
	}
	var amount float64
	if req.TotalAmount != nil {
		amount = *req.TotalAmount
	}
	if amount < 0 {
		return nil, utils.ValidationError("Total amount cannot be negative")
	}

	if _, err := s.owners.GetOwnerByID(ctx, ownerID); err != nil {
		if errors.Is(err, owner_models.ErrOwnerNotFound) {
			return nil, utils.NotFoundError("Owner not found!")
		}
		return nil, utils.InternalError(err)
	}
	if _, err := s.dogs.GetDogByID(ctx, dogID); err != nil {
		if errors.Is(err, dog_models.ErrDogNotFound) {
			return nil, utils.NotFoundError("Dog not found!")
		}
		return nil, utils.InternalError(err)
	}

	booking, err := booking_models.NewBooking(ownerID, dogID, checkInDate, checkInTime, checkOutDate, checkOutTime)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	booking.DayBoarding = req.DayBoarding
	booking.OvernightBoarding = req.OvernightBoarding
	booking.Services = services
	booking.TotalAmount = amount

	created, err := s.bookings.CreateBooking(ctx, booking)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	return created, nil
}

// UpdateBooking overwrites the supplied fields and leaves the rest alone. Any
// status may follow any other; there is no transition table.
func (s *BookingService) UpdateBooking(ctx context.Context, req UpdateBookingRequest) (*booking_models.Booking, error) {
	if blank(req.BookingID) {
		return nil, utils.ValidationError("Booking ID is required")
	}

	var patch booking_models.BookingPatch
	if req.Status != nil {
		status := booking_models.Status(*req.Status)
		if !status.IsUpdatable() {
			return nil, utils.ValidationError("Invalid status value")
		}
		patch.Status = &status
	}
	if req.BoardingStatus != nil {
		bs := booking_models.BoardingStatus(*req.BoardingStatus)
		if !bs.IsValid() {
			return nil, utils.ValidationError("Invalid boarding status")
		}
		patch.BoardingStatus = &bs
	}

	id, err := parseID(req.BookingID, "Invalid booking ID")
	if err != nil {
		return nil, err
	}
	if patch.CheckInDate, err = optionalDate(req.CheckInDate, "Invalid check-in date"); err != nil {
		return nil, err
	}
	if patch.CheckInTime, err = optionalTime(req.CheckInTime, "Invalid check-in time"); err != nil {
		return nil, err
	}
	if patch.CheckOutDate, err = optionalDate(req.CheckOutDate, "Invalid check-out date"); err != nil {
		return nil, err
	}
	if patch.CheckOutTime, err = optionalTime(req.CheckOutTime, "Invalid check-out time"); err != nil {
		return nil, err
	}

	return s.Patch(ctx, id, patch)
}

// Patch applies an already-validated patch to booking id.
func (s *BookingService) Patch(ctx context.Context, id uuid.UUID, patch booking_models.BookingPatch) (*booking_models.Booking, error) {
	updated, err := s.bookings.UpdateBooking(ctx, id, patch)
	if err != nil {
		if errors.Is(err, booking_models.ErrBookingNotFound) {
			return nil, utils.NotFoundError("Booking not found")
		}
		return nil, utils.InternalError(err)
	}
	logger.DebugLogger.Debugf("Booking %s patched", id)
	return updated, nil
}

func (s *BookingService) GetBooking(ctx context.Context, rawID string) (*booking_models.Booking, error) {
	if blank(rawID) {
		return nil, utils.ValidationError("Booking ID is required")
	}
	id, err := parseID(rawID, "Invalid booking ID")
	if err != nil {
		return nil, err
	}
	b, err := s.bookings.GetBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, booking_models.ErrBookingNotFound) {
			return nil, utils.NotFoundError("Booking not found")
		}
		return nil, utils.InternalError(err)
	}
	return b, nil
}

// ParseFilter builds a list filter from query values. A boarding value passed
// as status (the dashboard sends status=CheckedIn) filters on boarding status.
func ParseFilter(status, boardingStatus string) (booking_models.BookingFilter, error) {
	var f booking_models.BookingFilter
	if status != "" {
		if bs := booking_models.BoardingStatus(status); bs.IsValid() {
			f.BoardingStatus = &bs
		} else if st := booking_models.Status(status); st.IsKnown() {
			f.Status = &st
		} else {
			return f, utils.ValidationError("Invalid status value")
		}
	}
	if boardingStatus != "" {
		bs := booking_models.BoardingStatus(boardingStatus)
		if !bs.IsValid() {
			return f, utils.ValidationError("Invalid boarding status")
		}
		f.BoardingStatus = &bs
	}
	return f, nil
}

func (s *BookingService) ListBookings(ctx context.Context, f booking_models.BookingFilter) ([]booking_models.Booking, error) {
	bookings, err := s.bookings.ListBookings(ctx, f)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	return bookings, nil
}
