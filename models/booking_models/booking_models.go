package booking_models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sagarikadotcom/canaan-pet-resort/models/dog_models"
	"github.com/sagarikadotcom/canaan-pet-resort/models/owner_models"
)

var ErrBookingNotFound = errors.New("booking not found")

// Status is the billing/lifecycle stage of a booking.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

// UpdatableStatuses is the set the update operation accepts. It differs from
// the stored set: Rejected is storable but cannot be set through an update.
var UpdatableStatuses = []Status{StatusConfirmed, StatusPending, StatusCompleted, StatusCancelled}

// IsKnown reports whether s is storable.
func (s Status) IsKnown() bool {
	return s.IsUpdatable() || s == StatusRejected
}

func (s Status) IsUpdatable() bool {
	for _, v := range UpdatableStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// BoardingStatus is the dog's physical presence stage, independent of Status.
type BoardingStatus string

const (
	BoardingCheckedIn      BoardingStatus = "CheckedIn"
	BoardingCheckedOut     BoardingStatus = "CheckedOut"
	BoardingPaymentPending BoardingStatus = "PaymentPending"
)

func (s BoardingStatus) IsValid() bool {
	switch s {
	case BoardingCheckedIn, BoardingCheckedOut, BoardingPaymentPending:
		return true
	}
	return false
}

type Service string

const (
	ServiceBoarding Service = "boarding"
	ServiceSwimming Service = "swimming"
	ServiceGrooming Service = "grooming"
	ServiceTraining Service = "training"
)

func (s Service) IsValid() bool {
	switch s {
	case ServiceBoarding, ServiceSwimming, ServiceGrooming, ServiceTraining:
		return true
	}
	return false
}

// Booking links one owner and one dog to a check-in/check-out window.
// Dates are UTC instants; the time-of-day lives separately in the *Time fields.
type Booking struct {
	ID                uuid.UUID      `json:"id"`
	OwnerID           uuid.UUID      `json:"ownerId"`
	DogID             uuid.UUID      `json:"dogId"`
	CheckInDate       time.Time      `json:"checkInDate"`
	CheckInTime       string         `json:"checkInTime"`
	CheckOutDate      time.Time      `json:"checkOutDate"`
	CheckOutTime      string         `json:"checkOutTime"`
	DayBoarding       bool           `json:"dayBoarding"`
	OvernightBoarding bool           `json:"overnightBoarding"`
	Services          []Service      `json:"services"`
	TotalAmount       float64        `json:"totalAmount"`
	Status            Status         `json:"status"`
	BoardingStatus    BoardingStatus `json:"boardingStatus"`
	KennelID          *uuid.UUID     `json:"kennelId,omitempty"`
	SubKennelNumber   *int           `json:"subKennelNumber,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// Dates returns the check-in and check-out instants.
func (b Booking) Dates() (checkIn, checkOut time.Time) {
	return b.CheckInDate, b.CheckOutDate
}

// NewBooking fills in the id, schema defaults and timestamps.
func NewBooking(ownerID, dogID uuid.UUID, checkInDate time.Time, checkInTime string, checkOutDate time.Time, checkOutTime string) (*Booking, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Booking{
		ID:             id,
		OwnerID:        ownerID,
		DogID:          dogID,
		CheckInDate:    checkInDate.UTC(),
		CheckInTime:    checkInTime,
		CheckOutDate:   checkOutDate.UTC(),
		CheckOutTime:   checkOutTime,
		Services:       []Service{},
		Status:         StatusPending,
		BoardingStatus: BoardingPaymentPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// BookingPatch is a partial update. A nil field was not supplied and is left
// unchanged, except that KennelID and SubKennelNumber form one placement:
// setting KennelID always overwrites SubKennelNumber.
type BookingPatch struct {
	CheckInDate     *time.Time
	CheckInTime     *string
	CheckOutDate    *time.Time
	CheckOutTime    *string
	Status          *Status
	BoardingStatus  *BoardingStatus
	KennelID        *uuid.UUID
	SubKennelNumber *int
}

// Apply copies every supplied field onto b.
func (p BookingPatch) Apply(b *Booking) {
	if p.CheckInDate != nil {
		b.CheckInDate = p.CheckInDate.UTC()
	}
	if p.CheckInTime != nil {
		b.CheckInTime = *p.CheckInTime
	}
	if p.CheckOutDate != nil {
		b.CheckOutDate = p.CheckOutDate.UTC()
	}
	if p.CheckOutTime != nil {
		b.CheckOutTime = *p.CheckOutTime
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.BoardingStatus != nil {
		b.BoardingStatus = *p.BoardingStatus
	}
	if p.KennelID != nil {
		id := *p.KennelID
		b.KennelID = &id
		b.SubKennelNumber = nil
		if p.SubKennelNumber != nil {
			n := *p.SubKennelNumber
			b.SubKennelNumber = &n
		}
	}
}

type BookingFilter struct {
	Status         *Status
	BoardingStatus *BoardingStatus
}

// Matches reports whether b passes every set criterion.
func (f BookingFilter) Matches(b *Booking) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.BoardingStatus != nil && b.BoardingStatus != *f.BoardingStatus {
		return false
	}
	return true
}

// BookingDetail is a booking with its owner and dog resolved. Either may be
// nil if the referenced row no longer exists.
type BookingDetail struct {
	Booking
	Owner *owner_models.Owner `json:"owner"`
	Dog   *dog_models.Dog     `json:"dog"`
}
