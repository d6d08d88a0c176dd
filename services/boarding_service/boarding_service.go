package boarding_service

import (
	"context"
	"strings"
	"time"

	"github.com/sagarikadotcom/canaan-pet-resort/logger"
	"github.com/sagarikadotcom/canaan-pet-resort/models/booking_models"
	"github.com/sagarikadotcom/canaan-pet-resort/utils"
)

type BookingDetailLister interface {
	ListBookingDetails(ctx context.Context, f booking_models.BookingFilter) ([]booking_models.BookingDetail, error)
}

// BoardingCard is one booking as shown on the boarding-updates board.
type BoardingCard struct {
	booking_models.BookingDetail
	CheckInDisplay  string `json:"checkInDisplay"`
	CheckOutDisplay string `json:"checkOutDisplay"`
}

type BoardingQuery struct {
	// Month is 0-11; nil means the current month in Location.
	Month    *int
	Search   string
	Location *time.Location
}

type BoardingUpdates struct {
	Month    int                   `json:"month"`
	Timezone string                `json:"timezone"`
	Total    int                   `json:"total"`
	Buckets  Buckets[BoardingCard] `json:"buckets"`
}

type BoardingService struct {
	bookings BookingDetailLister
	loc      *time.Location
	now      func() time.Time
}

// NewBoardingService uses loc when a query carries no location.
func NewBoardingService(bookings BookingDetailLister, loc *time.Location) *BoardingService {
	if loc == nil {
		loc = time.Local
	}
	return &BoardingService{bookings: bookings, loc: loc, now: time.Now}
}

// WithClock replaces the clock; used by tests.
func (s *BoardingService) WithClock(now func() time.Time) *BoardingService {
	s.now = now
	return s
}

// MatchesSearch reports whether q appears (case-insensitively) in the owner's
// name or phone number or the dog's name. An empty q matches everything.
func MatchesSearch(d booking_models.BookingDetail, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	var fields []string
	if d.Owner != nil {
		fields = append(fields, d.Owner.FirstName, d.Owner.LastName,
			d.Owner.FirstName+" "+d.Owner.LastName, d.Owner.PhoneNumber)
	}
	if d.Dog != nil {
		fields = append(fields, d.Dog.Name)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func (s *BoardingService) GetBoardingUpdates(ctx context.Context, q BoardingQuery) (*BoardingUpdates, error) {
	loc := q.Location
	if loc == nil {
		loc = s.loc
	}
	now := s.now()

	month := int(now.In(loc).Month()) - 1
	if q.Month != nil {
		if *q.Month < 0 || *q.Month > 11 {
			return nil, utils.ValidationError("Invalid month")
		}
		month = *q.Month
	}

	details, err := s.bookings.ListBookingDetails(ctx, booking_models.BookingFilter{})
	if err != nil {
		return nil, utils.InternalError(err)
	}

	cards := make([]BoardingCard, 0, len(details))
	for _, d := range details {
		if !MatchesSearch(d, q.Search) {
			continue
		}
		cards = append(cards, BoardingCard{
			BookingDetail:   d,
			CheckInDisplay:  FormatLocal(d.CheckInDate, d.CheckInTime, loc),
			CheckOutDisplay: FormatLocal(d.CheckOutDate, d.CheckOutTime, loc),
		})
	}
	cards = FilterByMonth(cards, month, loc)

	logger.DebugLogger.Debugf("Boarding updates: %d of %d bookings in month %d (%s)", len(cards), len(details), month, loc)

	return &BoardingUpdates{
		Month:    month,
		Timezone: loc.String(),
		Total:    len(cards),
		Buckets:  Bucket(cards, now, loc),
	}, nil
}
