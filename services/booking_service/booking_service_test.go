package booking_service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sagarikadotcom/canaan-pet-resort/models/booking_models"
	"github.com/sagarikadotcom/canaan-pet-resort/models/dog_models"
	"github.com/sagarikadotcom/canaan-pet-resort/models/owner_models"
	"github.com/sagarikadotcom/canaan-pet-resort/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBookings struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]booking_models.Booking
	failWith error
}

func newMemBookings() *memBookings {
	return &memBookings{bookings: map[uuid.UUID]booking_models.Booking{}}
}

func (m *memBookings) CreateBooking(_ context.Context, b *booking_models.Booking) (*booking_models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.bookings[b.ID] = *b
	out := *b
	return &out, nil
}

func (m *memBookings) GetBookingByID(_ context.Context, id uuid.UUID) (*booking_models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, booking_models.ErrBookingNotFound
	}
	return &b, nil
}

func (m *memBookings) UpdateBooking(_ context.Context, id uuid.UUID, p booking_models.BookingPatch) (*booking_models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	b, ok := m.bookings[id]
	if !ok {
		return nil, booking_models.ErrBookingNotFound
	}
	p.Apply(&b)
	m.bookings[id] = b
	return &b, nil
}

func (m *memBookings) ListBookings(_ context.Context, f booking_models.BookingFilter) ([]booking_models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []booking_models.Booking{}
	for _, b := range m.bookings {
		if f.Matches(&b) {
			out = append(out, b)
		}
	}
	return out, nil
}

type memOwners map[uuid.UUID]owner_models.Owner

func (m memOwners) GetOwnerByID(_ context.Context, id uuid.UUID) (*owner_models.Owner, error) {
	o, ok := m[id]
	if !ok {
		return nil, owner_models.ErrOwnerNotFound
	}
	return &o, nil
}

type memDogs map[uuid.UUID]dog_models.Dog

func (m memDogs) GetDogByID(_ context.Context, id uuid.UUID) (*dog_models.Dog, error) {
	d, ok := m[id]
	if !ok {
		return nil, dog_models.ErrDogNotFound
	}
	return &d, nil
}

type fixture struct {
	svc      *BookingService
	bookings *memBookings
	ownerID  uuid.UUID
	dogID    uuid.UUID
}

func newFixture() *fixture {
	ownerID, dogID := uuid.New(), uuid.New()
	bookings := newMemBookings()
	owners := memOwners{ownerID: {ID: ownerID, FirstName: "Asha", PhoneNumber: "+919800000000"}}
	dogs := memDogs{dogID: {ID: dogID, Name: "Bruno", Breed: "Labrador"}}
	return &fixture{
		svc:      NewBookingService(bookings, owners, dogs),
		bookings: bookings,
		ownerID:  ownerID,
		dogID:    dogID,
	}
}

func (f *fixture) validCreate() CreateBookingRequest {
	return CreateBookingRequest{
		OwnerID:      f.ownerID.String(),
		DogID:        f.dogID.String(),
		CheckInDate:  "2024-06-01",
		CheckInTime:  "14:00",
		CheckOutDate: "2024-06-03",
		CheckOutTime: "11:00",
	}
}

func strPtr(s string) *string { return &s }

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newFixture()
		b, err := f.svc.CreateBooking(ctx, f.validCreate())
		require.NoError(t, err)

		assert.Equal(t, booking_models.StatusPending, b.Status)
		assert.Equal(t, booking_models.BoardingPaymentPending, b.BoardingStatus)
		assert.True(t, b.CheckInDate.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, "14:00", b.CheckInTime)
		assert.Equal(t, "11:00", b.CheckOutTime)
		assert.False(t, b.DayBoarding)
		assert.Zero(t, b.TotalAmount)
		assert.Len(t, f.bookings.bookings, 1)
	})

	t.Run("OptionalFields", func(t *testing.T) {
		f := newFixture()
		req := f.validCreate()
		amount := 2500.0
		req.TotalAmount = &amount
		req.OvernightBoarding = true
		req.Services = []string{"grooming", "boarding", "grooming"}

		b, err := f.svc.CreateBooking(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 2500.0, b.TotalAmount)
		assert.True(t, b.OvernightBoarding)
		assert.ElementsMatch(t, []booking_models.Service{"grooming", "boarding"}, b.Services)
	})

	t.Run("MissingRequiredFields", func(t *testing.T) {
		mutations := map[string]func(*CreateBookingRequest){
			"ownerId":      func(r *CreateBookingRequest) { r.OwnerID = "" },
			"dogId":        func(r *CreateBookingRequest) { r.DogID = "" },
			"checkInDate":  func(r *CreateBookingRequest) { r.CheckInDate = "" },
			"checkInTime":  func(r *CreateBookingRequest) { r.CheckInTime = " " },
			"checkOutDate": func(r *CreateBookingRequest) { r.CheckOutDate = "" },
			"checkOutTime": func(r *CreateBookingRequest) { r.CheckOutTime = "" },
		}
		for field, mutate := range mutations {
			t.Run(field, func(t *testing.T) {
				f := newFixture()
				req := f.validCreate()
				mutate(&req)

				_, err := f.svc.CreateBooking(ctx, req)
				require.Error(t, err)
				assert.Equal(t, utils.KindValidation, utils.KindOf(err))
				assert.Equal(t, "Missing required fields", utils.PublicMessage(err))
				assert.Empty(t, f.bookings.bookings)
			})
		}
	})

	t.Run("OwnerNotFoundEvenWithValidDog", func(t *testing.T) {
		f := newFixture()
		req := f.validCreate()
		req.OwnerID = uuid.NewString()

		_, err := f.svc.CreateBooking(ctx, req)
		require.Error(t, err)
		assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
		assert.Equal(t, "Owner not found!", utils.PublicMessage(err))
		assert.Empty(t, f.bookings.bookings)
	})

	t.Run("DogNotFound", func(t *testing.T) {
		f := newFixture()
		req := f.validCreate()
		req.DogID = uuid.NewString()

		_, err := f.svc.CreateBooking(ctx, req)
		assert.Equal(t, "Dog not found!", utils.PublicMessage(err))
		assert.Empty(t, f.bookings.bookings)
	})

	t.Run("MalformedInput", func(t *testing.T) {
		cases := map[string]struct {
			mutate func(*CreateBookingRequest)
			msg    string
		}{
			"owner id":     {func(r *CreateBookingRequest) { r.OwnerID = "O1" }, "Invalid owner ID"},
			"check-in":     {func(r *CreateBookingRequest) { r.CheckInDate = "01/06/2024" }, "Invalid check-in date"},
			"check-in at":  {func(r *CreateBookingRequest) { r.CheckInTime = "2pm" }, "Invalid check-in time"},
			"check-out at": {func(r *CreateBookingRequest) { r.CheckOutTime = "25:00" }, "Invalid check-out time"},
			"service":      {func(r *CreateBookingRequest) { r.Services = []string{"spa"} }, "Invalid service value"},
			"amount": {func(r *CreateBookingRequest) {
				neg := -1.0
				r.TotalAmount = &neg
			}, "Total amount cannot be negative"},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				f := newFixture()
				req := f.validCreate()
				tc.mutate(&req)

				_, err := f.svc.CreateBooking(ctx, req)
				assert.Equal(t, utils.KindValidation, utils.KindOf(err))
				assert.Equal(t, tc.msg, utils.PublicMessage(err))
			})
		}
	})

	t.Run("StoreFailure", func(t *testing.T) {
		f := newFixture()
		f.bookings.failWith = errors.New("connection refused")

		_, err := f.svc.CreateBooking(ctx, f.validCreate())
		assert.Equal(t, utils.KindInternal, utils.KindOf(err))
		assert.Equal(t, "Internal Server Error", utils.PublicMessage(err))
	})
}

func TestUpdateBooking(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fixture, *booking_models.Booking) {
		f := newFixture()
		b, err := f.svc.CreateBooking(ctx, f.validCreate())
		require.NoError(t, err)
		return f, b
	}

	t.Run("BoardingStatusOnly", func(t *testing.T) {
		f, b := seed(t)
		_, err := f.svc.UpdateBooking(ctx, UpdateBookingRequest{BookingID: b.ID.String(), Status: strPtr("Confirmed")})
		require.NoError(t, err)
		before := f.bookings.bookings[b.ID]

		updated, err := f.svc.UpdateBooking(ctx, UpdateBookingRequest{BookingID: b.ID.String(), BoardingStatus: strPtr("CheckedIn")})
		require.NoError(t, err)

		assert.Equal(t, booking_models.BoardingCheckedIn, updated.BoardingStatus)
		assert.Equal(t, booking_models.StatusConfirmed, updated.Status)
		assert.Equal(t, before.CheckInDate, updated.CheckInDate)
		assert.Equal(t, before.CheckInTime, updated.CheckInTime)
		assert.Equal(t, before.CheckOutDate, updated.CheckOutDate)
		assert.Equal(t, before.CheckOutTime, updated.CheckOutTime)
	})

	t.Run("AnyTransitionAllowed", func(t *testing.T) {
		f, b := seed(t)
		for _, s := range []string{"Completed", "Pending", "Cancelled", "Confirmed"} {
			updated, err := f.svc.UpdateBooking(ctx, UpdateBookingRequest{BookingID: b.ID.String(), Status: strPtr(s)})
			require.NoError(t, err)
			assert.Equal(t, booking_models.Status(s), updated.Status)
		}
	})

	t.Run("InvalidStatusLeavesBookingUnchanged", func(t *testing.T) {
		f, b := seed(t)
		for _, s := range []string{"Archived", "Rejected", "", "pending"} {
			_, err := f.svc.UpdateBooking(ctx, UpdateBookingRequest{BookingID: b.ID.String(), Status: strPtr(s), CheckInTime: strPtr("09:00")})
			require.Error(t, err)
			assert.Equal(t, "Invalid status value", utils.PublicMessage(err), s)
		}
		assert.Equal(t, *b, f.bookings.bookings[b.ID])
	})

	t.Run("InvalidBoardingStatus", func(t *testing.T) {
		f, b := seed(t)
		_, err := f.svc.UpdateBooking(ctx, UpdateBookingRequest{BookingID: b.ID.String(), BoardingStatus: strPtr("Checked-In")})
		assert.Equal(t, "Invalid boarding status", utils.PublicMessage(err))
	})

	t.Run("MissingBookingID", func(t *testing.T) {
		f, _ := seed(t)
		_, err := f.svc.UpdateBooking(ctx, UpdateBookingRequest{Status: strPtr("Archived")})
		assert.Equal(t, "Booking ID is required", utils.PublicMessage(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		f, _ := seed(t)
		_, err := f.svc.UpdateBooking(ctx, UpdateBookingRequest{BookingID: uuid.NewString(), Status: strPtr("Confirmed")})
		assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
		assert.Equal(t, "Booking not found", utils.PublicMessage(err))
	})

	t.Run("EmptyStringIsNotSkipped", func(t *testing.T) {
		f, b := seed(t)
		_, err := f.svc.UpdateBooking(ctx, UpdateBookingRequest{BookingID: b.ID.String(), CheckInTime: strPtr("")})
		assert.Equal(t, "Invalid check-in time", utils.PublicMessage(err))
		assert.Equal(t, "14:00", f.bookings.bookings[b.ID].CheckInTime)
	})

	t.Run("Dates", func(t *testing.T) {
		f, b := seed(t)
		updated, err := f.svc.UpdateBooking(ctx, UpdateBookingRequest{
			BookingID:    b.ID.String(),
			CheckOutDate: strPtr("2024-06-05T00:00:00.000Z"),
			CheckOutTime: strPtr("10:30"),
		})
		require.NoError(t, err)
		assert.True(t, updated.CheckOutDate.Equal(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, "10:30", updated.CheckOutTime)
		assert.Equal(t, b.CheckInDate, updated.CheckInDate)
	})
}

func TestGetBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	b, err := f.svc.CreateBooking(ctx, f.validCreate())
	require.NoError(t, err)

	got, err := f.svc.GetBooking(ctx, b.ID.String())
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = f.svc.GetBooking(ctx, "not-a-uuid")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	_, err = f.svc.GetBooking(ctx, uuid.NewString())
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("CheckedIn", "")
	require.NoError(t, err)
	require.NotNil(t, f.BoardingStatus)
	assert.Equal(t, booking_models.BoardingCheckedIn, *f.BoardingStatus)
	assert.Nil(t, f.Status)

	f, err = ParseFilter("Rejected", "PaymentPending")
	require.NoError(t, err)
	assert.Equal(t, booking_models.StatusRejected, *f.Status)
	assert.Equal(t, booking_models.BoardingPaymentPending, *f.BoardingStatus)

	_, err = ParseFilter("Archived", "")
	assert.Equal(t, "Invalid status value", utils.PublicMessage(err))

	_, err = ParseFilter("", "Gone")
	assert.Equal(t, "Invalid boarding status", utils.PublicMessage(err))
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2024-03-15")
	require.True(t, ok)
	assert.True(t, d.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))

	d, ok = ParseDate("2024-03-15T18:30:00+05:30")
	require.True(t, ok)
	assert.True(t, d.Equal(time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC)))

	_, ok = ParseDate("15-03-2024")
	assert.False(t, ok)
}
