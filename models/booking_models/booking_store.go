package booking_models

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sagarikadotcom/canaan-pet-resort/logger"
	"github.com/sagarikadotcom/canaan-pet-resort/models/dog_models"
	"github.com/sagarikadotcom/canaan-pet-resort/models/owner_models"
)

// Repository persists bookings in PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const bookingColumns = `
	b.id, b.owner_id, b.dog_id, b.check_in_date, b.check_in_time, b.check_out_date, b.check_out_time,
	b.day_boarding, b.overnight_boarding, b.services, b.total_amount, b.status, b.boarding_status,
	b.kennel_id, b.sub_kennel_number, b.created_at, b.updated_at`

func bookingScanTargets(b *Booking, services *[]string, status, boardingStatus *string) []any {
	return []any{
		&b.ID, &b.OwnerID, &b.DogID, &b.CheckInDate, &b.CheckInTime, &b.CheckOutDate, &b.CheckOutTime,
		&b.DayBoarding, &b.OvernightBoarding, services, &b.TotalAmount, status, boardingStatus,
		&b.KennelID, &b.SubKennelNumber, &b.CreatedAt, &b.UpdatedAt,
	}
}

func finishScan(b *Booking, services []string, status, boardingStatus string) {
	b.Services = make([]Service, 0, len(services))
	for _, s := range services {
		b.Services = append(b.Services, Service(s))
	}
	b.Status = Status(status)
	b.BoardingStatus = BoardingStatus(boardingStatus)
	b.CheckInDate = b.CheckInDate.UTC()
	b.CheckOutDate = b.CheckOutDate.UTC()
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b              Booking
		services       []string
		status         string
		boardingStatus string
	)
	if err := row.Scan(bookingScanTargets(&b, &services, &status, &boardingStatus)...); err != nil {
		return nil, err
	}
	finishScan(&b, services, status, boardingStatus)
	return &b, nil
}

func serviceStrings(services []Service) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		out = append(out, string(s))
	}
	return out
}

// CreateBooking inserts b and returns the stored row.
func (r *Repository) CreateBooking(ctx context.Context, b *Booking) (*Booking, error) {
	logger.InfoLogger.Infof("Attempting to create booking for owner %s, dog %s", b.OwnerID, b.DogID)

	query := `
		INSERT INTO bookings AS b (
			id, owner_id, dog_id, check_in_date, check_in_time, check_out_date, check_out_time,
			day_boarding, overnight_boarding, services, total_amount, status, boarding_status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING ` + bookingColumns

	created, err := scanBooking(r.db.QueryRow(ctx, query,
		b.ID, b.OwnerID, b.DogID, b.CheckInDate, b.CheckInTime, b.CheckOutDate, b.CheckOutTime,
		b.DayBoarding, b.OvernightBoarding, serviceStrings(b.Services), b.TotalAmount,
		string(b.Status), string(b.BoardingStatus), b.CreatedAt, b.UpdatedAt,
	))
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert booking for owner %s: %v", b.OwnerID, err)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.InfoLogger.Infof("Booking with ID %s created successfully", created.ID)
	return created, nil
}

// GetBookingByID returns ErrBookingNotFound when no row matches.
func (r *Repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch booking %s: %v", id, err)
		return nil, fmt.Errorf("database error: %w", err)
	}
	return b, nil
}

// UpdateBooking writes every supplied patch field in a single statement.
// A new kennel replaces the sub-kennel too, clearing it when none is given.
func (r *Repository) UpdateBooking(ctx context.Context, id uuid.UUID, p BookingPatch) (*Booking, error) {
	logger.InfoLogger.Infof("Updating booking %s", id)

	query := `
		UPDATE bookings AS b SET
			check_in_date     = COALESCE($2, b.check_in_date),
			check_in_time     = COALESCE($3, b.check_in_time),
			check_out_date    = COALESCE($4, b.check_out_date),
			check_out_time    = COALESCE($5, b.check_out_time),
			status            = COALESCE($6, b.status),
			boarding_status   = COALESCE($7, b.boarding_status),
			kennel_id         = COALESCE($8, b.kennel_id),
			sub_kennel_number = CASE WHEN $8::uuid IS NOT NULL THEN $9::integer ELSE b.sub_kennel_number END,
			updated_at        = $10
		WHERE b.id = $1
		RETURNING ` + bookingColumns

	var status, boardingStatus *string
	if p.Status != nil {
		s := string(*p.Status)
		status = &s
	}
	if p.BoardingStatus != nil {
		s := string(*p.BoardingStatus)
		boardingStatus = &s
	}

	b, err := scanBooking(r.db.QueryRow(ctx, query,
		id, utcPtr(p.CheckInDate), p.CheckInTime, utcPtr(p.CheckOutDate), p.CheckOutTime,
		status, boardingStatus, p.KennelID, p.SubKennelNumber, time.Now().UTC(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		logger.ErrorLogger.Errorf("Failed to update booking %s: %v", id, err)
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	logger.InfoLogger.Infof("Booking %s updated (status %s, boarding %s)", id, b.Status, b.BoardingStatus)
	return b, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func filterClause(f BookingFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Status != nil {
		args = append(args, string(*f.Status))
		conds = append(conds, fmt.Sprintf("b.status = $%d", len(args)))
	}
	if f.BoardingStatus != nil {
		args = append(args, string(*f.BoardingStatus))
		conds = append(conds, fmt.Sprintf("b.boarding_status = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// ListBookings returns bookings matching f, newest first.
func (r *Repository) ListBookings(ctx context.Context, f BookingFilter) ([]Booking, error) {
	where, args := filterClause(f)
	query := `SELECT ` + bookingColumns + ` FROM bookings b ` + where + ` ORDER BY b.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to list bookings: %v", err)
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}
	return bookings, nil
}

// ListBookingDetails returns bookings matching f with owner and dog joined in.
func (r *Repository) ListBookingDetails(ctx context.Context, f BookingFilter) ([]BookingDetail, error) {
	where, args := filterClause(f)
	query := `
		SELECT ` + bookingColumns + `,
			o.id, o.first_name, o.last_name, o.phone_number,
			d.id, d.name, d.breed, d.sex, d.age
		FROM bookings b
		LEFT JOIN owners o ON o.id = b.owner_id
		LEFT JOIN dogs d ON d.id = b.dog_id
		` + where + `
		ORDER BY b.check_in_date`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to list booking details: %v", err)
		return nil, fmt.Errorf("failed to list booking details: %w", err)
	}
	defer rows.Close()

	details := []BookingDetail{}
	for rows.Next() {
		var (
			d                   BookingDetail
			services            []string
			status, boarding    string
			ownerID, dogID      *uuid.UUID
			firstName, lastName *string
			phone               *string
			dogName, breed, sex *string
			age                 *int
		)
		targets := bookingScanTargets(&d.Booking, &services, &status, &boarding)
		targets = append(targets, &ownerID, &firstName, &lastName, &phone, &dogID, &dogName, &breed, &sex, &age)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("failed to scan booking detail: %w", err)
		}
		finishScan(&d.Booking, services, status, boarding)

		if ownerID != nil {
			d.Owner = &owner_models.Owner{ID: *ownerID, FirstName: deref(firstName), LastName: deref(lastName), PhoneNumber: deref(phone)}
		}
		if dogID != nil {
			d.Dog = &dog_models.Dog{ID: *dogID, Name: deref(dogName), Breed: deref(breed), Sex: deref(sex)}
			if age != nil {
				d.Dog.Age = *age
			}
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking details: %w", err)
	}
	return details, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
