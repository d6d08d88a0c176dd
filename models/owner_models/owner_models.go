package owner_models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sagarikadotcom/canaan-pet-resort/logger"
)

var ErrOwnerNotFound = errors.New("owner not found")

type Owner struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Repository reads owners from PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const ownerColumns = `id, first_name, last_name, phone_number, created_at, updated_at`

func scanOwner(row pgx.Row) (*Owner, error) {
	o := &Owner{}
	if err := row.Scan(&o.ID, &o.FirstName, &o.LastName, &o.PhoneNumber, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return o, nil
}

// GetOwnerByID returns ErrOwnerNotFound when no row matches.
func (r *Repository) GetOwnerByID(ctx context.Context, id uuid.UUID) (*Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE id = $1`

	o, err := scanOwner(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.InfoLogger.Infof("Owner with ID %s not found in database.", id)
			return nil, ErrOwnerNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch owner %s from database: %v", id, err)
		return nil, fmt.Errorf("database error: %w", err)
	}
	return o, nil
}

func (r *Repository) ListOwners(ctx context.Context) ([]Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners ORDER BY first_name, last_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to list owners: %v", err)
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	defer rows.Close()

	owners := []Owner{}
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan owner: %w", err)
		}
		owners = append(owners, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating owners: %w", err)
	}
	return owners, nil
}
