package dog_models

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

var ErrDogNotFound = errors.New("dog not found")

type Dog struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   *uuid.UUID `json:"ownerId,omitempty"`
	Name      string     `json:"name"`
	Breed     string     `json:"breed"`
	Sex       string     `json:"sex"`
	Age       int        `json:"age"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const dogColumns = `id, owner_id, name, breed, sex, age, created_at, updated_at`

func scanDog(row pgx.Row) (*Dog, error) {
	d := &Dog{}
	if err := row.Scan(&d.ID, &d.OwnerID, &d.Name, &d.Breed, &d.Sex, &d.Age, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return d, nil
}

// GetDogByID returns ErrDogNotFound when no row matches.
func (r *Repository) GetDogByID(ctx context.Context, id uuid.UUID) (*Dog, error) {
	query := `SELECT ` + dogColumns + ` FROM dogs WHERE id = $1`

	d, err := scanDog(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.InfoLogger.Infof("Dog with ID %s not found in database.", id)
			return nil, ErrDogNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch dog %s from database: %v", id, err)
		return nil, fmt.Errorf("database error: %w", err)
	}
	return d, nil
}

func (r *Repository) ListDogs(ctx context.Context) ([]Dog, error) {
	rows, err := r.db.Query(ctx, `SELECT `+dogColumns+` FROM dogs ORDER BY name`)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to list dogs: %v", err)
		return nil, fmt.Errorf("failed to list dogs: %w", err)
	}
	defer rows.Close()

	dogs := []Dog{}
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dog: %w", err)
		}
		dogs = append(dogs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dogs: %w", err)
	}
	return dogs, nil
}
