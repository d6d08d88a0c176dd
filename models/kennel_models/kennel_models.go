package kennel_models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sagarikadotcom/canaan-pet-resort/logger"
)

var ErrKennelNotFound = errors.New("kennel not found")

type SubKennel struct {
	Number int `json:"number"`
}

// Kennel is a physical housing unit with numbered sub-kennels.
type Kennel struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	GuardianName string      `json:"guardianName"`
	SubKennels   []SubKennel `json:"subKennels"`
}

func (k *Kennel) HasSubKennel(number int) bool {
	for _, s := range k.SubKennels {
		if s.Number == number {
			return true
		}
	}
	return false
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListKennels returns every kennel with its sub-kennels ordered by number.
func (r *Repository) ListKennels(ctx context.Context) ([]Kennel, error) {
	return r.queryKennels(ctx, ``)
}

func (r *Repository) GetKennelByID(ctx context.Context, id uuid.UUID) (*Kennel, error) {
	kennels, err := r.queryKennels(ctx, `WHERE k.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(kennels) == 0 {
		return nil, ErrKennelNotFound
	}
	return &kennels[0], nil
}

func (r *Repository) queryKennels(ctx context.Context, where string, args ...any) ([]Kennel, error) {
	query := `
		SELECT k.id, k.name, k.guardian_name, s.number
		FROM kennels k
		LEFT JOIN sub_kennels s ON s.kennel_id = k.id
		` + where + `
		ORDER BY k.name, k.id, s.number`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to query kennels: %v", err)
		return nil, fmt.Errorf("failed to query kennels: %w", err)
	}
	defer rows.Close()

	kennels := []Kennel{}
	for rows.Next() {
		var (
			id           uuid.UUID
			name         string
			guardianName string
			number       *int
		)
		if err := rows.Scan(&id, &name, &guardianName, &number); err != nil {
			return nil, fmt.Errorf("failed to scan kennel: %w", err)
		}

		// Rows arrive grouped by kennel.
		if len(kennels) == 0 || kennels[len(kennels)-1].ID != id {
			kennels = append(kennels, Kennel{ID: id, Name: name, GuardianName: guardianName, SubKennels: []SubKennel{}})
		}
		if number != nil {
			k := &kennels[len(kennels)-1]
			k.SubKennels = append(k.SubKennels, SubKennel{Number: *number})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating kennels: %w", err)
	}
	return kennels, nil
}
