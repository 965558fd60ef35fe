package repo

import (
	"context"
	"database/sql"

	"github.com/crucial707/scheduler/internal/models"
)

// VenueRepo persists venues. Venues are global: no owner column, visible to
// every signed-in user.
type VenueRepo struct {
	DB *sql.DB
}

// NewVenueRepo returns a new VenueRepo.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{DB: db}
}

// Create inserts a venue and returns it with id set.
func (r *VenueRepo) Create(ctx context.Context, name, location string) (*models.Venue, error) {
	query := `
		INSERT INTO venue (name, location)
		VALUES ($1, $2)
		RETURNING id, name, location
	`
	v := &models.Venue{}
	err := r.DB.QueryRowContext(ctx, query, name, location).
		Scan(&v.ID, &v.Name, &v.Location)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// List returns all venues ordered by name ascending, ties by id.
func (r *VenueRepo) List(ctx context.Context) ([]models.Venue, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, location FROM venue ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Venue
	for rows.Next() {
		var v models.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Location); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Count returns the total number of venues. Used by the admin CLI.
func (r *VenueRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM venue`).Scan(&n)
	return n, err
}
