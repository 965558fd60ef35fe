package repo

import (
	"context"
	"database/sql"

	"github.com/crucial707/scheduler/internal/models"
)

// TaskRepo persists schedule entries. Every query that touches an existing row
// filters by both id and user_id, so ownership is enforced in SQL and a user
// can never read or mutate another user's entries.
type TaskRepo struct {
	DB *sql.DB
}

// NewTaskRepo returns a new TaskRepo.
func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{DB: db}
}

// ListByUser returns the user's entries ordered by date then time, ascending.
// NULLS LAST is explicit so undated entries sink to the bottom regardless of
// engine defaults; ties break by insertion order.
func (r *TaskRepo) ListByUser(ctx context.Context, userID int) ([]models.Task, error) {
	query := `
		SELECT id, user_id, title, date::text, time::text, notes
		FROM schedule
		WHERE user_id = $1
		ORDER BY date ASC NULLS LAST, time ASC NULLS LAST, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Date, &t.Time, &t.Notes); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// GetByID returns one entry scoped to its owner. Returns (nil, nil) when the
// entry does not exist or belongs to another user; callers treat both the
// same way.
func (r *TaskRepo) GetByID(ctx context.Context, id, userID int) (*models.Task, error) {
	query := `
		SELECT id, user_id, title, date::text, time::text, notes
		FROM schedule
		WHERE id = $1 AND user_id = $2
	`
	t := &models.Task{}
	err := r.DB.QueryRowContext(ctx, query, id, userID).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Date, &t.Time, &t.Notes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a new entry owned by userID. Optional fields arrive as nil
// pointers and are stored as NULL.
func (r *TaskRepo) Create(ctx context.Context, userID int, title string, date, timeOfDay, notes *string) (*models.Task, error) {
	query := `
		INSERT INTO schedule (user_id, title, date, time, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, title, date::text, time::text, notes
	`
	t := &models.Task{}
	err := r.DB.QueryRowContext(ctx, query, userID, title, date, timeOfDay, notes).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Date, &t.Time, &t.Notes)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces title, date, time, and notes for the entry owned by userID.
// Returns false when no row matched (missing or not owned).
func (r *TaskRepo) Update(ctx context.Context, id, userID int, title string, date, timeOfDay, notes *string) (bool, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE schedule SET title = $1, date = $2, time = $3, notes = $4 WHERE id = $5 AND user_id = $6`,
		title, date, timeOfDay, notes, id, userID,
	)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Delete removes the entry owned by userID. Deleting a missing or non-owned
// id is a silent no-op; delete is idempotent.
func (r *TaskRepo) Delete(ctx context.Context, id, userID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM schedule WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
