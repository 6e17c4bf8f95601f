package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/pkg/apperrors"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO events (title, description, date, location, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		event.Title, event.Description, event.Date, event.Location, event.CreatedBy).
		Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	event := &models.Event{}
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, date, location, created_by, created_at, updated_at
		FROM events
		WHERE id = $1`, id).Scan(
		&event.ID, &event.Title, &event.Description, &event.Date,
		&event.Location, &event.CreatedBy, &event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return event, nil
}

// GetAll retrieves all events ordered by date
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, date, location, created_by, created_at, updated_at
		FROM events
		ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.Date,
			&event.Location, &event.CreatedBy, &event.CreatedAt, &event.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Update updates an existing event
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE events
		SET title = $1, description = $2, date = $3, location = $4, updated_at = NOW()
		WHERE id = $5`,
		event.Title, event.Description, event.Date, event.Location, event.ID)

	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete deletes an event by ID
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
