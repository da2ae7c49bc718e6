package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emre/innohub/internal/app/models"
	"github.com/emre/innohub/internal/db"
	"github.com/emre/innohub/internal/pkg/apperrors"
	"github.com/emre/innohub/internal/pkg/dberrors"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *db.PostgresDB
}

// NewEventRepository creates a new event repository
func NewEventRepository(database *db.PostgresDB) *EventRepository {
	return &EventRepository{
		db: database,
	}
}

// Create inserts a new event. Name and slug carry unique constraints.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (name, slug, description, event_date, min_team_size, max_team_size, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		event.Name, event.Slug, event.Description, event.Date,
		event.MinTeamSize, event.MaxTeamSize, event.IsActive,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEventAlreadyExists
		}
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// GetAll retrieves all events, optionally only the active ones
func (r *EventRepository) GetAll(ctx context.Context, activeOnly bool) ([]*models.Event, error) {
	query := `
		SELECT id, name, slug, description, event_date, min_team_size, max_team_size, is_active, created_at
		FROM events
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY event_date DESC, id DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Slug,
			&event.Description,
			&event.Date,
			&event.MinTeamSize,
			&event.MaxTeamSize,
			&event.IsActive,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// GetBySlug retrieves an event by its slug
func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	query := `
		SELECT id, name, slug, description, event_date, min_team_size, max_team_size, is_active, created_at
		FROM events
		WHERE slug = $1
	`

	var event models.Event
	err := r.db.Pool.QueryRow(ctx, query, slug).Scan(
		&event.ID,
		&event.Name,
		&event.Slug,
		&event.Description,
		&event.Date,
		&event.MinTeamSize,
		&event.MaxTeamSize,
		&event.IsActive,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return &event, nil
}

// DeleteCascade removes an event together with all its registrations and
// their participants inside one transaction, and reports how many
// registrations were removed.
func (r *EventRepository) DeleteCascade(ctx context.Context, eventID int64) (int64, error) {
	var deletedRegistrations int64

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			DELETE FROM participants
			WHERE registration_id IN (SELECT id FROM registrations WHERE event_id = $1)`,
			eventID)
		if err != nil {
			return fmt.Errorf("error deleting event participants: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM registrations WHERE event_id = $1`, eventID)
		if err != nil {
			return fmt.Errorf("error deleting event registrations: %w", err)
		}
		deletedRegistrations = cmdTag.RowsAffected()

		cmdTag, err = tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, eventID)
		if err != nil {
			return fmt.Errorf("error deleting event: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrEventNotFound
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return deletedRegistrations, nil
}

// Stats returns registration and participant counts per event
func (r *EventRepository) Stats(ctx context.Context) ([]*models.EventStats, error) {
	query := `
		SELECT e.name, e.slug, COUNT(r.id), COALESCE(SUM(r.total_participants), 0)
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		GROUP BY e.id, e.name, e.slug
		ORDER BY e.name
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*models.EventStats
	for rows.Next() {
		var s models.EventStats
		if err := rows.Scan(&s.EventName, &s.EventSlug, &s.RegistrationCount, &s.ParticipantCount); err != nil {
			return nil, err
		}
		stats = append(stats, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// StatsBySlug returns the registration counters for one event
func (r *EventRepository) StatsBySlug(ctx context.Context, slug string) (*models.EventStats, error) {
	query := `
		SELECT e.name, e.slug, COUNT(r.id), COALESCE(SUM(r.total_participants), 0)
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		WHERE e.slug = $1
		GROUP BY e.id, e.name, e.slug
	`

	var s models.EventStats
	err := r.db.Pool.QueryRow(ctx, query, slug).Scan(
		&s.EventName, &s.EventSlug, &s.RegistrationCount, &s.ParticipantCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event stats: %w", err)
	}

	return &s, nil
}
