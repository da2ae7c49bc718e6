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
	"github.com/emre/innohub/internal/pkg/helpers"
)

// RegistrationRepository handles database operations for registrations
type RegistrationRepository struct {
	db *db.PostgresDB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(database *db.PostgresDB) *RegistrationRepository {
	return &RegistrationRepository{
		db: database,
	}
}

// Create inserts a registration and all its participants in one
// transaction. The leader comes first in the participants slice. The unique
// index on (event_id, leader_email) rejects a duplicate registration even
// when two submissions race.
func (r *RegistrationRepository) Create(ctx context.Context, registration *models.Registration, participants []*models.Participant) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO registrations (event_id, event_name, is_team, team_name, leader_email, total_participants)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query,
			registration.EventID,
			registration.EventName,
			registration.IsTeam,
			helpers.GetContentNullString(registration.TeamName),
			registration.LeaderEmail,
			registration.TotalParticipants,
		).Scan(&registration.ID, &registration.CreatedAt)
		if err != nil {
			return err
		}

		for _, participant := range participants {
			participant.RegistrationID = registration.ID
			err := tx.QueryRow(ctx, `
				INSERT INTO participants (registration_id, name, gender, roll_number, contact_number, email, is_leader)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING id, created_at`,
				participant.RegistrationID,
				participant.Name,
				participant.Gender,
				participant.RollNumber,
				participant.ContactNumber,
				participant.Email,
				participant.IsLeader,
			).Scan(&participant.ID, &participant.CreatedAt)
			if err != nil {
				return fmt.Errorf("error inserting participant: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "registrations_event_leader_key") {
			return apperrors.ErrDuplicateRegistration
		}
		return err
	}

	return nil
}

// GetByID retrieves a registration by ID
func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	query := `
		SELECT id, event_id, event_name, is_team, COALESCE(team_name, ''), leader_email, total_participants, created_at
		FROM registrations
		WHERE id = $1
	`

	var registration models.Registration
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&registration.ID,
		&registration.EventID,
		&registration.EventName,
		&registration.IsTeam,
		&registration.TeamName,
		&registration.LeaderEmail,
		&registration.TotalParticipants,
		&registration.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error retrieving registration: %w", err)
	}

	return &registration, nil
}

// GetByEventID retrieves all registrations for an event
func (r *RegistrationRepository) GetByEventID(ctx context.Context, eventID int64) ([]*models.Registration, error) {
	query := `
		SELECT id, event_id, event_name, is_team, COALESCE(team_name, ''), leader_email, total_participants, created_at
		FROM registrations
		WHERE event_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var registrations []*models.Registration
	for rows.Next() {
		var registration models.Registration
		if err := rows.Scan(
			&registration.ID,
			&registration.EventID,
			&registration.EventName,
			&registration.IsTeam,
			&registration.TeamName,
			&registration.LeaderEmail,
			&registration.TotalParticipants,
			&registration.CreatedAt,
		); err != nil {
			return nil, err
		}
		registrations = append(registrations, &registration)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}

// DeleteCascade removes a registration and its participants in one transaction
func (r *RegistrationRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM participants WHERE registration_id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting participants: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting registration: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrRegistrationNotFound
		}

		return nil
	})
}
