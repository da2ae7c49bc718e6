package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emre/innohub/internal/app/models"
	"github.com/emre/innohub/internal/db"
	"github.com/emre/innohub/internal/pkg/apperrors"
)

// ParticipantRepository handles database operations for participants
type ParticipantRepository struct {
	db *db.PostgresDB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(database *db.PostgresDB) *ParticipantRepository {
	return &ParticipantRepository{
		db: database,
	}
}

// GetByID retrieves a participant by ID
func (r *ParticipantRepository) GetByID(ctx context.Context, id int64) (*models.Participant, error) {
	query := `
		SELECT id, registration_id, name, gender, roll_number, contact_number, email, is_leader, created_at
		FROM participants
		WHERE id = $1
	`

	var participant models.Participant
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&participant.ID,
		&participant.RegistrationID,
		&participant.Name,
		&participant.Gender,
		&participant.RollNumber,
		&participant.ContactNumber,
		&participant.Email,
		&participant.IsLeader,
		&participant.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("error retrieving participant: %w", err)
	}

	return &participant, nil
}

// GetByRegistrationID retrieves all participants of a registration, leader first
func (r *ParticipantRepository) GetByRegistrationID(ctx context.Context, registrationID int64) ([]*models.Participant, error) {
	query := `
		SELECT id, registration_id, name, gender, roll_number, contact_number, email, is_leader, created_at
		FROM participants
		WHERE registration_id = $1
		ORDER BY is_leader DESC, id
	`

	rows, err := r.db.Pool.Query(ctx, query, registrationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		var participant models.Participant
		if err := rows.Scan(
			&participant.ID,
			&participant.RegistrationID,
			&participant.Name,
			&participant.Gender,
			&participant.RollNumber,
			&participant.ContactNumber,
			&participant.Email,
			&participant.IsLeader,
			&participant.CreatedAt,
		); err != nil {
			return nil, err
		}
		participants = append(participants, &participant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}

// Remove deletes a single participant and decrements the owning
// registration's participant counter in one transaction. The eligibility
// checks (not a leader, team registration, team floor) belong to the
// service layer.
func (r *ParticipantRepository) Remove(ctx context.Context, participantID, registrationID int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `DELETE FROM participants WHERE id = $1`, participantID)
		if err != nil {
			return fmt.Errorf("error deleting participant: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrParticipantNotFound
		}

		cmdTag, err = tx.Exec(ctx, `
			UPDATE registrations
			SET total_participants = total_participants - 1
			WHERE id = $1`,
			registrationID)
		if err != nil {
			return fmt.Errorf("error updating registration counter: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrRegistrationNotFound
		}

		return nil
	})
}
