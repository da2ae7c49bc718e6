package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emre/innohub/internal/app/models"
	"github.com/emre/innohub/internal/db"
	"github.com/emre/innohub/internal/pkg/apperrors"
	"github.com/emre/innohub/internal/pkg/helpers"
)

// IncubationRepository handles database operations for incubation applications
type IncubationRepository struct {
	db *db.PostgresDB
}

// NewIncubationRepository creates a new incubation repository
func NewIncubationRepository(database *db.PostgresDB) *IncubationRepository {
	return &IncubationRepository{
		db: database,
	}
}

const incubationColumns = `id, startup_name, founder_name, founder_email, phone, team_size,
	problem_statement, proposed_solution, unique_selling_point, current_stage, support_needed,
	COALESCE(additional_info, ''), status, COALESCE(admin_notes, ''), created_at, updated_at`

func scanIncubation(row pgx.Row) (*models.Incubation, error) {
	var application models.Incubation
	err := row.Scan(
		&application.ID,
		&application.StartupName,
		&application.FounderName,
		&application.FounderEmail,
		&application.Phone,
		&application.TeamSize,
		&application.ProblemStatement,
		&application.ProposedSolution,
		&application.UniqueSellingPoint,
		&application.CurrentStage,
		&application.SupportNeeded,
		&application.AdditionalInfo,
		&application.Status,
		&application.AdminNotes,
		&application.CreatedAt,
		&application.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// Create inserts a new application with status pending
func (r *IncubationRepository) Create(ctx context.Context, application *models.Incubation) error {
	query := `
		INSERT INTO incubation_applications
			(startup_name, founder_name, founder_email, phone, team_size,
			 problem_statement, proposed_solution, unique_selling_point, current_stage,
			 support_needed, additional_info, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		application.StartupName,
		application.FounderName,
		application.FounderEmail,
		application.Phone,
		application.TeamSize,
		application.ProblemStatement,
		application.ProposedSolution,
		application.UniqueSellingPoint,
		application.CurrentStage,
		application.SupportNeeded,
		helpers.GetContentNullString(application.AdditionalInfo),
		application.Status,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating incubation application: %w", err)
	}

	return nil
}

// HasLiveApplication checks whether a founder already has an application in
// pending or reviewing status
func (r *IncubationRepository) HasLiveApplication(ctx context.Context, founderEmail string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM incubation_applications
			WHERE founder_email = $1 AND status IN ($2, $3)
		)`,
		founderEmail, models.ApplicationPending, models.ApplicationReviewing).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking live applications: %w", err)
	}

	return exists, nil
}

// GetAll retrieves all applications, newest first
func (r *IncubationRepository) GetAll(ctx context.Context) ([]*models.Incubation, error) {
	query := `SELECT ` + incubationColumns + ` FROM incubation_applications ORDER BY created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []*models.Incubation
	for rows.Next() {
		application, err := scanIncubation(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}

// GetByID retrieves an application by ID
func (r *IncubationRepository) GetByID(ctx context.Context, id int64) (*models.Incubation, error) {
	query := `SELECT ` + incubationColumns + ` FROM incubation_applications WHERE id = $1`

	application, err := scanIncubation(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving incubation application: %w", err)
	}

	return application, nil
}

// Update applies a partial update of status and admin notes. A nil field
// leaves the stored value unchanged.
func (r *IncubationRepository) Update(ctx context.Context, id int64, status, adminNotes *string) error {
	query := `
		UPDATE incubation_applications
		SET status = COALESCE($1, status),
		    admin_notes = COALESCE($2, admin_notes),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query, helpers.GetNullString(status), helpers.GetNullString(adminNotes), id)
	if err != nil {
		return fmt.Errorf("error updating incubation application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// Delete removes an application
func (r *IncubationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM incubation_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting incubation application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}
