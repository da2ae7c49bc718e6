package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emre/innohub/internal/app/models"
	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/db"
	"github.com/emre/innohub/internal/pkg/apperrors"
	"github.com/emre/innohub/internal/pkg/dberrors"
	"github.com/emre/innohub/internal/pkg/helpers"
)

// StartupRepository handles database operations for startups
type StartupRepository struct {
	db *db.PostgresDB
}

// NewStartupRepository creates a new startup repository
func NewStartupRepository(database *db.PostgresDB) *StartupRepository {
	return &StartupRepository{
		db: database,
	}
}

const startupColumns = `id, name, slug, email, mobile_number, incubated_date,
	COALESCE(incubation_details, ''), status, COALESCE(website, ''),
	COALESCE(image_url, ''), is_active, created_at`

func scanStartup(row pgx.Row) (*models.Startup, error) {
	var startup models.Startup
	err := row.Scan(
		&startup.ID,
		&startup.Name,
		&startup.Slug,
		&startup.Email,
		&startup.MobileNumber,
		&startup.IncubatedDate,
		&startup.IncubationDetails,
		&startup.Status,
		&startup.Website,
		&startup.ImageURL,
		&startup.IsActive,
		&startup.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &startup, nil
}

// Create inserts a new startup. The slug carries a unique constraint.
func (r *StartupRepository) Create(ctx context.Context, startup *models.Startup) error {
	query := `
		INSERT INTO startups (name, slug, email, mobile_number, incubated_date, incubation_details, status, website, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		startup.Name,
		startup.Slug,
		startup.Email,
		startup.MobileNumber,
		startup.IncubatedDate,
		helpers.GetContentNullString(startup.IncubationDetails),
		startup.Status,
		helpers.GetContentNullString(startup.Website),
		helpers.GetContentNullString(startup.ImageURL),
		startup.IsActive,
	).Scan(&startup.ID, &startup.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStartupAlreadyExists
		}
		return fmt.Errorf("error creating startup: %w", err)
	}

	return nil
}

// GetAll retrieves startups with optional active and status filters
func (r *StartupRepository) GetAll(ctx context.Context, filter dto.StartupListFilter) ([]*models.Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE 1=1`
	var args []any

	if filter.ActiveOnly {
		query += ` AND is_active = TRUE`
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY name`

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var startups []*models.Startup
	for rows.Next() {
		startup, err := scanStartup(rows)
		if err != nil {
			return nil, err
		}
		startups = append(startups, startup)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return startups, nil
}

// GetByID retrieves a startup by ID
func (r *StartupRepository) GetByID(ctx context.Context, id int64) (*models.Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups WHERE id = $1`

	startup, err := scanStartup(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStartupNotFound
		}
		return nil, fmt.Errorf("error retrieving startup: %w", err)
	}

	return startup, nil
}

// Update replaces the mutable fields of a startup
func (r *StartupRepository) Update(ctx context.Context, startup *models.Startup) error {
	query := `
		UPDATE startups
		SET name = $1, slug = $2, email = $3, mobile_number = $4, incubated_date = $5,
		    incubation_details = $6, status = $7, website = $8, image_url = $9, is_active = $10
		WHERE id = $11
	`

	cmdTag, err := r.db.Pool.Exec(ctx, query,
		startup.Name,
		startup.Slug,
		startup.Email,
		startup.MobileNumber,
		startup.IncubatedDate,
		helpers.GetContentNullString(startup.IncubationDetails),
		startup.Status,
		helpers.GetContentNullString(startup.Website),
		helpers.GetContentNullString(startup.ImageURL),
		startup.IsActive,
		startup.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStartupAlreadyExists
		}
		return fmt.Errorf("error updating startup: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStartupNotFound
	}

	return nil
}

// SetActive flips the visibility flag
func (r *StartupRepository) SetActive(ctx context.Context, id int64, active bool) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `UPDATE startups SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("error toggling startup: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStartupNotFound
	}
	return nil
}

// Delete removes a startup record
func (r *StartupRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM startups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting startup: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStartupNotFound
	}
	return nil
}
