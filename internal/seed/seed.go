package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/emre/innohub/internal/app/models"
	"github.com/emre/innohub/internal/app/repositories"
	"github.com/emre/innohub/internal/db"
	"github.com/emre/innohub/internal/pkg/apperrors"
)

// CreateDefaultData inserts a demo event so a fresh development database has
// something to register against. Already-existing data is left alone.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	eventRepo := repositories.NewEventRepository(database)

	lgr.Info().Msg("Checking/Creating default data...")

	demoEvent := &models.Event{
		Name:        "Innovation Sprint",
		Slug:        "innovation-sprint",
		Description: "A 48-hour prototyping sprint open to all students.",
		Date:        "2026-10-10",
		MinTeamSize: 1,
		MaxTeamSize: 4,
		IsActive:    true,
	}

	if err := eventRepo.Create(ctx, demoEvent); err != nil {
		if errors.Is(err, apperrors.ErrEventAlreadyExists) {
			lgr.Debug().Str("slug", demoEvent.Slug).Msg("Demo event already present")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating demo event")
		return err
	}

	lgr.Info().Str("slug", demoEvent.Slug).Msg("Demo event created")
	return nil
}
