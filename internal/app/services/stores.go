package services

import (
	"context"

	"github.com/emre/innohub/internal/app/models"
	"github.com/emre/innohub/internal/app/models/dto"
)

// Store interfaces consumed by the services. The repositories package
// provides the postgres implementations; tests substitute in-memory fakes.

// EventStore persists events and their registration counters
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetAll(ctx context.Context, activeOnly bool) ([]*models.Event, error)
	GetBySlug(ctx context.Context, slug string) (*models.Event, error)
	DeleteCascade(ctx context.Context, eventID int64) (int64, error)
	Stats(ctx context.Context) ([]*models.EventStats, error)
	StatsBySlug(ctx context.Context, slug string) (*models.EventStats, error)
}

// RegistrationStore persists registrations together with their participants
type RegistrationStore interface {
	Create(ctx context.Context, registration *models.Registration, participants []*models.Participant) error
	GetByID(ctx context.Context, id int64) (*models.Registration, error)
	GetByEventID(ctx context.Context, eventID int64) ([]*models.Registration, error)
	DeleteCascade(ctx context.Context, id int64) error
}

// ParticipantStore reads and removes individual participants
type ParticipantStore interface {
	GetByID(ctx context.Context, id int64) (*models.Participant, error)
	GetByRegistrationID(ctx context.Context, registrationID int64) ([]*models.Participant, error)
	Remove(ctx context.Context, participantID, registrationID int64) error
}

// StartupStore persists startup portfolio entries
type StartupStore interface {
	Create(ctx context.Context, startup *models.Startup) error
	GetAll(ctx context.Context, filter dto.StartupListFilter) ([]*models.Startup, error)
	GetByID(ctx context.Context, id int64) (*models.Startup, error)
	Update(ctx context.Context, startup *models.Startup) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// IncubationStore persists incubation applications
type IncubationStore interface {
	Create(ctx context.Context, application *models.Incubation) error
	HasLiveApplication(ctx context.Context, founderEmail string) (bool, error)
	GetAll(ctx context.Context) ([]*models.Incubation, error)
	GetByID(ctx context.Context, id int64) (*models.Incubation, error)
	Update(ctx context.Context, id int64, status, adminNotes *string) error
	Delete(ctx context.Context, id int64) error
}

// ImageStore keeps externally served images for startups
type ImageStore interface {
	SaveBase64(data string) (string, error)
	Delete(fileURL string) error
}
