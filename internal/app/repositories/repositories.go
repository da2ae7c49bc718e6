package repositories

import "github.com/emre/innohub/internal/db"

// Repositories holds all repository instances
type Repositories struct {
	EventRepository        *EventRepository
	RegistrationRepository *RegistrationRepository
	ParticipantRepository  *ParticipantRepository
	StartupRepository      *StartupRepository
	IncubationRepository   *IncubationRepository
}

// NewRepositories creates all repositories sharing one database handle
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		EventRepository:        NewEventRepository(database),
		RegistrationRepository: NewRegistrationRepository(database),
		ParticipantRepository:  NewParticipantRepository(database),
		StartupRepository:      NewStartupRepository(database),
		IncubationRepository:   NewIncubationRepository(database),
	}
}
