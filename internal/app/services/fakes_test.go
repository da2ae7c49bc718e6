package services

import (
	"context"
	"sort"
	"strings"

	"github.com/emre/innohub/internal/app/models"
	"github.com/emre/innohub/internal/app/models/dto"
	"github.com/emre/innohub/internal/pkg/apperrors"
)

// In-memory store fakes backing the service tests. They mirror the
// constraints the postgres repositories enforce: unique event name/slug,
// unique (event, leader email) per registration, and cascading deletes.

type fakeEventStore struct {
	nextID int64
	events []*models.Event

	// shared with the registration fake so stats and cascades line up
	registrations *fakeRegistrationStore
}

type fakeRegistrationStore struct {
	nextID        int64
	registrations []*models.Registration
	participants  *fakeParticipantStore
}

type fakeParticipantStore struct {
	nextID       int64
	participants []*models.Participant
}

func newFakeStores() (*fakeEventStore, *fakeRegistrationStore, *fakeParticipantStore) {
	participants := &fakeParticipantStore{}
	registrations := &fakeRegistrationStore{participants: participants}
	events := &fakeEventStore{registrations: registrations}
	return events, registrations, participants
}

func (f *fakeEventStore) Create(_ context.Context, event *models.Event) error {
	for _, existing := range f.events {
		if existing.Name == event.Name || existing.Slug == event.Slug {
			return apperrors.ErrEventAlreadyExists
		}
	}
	f.nextID++
	event.ID = f.nextID
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventStore) GetAll(_ context.Context, activeOnly bool) ([]*models.Event, error) {
	var out []*models.Event
	for _, event := range f.events {
		if activeOnly && !event.IsActive {
			continue
		}
		out = append(out, event)
	}
	return out, nil
}

func (f *fakeEventStore) GetBySlug(_ context.Context, slug string) (*models.Event, error) {
	for _, event := range f.events {
		if event.Slug == slug {
			return event, nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

func (f *fakeEventStore) DeleteCascade(_ context.Context, eventID int64) (int64, error) {
	idx := -1
	for i, event := range f.events {
		if event.ID == eventID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, apperrors.ErrEventNotFound
	}
	f.events = append(f.events[:idx], f.events[idx+1:]...)

	var deleted int64
	var kept []*models.Registration
	for _, reg := range f.registrations.registrations {
		if reg.EventID == eventID {
			deleted++
			f.registrations.participants.dropByRegistration(reg.ID)
			continue
		}
		kept = append(kept, reg)
	}
	f.registrations.registrations = kept
	return deleted, nil
}

func (f *fakeEventStore) Stats(_ context.Context) ([]*models.EventStats, error) {
	var stats []*models.EventStats
	for _, event := range f.events {
		s := &models.EventStats{EventName: event.Name, EventSlug: event.Slug}
		for _, reg := range f.registrations.registrations {
			if reg.EventID == event.ID {
				s.RegistrationCount++
				s.ParticipantCount += int64(reg.TotalParticipants)
			}
		}
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].EventName < stats[j].EventName })
	return stats, nil
}

func (f *fakeEventStore) StatsBySlug(ctx context.Context, slug string) (*models.EventStats, error) {
	if _, err := f.GetBySlug(ctx, slug); err != nil {
		return nil, err
	}
	all, _ := f.Stats(ctx)
	for _, s := range all {
		if s.EventSlug == slug {
			return s, nil
		}
	}
	return nil, apperrors.ErrEventNotFound
}

func (f *fakeRegistrationStore) Create(_ context.Context, registration *models.Registration, participants []*models.Participant) error {
	for _, existing := range f.registrations {
		if existing.EventID == registration.EventID &&
			strings.EqualFold(existing.LeaderEmail, registration.LeaderEmail) {
			return apperrors.ErrDuplicateRegistration
		}
	}

	f.nextID++
	registration.ID = f.nextID
	f.registrations = append(f.registrations, registration)

	for _, p := range participants {
		f.participants.nextID++
		p.ID = f.participants.nextID
		p.RegistrationID = registration.ID
		f.participants.participants = append(f.participants.participants, p)
	}
	return nil
}

func (f *fakeRegistrationStore) GetByID(_ context.Context, id int64) (*models.Registration, error) {
	for _, reg := range f.registrations {
		if reg.ID == id {
			return reg, nil
		}
	}
	return nil, apperrors.ErrRegistrationNotFound
}

func (f *fakeRegistrationStore) GetByEventID(_ context.Context, eventID int64) ([]*models.Registration, error) {
	var out []*models.Registration
	for _, reg := range f.registrations {
		if reg.EventID == eventID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (f *fakeRegistrationStore) DeleteCascade(_ context.Context, id int64) error {
	for i, reg := range f.registrations {
		if reg.ID == id {
			f.registrations = append(f.registrations[:i], f.registrations[i+1:]...)
			f.participants.dropByRegistration(id)
			return nil
		}
	}
	return apperrors.ErrRegistrationNotFound
}

func (f *fakeParticipantStore) GetByID(_ context.Context, id int64) (*models.Participant, error) {
	for _, p := range f.participants {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperrors.ErrParticipantNotFound
}

func (f *fakeParticipantStore) GetByRegistrationID(_ context.Context, registrationID int64) ([]*models.Participant, error) {
	var out []*models.Participant
	for _, p := range f.participants {
		if p.RegistrationID == registrationID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsLeader != out[j].IsLeader {
			return out[i].IsLeader
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeParticipantStore) Remove(_ context.Context, participantID, registrationID int64) error {
	for i, p := range f.participants {
		if p.ID == participantID && p.RegistrationID == registrationID {
			f.participants = append(f.participants[:i], f.participants[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrParticipantNotFound
}

func (f *fakeParticipantStore) dropByRegistration(registrationID int64) {
	var kept []*models.Participant
	for _, p := range f.participants {
		if p.RegistrationID != registrationID {
			kept = append(kept, p)
		}
	}
	f.participants = kept
}

type fakeStartupStore struct {
	nextID   int64
	startups []*models.Startup
}

func (f *fakeStartupStore) Create(_ context.Context, startup *models.Startup) error {
	for _, existing := range f.startups {
		if existing.Slug == startup.Slug {
			return apperrors.ErrStartupAlreadyExists
		}
	}
	f.nextID++
	startup.ID = f.nextID
	f.startups = append(f.startups, startup)
	return nil
}

func (f *fakeStartupStore) GetAll(_ context.Context, filter dto.StartupListFilter) ([]*models.Startup, error) {
	var out []*models.Startup
	for _, startup := range f.startups {
		if filter.ActiveOnly && !startup.IsActive {
			continue
		}
		if filter.Status != "" && startup.Status != filter.Status {
			continue
		}
		out = append(out, startup)
	}
	return out, nil
}

func (f *fakeStartupStore) GetByID(_ context.Context, id int64) (*models.Startup, error) {
	for _, startup := range f.startups {
		if startup.ID == id {
			return startup, nil
		}
	}
	return nil, apperrors.ErrStartupNotFound
}

func (f *fakeStartupStore) Update(ctx context.Context, startup *models.Startup) error {
	_, err := f.GetByID(ctx, startup.ID)
	return err
}

func (f *fakeStartupStore) SetActive(ctx context.Context, id int64, active bool) error {
	startup, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	startup.IsActive = active
	return nil
}

func (f *fakeStartupStore) Delete(_ context.Context, id int64) error {
	for i, startup := range f.startups {
		if startup.ID == id {
			f.startups = append(f.startups[:i], f.startups[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrStartupNotFound
}

type fakeIncubationStore struct {
	nextID       int64
	applications []*models.Incubation
}

func (f *fakeIncubationStore) Create(_ context.Context, application *models.Incubation) error {
	f.nextID++
	application.ID = f.nextID
	f.applications = append(f.applications, application)
	return nil
}

func (f *fakeIncubationStore) HasLiveApplication(_ context.Context, founderEmail string) (bool, error) {
	for _, app := range f.applications {
		if strings.EqualFold(app.FounderEmail, founderEmail) && !app.IsResolved() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeIncubationStore) GetAll(_ context.Context) ([]*models.Incubation, error) {
	return f.applications, nil
}

func (f *fakeIncubationStore) GetByID(_ context.Context, id int64) (*models.Incubation, error) {
	for _, app := range f.applications {
		if app.ID == id {
			return app, nil
		}
	}
	return nil, apperrors.ErrApplicationNotFound
}

func (f *fakeIncubationStore) Update(ctx context.Context, id int64, status, adminNotes *string) error {
	app, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if status != nil {
		app.Status = *status
	}
	if adminNotes != nil {
		app.AdminNotes = *adminNotes
	}
	return nil
}

func (f *fakeIncubationStore) Delete(_ context.Context, id int64) error {
	for i, app := range f.applications {
		if app.ID == id {
			f.applications = append(f.applications[:i], f.applications[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrApplicationNotFound
}

type fakeImageStore struct {
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeImageStore) SaveBase64(data string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	url := "/uploads/fake-" + data
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeImageStore) Delete(fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}
