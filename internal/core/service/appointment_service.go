package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/manicuristapro/salon-system/internal/core/calendar"
	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/importer"
	"github.com/manicuristapro/salon-system/internal/core/ports"
	"github.com/manicuristapro/salon-system/internal/pkg/validation"
)

// AppointmentService owns the canonical appointment collection. Every mutation
// leaves the collection ordered by (date, time); records that tie keep their
// relative order, and new records are placed ahead of existing ones first.
type AppointmentService struct {
	repo     ports.AppointmentRepository
	settings ports.SettingsRepository
	ids      *IDSource
	logger   zerolog.Logger

	mu sync.Mutex // serialises read-modify-write of the collection
}

func NewAppointmentService(repo ports.AppointmentRepository, settings ports.SettingsRepository, ids *IDSource, logger zerolog.Logger) *AppointmentService {
	if ids == nil {
		ids = NewIDSource(time.Now)
	}
	return &AppointmentService{repo: repo, settings: settings, ids: ids, logger: logger}
}

// Create validates the draft and stores a new appointment with a fresh id.
func (s *AppointmentService) Create(ctx context.Context, draft ports.AppointmentDraft) (domain.Appointment, error) {
	fields, err := fromDraft(draft)
	if err != nil {
		return domain.Appointment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.All(ctx)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}

	created := fields
	created.ID = s.ids.Next()

	next := make([]domain.Appointment, 0, len(current)+1)
	next = append(next, created)
	next = append(next, current...)
	if err := s.repo.Replace(ctx, calendar.SortChronologically(next)); err != nil {
		s.logger.Error().Err(err).Msg("failed to store appointment")
		return domain.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}

	s.logger.Info().
		Int64("appointment_id", created.ID).
		Str("date", created.Date.String()).
		Str("time", created.Time.String()).
		Msg("appointment created")
	return created.Clone(), nil
}

// Update replaces the mutable fields of an existing appointment.
func (s *AppointmentService) Update(ctx context.Context, id int64, patch ports.AppointmentDraft) (domain.Appointment, error) {
	fields, err := fromDraft(patch)
	if err != nil {
		return domain.Appointment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.All(ctx)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("update appointment: %w", err)
	}

	idx := slices.IndexFunc(current, func(a domain.Appointment) bool { return a.ID == id })
	if idx < 0 {
		return domain.Appointment{}, fmt.Errorf("update appointment %d: %w", id, domain.ErrAppointmentNotFound)
	}

	updated := fields
	updated.ID = id
	next := slices.Clone(current)
	next[idx] = updated
	if err := s.repo.Replace(ctx, calendar.SortChronologically(next)); err != nil {
		return domain.Appointment{}, fmt.Errorf("update appointment: %w", err)
	}

	s.logger.Info().Int64("appointment_id", id).Str("status", string(updated.Status)).Msg("appointment updated")
	return updated.Clone(), nil
}

// Delete removes an appointment. Deleting an id that is not present is a no-op.
func (s *AppointmentService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}

	next := slices.DeleteFunc(slices.Clone(current), func(a domain.Appointment) bool { return a.ID == id })
	if len(next) == len(current) {
		s.logger.Debug().Int64("appointment_id", id).Msg("delete of unknown appointment ignored")
		return nil
	}
	if err := s.repo.Replace(ctx, next); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}

	s.logger.Info().Int64("appointment_id", id).Msg("appointment deleted")
	return nil
}

// BulkImport normalises external rows and merges the accepted ones into the
// collection. Nothing is stored when no row is accepted.
func (s *AppointmentService) BulkImport(ctx context.Context, rows []ports.ImportRow) (*ports.ImportResult, error) {
	batchID := uuid.NewString()
	log := s.logger.With().Str("batch_id", batchID).Int("rows", len(rows)).Logger()

	res, err := importer.New(s.ids.Next).Normalize(rows)
	if err != nil {
		log.Warn().Err(err).Int("dropped", res.Dropped).Int("rejected", len(res.Rejected)).Msg("import rejected")
		return nil, fmt.Errorf("bulk import: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("bulk import: %w", err)
	}

	next := make([]domain.Appointment, 0, len(res.Accepted)+len(current))
	next = append(next, res.Accepted...)
	next = append(next, current...)
	if err := s.repo.Replace(ctx, calendar.SortChronologically(next)); err != nil {
		return nil, fmt.Errorf("bulk import: %w", err)
	}

	log.Info().
		Int("accepted", len(res.Accepted)).
		Int("dropped", res.Dropped).
		Int("rejected", len(res.Rejected)).
		Msg("appointments imported")

	rejected := res.Rejected
	if rejected == nil {
		rejected = []ports.RowError{}
	}
	return &ports.ImportResult{
		BatchID:  batchID,
		Received: len(rows),
		Accepted: len(res.Accepted),
		Dropped:  res.Dropped,
		Rejected: rejected,
	}, nil
}

// List returns the collection in canonical order.
func (s *AppointmentService) List(ctx context.Context) ([]domain.Appointment, error) {
	apps, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return apps, nil
}

func (s *AppointmentService) Get(ctx context.Context, id int64) (domain.Appointment, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("get appointment %d: %w", id, err)
	}
	return a, nil
}

// ServiceOptions lists the services that can be booked, taken from the price table.
func (s *AppointmentService) ServiceOptions(ctx context.Context) ([]string, error) {
	prices, err := s.settings.Prices(ctx)
	if err != nil {
		return nil, fmt.Errorf("service options: %w", err)
	}
	return prices.Services(), nil
}

// fromDraft validates a draft and converts it into appointment fields (no id).
func fromDraft(d ports.AppointmentDraft) (domain.Appointment, error) {
	if err := validation.Struct(d); err != nil {
		return domain.Appointment{}, err
	}
	date, err := domain.ParseDate(d.Date)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	clock, err := domain.ParseClock(d.Time)
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	services := make([]string, len(d.Services))
	for i, svc := range d.Services {
		services[i] = strings.TrimSpace(svc)
	}
	return domain.Appointment{
		ClientName: strings.TrimSpace(d.ClientName),
		Services:   services,
		Date:       date,
		Time:       clock,
		Status:     domain.AppointmentStatus(d.Status),
	}, nil
}
