package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/manicuristapro/salon-system/internal/core/calendar"
	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/ports"
	"github.com/manicuristapro/salon-system/internal/core/stats"
)

// DashboardService composes read-only views from the current collections.
// Nothing is cached: every call recomputes from the repositories.
type DashboardService struct {
	appointments ports.AppointmentRepository
	clients      ports.ClientRepository
	products     ports.ProductRepository
	settings     ports.SettingsRepository
	now          func() time.Time
	loc          *time.Location
	logger       zerolog.Logger
}

func NewDashboardService(
	appointments ports.AppointmentRepository,
	clients ports.ClientRepository,
	products ports.ProductRepository,
	settings ports.SettingsRepository,
	now func() time.Time,
	loc *time.Location,
	logger zerolog.Logger,
) *DashboardService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &DashboardService{
		appointments: appointments,
		clients:      clients,
		products:     products,
		settings:     settings,
		now:          now,
		loc:          loc,
		logger:       logger,
	}
}

// Today is the current calendar date in the salon's time zone.
func (s *DashboardService) Today() domain.Date {
	return domain.DateOf(s.now().In(s.loc))
}

func (s *DashboardService) Overview(ctx context.Context, window stats.Window, ref domain.Date) (*ports.DashboardOverview, error) {
	if ref.IsZero() {
		ref = s.Today()
	}

	apps, err := s.appointments.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard overview: %w", err)
	}
	prices, err := s.settings.Prices(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard overview: %w", err)
	}
	clients, err := s.clients.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard overview: %w", err)
	}
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard overview: %w", err)
	}

	revenue, err := stats.Revenue(apps, prices, window, ref)
	if err != nil {
		return nil, err
	}

	completed, newClients := 0, 0
	for _, a := range apps {
		if a.Status == domain.StatusCompleted {
			completed++
		}
	}
	for _, c := range clients {
		if c.IsNew {
			newClients++
		}
	}
	low := make([]domain.Product, 0)
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}

	return &ports.DashboardOverview{
		Reference:          ref,
		Revenue:            revenue,
		CompletedTotal:     completed,
		NewClients:         newClients,
		StatusDistribution: stats.StatusDistribution(apps),
		BirthdaysThisWeek:  stats.BirthdaysInWeek(clients, calendar.WeekOf(ref)),
		LowStock:           low,
	}, nil
}

// Week returns the day buckets of the Sunday-start week containing ref.
func (s *DashboardService) Week(ctx context.Context, ref domain.Date) ([]calendar.DayBucket, error) {
	if ref.IsZero() {
		ref = s.Today()
	}
	apps, err := s.appointments.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("calendar week: %w", err)
	}
	return calendar.BucketByDay(apps, calendar.WeekOf(ref)), nil
}

func (s *DashboardService) Upcoming(ctx context.Context, today domain.Date) ([]domain.Appointment, error) {
	if today.IsZero() {
		today = s.Today()
	}
	apps, err := s.appointments.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("upcoming appointments: %w", err)
	}
	return calendar.Upcoming(apps, today), nil
}

func (s *DashboardService) History(ctx context.Context, filter calendar.StatusFilter) ([]domain.Appointment, error) {
	if !calendar.ValidFilter(filter) {
		return nil, fmt.Errorf("%w: unknown status filter %q", domain.ErrValidation, filter)
	}
	apps, err := s.appointments.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("appointment history: %w", err)
	}
	return calendar.History(apps, filter), nil
}
