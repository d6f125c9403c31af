// Package scheduler runs periodic jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/manicuristapro/salon-system/internal/core/calendar"
	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/ports"
	"github.com/manicuristapro/salon-system/internal/core/stats"
	"github.com/manicuristapro/salon-system/internal/pkg/metrics"
)

const DefaultBirthdaySpec = "0 9 * * *"

const runTimeout = 2 * time.Minute

type clientLister interface {
	List(ctx context.Context) ([]domain.Client, error)
}

// DigestEntry is one client with a birthday this week and the message prepared for them.
type DigestEntry struct {
	Client   domain.Client `json:"client"`
	Message  string        `json:"message"`
	Fallback bool          `json:"fallback"`
}

// Digest is the outcome of one birthday run.
type Digest struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	WeekStart   domain.Date   `json:"weekStart"`
	WeekEnd     domain.Date   `json:"weekEnd"`
	Entries     []DigestEntry `json:"entries"`
}

// BirthdayDigest prepares birthday messages for the clients whose birthday
// falls in the current week. Messages are generated, never delivered.
type BirthdayDigest struct {
	clients   clientLister
	marketing ports.MarketingService
	today     func() domain.Date
	now       func() time.Time
	logger    zerolog.Logger

	mu     sync.RWMutex
	latest *Digest
	cron   *cron.Cron
}

func NewBirthdayDigest(clients clientLister, marketing ports.MarketingService, today func() domain.Date, logger zerolog.Logger) *BirthdayDigest {
	return &BirthdayDigest{
		clients:   clients,
		marketing: marketing,
		today:     today,
		now:       time.Now,
		logger:    logger,
	}
}

// Start schedules RunOnce with a standard five-field cron spec evaluated in loc.
func (b *BirthdayDigest) Start(spec string, loc *time.Location) error {
	if spec == "" {
		spec = DefaultBirthdaySpec
	}
	if loc == nil {
		loc = time.Local
	}
	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		if _, err := b.RunOnce(ctx); err != nil {
			b.logger.Error().Err(err).Msg("birthday digest failed")
		}
	}); err != nil {
		return fmt.Errorf("birthday digest schedule %q: %w", spec, err)
	}
	c.Start()
	b.cron = c
	b.logger.Info().Str("spec", spec).Str("tz", loc.String()).Msg("birthday digest scheduled")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish or ctx to expire.
func (b *BirthdayDigest) Stop(ctx context.Context) {
	if b.cron == nil {
		return
	}
	select {
	case <-b.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// RunOnce builds a digest for the current week and stores it as the latest one.
func (b *BirthdayDigest) RunOnce(ctx context.Context) (*Digest, error) {
	clients, err := b.clients.List(ctx)
	if err != nil {
		metrics.BirthdayDigestRunsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("birthday digest: %w", err)
	}

	week := calendar.WeekOf(b.today())
	birthdays := stats.BirthdaysInWeek(clients, week)

	d := &Digest{
		GeneratedAt: b.now().UTC(),
		WeekStart:   week[0],
		WeekEnd:     week[6],
		Entries:     make([]DigestEntry, 0, len(birthdays)),
	}
	for _, c := range birthdays {
		msg, err := b.marketing.GenerateMessage(ctx, ports.MessageRequest{Kind: ports.MessageBirthday, ClientID: c.ID})
		if err != nil {
			b.logger.Warn().Err(err).Int64("client_id", c.ID).Msg("birthday message skipped")
			continue
		}
		d.Entries = append(d.Entries, DigestEntry{Client: c, Message: msg.Text, Fallback: msg.Fallback})
	}

	b.mu.Lock()
	b.latest = d
	b.mu.Unlock()

	metrics.BirthdayDigestRunsTotal.WithLabelValues("ok").Inc()
	b.logger.Info().
		Str("week_start", d.WeekStart.String()).
		Int("birthdays", len(d.Entries)).
		Msg("birthday digest ready")
	return d, nil
}

// Latest returns the most recent digest, or nil when none has run yet.
func (b *BirthdayDigest) Latest() *Digest {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.latest == nil {
		return nil
	}
	d := *b.latest
	d.Entries = append([]DigestEntry(nil), b.latest.Entries...)
	return &d
}
