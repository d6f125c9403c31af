package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/ports"
)

// ThemeKey is the preference key holding the UI theme.
const ThemeKey = "salon:prefs:theme"

type SettingsService struct {
	repo   ports.SettingsRepository
	prefs  ports.PreferenceStore
	logger zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, prefs ports.PreferenceStore, logger zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, prefs: prefs, logger: logger}
}

func (s *SettingsService) Profile(ctx context.Context) (domain.Profile, error) {
	p, err := s.repo.Profile(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *SettingsService) UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	p.SalonName = strings.TrimSpace(p.SalonName)
	p.OwnerName = strings.TrimSpace(p.OwnerName)
	if p.SalonName == "" || p.OwnerName == "" {
		s.logger.Warn().
			Bool("salon_name_empty", p.SalonName == "").
			Bool("owner_name_empty", p.OwnerName == "").
			Msg("profile saved with empty names")
	}
	if err := s.repo.SaveProfile(ctx, p); err != nil {
		return domain.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	s.logger.Info().Str("salon_name", p.SalonName).Msg("profile updated")
	return p, nil
}

func (s *SettingsService) Prices(ctx context.Context) (domain.Prices, error) {
	p, err := s.repo.Prices(ctx)
	if err != nil {
		return nil, fmt.Errorf("get prices: %w", err)
	}
	return p, nil
}

// UpdatePrices replaces the whole price table.
func (s *SettingsService) UpdatePrices(ctx context.Context, in map[string]decimal.Decimal) (domain.Prices, error) {
	prices := make(domain.Prices, len(in))
	for name, price := range in {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: service name is required", domain.ErrValidation)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("%w: price of %q must not be negative", domain.ErrValidation, name)
		}
		prices[name] = price
	}
	if err := s.repo.SavePrices(ctx, prices); err != nil {
		return nil, fmt.Errorf("update prices: %w", err)
	}
	s.logger.Info().Int("services", len(prices)).Msg("prices updated")
	return prices.Clone(), nil
}

// Theme returns the stored theme, or ThemeSystem when none was ever chosen.
func (s *SettingsService) Theme(ctx context.Context) (domain.Theme, error) {
	v, ok, err := s.prefs.Get(ctx, ThemeKey)
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	t := domain.Theme(v)
	if !ok || !t.Valid() {
		return domain.ThemeSystem, nil
	}
	return t, nil
}

func (s *SettingsService) SetTheme(ctx context.Context, t domain.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: theme must be one of: light dark", domain.ErrValidation)
	}
	if err := s.prefs.Set(ctx, ThemeKey, string(t)); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}
