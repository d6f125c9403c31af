package ports

import (
	"context"

	"github.com/manicuristapro/salon-system/internal/core/domain"
)

// AppointmentRepository holds the canonical appointment collection.
// The order returned by All is the order last written by Replace.
type AppointmentRepository interface {
	All(ctx context.Context) ([]domain.Appointment, error)
	FindByID(ctx context.Context, id int64) (domain.Appointment, error)
	// Replace swaps the whole collection in one step.
	Replace(ctx context.Context, appointments []domain.Appointment) error
}

// ClientRepository stores client records.
type ClientRepository interface {
	All(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id int64) (domain.Client, error)
	Save(ctx context.Context, c domain.Client) error
	Delete(ctx context.Context, id int64) error
}

// ProductRepository stores inventory items.
type ProductRepository interface {
	All(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	Save(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64) error
}

// SettingsRepository stores the salon profile and the price table.
type SettingsRepository interface {
	Profile(ctx context.Context) (domain.Profile, error)
	SaveProfile(ctx context.Context, p domain.Profile) error
	Prices(ctx context.Context) (domain.Prices, error)
	SavePrices(ctx context.Context, p domain.Prices) error
}

// PreferenceStore is the key-value mechanism for UI preferences.
// Get returns ok=false when the key was never written.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
