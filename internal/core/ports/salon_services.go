package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/manicuristapro/salon-system/internal/core/calendar"
	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/stats"
)

// ClientInput carries the editable client fields.
type ClientInput struct {
	Name           string   `json:"name"           validate:"required,notblank"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email"          validate:"omitempty,email"`
	BirthDate      string   `json:"birthDate"      validate:"omitempty,datetime=2006-01-02"`
	ServiceHistory []string `json:"serviceHistory"`
	Preferences    string   `json:"preferences"`
	IsNew          bool     `json:"isNew"`
}

type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id int64) (domain.Client, error)
	Create(ctx context.Context, in ClientInput) (domain.Client, error)
	Update(ctx context.Context, id int64, in ClientInput) (domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

// ProductInput carries the editable product fields.
type ProductInput struct {
	Name         string `json:"name"         validate:"required,notblank"`
	CurrentStock int    `json:"currentStock" validate:"min=0"`
	MinStock     int    `json:"minStock"     validate:"min=0"`
}

type InventoryService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, in ProductInput) (domain.Product, error)
	Update(ctx context.Context, id int64, in ProductInput) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
	AdjustStock(ctx context.Context, id int64, delta int) (domain.Product, error)
	LowStock(ctx context.Context) ([]domain.Product, error)
}

type SettingsService interface {
	Profile(ctx context.Context) (domain.Profile, error)
	UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error)
	Prices(ctx context.Context) (domain.Prices, error)
	UpdatePrices(ctx context.Context, p map[string]decimal.Decimal) (domain.Prices, error)
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, t domain.Theme) error
}

// DashboardOverview is everything the dashboard page renders for one window.
type DashboardOverview struct {
	Reference          domain.Date         `json:"reference"`
	Revenue            stats.Series        `json:"revenue"`
	CompletedTotal     int                 `json:"completedTotal"`
	NewClients         int                 `json:"newClients"`
	StatusDistribution []stats.StatusCount `json:"statusDistribution"`
	BirthdaysThisWeek  []domain.Client     `json:"birthdaysThisWeek"`
	LowStock           []domain.Product    `json:"lowStock"`
}

type DashboardService interface {
	Overview(ctx context.Context, window stats.Window, ref domain.Date) (*DashboardOverview, error)
	Week(ctx context.Context, ref domain.Date) ([]calendar.DayBucket, error)
	Upcoming(ctx context.Context, today domain.Date) ([]domain.Appointment, error)
	History(ctx context.Context, filter calendar.StatusFilter) ([]domain.Appointment, error)
	Today() domain.Date
}
