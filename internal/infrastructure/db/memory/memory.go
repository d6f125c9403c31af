// Package memory holds the application state for the lifetime of the process.
// Every repository copies on the way in and on the way out, so callers never
// share slices with the stored collections.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/manicuristapro/salon-system/internal/core/domain"
)

// State is the application-state container passed to the services.
type State struct {
	Appointments *AppointmentRepository
	Clients      *ClientRepository
	Products     *ProductRepository
	Settings     *SettingsRepository
}

func NewState() *State {
	return &State{
		Appointments: NewAppointmentRepository(),
		Clients:      NewClientRepository(),
		Products:     NewProductRepository(),
		Settings:     NewSettingsRepository(),
	}
}

// ── Appointments ─────────────────────────────────────────────────────────────

type AppointmentRepository struct {
	mu    sync.RWMutex
	items []domain.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

func (r *AppointmentRepository) All(_ context.Context) ([]domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Appointment, len(r.items))
	for i, a := range r.items {
		out[i] = a.Clone()
	}
	return out, nil
}

func (r *AppointmentRepository) FindByID(_ context.Context, id int64) (domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.items {
		if a.ID == id {
			return a.Clone(), nil
		}
	}
	return domain.Appointment{}, domain.ErrAppointmentNotFound
}

// Replace stores apps as the new collection, keeping the given order.
func (r *AppointmentRepository) Replace(_ context.Context, apps []domain.Appointment) error {
	next := make([]domain.Appointment, len(apps))
	for i, a := range apps {
		next[i] = a.Clone()
	}

	r.mu.Lock()
	r.items = next
	r.mu.Unlock()
	return nil
}

// ── Clients ──────────────────────────────────────────────────────────────────

type ClientRepository struct {
	mu   sync.RWMutex
	byID map[int64]domain.Client
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{byID: make(map[int64]domain.Client)}
}

// All returns the clients ordered by id.
func (r *ClientRepository) All(_ context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Client, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c.Clone())
	}
	slices.SortFunc(out, func(a, b domain.Client) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *ClientRepository) FindByID(_ context.Context, id int64) (domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return domain.Client{}, domain.ErrClientNotFound
	}
	return c.Clone(), nil
}

// Save inserts or replaces the client with c.ID.
func (r *ClientRepository) Save(_ context.Context, c domain.Client) error {
	r.mu.Lock()
	r.byID[c.ID] = c.Clone()
	r.mu.Unlock()
	return nil
}

func (r *ClientRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.byID, id)
	return nil
}

// ── Products ─────────────────────────────────────────────────────────────────

type ProductRepository struct {
	mu   sync.RWMutex
	byID map[int64]domain.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{byID: make(map[int64]domain.Product)}
}

// All returns the products ordered by id.
func (r *ProductRepository) All(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b domain.Product) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *ProductRepository) FindByID(_ context.Context, id int64) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *ProductRepository) Save(_ context.Context, p domain.Product) error {
	r.mu.Lock()
	r.byID[p.ID] = p
	r.mu.Unlock()
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.byID, id)
	return nil
}

// ── Settings ─────────────────────────────────────────────────────────────────

type SettingsRepository struct {
	mu      sync.RWMutex
	profile domain.Profile
	prices  domain.Prices
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{prices: domain.Prices{}}
}

func (r *SettingsRepository) Profile(_ context.Context) (domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile, nil
}

func (r *SettingsRepository) SaveProfile(_ context.Context, p domain.Profile) error {
	r.mu.Lock()
	r.profile = p
	r.mu.Unlock()
	return nil
}

func (r *SettingsRepository) Prices(_ context.Context) (domain.Prices, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.prices.Clone(), nil
}

// SavePrices replaces the whole price table.
func (r *SettingsRepository) SavePrices(_ context.Context, p domain.Prices) error {
	r.mu.Lock()
	r.prices = p.Clone()
	r.mu.Unlock()
	return nil
}

// ── Preferences ──────────────────────────────────────────────────────────────

// PreferenceStore keeps UI preferences in memory. It backs the theme when Redis
// is not reachable.
type PreferenceStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{values: make(map[string]string)}
}

func (s *PreferenceStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *PreferenceStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}
