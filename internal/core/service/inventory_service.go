package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/ports"
	"github.com/manicuristapro/salon-system/internal/pkg/validation"
)

type InventoryService struct {
	repo   ports.ProductRepository
	ids    *IDSource
	logger zerolog.Logger

	mu sync.Mutex // guards stock adjustments
}

func NewInventoryService(repo ports.ProductRepository, ids *IDSource, logger zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, ids: ids, logger: logger}
}

func (s *InventoryService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	slices.SortStableFunc(products, func(a, b domain.Product) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return products, nil
}

func (s *InventoryService) Create(ctx context.Context, in ports.ProductInput) (domain.Product, error) {
	if err := validation.Struct(in); err != nil {
		return domain.Product{}, err
	}
	p := domain.Product{
		ID:           s.ids.Next(),
		Name:         strings.TrimSpace(in.Name),
		CurrentStock: in.CurrentStock,
		MinStock:     in.MinStock,
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	s.logger.Info().Int64("product_id", p.ID).Str("name", p.Name).Msg("product created")
	return p, nil
}

func (s *InventoryService) Update(ctx context.Context, id int64, in ports.ProductInput) (domain.Product, error) {
	if err := validation.Struct(in); err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.Product{}, fmt.Errorf("update product %d: %w", id, err)
	}
	p := domain.Product{
		ID:           id,
		Name:         strings.TrimSpace(in.Name),
		CurrentStock: in.CurrentStock,
		MinStock:     in.MinStock,
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

// AdjustStock adds delta (negative to consume) to the current stock.
// The stock never goes below zero.
func (s *InventoryService) AdjustStock(ctx context.Context, id int64, delta int) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("adjust stock %d: %w", id, err)
	}
	if p.CurrentStock+delta < 0 {
		return domain.Product{}, fmt.Errorf("adjust stock %d: %w: have %d, requested %d",
			id, domain.ErrInsufficientStock, p.CurrentStock, -delta)
	}
	p.CurrentStock += delta
	if err := s.repo.Save(ctx, p); err != nil {
		return domain.Product{}, fmt.Errorf("adjust stock: %w", err)
	}

	log := s.logger.Info()
	if p.LowStock() {
		log = s.logger.Warn()
	}
	log.Int64("product_id", id).Int("delta", delta).Int("stock", p.CurrentStock).Msg("stock adjusted")
	return p, nil
}

// LowStock returns the products at or below their minimum stock.
func (s *InventoryService) LowStock(ctx context.Context) ([]domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out, nil
}
