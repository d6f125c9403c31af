package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/manicuristapro/salon-system/internal/core/domain"
	"github.com/manicuristapro/salon-system/internal/core/ports"
	"github.com/manicuristapro/salon-system/internal/pkg/validation"
)

type ClientService struct {
	repo   ports.ClientRepository
	ids    *IDSource
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, ids *IDSource, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, ids: ids, logger: logger}
}

// List returns all clients ordered by name.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	slices.SortStableFunc(clients, func(a, b domain.Client) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return clients, nil
}

func (s *ClientService) Get(ctx context.Context, id int64) (domain.Client, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Client{}, fmt.Errorf("get client %d: %w", id, err)
	}
	return c, nil
}

func (s *ClientService) Create(ctx context.Context, in ports.ClientInput) (domain.Client, error) {
	c, err := clientFromInput(in)
	if err != nil {
		return domain.Client{}, err
	}
	c.ID = s.ids.Next()
	if err := s.repo.Save(ctx, c); err != nil {
		s.logger.Error().Err(err).Msg("failed to save client")
		return domain.Client{}, fmt.Errorf("create client: %w", err)
	}
	s.logger.Info().Int64("client_id", c.ID).Msg("client created")
	return c, nil
}

func (s *ClientService) Update(ctx context.Context, id int64, in ports.ClientInput) (domain.Client, error) {
	c, err := clientFromInput(in)
	if err != nil {
		return domain.Client{}, err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.Client{}, fmt.Errorf("update client %d: %w", id, err)
	}
	c.ID = id
	if err := s.repo.Save(ctx, c); err != nil {
		return domain.Client{}, fmt.Errorf("update client: %w", err)
	}
	s.logger.Info().Int64("client_id", id).Msg("client updated")
	return c, nil
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	s.logger.Info().Int64("client_id", id).Msg("client deleted")
	return nil
}

// NewCount returns how many clients are flagged as new.
func (s *ClientService) NewCount(ctx context.Context) (int, error) {
	clients, err := s.repo.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("count new clients: %w", err)
	}
	n := 0
	for _, c := range clients {
		if c.IsNew {
			n++
		}
	}
	return n, nil
}

func clientFromInput(in ports.ClientInput) (domain.Client, error) {
	if err := validation.Struct(in); err != nil {
		return domain.Client{}, err
	}
	var birth domain.Date
	if in.BirthDate != "" {
		d, err := domain.ParseDate(in.BirthDate)
		if err != nil {
			return domain.Client{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		birth = d
	}
	return domain.Client{
		Name:           strings.TrimSpace(in.Name),
		Phone:          strings.TrimSpace(in.Phone),
		Email:          strings.TrimSpace(in.Email),
		BirthDate:      birth,
		ServiceHistory: slices.Clone(in.ServiceHistory),
		Preferences:    in.Preferences,
		IsNew:          in.IsNew,
	}, nil
}
