package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/prootly/admin-api/internal/api/metrics"
	"github.com/prootly/admin-api/internal/core/domain"
	"github.com/prootly/admin-api/internal/core/ports"
)

type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new client. Status defaults to "active" when not supplied.
func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	status := domain.ClientStatus(input.Status)
	if status == "" {
		status = domain.ClientActive
	}

	client := &domain.Client{
		ID:            ksuid.New().String(),
		CompanyName:   input.CompanyName,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Status:        status,
		Notes:         input.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, client); err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("client").Inc()
	s.logger.Info().Str("client_id", client.ID).Str("company", client.CompanyName).Msg("client created")
	return client, nil
}

// Update merges the supplied fields over the stored row.
func (s *ClientService) Update(ctx context.Context, id string, input ports.UpdateClientInput) (*domain.Client, error) {
	client, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != nil {
		client.CompanyName = *input.CompanyName
	}
	if input.ContactPerson != nil {
		client.ContactPerson = *input.ContactPerson
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Status != nil {
		client.Status = domain.ClientStatus(*input.Status)
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}

	if err := s.repo.Update(ctx, client); err != nil {
		s.logger.Error().Err(err).Str("client_id", id).Msg("failed to update client")
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		metrics.EntitiesDeletedTotal.WithLabelValues("client").Inc()
		s.logger.Info().Str("client_id", id).Msg("client deleted")
	}
	return removed, nil
}

// Search matches the query case-insensitively against company name,
// contact person and email.
func (s *ClientService) Search(ctx context.Context, query string) ([]domain.Client, error) {
	metrics.SearchQueriesTotal.WithLabelValues("client").Inc()
	return s.repo.Search(ctx, query)
}
