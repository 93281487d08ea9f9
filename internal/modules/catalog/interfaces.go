package catalog

import (
	"context"

	"powerlink/internal/domain"
	"powerlink/internal/repository"
)

// ServiceRepositoryInterface — catalog storage, soft deletes included
type ServiceRepositoryInterface interface {
	List(ctx context.Context, f repository.ServiceFilter) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) error
	Update(ctx context.Context, s *domain.Service) error
	Deactivate(ctx context.Context, id int64) error
}
