package catalog

import (
	"context"
	"errors"
	"fmt"

	"powerlink/internal/domain"
	"powerlink/internal/pkg/validator"
	"powerlink/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	services ServiceRepositoryInterface
}

func NewService(services ServiceRepositoryInterface) *Service {
	return &Service{services: services}
}

// List returns active catalog entries, newest first, optionally narrowed by
// category and popularity.
func (s *Service) List(ctx context.Context, category string, popular bool) ([]domain.Service, error) {
	if category != "" && !domain.ValidServiceCategory(category) {
		return nil, ErrValidation
	}
	return s.services.List(ctx, repository.ServiceFilter{
		Category: category,
		Popular:  popular,
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) Create(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	if !domain.ValidServiceCategory(req.Category) {
		return nil, ErrValidation
	}

	svc := &domain.Service{
		Name:          req.Name,
		Category:      domain.ServiceCategory(req.Category),
		Subcategory:   req.Subcategory,
		Description:   req.Description,
		BasePrice:     req.BasePrice,
		Image:         req.Image,
		EstimatedTime: req.EstimatedTime,
		IsPopular:     req.IsPopular,
		IsActive:      true,
	}
	if err := validator.Validate(svc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		if !domain.ValidServiceCategory(*req.Category) {
			return nil, ErrValidation
		}
		svc.Category = domain.ServiceCategory(*req.Category)
	}
	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Subcategory != nil {
		svc.Subcategory = *req.Subcategory
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return nil, ErrValidation
		}
		svc.BasePrice = *req.BasePrice
	}
	if req.Image != nil {
		svc.Image = *req.Image
	}
	if req.EstimatedTime != nil {
		svc.EstimatedTime = *req.EstimatedTime
	}
	if req.IsPopular != nil {
		svc.IsPopular = *req.IsPopular
	}
	if err := validator.Validate(svc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// Deactivate soft-deletes a catalog entry.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.services.Deactivate(ctx, id)
}
