package repository

import (
	"context"

	"powerlink/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// ServiceFilter narrows the public catalog listing. Only active entries are
// ever returned.
type ServiceFilter struct {
	Category string
	Popular  bool
}

func (r *ServiceRepository) List(ctx context.Context, f ServiceFilter) ([]domain.Service, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Popular {
		q = q.Where("is_popular = ?", true)
	}

	var services []domain.Service
	if err := q.Order("created_at DESC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return translateError(r.db.WithContext(ctx).Create(s).Error)
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return translateError(r.db.WithContext(ctx).Save(s).Error)
}

// Deactivate is the soft delete: the row stays, listings skip it.
func (r *ServiceRepository) Deactivate(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.Service{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
