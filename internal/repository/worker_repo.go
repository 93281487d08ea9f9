package repository

import (
	"context"

	"powerlink/internal/domain"

	"gorm.io/gorm"
)

type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

// WorkerFilter narrows the public directory listing.
type WorkerFilter struct {
	Category      string
	MinRating     float64
	AvailableOnly bool
}

func (r *WorkerRepository) List(ctx context.Context, f WorkerFilter) ([]domain.Worker, error) {
	q := r.db.WithContext(ctx).Preload("User")
	if f.Category != "" {
		// categories are stored as a JSON array; membership via substring
		// match on the quoted value, which both backends support
		q = q.Where("service_categories LIKE ?", "%\""+f.Category+"\"%")
	}
	if f.MinRating > 0 {
		q = q.Where("average_rating >= ?", f.MinRating)
	}
	if f.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}

	var workers []domain.Worker
	if err := q.Order("average_rating DESC").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *WorkerRepository) GetByID(ctx context.Context, id int64) (*domain.Worker, error) {
	var w domain.Worker
	if err := r.db.WithContext(ctx).Preload("User").First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkerRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Worker, error) {
	var w domain.Worker
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&w)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &w, nil
}

func (r *WorkerRepository) Create(ctx context.Context, w *domain.Worker) error {
	return translateError(r.db.WithContext(ctx).Create(w).Error)
}

func (r *WorkerRepository) Update(ctx context.Context, w *domain.Worker) error {
	return translateError(r.db.WithContext(ctx).Save(w).Error)
}

// AddRating appends a rating row and recomputes the stored arithmetic mean
// in the same transaction.
func (r *WorkerRepository) AddRating(ctx context.Context, rating *domain.WorkerRating) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rating).Error; err != nil {
			return err
		}

		var scores []int
		if err := tx.Model(&domain.WorkerRating{}).
			Where("worker_id = ?", rating.WorkerID).
			Pluck("score", &scores).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Worker{}).
			Where("id = ?", rating.WorkerID).
			Update("average_rating", domain.AverageScore(scores)).Error
	})
}

func (r *WorkerRepository) IncrementTotalJobs(ctx context.Context, workerID int64) error {
	return r.db.WithContext(ctx).Model(&domain.Worker{}).
		Where("id = ?", workerID).
		Update("total_jobs", gorm.Expr("total_jobs + 1")).Error
}

func (r *WorkerRepository) IncrementCompletedJobs(ctx context.Context, workerID int64) error {
	return r.db.WithContext(ctx).Model(&domain.Worker{}).
		Where("id = ?", workerID).
		Update("completed_jobs", gorm.Expr("completed_jobs + 1")).Error
}
