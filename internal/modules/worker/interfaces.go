package worker

import (
	"context"

	"powerlink/internal/domain"
	"powerlink/internal/repository"
)

type WorkerRepositoryInterface interface {
	List(ctx context.Context, f repository.WorkerFilter) ([]domain.Worker, error)
	GetByID(ctx context.Context, id int64) (*domain.Worker, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Worker, error)
	Create(ctx context.Context, w *domain.Worker) error
	Update(ctx context.Context, w *domain.Worker) error
}
