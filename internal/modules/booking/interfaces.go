package booking

import (
	"context"

	"powerlink/internal/domain"
)

// BookingRepositoryInterface — only the methods the lifecycle service uses
type BookingRepositoryInterface interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	GetByCustomer(ctx context.Context, userID int64) ([]domain.Booking, error)
	GetByWorker(ctx context.Context, workerUserID int64) ([]domain.Booking, error)
}

// ServiceReader resolves catalog entries for price snapshots and summaries.
type ServiceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// WorkerStore covers the profile reads and counter/rating writes the
// lifecycle triggers.
type WorkerStore interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Worker, error)
	AddRating(ctx context.Context, rating *domain.WorkerRating) error
	IncrementTotalJobs(ctx context.Context, workerID int64) error
	IncrementCompletedJobs(ctx context.Context, workerID int64) error
}

// UserReader resolves account summaries for booking listings.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// NotificationSender pushes booking events to connected users. Best-effort;
// failures never fail the request.
type NotificationSender interface {
	NotifyBookingAssigned(ctx context.Context, customerID int64, b *domain.Booking)
	NotifyBookingStatusChanged(ctx context.Context, customerID int64, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, workerUserID int64, b *domain.Booking)
}
