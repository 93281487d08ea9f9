package repository

import (
	"context"

	"powerlink/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return translateError(r.db.WithContext(ctx).Create(b).Error)
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// GetByCustomer returns the customer's bookings, newest first.
func (r *BookingRepository) GetByCustomer(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}

// GetByWorker returns bookings assigned to the worker account, soonest first.
func (r *BookingRepository) GetByWorker(ctx context.Context, workerUserID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("worker_id = ?", workerUserID).
		Order("scheduled_date ASC").
		Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}
