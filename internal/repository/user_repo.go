package repository

import (
	"context"
	"strings"
	"time"

	"powerlink/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.MobileNumber = strings.TrimSpace(u.MobileNumber)
	return translateError(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByMobile(ctx context.Context, mobile string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("mobile_number = ?", strings.TrimSpace(mobile)).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) ExistsByMobile(ctx context.Context, mobile string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("mobile_number = ?", strings.TrimSpace(mobile)).
		Count(&count)
	return count > 0, tx.Error
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count)
	return count > 0, tx.Error
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return translateError(r.db.WithContext(ctx).Save(u).Error)
}

// SetOTP writes the pending code hash and its expiry onto the account.
func (r *UserRepository) SetOTP(ctx context.Context, userID int64, otpHash string, expiry *time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"otp_hash": otpHash, "otp_expiry": expiry}).Error
}

// ClearOTP removes the pending code and marks the account verified; part of
// the successful verification step so a consumed code cannot be replayed.
func (r *UserRepository) ClearOTP(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"otp_hash": "", "otp_expiry": nil, "is_verified": true}).Error
}
