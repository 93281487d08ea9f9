package auth

import (
	"context"
	"time"

	"powerlink/internal/domain"
)

// UserRepositoryInterface — only the methods auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByMobile(ctx context.Context, mobile string) (*domain.User, error)
	ExistsByMobile(ctx context.Context, mobile string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
	SetOTP(ctx context.Context, userID int64, otpHash string, expiry *time.Time) error
	ClearOTP(ctx context.Context, userID int64) error
}
