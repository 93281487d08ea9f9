package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"powerlink/internal/domain"
	"powerlink/internal/pkg/sms"
	"powerlink/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Service contains all business logic for registration and OTP login.
type Service struct {
	users     UserRepositoryInterface
	jwt       jwtService
	sender    sms.Sender
	otpPepper string
	otpTTL    time.Duration
}

func NewService(
	users UserRepositoryInterface,
	jwt jwtService,
	sender sms.Sender,
	otpPepper string,
	otpTTL time.Duration,
) *Service {
	return &Service{
		users:     users,
		jwt:       jwt,
		sender:    sender,
		otpPepper: otpPepper,
		otpTTL:    otpTTL,
	}
}

// Register creates an account with the given role, issues a verification OTP
// and hands it to the SMS collaborator. The issued code is returned so the
// handler can echo it in development mode.
func (s *Service) Register(ctx context.Context, req RegisterRequest, role domain.UserRole) (*domain.User, string, error) {
	exists, err := s.users.ExistsByMobile(ctx, req.MobileNumber)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrUserExists
	}
	exists, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrUserExists
	}

	user := &domain.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		Role:         role,
		Address:      req.Address,
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, "", ErrUserExists
		}
		return nil, "", err
	}

	code, err := s.issueOTP(ctx, user)
	if err != nil {
		return nil, "", err
	}

	user.Sanitize()
	return user, code, nil
}

// RequestOTP issues a fresh code for an existing account. Each issuance
// replaces any previous pending code.
func (s *Service) RequestOTP(ctx context.Context, mobileNumber string) (string, error) {
	user, err := s.users.GetByMobile(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	return s.issueOTP(ctx, user)
}

// issueOTP generates and stores the code, then invokes delivery. Send
// failure aborts the operation.
func (s *Service) issueOTP(ctx context.Context, user *domain.User) (string, error) {
	code, err := generateOTP()
	if err != nil {
		return "", err
	}

	expiry := time.Now().Add(s.otpTTL)
	if err := s.users.SetOTP(ctx, user.ID, hashOTP(code, s.otpPepper), &expiry); err != nil {
		return "", err
	}

	if err := s.sender.Send(ctx, user.MobileNumber, code); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return code, nil
}

// VerifyOTP checks the candidate against the pending code. On success the
// code is cleared in the same operation (a consumed code cannot be replayed),
// the account is marked verified and a 30-day bearer token is issued.
func (s *Service) VerifyOTP(ctx context.Context, mobileNumber, candidate string) (*domain.User, string, error) {
	user, err := s.users.GetByMobile(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if !otpRegex.MatchString(candidate) {
		return nil, "", ErrInvalidOTP
	}
	if !otpMatches(user, candidate, s.otpPepper, time.Now()) {
		return nil, "", ErrInvalidOTP
	}

	if err := s.users.ClearOTP(ctx, user.ID); err != nil {
		return nil, "", err
	}
	user.IsVerified = true

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.Sanitize()
	return user, token, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Sanitize()
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email != user.Email {
			taken, err := s.users.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrUserExists
			}
			user.Email = email
		}
	}
	if req.Address != nil {
		user.Address = *req.Address
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	user.Sanitize()
	return user, nil
}
