package auth

import "powerlink/internal/domain"

type RegisterRequest struct {
	FirstName    string         `json:"firstName" binding:"required"`
	LastName     string         `json:"lastName" binding:"required"`
	Email        string         `json:"email" binding:"required,email"`
	MobileNumber string         `json:"mobileNumber" binding:"required"`
	Password     string         `json:"password" binding:"omitempty,min=6"`
	Address      domain.Address `json:"address"`
}

type RequestOTPRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
}

type VerifyOTPRequest struct {
	MobileNumber string `json:"mobileNumber" binding:"required"`
	OTP          string `json:"otp" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName string          `json:"firstName,omitempty"`
	LastName  string          `json:"lastName,omitempty"`
	Email     string          `json:"email,omitempty" binding:"omitempty,email"`
	Address   *domain.Address `json:"address,omitempty"`
}

// UserSummary is the account shape returned from login/verification.
type UserSummary struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

func summarize(u *domain.User) UserSummary {
	return UserSummary{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		MobileNumber: u.MobileNumber,
		Email:        u.Email,
		Role:         string(u.Role),
	}
}
