package auth

import "errors"

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidOTP   = errors.New("invalid otp")
	ErrSendFailed   = errors.New("otp delivery failed")
)
