package worker

import "errors"

var (
	ErrNotFound      = errors.New("worker not found")
	ErrProfileExists = errors.New("worker profile already exists")
	ErrNoProfile     = errors.New("worker profile not found")
	ErrValidation    = errors.New("invalid worker data")
)
