package booking

import "errors"

var (
	ErrNotFound      = errors.New("booking not found")
	ErrServiceGone   = errors.New("service not found")
	ErrWorkerProfile = errors.New("worker profile not found")
	ErrForbidden     = errors.New("not authorized for this booking")
	ErrValidation    = errors.New("invalid booking data")
	ErrAlreadyFinal  = errors.New("booking already final")
	ErrNotAssignable = errors.New("booking cannot be claimed")
	ErrNoWorker      = errors.New("no worker assigned")
	ErrNotCompleted  = errors.New("booking not completed")
	ErrAlreadyRated  = errors.New("booking already rated")
)
