package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"powerlink/internal/domain"
	"powerlink/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	workers WorkerRepositoryInterface
}

func NewService(workers WorkerRepositoryInterface) *Service {
	return &Service{workers: workers}
}

// List returns the public worker directory, filtered and ordered by rating.
func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Worker, error) {
	if f.Category != "" && !domain.ValidServiceCategory(f.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, f.Category)
	}

	return s.workers.List(ctx, repository.WorkerFilter{
		Category:      f.Category,
		MinRating:     f.MinRating,
		AvailableOnly: f.AvailableOnly,
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Worker, error) {
	w, err := s.workers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

// CreateProfile creates the worker profile for the given user. A user has at
// most one profile.
func (s *Service) CreateProfile(ctx context.Context, userID int64, req CreateProfileRequest) (*domain.Worker, error) {
	for _, cat := range req.ServiceCategories {
		if !domain.ValidServiceCategory(cat) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, cat)
		}
	}

	if _, err := s.workers.GetByUserID(ctx, userID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	w := &domain.Worker{
		UserID:            userID,
		ServiceCategories: req.ServiceCategories,
		Skills:            req.Skills,
		Experience:        req.Experience,
		HourlyRate:        req.HourlyRate,
		Availability:      req.Availability,
		IsAvailable:       true,
		Verification:      domain.VerificationPending,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		ServiceRadiusKm:   req.ServiceRadiusKm,
	}

	if err := s.workers.Create(ctx, w); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrProfileExists
		}
		return nil, err
	}
	return w, nil
}

// UpdateProfile applies a partial update to the caller's own profile.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.Worker, error) {
	w, err := s.getOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.ServiceCategories != nil {
		for _, cat := range *req.ServiceCategories {
			if !domain.ValidServiceCategory(cat) {
				return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, cat)
			}
		}
		w.ServiceCategories = *req.ServiceCategories
	}
	if req.Skills != nil {
		w.Skills = *req.Skills
	}
	if req.Experience != nil {
		w.Experience = *req.Experience
	}
	if req.HourlyRate != nil {
		w.HourlyRate = *req.HourlyRate
	}
	if req.IsAvailable != nil {
		w.IsAvailable = *req.IsAvailable
	}
	if req.Latitude != nil {
		w.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		w.Longitude = *req.Longitude
	}
	if req.ServiceRadiusKm != nil {
		w.ServiceRadiusKm = *req.ServiceRadiusKm
	}

	if err := s.workers.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// UpdateAvailability replaces the weekly schedule wholesale.
func (s *Service) UpdateAvailability(ctx context.Context, userID int64, req UpdateAvailabilityRequest) (*domain.Worker, error) {
	w, err := s.getOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	w.Availability = req.Availability
	if req.IsAvailable != nil {
		w.IsAvailable = *req.IsAvailable
	}

	if err := s.workers.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// SubmitVerification appends a document and puts the profile back into the
// pending review queue.
func (s *Service) SubmitVerification(ctx context.Context, userID int64, req VerificationDocumentRequest) (*domain.Worker, error) {
	w, err := s.getOwn(ctx, userID)
	if err != nil {
		return nil, err
	}

	w.VerificationDocuments = append(w.VerificationDocuments, domain.VerificationDocument{
		DocumentType: req.DocumentType,
		DocumentPath: req.DocumentPath,
		UploadedAt:   time.Now(),
	})
	w.Verification = domain.VerificationPending

	if err := s.workers.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) getOwn(ctx context.Context, userID int64) (*domain.Worker, error) {
	w, err := s.workers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoProfile
		}
		return nil, err
	}
	return w, nil
}
