package booking

import (
	"context"
	"errors"
	"time"

	"powerlink/internal/domain"

	"gorm.io/gorm"
)

// advanceTargets are the only statuses an assigned worker may move a booking
// to. Assignment itself happens through Claim, cancellation through Cancel.
var advanceTargets = map[domain.BookingStatus]bool{
	domain.BookingAccepted:   true,
	domain.BookingInProgress: true,
	domain.BookingCompleted:  true,
}

type Service struct {
	bookings BookingRepositoryInterface
	services ServiceReader
	workers  WorkerStore
	users    UserReader
	notifs   NotificationSender
}

func NewService(
	bookings BookingRepositoryInterface,
	services ServiceReader,
	workers WorkerStore,
	users UserReader,
	notifs NotificationSender,
) *Service {
	return &Service{
		bookings: bookings,
		services: services,
		workers:  workers,
		users:    users,
		notifs:   notifs,
	}
}

// Create opens a pending booking for the customer. The total amount is a
// snapshot of the service's current base price; later catalog edits never
// touch existing bookings.
func (s *Service) Create(ctx context.Context, customerID, serviceID int64, req CreateBookingRequest) (*domain.Booking, error) {
	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceGone
		}
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return nil, ErrValidation
	}
	if _, err := time.Parse("15:04", req.ScheduledTime); err != nil {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		UserID:        customerID,
		ServiceID:     svc.ID,
		ScheduledDate: date,
		ScheduledTime: req.ScheduledTime,
		Address:       req.Address,
		Status:        domain.BookingPending,
		TotalAmount:   svc.BasePrice,
		PaymentStatus: domain.PaymentPending,
		PaymentMethod: domain.PaymentCash,
		Notes:         req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ListForCustomer returns the customer's bookings with service and worker
// summaries resolved by explicit secondary lookups.
func (s *Service) ListForCustomer(ctx context.Context, userID int64) ([]BookingDetails, error) {
	rows, err := s.bookings.GetByCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for i := range rows {
		d := s.details(ctx, &rows[i])
		if rows[i].WorkerID != nil {
			if u, err := s.users.GetByID(ctx, *rows[i].WorkerID); err == nil {
				d.Worker = &WorkerSummary{
					UserID:       u.ID,
					FirstName:    u.FirstName,
					LastName:     u.LastName,
					MobileNumber: u.MobileNumber,
				}
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// ListForWorker returns bookings assigned to the worker account, soonest
// first, with service and customer summaries.
func (s *Service) ListForWorker(ctx context.Context, workerUserID int64) ([]BookingDetails, error) {
	if _, err := s.workers.GetByUserID(ctx, workerUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerProfile
		}
		return nil, err
	}

	rows, err := s.bookings.GetByWorker(ctx, workerUserID)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for i := range rows {
		d := s.details(ctx, &rows[i])
		if u, err := s.users.GetByID(ctx, rows[i].UserID); err == nil {
			d.Customer = &CustomerSummary{
				ID:           u.ID,
				FirstName:    u.FirstName,
				LastName:     u.LastName,
				MobileNumber: u.MobileNumber,
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *Service) details(ctx context.Context, b *domain.Booking) BookingDetails {
	d := BookingDetails{
		ID:            b.ID,
		Status:        b.Status,
		ScheduledDate: b.ScheduledDate,
		ScheduledTime: b.ScheduledTime,
		Address:       b.Address,
		TotalAmount:   b.TotalAmount,
		PaymentStatus: b.PaymentStatus,
		Notes:         b.Notes,
		Rating:        b.Rating,
		CreatedAt:     b.CreatedAt,
		CompletedAt:   b.CompletedAt,
	}
	if svc, err := s.services.GetByID(ctx, b.ServiceID); err == nil {
		d.Service = &ServiceSummary{
			ID:       svc.ID,
			Name:     svc.Name,
			Category: string(svc.Category),
			Price:    svc.BasePrice,
		}
	}
	return d
}

// Claim is the worker-facing assignment action: the worker takes an
// unassigned pending booking, which moves it to assigned.
func (s *Service) Claim(ctx context.Context, bookingID, workerUserID int64) (*domain.Booking, error) {
	profile, err := s.workers.GetByUserID(ctx, workerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerProfile
		}
		return nil, err
	}

	b, err := s.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.WorkerID != nil || b.Status != domain.BookingPending {
		return nil, ErrNotAssignable
	}

	b.WorkerID = &workerUserID
	b.Status = domain.BookingAssigned
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	if err := s.workers.IncrementTotalJobs(ctx, profile.ID); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyBookingAssigned(ctx, b.UserID, b)
	}
	return b, nil
}

// AdvanceStatus moves an assigned booking forward. Only the assigned worker
// may advance, only to accepted/in-progress/completed, and never out of a
// final status.
func (s *Service) AdvanceStatus(ctx context.Context, bookingID, workerUserID int64, target string) (*domain.Booking, error) {
	status := domain.BookingStatus(target)
	if !advanceTargets[status] {
		return nil, ErrValidation
	}

	b, err := s.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status.Final() {
		return nil, ErrAlreadyFinal
	}
	if b.WorkerID == nil {
		return nil, ErrNoWorker
	}
	if *b.WorkerID != workerUserID {
		return nil, ErrForbidden
	}

	b.Status = status
	if status == domain.BookingCompleted {
		now := time.Now()
		b.CompletedAt = &now
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	if status == domain.BookingCompleted {
		profile, err := s.workers.GetByUserID(ctx, workerUserID)
		if err != nil {
			return nil, err
		}
		if err := s.workers.IncrementCompletedJobs(ctx, profile.ID); err != nil {
			return nil, err
		}
	}

	if s.notifs != nil {
		s.notifs.NotifyBookingStatusChanged(ctx, b.UserID, b)
	}
	return b, nil
}

// Cancel moves a booking to cancelled from any non-final state. Only the
// owning customer or an admin may cancel; there is no compensation logic.
func (s *Service) Cancel(ctx context.Context, bookingID, actorID int64, actorRole string) (*domain.Booking, error) {
	b, err := s.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID && actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	if b.Status.Final() {
		return nil, ErrAlreadyFinal
	}

	b.Status = domain.BookingCancelled
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil && b.WorkerID != nil {
		s.notifs.NotifyBookingCancelled(ctx, *b.WorkerID, b)
	}
	return b, nil
}

// Rate attaches a one-time rating to a completed booking and, when a worker
// was assigned, feeds the worker's rating aggregate.
func (s *Service) Rate(ctx context.Context, bookingID, actorID int64, score int, review string) (*domain.Booking, error) {
	if score < 1 || score > 5 {
		return nil, ErrValidation
	}

	b, err := s.get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != actorID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrNotCompleted
	}
	if b.Rated() {
		return nil, ErrAlreadyRated
	}

	now := time.Now()
	b.Rating = domain.BookingRating{
		Score:   score,
		Review:  review,
		RatedAt: &now,
	}
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	if b.WorkerID != nil {
		profile, err := s.workers.GetByUserID(ctx, *b.WorkerID)
		if err == nil {
			err = s.workers.AddRating(ctx, &domain.WorkerRating{
				WorkerID: profile.ID,
				UserID:   actorID,
				Score:    score,
				Review:   review,
			})
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return b, nil
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
