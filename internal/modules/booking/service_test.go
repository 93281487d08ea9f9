package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"powerlink/internal/domain"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) GetByCustomer(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) GetByWorker(ctx context.Context, workerUserID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, workerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type mockServiceReader struct {
	mock.Mock
}

func (m *mockServiceReader) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type mockWorkerStore struct {
	mock.Mock
}

func (m *mockWorkerStore) GetByUserID(ctx context.Context, userID int64) (*domain.Worker, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *mockWorkerStore) AddRating(ctx context.Context, rating *domain.WorkerRating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *mockWorkerStore) IncrementTotalJobs(ctx context.Context, workerID int64) error {
	args := m.Called(ctx, workerID)
	return args.Error(0)
}

func (m *mockWorkerStore) IncrementCompletedJobs(ctx context.Context, workerID int64) error {
	args := m.Called(ctx, workerID)
	return args.Error(0)
}

type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type testDeps struct {
	bookings *mockBookingRepo
	services *mockServiceReader
	workers  *mockWorkerStore
	users    *mockUserReader
}

func newTestService() (*Service, testDeps) {
	d := testDeps{
		bookings: new(mockBookingRepo),
		services: new(mockServiceReader),
		workers:  new(mockWorkerStore),
		users:    new(mockUserReader),
	}
	return NewService(d.bookings, d.services, d.workers, d.users, nil), d
}

func TestService_Create_PriceSnapshot(t *testing.T) {
	service, d := newTestService()

	d.services.On("GetByID", mock.Anything, int64(4)).
		Return(&domain.Service{ID: 4, Name: "Fan Installation", BasePrice: 350}, nil)
	d.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := service.Create(context.Background(), 10, 4, CreateBookingRequest{
		ScheduledDate: "2026-09-15",
		ScheduledTime: "10:30",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, 350.0, b.TotalAmount)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	assert.Nil(t, b.WorkerID)
	d.bookings.AssertExpectations(t)
}

func TestService_Create_UnknownService(t *testing.T) {
	service, d := newTestService()

	d.services.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Create(context.Background(), 10, 99, CreateBookingRequest{
		ScheduledDate: "2026-09-15",
		ScheduledTime: "10:30",
	})
	assert.ErrorIs(t, err, ErrServiceGone)
}

func TestService_Create_BadSchedule(t *testing.T) {
	service, d := newTestService()

	d.services.On("GetByID", mock.Anything, int64(4)).
		Return(&domain.Service{ID: 4, BasePrice: 350}, nil)

	_, err := service.Create(context.Background(), 10, 4, CreateBookingRequest{
		ScheduledDate: "15-09-2026",
		ScheduledTime: "10:30",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Create(context.Background(), 10, 4, CreateBookingRequest{
		ScheduledDate: "2026-09-15",
		ScheduledTime: "25:99",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Claim_Success(t *testing.T) {
	service, d := newTestService()

	d.workers.On("GetByUserID", mock.Anything, int64(20)).
		Return(&domain.Worker{ID: 5, UserID: 20}, nil)
	d.bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, UserID: 10, Status: domain.BookingPending}, nil)
	d.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)
	d.workers.On("IncrementTotalJobs", mock.Anything, int64(5)).Return(nil)

	b, err := service.Claim(context.Background(), 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingAssigned, b.Status)
	assert.NotNil(t, b.WorkerID)
	assert.Equal(t, int64(20), *b.WorkerID)
	d.workers.AssertExpectations(t)
}

func TestService_Claim_AlreadyAssigned(t *testing.T) {
	service, d := newTestService()

	other := int64(30)
	d.workers.On("GetByUserID", mock.Anything, int64(20)).
		Return(&domain.Worker{ID: 5, UserID: 20}, nil)
	d.bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, Status: domain.BookingAssigned, WorkerID: &other}, nil)

	_, err := service.Claim(context.Background(), 1, 20)
	assert.ErrorIs(t, err, ErrNotAssignable)
}

func TestService_Claim_NoWorkerProfile(t *testing.T) {
	service, d := newTestService()

	d.workers.On("GetByUserID", mock.Anything, int64(20)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Claim(context.Background(), 1, 20)
	assert.ErrorIs(t, err, ErrWorkerProfile)
}

func TestService_AdvanceStatus_InvalidTarget(t *testing.T) {
	service, _ := newTestService()

	for _, target := range []string{"pending", "assigned", "cancelled", "done", ""} {
		_, err := service.AdvanceStatus(context.Background(), 1, 20, target)
		assert.ErrorIs(t, err, ErrValidation, "target %q", target)
	}
}

func TestService_AdvanceStatus_FinalIsTerminal(t *testing.T) {
	service, d := newTestService()

	wid := int64(20)
	d.bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, Status: domain.BookingCompleted, WorkerID: &wid}, nil)

	// a completed booking stays completed, even for the assigned worker
	_, err := service.AdvanceStatus(context.Background(), 1, 20, "completed")
	assert.ErrorIs(t, err, ErrAlreadyFinal)
	d.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_AdvanceStatus_NoWorkerAssigned(t *testing.T) {
	service, d := newTestService()

	d.bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, Status: domain.BookingPending}, nil)

	_, err := service.AdvanceStatus(context.Background(), 1, 20, "accepted")
	assert.ErrorIs(t, err, ErrNoWorker)
}

func TestService_AdvanceStatus_WrongWorker(t *testing.T) {
	service, d := newTestService()

	assigned := int64(99)
	d.bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, Status: domain.BookingAssigned, WorkerID: &assigned}, nil)

	_, err := service.AdvanceStatus(context.Background(), 1, 20, "in-progress")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_AdvanceStatus_Completion(t *testing.T) {
	service, d := newTestService()

	wid := int64(20)
	d.bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, Status: domain.BookingInProgress, WorkerID: &wid}, nil)
	d.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)
	d.workers.On("GetByUserID", mock.Anything, int64(20)).
		Return(&domain.Worker{ID: 5, UserID: 20}, nil)
	d.workers.On("IncrementCompletedJobs", mock.Anything, int64(5)).Return(nil)

	b, err := service.AdvanceStatus(context.Background(), 1, 20, "completed")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, b.Status)
	assert.NotNil(t, b.CompletedAt)
	d.workers.AssertExpectations(t)
}

func TestService_AdvanceStatus_CompletionProfileLookupFails(t *testing.T) {
	service, d := newTestService()

	wid := int64(20)
	d.bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, Status: domain.BookingInProgress, WorkerID: &wid}, nil)
	d.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)
	lookupErr := errors.New("connection reset")
	d.workers.On("GetByUserID", mock.Anything, int64(20)).Return(nil, lookupErr)

	_, err := service.AdvanceStatus(context.Background(), 1, 20, "completed")

	assert.ErrorIs(t, err, lookupErr)
	d.workers.AssertNotCalled(t, "IncrementCompletedJobs", mock.Anything, mock.Anything)
}

func TestService_Cancel_OwnerOnly(t *testing.T) {
	service, d := newTestService()

	d.bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, UserID: 10, Status: domain.BookingPending}, nil)

	_, err := service.Cancel(context.Background(), 1, 11, "customer")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Cancel_AdminOverride(t *testing.T) {
	service, d := newTestService()

	d.bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, UserID: 10, Status: domain.BookingAccepted}, nil)
	d.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	b, err := service.Cancel(context.Background(), 1, 999, "admin")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestService_Cancel_AlreadyFinal(t *testing.T) {
	service, d := newTestService()

	d.bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, UserID: 10, Status: domain.BookingCancelled}, nil)

	_, err := service.Cancel(context.Background(), 1, 10, "customer")
	assert.ErrorIs(t, err, ErrAlreadyFinal)
	d.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Rate_Success(t *testing.T) {
	service, d := newTestService()

	wid := int64(20)
	now := time.Now()
	d.bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{
			ID:          1,
			UserID:      10,
			WorkerID:    &wid,
			Status:      domain.BookingCompleted,
			CompletedAt: &now,
		}, nil)
	d.bookings.On("Update", mock.Anything, mock.Anything).Return(nil)
	d.workers.On("GetByUserID", mock.Anything, int64(20)).
		Return(&domain.Worker{ID: 5, UserID: 20}, nil)
	d.workers.On("AddRating", mock.Anything, mock.MatchedBy(func(r *domain.WorkerRating) bool {
		return r.WorkerID == 5 && r.UserID == 10 && r.Score == 4
	})).Return(nil)

	b, err := service.Rate(context.Background(), 1, 10, 4, "solid work")

	assert.NoError(t, err)
	assert.Equal(t, 4, b.Rating.Score)
	assert.NotNil(t, b.Rating.RatedAt)
	d.workers.AssertExpectations(t)
}

func TestService_Rate_ScoreRange(t *testing.T) {
	service, _ := newTestService()

	for _, score := range []int{0, -1, 6, 100} {
		_, err := service.Rate(context.Background(), 1, 10, score, "")
		assert.ErrorIs(t, err, ErrValidation, "score %d", score)
	}
}

func TestService_Rate_NotCompleted(t *testing.T) {
	service, d := newTestService()

	d.bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, UserID: 10, Status: domain.BookingInProgress}, nil)

	_, err := service.Rate(context.Background(), 1, 10, 5, "")
	assert.ErrorIs(t, err, ErrNotCompleted)
}

func TestService_Rate_OnlyOnce(t *testing.T) {
	service, d := newTestService()

	ratedAt := time.Now()
	d.bookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{
			ID:     1,
			UserID: 10,
			Status: domain.BookingCompleted,
			Rating: domain.BookingRating{Score: 5, RatedAt: &ratedAt},
		}, nil)

	_, err := service.Rate(context.Background(), 1, 10, 3, "")
	assert.ErrorIs(t, err, ErrAlreadyRated)
	d.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_ListForCustomer_ResolvesSummaries(t *testing.T) {
	service, d := newTestService()

	wid := int64(20)
	d.bookings.On("GetByCustomer", mock.Anything, int64(10)).
		Return([]domain.Booking{
			{ID: 1, UserID: 10, ServiceID: 4, WorkerID: &wid, Status: domain.BookingAssigned},
			{ID: 2, UserID: 10, ServiceID: 4, Status: domain.BookingPending},
		}, nil)
	d.services.On("GetByID", mock.Anything, int64(4)).
		Return(&domain.Service{ID: 4, Name: "Fan Installation", Category: domain.CategoryElectrical, BasePrice: 350}, nil)
	d.users.On("GetByID", mock.Anything, int64(20)).
		Return(&domain.User{ID: 20, FirstName: "Ravi", MobileNumber: "9000000201"}, nil)

	out, err := service.ListForCustomer(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "Fan Installation", out[0].Service.Name)
	assert.Equal(t, "Ravi", out[0].Worker.FirstName)
	assert.Nil(t, out[1].Worker)
}
