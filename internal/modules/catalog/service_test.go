package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"powerlink/internal/domain"
	"powerlink/internal/repository"
)

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) List(ctx context.Context, f repository.ServiceFilter) ([]domain.Service, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockServiceRepo) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockServiceRepo) Update(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockServiceRepo) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_List_RejectsUnknownCategory(t *testing.T) {
	repo := new(mockServiceRepo)
	service := NewService(repo)

	_, err := service.List(context.Background(), "Gardening", false)
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestService_List_PassesFilter(t *testing.T) {
	repo := new(mockServiceRepo)
	service := NewService(repo)

	repo.On("List", mock.Anything, repository.ServiceFilter{Category: "Plumbing", Popular: true}).
		Return([]domain.Service{{ID: 1, Name: "Tap Repair"}}, nil)

	out, err := service.List(context.Background(), "Plumbing", true)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	repo.AssertExpectations(t)
}

func TestService_Create_DefaultsActive(t *testing.T) {
	repo := new(mockServiceRepo)
	service := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Service) bool {
		return s.IsActive && s.Category == domain.CategoryElectrical
	})).Return(nil)

	svc, err := service.Create(context.Background(), CreateServiceRequest{
		Name:      "Fan Installation",
		Category:  "Electrical",
		BasePrice: 350,
	})

	assert.NoError(t, err)
	assert.True(t, svc.IsActive)
	repo.AssertExpectations(t)
}

func TestService_Create_BadCategory(t *testing.T) {
	repo := new(mockServiceRepo)
	service := NewService(repo)

	_, err := service.Create(context.Background(), CreateServiceRequest{
		Name:     "Mystery",
		Category: "Sorcery",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Update_Partial(t *testing.T) {
	repo := new(mockServiceRepo)
	service := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(4)).
		Return(&domain.Service{ID: 4, Name: "Fan Installation", BasePrice: 350, IsActive: true}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	newPrice := 400.0
	svc, err := service.Update(context.Background(), 4, UpdateServiceRequest{BasePrice: &newPrice})

	assert.NoError(t, err)
	assert.Equal(t, 400.0, svc.BasePrice)
	assert.Equal(t, "Fan Installation", svc.Name) // untouched fields survive
}

func TestService_Update_NegativePrice(t *testing.T) {
	repo := new(mockServiceRepo)
	service := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(4)).
		Return(&domain.Service{ID: 4, BasePrice: 350}, nil)

	bad := -1.0
	_, err := service.Update(context.Background(), 4, UpdateServiceRequest{BasePrice: &bad})
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Deactivate_NotFound(t *testing.T) {
	repo := new(mockServiceRepo)
	service := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	err := service.Deactivate(context.Background(), 77)
	assert.ErrorIs(t, err, ErrNotFound)
}
