package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/efdeugenio/thynra.com/internal/entity"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, c *entity.ContactRequest) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) List(ctx context.Context) ([]*entity.ContactRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ContactRequest), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *entity.BookingRequest) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) List(ctx context.Context) ([]*entity.BookingRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.BookingRequest), args.Error(1)
}

func TestSubmitContactSuccess(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewSubmitContactUseCase(mockRepo, nil)

	request, err := uc.Execute(context.Background(), SubmitContactInput{
		Name:    "Jo Lee",
		Email:   "jo@x.com",
		Company: "Acme",
		Message: "We want a chatbot for customer support.",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, request.ID)
	assert.False(t, request.CreatedAt.IsZero())
	mockRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitContactUniqueIDs(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewSubmitContactUseCase(mockRepo, nil)
	input := SubmitContactInput{
		Name:    "Jo Lee",
		Email:   "jo@x.com",
		Message: "We want a chatbot for customer support.",
	}

	first, err := uc.Execute(context.Background(), input)
	assert.NoError(t, err)
	second, err := uc.Execute(context.Background(), input)
	assert.NoError(t, err)

	// Duplicate submissions are allowed, but each gets its own id.
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSubmitContactValidationFailureSkipsStore(t *testing.T) {
	mockRepo := new(MockContactRepository)

	uc := NewSubmitContactUseCase(mockRepo, nil)

	_, err := uc.Execute(context.Background(), SubmitContactInput{
		Name:    "J",
		Email:   "jo@x.com",
		Message: "short",
	})

	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "name", invalid.Errors[0].Field)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitContactRepositoryFailure(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk on fire"))

	uc := NewSubmitContactUseCase(mockRepo, nil)

	_, err := uc.Execute(context.Background(), SubmitContactInput{
		Name:    "Jo Lee",
		Email:   "jo@x.com",
		Message: "We want a chatbot for customer support.",
	})

	var technical *TechnicalError
	assert.ErrorAs(t, err, &technical)
	assert.Equal(t, "STORAGE_ERROR", technical.Code)
}

func TestSubmitBookingSuccess(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewSubmitBookingUseCase(mockRepo, nil)

	request, err := uc.Execute(context.Background(), SubmitBookingInput{
		Name:  "Jo Lee",
		Email: "jo@x.com",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, request.ID)
}

func TestSubmitBookingInvalidEmail(t *testing.T) {
	mockRepo := new(MockBookingRepository)

	uc := NewSubmitBookingUseCase(mockRepo, nil)

	_, err := uc.Execute(context.Background(), SubmitBookingInput{
		Name:  "Jo Lee",
		Email: "nope",
	})

	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "email", invalid.Errors[0].Field)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
