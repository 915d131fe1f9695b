package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/efdeugenio/thynra.com/internal/entity"
	"github.com/efdeugenio/thynra.com/internal/infra/integration/paypal"
	"github.com/efdeugenio/thynra.com/internal/infra/queue"
)

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) GetOrder(ctx context.Context, orderID string) (*paypal.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paypal.Order), args.Error(1)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishIntake(ctx context.Context, payload queue.IntakePayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockAutomationNotifier struct {
	mock.Mock
}

func (m *MockAutomationNotifier) SendIntake(ctx context.Context, form *entity.IntakeForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func validIntakeInput() SubmitIntakeInput {
	return SubmitIntakeInput{
		OrderID:            "5O190127TN364715T",
		CustomerName:       "Jo Lee",
		CustomerEmail:      "jo@x.com",
		ProjectType:        "automation",
		ProjectDescription: "Automate the monthly reporting pipeline.",
	}
}

func TestSubmitIntakeForwardsVerifiedOrder(t *testing.T) {
	mockGateway := new(MockPaymentGateway)
	mockQueue := new(MockQueueProducer)
	mockAutomation := new(MockAutomationNotifier)

	mockGateway.On("GetOrder", mock.Anything, "5O190127TN364715T").Return(&paypal.Order{
		ID:     "5O190127TN364715T",
		Status: "COMPLETED",
	}, nil)
	mockQueue.On("PublishIntake", mock.Anything, mock.Anything).Return(nil)
	mockAutomation.On("SendIntake", mock.Anything, mock.Anything).Return(nil)

	uc := NewSubmitIntakeUseCase(mockGateway, mockQueue, mockAutomation)

	output, err := uc.Execute(context.Background(), validIntakeInput())

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, "5O190127TN364715T", output.OrderID)
	mockQueue.AssertCalled(t, "PublishIntake", mock.Anything, mock.Anything)
	mockAutomation.AssertCalled(t, "SendIntake", mock.Anything, mock.Anything)
}

func TestSubmitIntakeRejectsUnpaidOrder(t *testing.T) {
	mockGateway := new(MockPaymentGateway)
	mockQueue := new(MockQueueProducer)

	mockGateway.On("GetOrder", mock.Anything, mock.Anything).Return(&paypal.Order{
		ID:     "5O190127TN364715T",
		Status: "CREATED",
	}, nil)

	uc := NewSubmitIntakeUseCase(mockGateway, mockQueue, nil)

	_, err := uc.Execute(context.Background(), validIntakeInput())

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PAYMENT_NOT_COMPLETED", domainErr.Code)
	mockQueue.AssertNotCalled(t, "PublishIntake", mock.Anything, mock.Anything)
}

func TestSubmitIntakeAcceptsApprovedOrder(t *testing.T) {
	mockGateway := new(MockPaymentGateway)

	mockGateway.On("GetOrder", mock.Anything, mock.Anything).Return(&paypal.Order{
		ID:     "5O190127TN364715T",
		Status: "APPROVED",
	}, nil)

	uc := NewSubmitIntakeUseCase(mockGateway, nil, nil)

	output, err := uc.Execute(context.Background(), validIntakeInput())

	assert.NoError(t, err)
	assert.True(t, output.Success)
}

func TestSubmitIntakeUnknownOrder(t *testing.T) {
	mockGateway := new(MockPaymentGateway)
	mockGateway.On("GetOrder", mock.Anything, mock.Anything).Return(nil, &paypal.NotFoundError{OrderID: "nope"})

	uc := NewSubmitIntakeUseCase(mockGateway, nil, nil)

	_, err := uc.Execute(context.Background(), validIntakeInput())

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ORDER_NOT_FOUND", domainErr.Code)
}

func TestSubmitIntakeQueueFailureStillAcks(t *testing.T) {
	mockGateway := new(MockPaymentGateway)
	mockQueue := new(MockQueueProducer)

	mockGateway.On("GetOrder", mock.Anything, mock.Anything).Return(&paypal.Order{
		ID:     "5O190127TN364715T",
		Status: "COMPLETED",
	}, nil)
	mockQueue.On("PublishIntake", mock.Anything, mock.Anything).Return(assert.AnError)

	uc := NewSubmitIntakeUseCase(mockGateway, mockQueue, nil)

	// The customer already paid; a broker outage must not bounce the form.
	output, err := uc.Execute(context.Background(), validIntakeInput())

	assert.NoError(t, err)
	assert.True(t, output.Success)
}

func TestSubmitIntakeMissingProjectType(t *testing.T) {
	mockGateway := new(MockPaymentGateway)

	uc := NewSubmitIntakeUseCase(mockGateway, nil, nil)

	input := validIntakeInput()
	input.ProjectType = ""
	_, err := uc.Execute(context.Background(), input)

	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "projectType", invalid.Errors[0].Field)
	mockGateway.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
}
