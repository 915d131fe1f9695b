package usecase

import (
	"context"

	"github.com/efdeugenio/thynra.com/internal/entity"
	"github.com/efdeugenio/thynra.com/internal/infra/integration/paypal"
	"github.com/efdeugenio/thynra.com/internal/infra/queue"
)

// PaymentGateway is the slice of the provider adapter the intake flow
// needs: re-query the order and nothing else.
type PaymentGateway interface {
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
}

type QueueProducerInterface interface {
	PublishIntake(ctx context.Context, payload queue.IntakePayload) error
}

// AutomationNotifier posts the intake payload to the external automation
// collaborator. Its contract is "accepts JSON, returns success/failure".
type AutomationNotifier interface {
	SendIntake(ctx context.Context, form *entity.IntakeForm) error
}

type EmailService interface {
	SendSubmissionAlert(kind, name, email, summary string) error
}
