package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/efdeugenio/thynra.com/internal/entity"
	"github.com/efdeugenio/thynra.com/internal/infra/integration/paypal"
	"github.com/efdeugenio/thynra.com/internal/infra/queue"
)

type SubmitIntakeInput struct {
	OrderID                string `json:"orderId"`
	CustomerName           string `json:"customerName"`
	CustomerEmail          string `json:"customerEmail"`
	ProjectType            string `json:"projectType"`
	ProjectDescription     string `json:"projectDescription"`
	Timeline               string `json:"timeline"`
	Budget                 string `json:"budget"`
	AdditionalRequirements string `json:"additionalRequirements"`
}

type SubmitIntakeOutput struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

// SubmitIntakeUseCase accepts project requirements only for orders the
// gateway itself confirms as paid. The browser already ran the validation
// step before showing the form, but that check is repeated here: redirect
// parameters are attacker-observable and a "paid" flag from the client
// proves nothing.
type SubmitIntakeUseCase struct {
	Gateway    PaymentGateway
	Queue      QueueProducerInterface
	Automation AutomationNotifier
}

func NewSubmitIntakeUseCase(gateway PaymentGateway, queueProducer QueueProducerInterface, automation AutomationNotifier) *SubmitIntakeUseCase {
	return &SubmitIntakeUseCase{
		Gateway:    gateway,
		Queue:      queueProducer,
		Automation: automation,
	}
}

func (uc *SubmitIntakeUseCase) Execute(ctx context.Context, input SubmitIntakeInput) (*SubmitIntakeOutput, error) {
	if validationErrors := ValidateIntakeInput(input); len(validationErrors) > 0 {
		return nil, &InvalidInputError{Errors: validationErrors}
	}

	order, err := uc.Gateway.GetOrder(ctx, input.OrderID)
	if err != nil {
		var notFound *paypal.NotFoundError
		if errors.As(err, &notFound) {
			return nil, &DomainError{Code: "ORDER_NOT_FOUND", Message: "order not found"}
		}
		return nil, err
	}

	if order.Status != "COMPLETED" && order.Status != "APPROVED" {
		return nil, &DomainError{
			Code:    "PAYMENT_NOT_COMPLETED",
			Message: "payment has not been completed for this order",
		}
	}

	form := &entity.IntakeForm{
		OrderID:                order.ID,
		CustomerName:           input.CustomerName,
		CustomerEmail:          input.CustomerEmail,
		ProjectType:            strings.ToLower(strings.TrimSpace(input.ProjectType)),
		ProjectDescription:     input.ProjectDescription,
		Timeline:               input.Timeline,
		Budget:                 input.Budget,
		AdditionalRequirements: input.AdditionalRequirements,
		SubmittedAt:            time.Now(),
	}

	uc.forward(ctx, form)

	return &SubmitIntakeOutput{Success: true, OrderID: order.ID}, nil
}

// forward hands the payload to whatever collaborators are wired: the
// durable queue, the automation webhook, or both. A delivery failure is
// logged, the customer already paid and must not see an error for it.
func (uc *SubmitIntakeUseCase) forward(ctx context.Context, form *entity.IntakeForm) {
	delivered := false

	if uc.Queue != nil {
		payload := queue.IntakePayload{
			OrderID:                form.OrderID,
			CustomerName:           form.CustomerName,
			CustomerEmail:          form.CustomerEmail,
			ProjectType:            form.ProjectType,
			ProjectDescription:     form.ProjectDescription,
			Timeline:               form.Timeline,
			Budget:                 form.Budget,
			AdditionalRequirements: form.AdditionalRequirements,
			SubmittedAt:            form.SubmittedAt,
		}
		if err := uc.Queue.PublishIntake(ctx, payload); err != nil {
			log.Printf("⚠️ intake queue publish failed for order %s: %v", form.OrderID, err)
		} else {
			delivered = true
		}
	}

	if uc.Automation != nil {
		if err := uc.Automation.SendIntake(ctx, form); err != nil {
			log.Printf("⚠️ intake webhook forward failed for order %s: %v", form.OrderID, err)
		} else {
			delivered = true
		}
	}

	if !delivered {
		log.Printf("📋 intake form received for order %s (%s, %s)", form.OrderID, form.CustomerName, form.ProjectType)
	}
}
