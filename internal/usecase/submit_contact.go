package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/efdeugenio/thynra.com/internal/entity"
)

type SubmitContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type SubmitContactUseCase struct {
	Repo         entity.ContactRepositoryInterface
	EmailService EmailService
}

func NewSubmitContactUseCase(repo entity.ContactRepositoryInterface, emailService EmailService) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		Repo:         repo,
		EmailService: emailService,
	}
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) (*entity.ContactRequest, error) {
	if validationErrors := ValidateContactInput(input); len(validationErrors) > 0 {
		return nil, &InvalidInputError{Errors: validationErrors}
	}

	request := &entity.ContactRequest{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Company:   input.Company,
		Phone:     input.Phone,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}

	if err := uc.Repo.Create(ctx, request); err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to store contact request"}
	}

	// Operator alert is best effort, a mail outage must not fail the submission.
	if uc.EmailService != nil {
		if err := uc.EmailService.SendSubmissionAlert("contact", request.Name, request.Email, request.Message); err != nil {
			log.Printf("⚠️ contact alert email failed: %v", err)
		}
	}

	return request, nil
}
