package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/efdeugenio/thynra.com/internal/entity"
)

type SubmitBookingInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Company       string `json:"company"`
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
}

type SubmitBookingUseCase struct {
	Repo         entity.BookingRepositoryInterface
	EmailService EmailService
}

func NewSubmitBookingUseCase(repo entity.BookingRepositoryInterface, emailService EmailService) *SubmitBookingUseCase {
	return &SubmitBookingUseCase{
		Repo:         repo,
		EmailService: emailService,
	}
}

func (uc *SubmitBookingUseCase) Execute(ctx context.Context, input SubmitBookingInput) (*entity.BookingRequest, error) {
	if validationErrors := ValidateBookingInput(input); len(validationErrors) > 0 {
		return nil, &InvalidInputError{Errors: validationErrors}
	}

	request := &entity.BookingRequest{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Email:         input.Email,
		Company:       input.Company,
		PreferredTime: input.PreferredTime,
		Message:       input.Message,
		CreatedAt:     time.Now(),
	}

	if err := uc.Repo.Create(ctx, request); err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to store booking request"}
	}

	if uc.EmailService != nil {
		if err := uc.EmailService.SendSubmissionAlert("booking", request.Name, request.Email, request.PreferredTime); err != nil {
			log.Printf("⚠️ booking alert email failed: %v", err)
		}
	}

	return request, nil
}
