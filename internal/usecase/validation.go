package usecase

import (
	"net/mail"
	"strings"

	"github.com/efdeugenio/thynra.com/internal/entity"
)

func ValidateContactInput(input SubmitContactInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(strings.TrimSpace(input.Name)) < 2 {
		errors = append(errors, ValidationError{"name", "must have at least 2 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Message) == "" {
		errors = append(errors, ValidationError{"message", "is required"})
	} else if len(strings.TrimSpace(input.Message)) < 10 {
		errors = append(errors, ValidationError{"message", "must have at least 10 characters"})
	}

	return errors
}

func ValidateBookingInput(input SubmitBookingInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(strings.TrimSpace(input.Name)) < 2 {
		errors = append(errors, ValidationError{"name", "must have at least 2 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	return errors
}

func ValidateIntakeInput(input SubmitIntakeInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.OrderID) == "" {
		errors = append(errors, ValidationError{"orderId", "is required"})
	}

	if strings.TrimSpace(input.CustomerName) == "" {
		errors = append(errors, ValidationError{"customerName", "is required"})
	} else if len(strings.TrimSpace(input.CustomerName)) < 2 {
		errors = append(errors, ValidationError{"customerName", "must have at least 2 characters"})
	}

	if strings.TrimSpace(input.CustomerEmail) == "" {
		errors = append(errors, ValidationError{"customerEmail", "is required"})
	} else if !isValidEmail(input.CustomerEmail) {
		errors = append(errors, ValidationError{"customerEmail", "is invalid"})
	}

	if strings.TrimSpace(input.ProjectType) == "" {
		errors = append(errors, ValidationError{"projectType", "is required"})
	} else if !entity.ProjectTypes[strings.ToLower(strings.TrimSpace(input.ProjectType))] {
		errors = append(errors, ValidationError{"projectType", "is not a known project type"})
	}

	return errors
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(email))
	return err == nil
}
