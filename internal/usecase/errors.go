package usecase

import "fmt"

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// InvalidInputError aggregates every violated field rule, in declaration
// order, so handlers can report the first one and echo the full list.
type InvalidInputError struct {
	Errors []ValidationError
}

func (e *InvalidInputError) Error() string {
	if len(e.Errors) == 0 {
		return "invalid input"
	}
	return e.Errors[0].Error()
}

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}
