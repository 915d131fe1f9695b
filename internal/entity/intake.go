package entity

import "time"

// IntakeForm carries the project requirements a customer fills in after
// checkout. OrderID references a PayPal order that must have been verified
// as COMPLETED or APPROVED before the form is accepted.
type IntakeForm struct {
	OrderID                string    `json:"orderId"`
	CustomerName           string    `json:"customerName"`
	CustomerEmail          string    `json:"customerEmail"`
	ProjectType            string    `json:"projectType"`
	ProjectDescription     string    `json:"projectDescription"`
	Timeline               string    `json:"timeline,omitempty"`
	Budget                 string    `json:"budget,omitempty"`
	AdditionalRequirements string    `json:"additionalRequirements,omitempty"`
	SubmittedAt            time.Time `json:"submitted_at"`
}

var ProjectTypes = map[string]bool{
	"automation":  true,
	"chatbot":     true,
	"analytics":   true,
	"integration": true,
	"consulting":  true,
	"other":       true,
}
