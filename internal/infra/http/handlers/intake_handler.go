package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/efdeugenio/thynra.com/internal/infra/http/middleware"
	"github.com/efdeugenio/thynra.com/internal/usecase"
)

type IntakeHandler struct {
	SubmitUC *usecase.SubmitIntakeUseCase
}

func NewIntakeHandler(uc *usecase.SubmitIntakeUseCase) *IntakeHandler {
	return &IntakeHandler{SubmitUC: uc}
}

// Submit handles POST /api/intake-form. The use case re-verifies the
// order with PayPal before accepting anything.
func (h *IntakeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitIntakeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	output, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		var invalid *usecase.InvalidInputError
		if errors.As(err, &invalid) {
			writeError(w, http.StatusBadRequest, invalid.Error())
			return
		}

		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			writeError(w, http.StatusBadRequest, domainErr.Message)
			return
		}

		middleware.RecordIntegrationError("paypal")
		writeError(w, http.StatusInternalServerError, "Failed to submit project details")
		return
	}

	middleware.RecordFormSubmission("intake")
	writeJSON(w, http.StatusOK, output)
}
