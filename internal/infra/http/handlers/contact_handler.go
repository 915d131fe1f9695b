package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/efdeugenio/thynra.com/internal/entity"
	"github.com/efdeugenio/thynra.com/internal/infra/http/middleware"
	"github.com/efdeugenio/thynra.com/internal/usecase"
)

type ContactHandler struct {
	SubmitUC    *usecase.SubmitContactUseCase
	Repo        entity.ContactRepositoryInterface
	rateLimiter *RateLimiter
}

func NewContactHandler(uc *usecase.SubmitContactUseCase, repo entity.ContactRepositoryInterface) *ContactHandler {
	return &ContactHandler{
		SubmitUC:    uc,
		Repo:        repo,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeMessage(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.SubmitContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	request, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		var invalid *usecase.InvalidInputError
		if errors.As(err, &invalid) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"message": "Invalid request data",
				"errors":  invalid.Errors,
			})
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to submit contact request")
		return
	}

	middleware.RecordFormSubmission("contact")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      request.ID,
	})
}

// List handles GET /api/contact-requests. Unauthenticated on purpose: the
// reference deployment exposes it for the operator only, behind the proxy.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Repo.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch contact requests")
		return
	}

	if requests == nil {
		requests = []*entity.ContactRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}
