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

type BookingHandler struct {
	SubmitUC    *usecase.SubmitBookingUseCase
	Repo        entity.BookingRepositoryInterface
	rateLimiter *RateLimiter
}

func NewBookingHandler(uc *usecase.SubmitBookingUseCase, repo entity.BookingRepositoryInterface) *BookingHandler {
	return &BookingHandler{
		SubmitUC:    uc,
		Repo:        repo,
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
}

// Submit handles POST /api/booking.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeMessage(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.SubmitBookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid booking data")
		return
	}

	request, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		var invalid *usecase.InvalidInputError
		if errors.As(err, &invalid) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"message": "Invalid booking data",
				"errors":  invalid.Errors,
			})
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to submit booking request")
		return
	}

	middleware.RecordFormSubmission("booking")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      request.ID,
	})
}

// List handles GET /api/booking-requests.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Repo.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch booking requests")
		return
	}

	if requests == nil {
		requests = []*entity.BookingRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}
