package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/efdeugenio/thynra.com/internal/entity"
	"github.com/efdeugenio/thynra.com/internal/infra/database"
	"github.com/efdeugenio/thynra.com/internal/usecase"
)

func newFormRouter() *chi.Mux {
	contactRepo := database.NewMemoryContactRepository()
	bookingRepo := database.NewMemoryBookingRepository()

	contactHandler := NewContactHandler(usecase.NewSubmitContactUseCase(contactRepo, nil), contactRepo)
	bookingHandler := NewBookingHandler(usecase.NewSubmitBookingUseCase(bookingRepo, nil), bookingRepo)

	r := chi.NewRouter()
	r.Post("/api/contact", contactHandler.Submit)
	r.Post("/api/booking", bookingHandler.Submit)
	r.Get("/api/contact-requests", contactHandler.List)
	r.Get("/api/booking-requests", bookingHandler.List)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestContactSubmitAndList(t *testing.T) {
	router := newFormRouter()

	w := postJSON(t, router, "/api/contact", map[string]string{
		"name":    "Jo Lee",
		"email":   "jo@x.com",
		"company": "Acme",
		"message": "We need an AI workflow for invoices.",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	json.NewDecoder(w.Body).Decode(&response)
	assert.True(t, response.Success)
	assert.NotEmpty(t, response.ID)

	// The stored record is retrievable through the list endpoint.
	req := httptest.NewRequest("GET", "/api/contact-requests", nil)
	lw := httptest.NewRecorder()
	router.ServeHTTP(lw, req)

	assert.Equal(t, http.StatusOK, lw.Code)

	var list []entity.ContactRequest
	json.NewDecoder(lw.Body).Decode(&list)
	assert.Len(t, list, 1)
	assert.Equal(t, response.ID, list[0].ID)
	assert.Equal(t, "Jo Lee", list[0].Name)
}

func TestContactSubmitValidationError(t *testing.T) {
	router := newFormRouter()

	w := postJSON(t, router, "/api/contact", map[string]string{
		"name":    "J",
		"email":   "not-an-email",
		"message": "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	json.NewDecoder(w.Body).Decode(&response)
	assert.Equal(t, "Invalid request data", response.Message)
	assert.Len(t, response.Errors, 3)
	assert.Equal(t, "name", response.Errors[0].Field)

	// Nothing was stored.
	req := httptest.NewRequest("GET", "/api/contact-requests", nil)
	lw := httptest.NewRecorder()
	router.ServeHTTP(lw, req)

	var list []entity.ContactRequest
	json.NewDecoder(lw.Body).Decode(&list)
	assert.Empty(t, list)
}

func TestContactSubmitInvalidJSON(t *testing.T) {
	router := newFormRouter()

	req := httptest.NewRequest("POST", "/api/contact", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingEndToEnd(t *testing.T) {
	router := newFormRouter()

	w := postJSON(t, router, "/api/booking", map[string]string{
		"name":  "Jo Lee",
		"email": "jo@x.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	json.NewDecoder(w.Body).Decode(&response)
	assert.True(t, response.Success)
	assert.NotEmpty(t, response.ID)

	req := httptest.NewRequest("GET", "/api/booking-requests", nil)
	lw := httptest.NewRecorder()
	router.ServeHTTP(lw, req)

	var list []entity.BookingRequest
	json.NewDecoder(lw.Body).Decode(&list)
	assert.Len(t, list, 1)
	assert.Equal(t, response.ID, list[0].ID)
}

func TestBookingMissingEmail(t *testing.T) {
	router := newFormRouter()

	w := postJSON(t, router, "/api/booking", map[string]string{"name": "Jo Lee"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	json.NewDecoder(w.Body).Decode(&response)
	assert.NotEmpty(t, response.Errors)
	assert.Equal(t, "email", response.Errors[0].Field)
}
