package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/efdeugenio/thynra.com/internal/infra/http/middleware"
	"github.com/efdeugenio/thynra.com/internal/infra/integration/paypal"
)

// PaymentGateway is what this handler needs from the PayPal adapter.
type PaymentGateway interface {
	GenerateClientToken(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, amount, currency, intent string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error)
	ValidatePayment(ctx context.Context, token, payerID string) (*paypal.PaymentValidation, error)
}

type PayPalHandler struct {
	Gateway PaymentGateway
}

func NewPayPalHandler(gateway PaymentGateway) *PayPalHandler {
	return &PayPalHandler{Gateway: gateway}
}

// Setup handles GET /paypal/setup, handing the browser SDK its client token.
func (h *PayPalHandler) Setup(w http.ResponseWriter, r *http.Request) {
	clientToken, err := h.Gateway.GenerateClientToken(r.Context())
	if err != nil {
		h.writeGatewayError(w, err, "Failed to set up PayPal")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientToken": clientToken})
}

type createOrderInput struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Intent   string `json:"intent"`
}

// CreateOrder handles POST /paypal/order.
func (h *PayPalHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input createOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	order, err := h.Gateway.CreateOrder(r.Context(), input.Amount, input.Currency, input.Intent)
	if err != nil {
		h.writeGatewayError(w, err, "Failed to create PayPal order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// CaptureOrder handles POST /paypal/order/{orderID}/capture. The provider
// response goes back verbatim so the SDK can read capture details.
func (h *PayPalHandler) CaptureOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	capture, err := h.Gateway.CaptureOrder(r.Context(), orderID)
	if err != nil {
		middleware.RecordPaymentCapture("failed")
		h.writeGatewayError(w, err, "Failed to capture PayPal order")
		return
	}

	middleware.RecordPaymentCapture("completed")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(capture)
}

// ValidatePayment handles GET /api/validate-payment?token&PayerID. The
// query parameters only identify the order, the verdict comes from the
// provider's own status lookup.
func (h *PayPalHandler) ValidatePayment(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	payerID := r.URL.Query().Get("PayerID")

	if token == "" {
		writeError(w, http.StatusBadRequest, "Missing payment token")
		return
	}

	validation, err := h.Gateway.ValidatePayment(r.Context(), token, payerID)
	if err != nil {
		h.writeGatewayError(w, err, "Failed to validate payment")
		return
	}

	if !validation.Valid {
		writeJSON(w, http.StatusBadRequest, validation)
		return
	}

	writeJSON(w, http.StatusOK, validation)
}

// writeGatewayError maps adapter errors onto the HTTP surface: input
// problems and unknown orders are the client's fault, missing credentials
// are the operator's, everything upstream stays generic with the detail
// logged.
func (h *PayPalHandler) writeGatewayError(w http.ResponseWriter, err error, fallback string) {
	var invalid *paypal.InvalidRequestError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusBadRequest, invalid.Error())
		return
	}

	var notFound *paypal.NotFoundError
	if errors.As(err, &notFound) {
		writeError(w, http.StatusBadRequest, "Order not found")
		return
	}

	if errors.Is(err, paypal.ErrCredentialsMissing) {
		writeError(w, http.StatusInternalServerError, "PayPal credentials not configured")
		return
	}

	middleware.RecordIntegrationError("paypal")
	log.Printf("❌ paypal error: %v", err)
	writeError(w, http.StatusInternalServerError, fallback)
}
