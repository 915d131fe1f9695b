package paypal

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	sandboxBaseURL = "https://api-m.sandbox.paypal.com"
	liveBaseURL    = "https://api-m.paypal.com"

	maxAttempts    = 3
	initialBackoff = 200 * time.Millisecond

	// Refresh the cached token a minute before PayPal expires it.
	tokenExpiryMargin = 60 * time.Second
)

type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	brandName    string
	returnURL    string
	cancelURL    string
	http         *http.Client

	mu          sync.Mutex
	cachedToken string
	tokenExpiry time.Time
}

// NewClient selects the sandbox or live API from the environment flag.
// publicBaseURL is where PayPal redirects the buyer after the hosted flow.
func NewClient(clientID, clientSecret, environment, publicBaseURL string) *Client {
	baseURL := sandboxBaseURL
	if environment == "production" || environment == "live" {
		baseURL = liveBaseURL
	}

	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		brandName:    "Thynra",
		returnURL:    strings.TrimRight(publicBaseURL, "/") + "/success",
		cancelURL:    strings.TrimRight(publicBaseURL, "/") + "/cancel",
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

// AccessToken exchanges the configured credentials for a bearer token via
// the client-credentials grant. The token is cached until shortly before
// expiry; the mutex makes concurrent refreshes collapse into one request.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", ErrCredentialsMissing
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cachedToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.cachedToken, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	header := http.Header{
		"Authorization": {"Basic " + basicAuth(c.clientID, c.clientSecret)},
		"Content-Type":  {"application/x-www-form-urlencoded"},
	}

	status, body, err := c.send(ctx, "token", http.MethodPost, c.baseURL+"/v1/oauth2/token", header, []byte(form.Encode()))
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", &UpstreamError{Operation: "token", StatusCode: status, Body: string(body)}
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", &UpstreamError{Operation: "token", StatusCode: status, Body: "empty access_token"}
	}

	c.cachedToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - tokenExpiryMargin)
	return c.cachedToken, nil
}

// GenerateClientToken issues the token the browser SDK needs on page load.
func (c *Client) GenerateClientToken(ctx context.Context) (string, error) {
	accessToken, err := c.AccessToken(ctx)
	if err != nil {
		return "", err
	}

	status, body, err := c.send(ctx, "client-token", http.MethodPost, c.baseURL+"/v1/identity/generate-token", c.jsonHeaders(accessToken), nil)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", &UpstreamError{Operation: "client-token", StatusCode: status, Body: string(body)}
	}

	var response clientTokenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode client token: %w", err)
	}
	return response.ClientToken, nil
}

// CreateOrder validates the input locally, then asks PayPal for a new
// order carrying our return/cancel URLs and brand identity. The provider
// payload (id, status, links) comes back untouched.
func (c *Client) CreateOrder(ctx context.Context, amount, currency, intent string) (*Order, error) {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, &InvalidRequestError{Field: "amount", Message: "must be a valid number"}
	}
	if value <= 0 {
		return nil, &InvalidRequestError{Field: "amount", Message: "must be a positive number"}
	}
	if strings.TrimSpace(currency) == "" {
		return nil, &InvalidRequestError{Field: "currency", Message: "is required"}
	}
	intent = strings.ToUpper(strings.TrimSpace(intent))
	if intent != "CAPTURE" && intent != "AUTHORIZE" {
		return nil, &InvalidRequestError{Field: "intent", Message: "must be CAPTURE or AUTHORIZE"}
	}

	accessToken, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	payload := createOrderRequest{
		Intent: intent,
		PurchaseUnits: []purchaseUnitInput{
			{Amount: Amount{CurrencyCode: currency, Value: amount}},
		},
		ApplicationContext: applicationContext{
			BrandName:  c.brandName,
			ReturnURL:  c.returnURL,
			CancelURL:  c.cancelURL,
			UserAction: "PAY_NOW",
		},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	status, body, err := c.send(ctx, "create-order", http.MethodPost, c.baseURL+"/v2/checkout/orders", c.jsonHeaders(accessToken), jsonBody)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		log.Printf("❌ paypal create-order rejected (status %d): %s", status, string(body))
		return nil, &UpstreamError{Operation: "create-order", StatusCode: status, Body: string(body)}
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &order, nil
}

// CaptureOrder finalizes collection of funds for an approved order and
// returns the provider response verbatim.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, &InvalidRequestError{Field: "orderID", Message: "is required"}
	}

	accessToken, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	captureURL := fmt.Sprintf("%s/v2/checkout/orders/%s/capture", c.baseURL, url.PathEscape(orderID))
	status, body, err := c.send(ctx, "capture-order", http.MethodPost, captureURL, c.jsonHeaders(accessToken), []byte("{}"))
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, &NotFoundError{OrderID: orderID}
	}
	if status < 200 || status > 299 {
		log.Printf("❌ paypal capture rejected (status %d): %s", status, string(body))
		return nil, &UpstreamError{Operation: "capture-order", StatusCode: status, Body: string(body)}
	}

	return json.RawMessage(body), nil
}

// GetOrder fetches the current provider-side state of an order.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, &InvalidRequestError{Field: "orderID", Message: "is required"}
	}

	accessToken, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	orderURL := fmt.Sprintf("%s/v2/checkout/orders/%s", c.baseURL, url.PathEscape(orderID))
	status, body, err := c.send(ctx, "get-order", http.MethodGet, orderURL, c.jsonHeaders(accessToken), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, &NotFoundError{OrderID: orderID}
	}
	if status < 200 || status > 299 {
		return nil, &UpstreamError{Operation: "get-order", StatusCode: status, Body: string(body)}
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &order, nil
}

// ValidatePayment is the authoritative paid-or-not check. The token from
// the redirect query string is the order id in PayPal's convention; it is
// only used to look the order up, never as proof of payment. payerID is
// accepted for parity with the redirect but carries no authority.
func (c *Client) ValidatePayment(ctx context.Context, token, payerID string) (*PaymentValidation, error) {
	order, err := c.GetOrder(ctx, token)
	if err != nil {
		return nil, err
	}

	validation := &PaymentValidation{
		OrderID: order.ID,
		Status:  order.Status,
	}
	if len(order.PurchaseUnits) > 0 {
		validation.Amount = order.PurchaseUnits[0].Amount.Value
		validation.Currency = order.PurchaseUnits[0].Amount.CurrencyCode
	}

	switch order.Status {
	case "COMPLETED", "APPROVED":
		validation.Valid = true
	default:
		validation.Reason = "payment not completed"
	}

	return validation, nil
}

// send performs one provider round-trip with bounded retry. Transport
// errors and 5xx responses are retried with exponential backoff; 4xx are
// returned to the caller immediately.
func (c *Client) send(ctx context.Context, op, method, reqURL string, header http.Header, body []byte) (int, []byte, error) {
	var lastErr error
	backoff := initialBackoff

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return 0, nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader(body))
		if err != nil {
			return 0, nil, err
		}
		for key, values := range header {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = &UpstreamError{Operation: op, StatusCode: resp.StatusCode, Body: string(data)}
			continue
		}

		return resp.StatusCode, data, nil
	}

	var upstream *UpstreamError
	if errors.As(lastErr, &upstream) {
		return 0, nil, upstream
	}
	return 0, nil, &UpstreamError{Operation: op, Body: lastErr.Error()}
}

func (c *Client) jsonHeaders(accessToken string) http.Header {
	return http.Header{
		"Authorization": {"Bearer " + accessToken},
		"Content-Type":  {"application/json"},
	}
}

func basicAuth(user, pass string) string {
	return base64.StdEncoding.EncodeToString([]byte(user + ":" + pass))
}
