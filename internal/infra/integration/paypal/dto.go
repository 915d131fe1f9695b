package paypal

// Order is the provider's order payload as returned by the checkout API.
// Only the fields the frontend and the validation flow consume are mapped;
// the provider owns this entity, we never store it.
type Order struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	Links         []Link         `json:"links,omitempty"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units,omitempty"`
}

type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

type PurchaseUnit struct {
	Amount Amount `json:"amount"`
}

type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// PaymentValidation is the authoritative answer to "did this order get
// paid". Valid is derived from the provider's own status lookup, never
// from the redirect query string.
type PaymentValidation struct {
	Valid    bool   `json:"valid"`
	OrderID  string `json:"orderId"`
	Status   string `json:"status"`
	Amount   string `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// --- PAYLOADS: what the client sends to PayPal (internal) ---

type createOrderRequest struct {
	Intent             string              `json:"intent"`
	PurchaseUnits      []purchaseUnitInput `json:"purchase_units"`
	ApplicationContext applicationContext  `json:"application_context"`
}

type purchaseUnitInput struct {
	Amount Amount `json:"amount"`
}

type applicationContext struct {
	BrandName  string `json:"brand_name"`
	ReturnURL  string `json:"return_url"`
	CancelURL  string `json:"cancel_url"`
	UserAction string `json:"user_action"`
}

// --- RESPONSES: what PayPal gives back ---

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type clientTokenResponse struct {
	ClientToken string `json:"client_token"`
}
