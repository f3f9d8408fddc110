package platformapi

import (
	"context"

	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
)

// Transcript is the backend's reproduction of one upstream call: a
// human-readable description plus a raw replay (cURL) for an API client.
type Transcript struct {
	Human  string `json:"human"`
	Replay string `json:"curl"`
}

type Formatted map[string]Transcript

// Result carries the fields every platform response has in common. The auth
// header is the rotated credential that must be relayed into the next call.
type Result struct {
	AuthHeader string    `json:"authHeader"`
	Formatted  Formatted `json:"formatted"`
}

type OrderResult struct {
	Result
	OrderID       string `json:"orderId"`
	AuthID        string `json:"authId"`
	AuthStatus    string `json:"authStatus"`
	CaptureID     string `json:"captureId"`
	CaptureStatus string `json:"captureStatus"`
	Error         string `json:"error"`
}

type CaptureResult struct {
	Result
	CaptureID     string `json:"captureId"`
	CaptureStatus string `json:"captureStatus"`
	Error         string `json:"error"`
}

type StatusResult struct {
	Result
	Status string `json:"status"`
}

type SetupTokenResult struct {
	Result
	SetupTokenID string `json:"setupTokenId"`
}

type PaymentTokenResult struct {
	Result
	PaymentTokenID string `json:"paymentTokenId"`
	CustomerID     string `json:"customerId"`
}

type IDTokenResult struct {
	Result
	IDToken string `json:"idToken"`
}

type ClientTokenResult struct {
	Result
	ClientToken string `json:"clientToken"`
}

type ReferralResult struct {
	Result
	ActionURL   string `json:"actionUrl"`
	SellerNonce string `json:"sellerNonce"`
}

// LookupResult is used by the status/admin endpoints whose business payload
// only matters as a transcript.
type LookupResult struct {
	Result
}

// ConfirmResult reports a wallet confirmation outcome, e.g. APPROVED or
// PAYER_ACTION_REQUIRED.
type ConfirmResult struct {
	Result
	Status string `json:"status"`
}

//go:generate mockgen -source=api.go -package platformapi -destination client_mock.go Client
type Client interface {
	CreateOrder(c context.Context, opts checkoutapi.CheckoutOptions) (OrderResult, error)
	CaptureOrder(c context.Context, orderID string, opts checkoutapi.CheckoutOptions) (CaptureResult, error)
	GetOrderStatus(c context.Context, orderID string, opts checkoutapi.CheckoutOptions) (StatusResult, error)
	ConfirmOrder(c context.Context, orderID string, paymentMethodData string, opts checkoutapi.CheckoutOptions) (ConfirmResult, error)
	InitiatePayerAction(c context.Context, orderID string, opts checkoutapi.CheckoutOptions) (ConfirmResult, error)

	CreateSetupToken(c context.Context, opts checkoutapi.CheckoutOptions) (SetupTokenResult, error)
	CreatePaymentToken(c context.Context, setupTokenID string, opts checkoutapi.CheckoutOptions) (PaymentTokenResult, error)

	GetIDToken(c context.Context, customerID string, includeAuthAssertion bool, opts checkoutapi.CheckoutOptions) (IDTokenResult, error)
	GetClientToken(c context.Context, opts checkoutapi.CheckoutOptions) (ClientTokenResult, error)

	CreateReferral(c context.Context, opts checkoutapi.CheckoutOptions) (ReferralResult, error)
	GetSellerStatus(c context.Context, merchantID string, opts checkoutapi.CheckoutOptions) (LookupResult, error)

	GetAuthorization(c context.Context, authID string, opts checkoutapi.CheckoutOptions) (LookupResult, error)
	GetCapture(c context.Context, captureID string, opts checkoutapi.CheckoutOptions) (LookupResult, error)
	RefundCapture(c context.Context, captureID string, opts checkoutapi.CheckoutOptions) (LookupResult, error)

	GetPaymentToken(c context.Context, paymentTokenID string, opts checkoutapi.CheckoutOptions) (LookupResult, error)
	DeletePaymentToken(c context.Context, paymentTokenID string, opts checkoutapi.CheckoutOptions) (LookupResult, error)
	GetCustomerTokens(c context.Context, customerID string, opts checkoutapi.CheckoutOptions) (LookupResult, error)
}
