package checkoutapi

import (
	"fmt"
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/partnercheckout/lib/myerrors"
)

// CheckoutOptions is the flat configuration assembled from the options form,
// the partner/merchant identity fields and the current auth header. It is
// rebuilt fresh on every action and never cached.
type CheckoutOptions struct {
	Intent               string `form:"intent" json:"intent,omitempty"`
	Currency             string `form:"currency-code" json:"currency-code,omitempty"`
	BuyerCountry         string `form:"buyer-country-code" json:"buyer-country-code,omitempty"`
	UserAction           string `form:"user-action" json:"user-action,omitempty"`
	VaultFlow            string `form:"vault-flow" json:"vault-flow,omitempty"`
	VaultLevel           string `form:"vault-level" json:"vault-level,omitempty"`
	VaultWithoutPurchase bool   `form:"vault-without-purchase" json:"vault-without-purchase,omitempty"`
	VaultID              string `form:"vault-id" json:"vault-id,omitempty"`
	CustomerID           string `form:"customer-id" json:"customer-id,omitempty"`
	PaymentSource        string `form:"payment-source" json:"payment-source,omitempty"`
	SingleUseToken       string `form:"single-use-token" json:"single-use-token,omitempty"`
	AuthID               string `form:"auth-id" json:"auth-id,omitempty"`
	ThreeDSPreference    string `form:"3ds-preference" json:"3ds-preference,omitempty"`
	ShippingPreference   string `form:"shipping-preference" json:"shipping-preference,omitempty"`
	ButtonLabel          string `form:"button-label" json:"button-label,omitempty"`
	ButtonColor          string `form:"button-color" json:"button-color,omitempty"`
	ItemPrice            string `form:"item-price" json:"item-price,omitempty"`
	ItemTax              string `form:"item-tax" json:"item-tax,omitempty"`

	PartnerMerchantIdentity

	AuthHeader string `form:"auth-header" json:"authHeader,omitempty"`
}

// PartnerMerchantIdentity holds the partner/merchant credential fields.
// Each field is optional and merged into the options only when non-empty.
type PartnerMerchantIdentity struct {
	PartnerID       string `form:"partner-id" json:"partner-id,omitempty"`
	PartnerClientID string `form:"partner-client-id" json:"partner-client-id,omitempty"`
	PartnerSecret   string `form:"partner-secret" json:"partner-secret,omitempty"`
	PartnerBNCode   string `form:"partner-bn-code" json:"partner-bn-code,omitempty"`
	MerchantID      string `form:"merchant-id" json:"merchant-id,omitempty"`
}

func (i PartnerMerchantIdentity) MergeInto(opts CheckoutOptions) CheckoutOptions {
	if i.PartnerID != "" {
		opts.PartnerID = i.PartnerID
	}
	if i.PartnerClientID != "" {
		opts.PartnerClientID = i.PartnerClientID
	}
	if i.PartnerSecret != "" {
		opts.PartnerSecret = i.PartnerSecret
	}
	if i.PartnerBNCode != "" {
		opts.PartnerBNCode = i.PartnerBNCode
	}
	if i.MerchantID != "" {
		opts.MerchantID = i.MerchantID
	}
	return opts
}

// Resolve merges the current form values with the identity fields and the
// freshest auth header. Pure: no I/O, idempotent for unchanged inputs.
func Resolve(values url.Values, identity PartnerMerchantIdentity, authHeader string) (CheckoutOptions, error) {
	opts, err := NewFromValues(values)
	if err != nil {
		return CheckoutOptions{}, err
	}

	opts = identity.MergeInto(opts)

	if opts.Currency == "" {
		opts.Currency = "USD"
	}
	if authHeader != "" {
		opts.AuthHeader = authHeader
	}

	return opts, nil
}

func NewFromRequest(r *http.Request) (CheckoutOptions, error) {
	err := r.ParseForm()
	if err != nil {
		return CheckoutOptions{}, myerrors.NewInvalidInputError(err)
	}
	return NewFromValues(r.Form)
}

func NewFromValues(values url.Values) (CheckoutOptions, error) {
	opts := CheckoutOptions{}
	err := formcodec.NewDecoder().Decode(&opts, values)
	if err != nil {
		return opts, fmt.Errorf("error decoding form: %s", err)
	}

	return opts, nil
}

func (o CheckoutOptions) ToForm() (url.Values, error) {
	values, err := formcodec.NewEncoder().Encode(o)
	if err != nil {
		return nil, fmt.Errorf("error encoding form: %s", err)
	}

	return values, nil
}

// bankRedirectSources are alternative payment methods that the order API
// only accepts under the "paypal" payment source.
var bankRedirectSources = map[string]bool{
	"ideal":       true,
	"sofort":      true,
	"giropay":     true,
	"eps":         true,
	"bancontact":  true,
	"mybank":      true,
	"p24":         true,
	"sepa":        true,
	"mercadopago": true,
	"paylater":    true,
	"credit":      true,
}

// CanonicalPaymentSource normalizes the raw funding source before it is sent
// to the order API: absent means "card", bank-redirect methods become
// "paypal", anything else passes through unchanged.
func CanonicalPaymentSource(raw string) string {
	if raw == "" {
		return "card"
	}
	if bankRedirectSources[raw] {
		return "paypal"
	}
	return raw
}
