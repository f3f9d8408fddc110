package checkoutapi

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPaymentSource(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"", "card"},
		{"ideal", "paypal"},
		{"sofort", "paypal"},
		{"giropay", "paypal"},
		{"eps", "paypal"},
		{"bancontact", "paypal"},
		{"mybank", "paypal"},
		{"p24", "paypal"},
		{"sepa", "paypal"},
		{"mercadopago", "paypal"},
		{"paylater", "paypal"},
		{"credit", "paypal"},
		{"card", "card"},
		{"apple_pay", "apple_pay"},
		{"google_pay", "google_pay"},
		{"paypal", "paypal"},
		{"venmo", "venmo"},
	}
	for _, tc := range testCases {
		t.Run("source "+tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, CanonicalPaymentSource(tc.in))
		})
	}
}

func TestResolve(t *testing.T) {
	values := url.Values{
		"intent":             {"CAPTURE"},
		"buyer-country-code": {"NL"},
		"vault-flow":         {"first-time-buyer"},
		"3ds-preference":     {"SCA_WHEN_REQUIRED"},
	}
	identity := PartnerMerchantIdentity{
		PartnerID:       "P-123",
		PartnerClientID: "client-abc",
		PartnerBNCode:   "MyBNCode_SP",
		MerchantID:      "M-456",
	}

	t.Run("Merges identity and auth header", func(t *testing.T) {
		opts, err := Resolve(values, identity, "Bearer abc")
		assert.NoError(t, err)
		assert.Equal(t, "CAPTURE", opts.Intent)
		assert.Equal(t, "NL", opts.BuyerCountry)
		assert.Equal(t, "P-123", opts.PartnerID)
		assert.Equal(t, "M-456", opts.MerchantID)
		assert.Equal(t, "MyBNCode_SP", opts.PartnerBNCode)
		assert.Equal(t, "Bearer abc", opts.AuthHeader)
	})

	t.Run("Currency defaults to USD", func(t *testing.T) {
		opts, err := Resolve(values, identity, "")
		assert.NoError(t, err)
		assert.Equal(t, "USD", opts.Currency)
	})

	t.Run("Empty identity fields are not merged", func(t *testing.T) {
		withSecret := url.Values{"partner-secret": {"shhh"}}
		opts, err := Resolve(withSecret, PartnerMerchantIdentity{}, "")
		assert.NoError(t, err)
		assert.Equal(t, "shhh", opts.PartnerSecret)
	})

	t.Run("Idempotent for unchanged inputs", func(t *testing.T) {
		first, err := Resolve(values, identity, "Bearer abc")
		assert.NoError(t, err)
		second, err := Resolve(values, identity, "Bearer abc")
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestFormRoundtrip(t *testing.T) {
	opts := CheckoutOptions{
		Intent:               "AUTHORIZE",
		Currency:             "EUR",
		VaultWithoutPurchase: true,
		PaymentSource:        "venmo",
	}

	values, err := opts.ToForm()
	assert.NoError(t, err)

	decoded, err := NewFromValues(values)
	assert.NoError(t, err)
	assert.Equal(t, opts, decoded)
}

func TestParseFlowVariant(t *testing.T) {
	variant, err := ParseFlowVariant("google-pay")
	assert.NoError(t, err)
	assert.Equal(t, FlowGooglePay, variant)

	_, err = ParseFlowVariant("carrier-pigeon")
	assert.Error(t, err)
}
