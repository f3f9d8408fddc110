package checkoutflow

import "github.com/MarcGrol/partnercheckout/services/checkoutapi"

// Callback names as the SDK integration knows them.
const (
	CallbackOnClick                 = "onClick"
	CallbackCreateOrder             = "createOrder"
	CallbackCaptureOrder            = "captureOrder"
	CallbackCreateVaultSetupToken   = "createVaultSetupToken"
	CallbackCreateVaultPaymentToken = "createVaultPaymentToken"
	CallbackOnError                 = "onError"
)

// CallbackBundle is the set of callbacks wired into the SDK for one render.
// A render gets either the order pair or the vault pair, never a mix.
type CallbackBundle struct {
	OnClick       string   `json:"onClick"`
	Create        string   `json:"create"`
	OnApprove     string   `json:"onApprove"`
	OnError       string   `json:"onError,omitempty"`
	Contingencies []string `json:"contingencies,omitempty"`
}

// BundleFor selects the callback bundle for a variant. Pure: same inputs,
// same bundle.
func BundleFor(variant checkoutapi.FlowVariant, opts checkoutapi.CheckoutOptions) CallbackBundle {
	bundle := CallbackBundle{
		OnClick:   CallbackOnClick,
		Create:    CallbackCreateOrder,
		OnApprove: CallbackCaptureOrder,
	}

	if variant == checkoutapi.FlowVaultWithoutPurchase {
		bundle.Create = CallbackCreateVaultSetupToken
		bundle.OnApprove = CallbackCreateVaultPaymentToken
	}

	if variant == checkoutapi.FlowCardFields || variant == checkoutapi.FlowHostedFieldsV1 {
		bundle.OnError = CallbackOnError
		if opts.ThreeDSPreference != "" && opts.ThreeDSPreference != "NONE" {
			bundle.Contingencies = []string{opts.ThreeDSPreference}
		}
	}

	return bundle
}
