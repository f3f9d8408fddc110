package checkoutapi

import "fmt"

// FlowVariant selects which SDK integration shape is active. It determines
// the callback set that gets wired and the components the script tag loads.
type FlowVariant string

const (
	FlowBrandedButtons       FlowVariant = "branded-buttons"
	FlowHostedFieldsV1       FlowVariant = "hosted-fields-v1"
	FlowCardFields           FlowVariant = "card-fields"
	FlowGooglePay            FlowVariant = "google-pay"
	FlowFastlaneGuest        FlowVariant = "fastlane-guest"
	FlowFastlaneReturning    FlowVariant = "fastlane-returning"
	FlowBuyerNotPresent      FlowVariant = "buyer-not-present"
	FlowVaultWithoutPurchase FlowVariant = "vault-without-purchase"
)

func ParseFlowVariant(s string) (FlowVariant, error) {
	switch FlowVariant(s) {
	case FlowBrandedButtons, FlowHostedFieldsV1, FlowCardFields, FlowGooglePay,
		FlowFastlaneGuest, FlowFastlaneReturning, FlowBuyerNotPresent, FlowVaultWithoutPurchase:
		return FlowVariant(s), nil
	}
	return "", fmt.Errorf("unknown flow variant %q", s)
}

func (v FlowVariant) IsFastlane() bool {
	return v == FlowFastlaneGuest || v == FlowFastlaneReturning
}
