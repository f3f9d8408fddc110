// Package sdkloader composes the browser SDK bootstrap: the script URL with
// its query parameters and the element attributes that must be present on
// the script tag before the buttons can render.
package sdkloader

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MarcGrol/partnercheckout/lib/mylog"
	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
	"github.com/MarcGrol/partnercheckout/services/credentials"
	"github.com/MarcGrol/partnercheckout/services/platformapi"
	"github.com/MarcGrol/partnercheckout/services/transcript"
)

// ScriptSpec tells the page how to load the SDK: the full script URL and the
// data-attributes to set on the script element.
type ScriptSpec struct {
	URL        string            `json:"url"`
	Attributes map[string]string `json:"attributes"`
}

type loader struct {
	sdkBaseURL string
	platform   platformapi.Client
	relay      credentials.Relay
	recorder   transcript.Recorder
	logger     mylog.Logger
}

func NewLoader(sdkBaseURL string, platform platformapi.Client, relay credentials.Relay, recorder transcript.Recorder) *loader {
	return &loader{
		sdkBaseURL: sdkBaseURL,
		platform:   platform,
		relay:      relay,
		recorder:   recorder,
		logger:     mylog.New("sdkloader"),
	}
}

// Build assembles the script spec for a flow variant. Token fetches for
// hosted fields and vaulting happen here, before the page loads the script.
func (l *loader) Build(c context.Context, sessionUID string, opts checkoutapi.CheckoutOptions, variant checkoutapi.FlowVariant) (ScriptSpec, error) {
	query := url.Values{}
	query.Set("client-id", opts.PartnerClientID)
	if opts.MerchantID != "" {
		query.Set("merchant-id", opts.MerchantID)
	}

	currency := opts.Currency
	if currency == "" {
		currency = "USD"
	}
	query.Set("currency", currency)

	intent := strings.ToLower(opts.Intent)
	if variant == checkoutapi.FlowVaultWithoutPurchase {
		// The SDK refuses to vault under an authorize intent.
		intent = "capture"
	}
	if intent != "" {
		query.Set("intent", intent)
	}

	if opts.UserAction == "CONTINUE" {
		query.Set("commit", "false")
	}
	if opts.BuyerCountry != "" {
		query.Set("buyer-country", opts.BuyerCountry)
	}

	components, funding := componentsForVariant(variant)
	query.Set("components", components)
	if funding != "" {
		query.Set("enable-funding", funding)
	}

	if opts.VaultFlow != "" || opts.VaultWithoutPurchase {
		query.Set("vault", "true")
	}
	query.Set("debug", "true")

	attrs := map[string]string{}
	if opts.PartnerBNCode != "" {
		attrs["data-partner-attribution-id"] = opts.PartnerBNCode
	}

	if variant == checkoutapi.FlowHostedFieldsV1 {
		resp, err := l.platform.GetClientToken(c, opts)
		if err != nil {
			return ScriptSpec{}, fmt.Errorf("error fetching client token: %s", err)
		}
		err = l.relayAndRecord(c, sessionUID, resp.Result)
		if err != nil {
			return ScriptSpec{}, err
		}
		attrs["data-client-token"] = resp.ClientToken
	}

	if needsIDToken(opts, variant) {
		includeAuthAssertion := opts.VaultLevel == "MERCHANT"
		resp, err := l.platform.GetIDToken(c, opts.CustomerID, includeAuthAssertion, opts)
		if err != nil {
			return ScriptSpec{}, fmt.Errorf("error fetching id token: %s", err)
		}
		err = l.relayAndRecord(c, sessionUID, resp.Result)
		if err != nil {
			return ScriptSpec{}, err
		}
		attrs["data-user-id-token"] = resp.IDToken
	}

	spec := ScriptSpec{
		URL:        l.sdkBaseURL + "?" + query.Encode(),
		Attributes: attrs,
	}

	l.logger.Log(c, sessionUID, mylog.SeverityInfo, "Composed sdk script for variant %s: %s", variant, spec.URL)

	return spec, nil
}

func componentsForVariant(variant checkoutapi.FlowVariant) (components string, funding string) {
	switch variant {
	case checkoutapi.FlowBrandedButtons, checkoutapi.FlowCardFields:
		return "buttons,card-fields", "card,paylater,venmo"
	case checkoutapi.FlowHostedFieldsV1:
		return "hosted-fields", ""
	case checkoutapi.FlowGooglePay:
		return "googlepay", ""
	case checkoutapi.FlowFastlaneGuest, checkoutapi.FlowFastlaneReturning:
		return "buttons,fastlane", ""
	default:
		return "buttons", ""
	}
}

// needsIDToken: every vault flow requires the id token, also for first-time
// buyers without a customer id; returning buyers get their saved methods
// shown through it.
func needsIDToken(opts checkoutapi.CheckoutOptions, variant checkoutapi.FlowVariant) bool {
	if variant.IsFastlane() {
		return false
	}
	return opts.VaultFlow != "" || opts.VaultWithoutPurchase
}

func (l *loader) relayAndRecord(c context.Context, sessionUID string, result platformapi.Result) error {
	err := l.relay.Set(c, sessionUID, result.AuthHeader)
	if err != nil {
		return fmt.Errorf("error relaying auth header: %s", err)
	}

	exchanges := map[string]transcript.Exchange{}
	for label, t := range result.Formatted {
		exchanges[label] = transcript.Exchange{
			Label:  label,
			Human:  t.Human,
			Replay: t.Replay,
		}
	}
	return l.recorder.RecordAll(c, sessionUID, exchanges)
}
