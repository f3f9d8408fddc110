package sdkloader

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/partnercheckout/lib/mystore"
	"github.com/MarcGrol/partnercheckout/lib/mytime"
	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
	"github.com/MarcGrol/partnercheckout/services/credentials"
	"github.com/MarcGrol/partnercheckout/services/platformapi"
	"github.com/MarcGrol/partnercheckout/services/transcript"
)

const sessionUID = "session-123"

func TestBuildBrandedButtons(t *testing.T) {
	c, loader, _, _, _, cleanup := setup(t)
	defer cleanup()

	spec, err := loader.Build(c, sessionUID, checkoutapi.CheckoutOptions{
		Intent:       "CAPTURE",
		UserAction:   "CONTINUE",
		BuyerCountry: "NL",
		PartnerMerchantIdentity: checkoutapi.PartnerMerchantIdentity{
			PartnerClientID: "client-abc",
			PartnerBNCode:   "bn-code-1",
			MerchantID:      "merchant-1",
		},
	}, checkoutapi.FlowBrandedButtons)
	assert.NoError(t, err)

	query := parseQuery(t, spec.URL)
	assert.Equal(t, "client-abc", query.Get("client-id"))
	assert.Equal(t, "merchant-1", query.Get("merchant-id"))
	assert.Equal(t, "USD", query.Get("currency"))
	assert.Equal(t, "capture", query.Get("intent"))
	assert.Equal(t, "false", query.Get("commit"))
	assert.Equal(t, "NL", query.Get("buyer-country"))
	assert.Equal(t, "buttons,card-fields", query.Get("components"))
	assert.Equal(t, "card,paylater,venmo", query.Get("enable-funding"))
	assert.Equal(t, "true", query.Get("debug"))
	assert.Empty(t, query.Get("vault"))

	assert.Equal(t, "bn-code-1", spec.Attributes["data-partner-attribution-id"])
	assert.NotContains(t, spec.Attributes, "data-client-token")
	assert.NotContains(t, spec.Attributes, "data-user-id-token")
}

func TestBuildHostedFieldsFetchesClientToken(t *testing.T) {
	c, loader, platformMock, relay, recorder, cleanup := setupWithDeps(t)
	defer cleanup()

	opts := checkoutapi.CheckoutOptions{
		Intent: "CAPTURE",
		PartnerMerchantIdentity: checkoutapi.PartnerMerchantIdentity{
			PartnerClientID: "client-abc",
		},
	}

	platformMock.EXPECT().GetClientToken(gomock.Any(), opts).Return(platformapi.ClientTokenResult{
		Result: platformapi.Result{
			AuthHeader: "Bearer fresh-1",
			Formatted: platformapi.Formatted{
				"generate client token": {Human: "fetched a client token", Replay: "curl ..."},
			},
		},
		ClientToken: "ct-42",
	}, nil)

	spec, err := loader.Build(c, sessionUID, opts, checkoutapi.FlowHostedFieldsV1)
	assert.NoError(t, err)

	query := parseQuery(t, spec.URL)
	assert.Equal(t, "hosted-fields", query.Get("components"))
	assert.Equal(t, "ct-42", spec.Attributes["data-client-token"])

	header, err := relay.Get(c, sessionUID)
	assert.NoError(t, err)
	assert.Equal(t, "Bearer fresh-1", header)

	entries, err := recorder.List(c, sessionUID)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "generate client token", entries[0].Label)
}

func TestBuildVaultWithoutPurchaseForcesCaptureIntent(t *testing.T) {
	c, loader, platformMock, _, _, cleanup := setupWithDeps(t)
	defer cleanup()

	opts := checkoutapi.CheckoutOptions{
		Intent:               "AUTHORIZE",
		VaultWithoutPurchase: true,
		VaultLevel:           "MERCHANT",
		CustomerID:           "cust-7",
		PartnerMerchantIdentity: checkoutapi.PartnerMerchantIdentity{
			PartnerClientID: "client-abc",
		},
	}

	platformMock.EXPECT().GetIDToken(gomock.Any(), "cust-7", true, opts).Return(platformapi.IDTokenResult{
		IDToken: "idt-9",
	}, nil)

	spec, err := loader.Build(c, sessionUID, opts, checkoutapi.FlowVaultWithoutPurchase)
	assert.NoError(t, err)

	query := parseQuery(t, spec.URL)
	assert.Equal(t, "capture", query.Get("intent"))
	assert.Equal(t, "true", query.Get("vault"))
	assert.Equal(t, "idt-9", spec.Attributes["data-user-id-token"])
}

func TestBuildVaultFlowWithoutCustomerStillFetchesIDToken(t *testing.T) {
	c, loader, platformMock, _, _, cleanup := setupWithDeps(t)
	defer cleanup()

	opts := checkoutapi.CheckoutOptions{
		Intent:    "CAPTURE",
		VaultFlow: "first-time",
		PartnerMerchantIdentity: checkoutapi.PartnerMerchantIdentity{
			PartnerClientID: "client-abc",
		},
	}

	platformMock.EXPECT().GetIDToken(gomock.Any(), "", false, opts).Return(platformapi.IDTokenResult{
		IDToken: "idt-guest",
	}, nil)

	spec, err := loader.Build(c, sessionUID, opts, checkoutapi.FlowBrandedButtons)
	assert.NoError(t, err)

	query := parseQuery(t, spec.URL)
	assert.Equal(t, "true", query.Get("vault"))
	assert.Equal(t, "idt-guest", spec.Attributes["data-user-id-token"])
}

func TestBuildFastlaneSkipsIDToken(t *testing.T) {
	c, loader, _, _, _, cleanup := setupWithDeps(t)
	defer cleanup()

	spec, err := loader.Build(c, sessionUID, checkoutapi.CheckoutOptions{
		VaultFlow:  "continue",
		CustomerID: "cust-7",
		PartnerMerchantIdentity: checkoutapi.PartnerMerchantIdentity{
			PartnerClientID: "client-abc",
		},
	}, checkoutapi.FlowFastlaneGuest)
	assert.NoError(t, err)

	query := parseQuery(t, spec.URL)
	assert.Equal(t, "buttons,fastlane", query.Get("components"))
	assert.NotContains(t, spec.Attributes, "data-user-id-token")
}

func parseQuery(t *testing.T, rawURL string) url.Values {
	parsed, err := url.Parse(rawURL)
	assert.NoError(t, err)
	return parsed.Query()
}

func setup(t *testing.T) (context.Context, *loader, *platformapi.MockClient, credentials.Relay, transcript.Recorder, func()) {
	return setupWithDeps(t)
}

func setupWithDeps(t *testing.T) (context.Context, *loader, *platformapi.MockClient, credentials.Relay, transcript.Recorder, func()) {
	c := context.TODO()

	ctrl := gomock.NewController(t)
	platformMock := platformapi.NewMockClient(ctrl)

	credStore, credCleanup, err := mystore.NewInMemoryStore[credentials.Credential](c)
	assert.NoError(t, err)
	relay := credentials.NewRelay(credStore, mytime.RealNower{})

	transcriptStore, transcriptCleanup, err := mystore.NewInMemoryStore[transcript.SessionTranscript](c)
	assert.NoError(t, err)
	recorder := transcript.NewRecorder(transcriptStore, mytime.RealNower{})

	loader := NewLoader("https://sdk.example.com/js", platformMock, relay, recorder)

	return c, loader, platformMock, relay, recorder, func() {
		transcriptCleanup()
		credCleanup()
		ctrl.Finish()
	}
}
