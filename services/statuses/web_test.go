package statuses

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/partnercheckout/lib/mystore"
	"github.com/MarcGrol/partnercheckout/lib/mytime"
	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
	"github.com/MarcGrol/partnercheckout/services/credentials"
	"github.com/MarcGrol/partnercheckout/services/platformapi"
	"github.com/MarcGrol/partnercheckout/services/transcript"
)

func TestAdminLookups(t *testing.T) {

	t.Run("Capture lookup relays header and records transcript", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, router, platform, relay, recorder := setup(t, ctrl)

		platform.EXPECT().GetCapture(gomock.Any(), "C-1", gomock.Any()).Return(platformapi.LookupResult{
			Result: platformapi.Result{
				AuthHeader: "h9",
				Formatted: platformapi.Formatted{
					"show capture details": {Human: "capture C-1 is COMPLETED", Replay: "curl ..."},
				},
			},
		}, nil)

		response := doRequest(router, http.MethodGet, "/api/admin/sess-1/captures/C-1")
		assert.Equal(t, 200, response.Code)

		header, err := relay.Get(c, "sess-1")
		assert.NoError(t, err)
		assert.Equal(t, "h9", header)

		entries, err := recorder.List(c, "sess-1")
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "show capture details", entries[0].Label)
	})

	t.Run("Payment token can be deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, router, platform, _, _ := setup(t, ctrl)

		platform.EXPECT().DeletePaymentToken(gomock.Any(), "P-1", gomock.Any()).Return(platformapi.LookupResult{}, nil)

		response := doRequest(router, http.MethodDelete, "/api/admin/sess-2/payment-tokens/P-1")
		assert.Equal(t, 200, response.Code)
	})

	t.Run("Refund uses the relayed header from an earlier call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, router, platform, relay, _ := setup(t, ctrl)

		err := relay.Set(c, "sess-3", "h1")
		assert.NoError(t, err)

		platform.EXPECT().RefundCapture(gomock.Any(), "C-3", gomock.Any()).DoAndReturn(
			func(c context.Context, captureID string, opts checkoutapi.CheckoutOptions) (platformapi.LookupResult, error) {
				assert.Equal(t, "h1", opts.AuthHeader)
				return platformapi.LookupResult{}, nil
			})

		response := doRequest(router, http.MethodPost, "/api/admin/sess-3/captures/C-3/refund")
		assert.Equal(t, 200, response.Code)
	})

	t.Run("Customer token listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, router, platform, _, _ := setup(t, ctrl)

		platform.EXPECT().GetCustomerTokens(gomock.Any(), "cust-1", gomock.Any()).Return(platformapi.LookupResult{}, nil)

		response := doRequest(router, http.MethodGet, "/api/admin/sess-4/customers/cust-1/tokens")
		assert.Equal(t, 200, response.Code)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, *platformapi.MockClient, credentials.Relay, transcript.Recorder) {
	c := context.TODO()

	credStore, _, _ := mystore.NewInMemoryStore[credentials.Credential](c)
	relay := credentials.NewRelay(credStore, mytime.RealNower{})

	transcriptStore, _, _ := mystore.NewInMemoryStore[transcript.SessionTranscript](c)
	recorder := transcript.NewRecorder(transcriptStore, mytime.RealNower{})

	platform := platformapi.NewMockClient(ctrl)

	sut := NewWebService(relay, platform, recorder)
	router := mux.NewRouter()

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, platform, relay, recorder
}

func doRequest(router *mux.Router, method string, path string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}
