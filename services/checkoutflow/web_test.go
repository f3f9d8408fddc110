package checkoutflow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/partnercheckout/lib/mypublisher"
	"github.com/MarcGrol/partnercheckout/lib/myqueue"
	"github.com/MarcGrol/partnercheckout/lib/mystore"
	"github.com/MarcGrol/partnercheckout/lib/mytime"
	"github.com/MarcGrol/partnercheckout/lib/myuuid"
	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
	"github.com/MarcGrol/partnercheckout/services/checkoutevents"
	"github.com/MarcGrol/partnercheckout/services/credentials"
	"github.com/MarcGrol/partnercheckout/services/platformapi"
	"github.com/MarcGrol/partnercheckout/services/rebinder"
	"github.com/MarcGrol/partnercheckout/services/sdkloader"
	"github.com/MarcGrol/partnercheckout/services/transcript"
)

func TestCheckoutFlow(t *testing.T) {

	t.Run("Create order then capture carries rotated auth header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, f := setup(t, ctrl)

		startSession(t, c, f, "sess-1", checkoutapi.FlowBrandedButtons)

		// given: order creation rotates the header to h1
		f.platform.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(platformapi.OrderResult{
			Result: platformapi.Result{
				AuthHeader: "h1",
				Formatted: platformapi.Formatted{
					"create order": {Human: "created order O-1", Replay: "curl ..."},
				},
			},
			OrderID: "O-1",
		}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.AssignableToTypeOf(checkoutevents.OrderCreated{})).Return(nil)

		// when
		response := doForm(f.router, http.MethodPost, "/api/checkout/sess-1/order", "intent=CAPTURE&partner-client-id=client-1")

		// then
		assert.Equal(t, 200, response.Code)

		// given: the capture must read h1 and rotates to h2
		f.platform.EXPECT().CaptureOrder(gomock.Any(), "O-1", gomock.Any()).DoAndReturn(
			func(c context.Context, orderID string, opts checkoutapi.CheckoutOptions) (platformapi.CaptureResult, error) {
				assert.Equal(t, "h1", opts.AuthHeader)
				return platformapi.CaptureResult{
					Result: platformapi.Result{
						AuthHeader: "h2",
						Formatted: platformapi.Formatted{
							"capture order": {Human: "captured order O-1", Replay: "curl ..."},
						},
					},
					CaptureID:     "C-1",
					CaptureStatus: "COMPLETED",
				}, nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, checkoutevents.OrderCaptured{
			SessionUID:    "sess-1",
			OrderID:       "O-1",
			CaptureID:     "C-1",
			CaptureStatus: "COMPLETED",
		}).Return(nil)
		f.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		// when
		response = doForm(f.router, http.MethodPost, "/api/checkout/sess-1/order/capture", "intent=CAPTURE&partner-client-id=client-1")

		// then
		assert.Equal(t, 200, response.Code)

		header, err := f.relay.Get(c, "sess-1")
		assert.NoError(t, err)
		assert.Equal(t, "h2", header)

		session, exists, err := f.sessionStore.Get(c, "sess-1")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, checkoutapi.StateCaptured, session.State)
		assert.Equal(t, "C-1", session.CaptureID)
	})

	t.Run("Instrument declined leads to restart, not failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, f := setup(t, ctrl)

		storeSession(t, c, f, checkoutapi.CheckoutSession{
			UID:     "sess-2",
			Variant: checkoutapi.FlowBrandedButtons,
			State:   checkoutapi.StateOrderCreated,
			OrderID: "O-2",
		})

		f.platform.EXPECT().CaptureOrder(gomock.Any(), "O-2", gomock.Any()).Return(platformapi.CaptureResult{
			Error: "INSTRUMENT_DECLINED",
		}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, checkoutevents.OrderDeclined{
			SessionUID: "sess-2",
			OrderID:    "O-2",
			Reason:     "INSTRUMENT_DECLINED",
		}).Return(nil)

		response := doForm(f.router, http.MethodPost, "/api/checkout/sess-2/order/capture", "intent=CAPTURE&partner-client-id=client-1")

		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), `"restart": true`)

		session, _, err := f.sessionStore.Get(c, "sess-2")
		assert.NoError(t, err)
		assert.Equal(t, checkoutapi.StateDeclined, session.State)
	})

	t.Run("Vault without purchase runs the two-phase handshake", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, f := setup(t, ctrl)

		startSession(t, c, f, "sess-3", checkoutapi.FlowVaultWithoutPurchase)

		f.platform.EXPECT().CreateSetupToken(gomock.Any(), gomock.Any()).Return(platformapi.SetupTokenResult{
			Result:       platformapi.Result{AuthHeader: "h1"},
			SetupTokenID: "S-1",
		}, nil)

		response := doForm(f.router, http.MethodPost, "/api/checkout/sess-3/vault/setup-token", "partner-client-id=client-1")
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "S-1")

		f.platform.EXPECT().CreatePaymentToken(gomock.Any(), "S-1", gomock.Any()).DoAndReturn(
			func(c context.Context, setupTokenID string, opts checkoutapi.CheckoutOptions) (platformapi.PaymentTokenResult, error) {
				assert.Equal(t, "h1", opts.AuthHeader)
				return platformapi.PaymentTokenResult{
					PaymentTokenID: "P-1",
					CustomerID:     "cust-1",
				}, nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, checkoutevents.PaymentTokenCreated{
			SessionUID:     "sess-3",
			SetupTokenID:   "S-1",
			PaymentTokenID: "P-1",
			CustomerID:     "cust-1",
		}).Return(nil)

		response = doForm(f.router, http.MethodPost, "/api/checkout/sess-3/vault/payment-token", "partner-client-id=client-1")
		assert.Equal(t, 200, response.Code)

		session, _, err := f.sessionStore.Get(c, "sess-3")
		assert.NoError(t, err)
		assert.Equal(t, checkoutapi.StateVaultTokenIssued, session.State)
		assert.Equal(t, "P-1", session.PaymentTokenID)
	})

	t.Run("Google Pay payer action is resolved before capture", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, f := setup(t, ctrl)

		storeSession(t, c, f, checkoutapi.CheckoutSession{
			UID:     "sess-4",
			Variant: checkoutapi.FlowGooglePay,
			State:   checkoutapi.StateOrderCreated,
			OrderID: "O-4",
		})

		f.platform.EXPECT().ConfirmOrder(gomock.Any(), "O-4", "wallet-data", gomock.Any()).Return(platformapi.ConfirmResult{
			Status: "PAYER_ACTION_REQUIRED",
		}, nil)
		f.platform.EXPECT().InitiatePayerAction(gomock.Any(), "O-4", gomock.Any()).Return(platformapi.ConfirmResult{}, nil)
		f.platform.EXPECT().GetOrderStatus(gomock.Any(), "O-4", gomock.Any()).Return(platformapi.StatusResult{
			Result: platformapi.Result{AuthHeader: "h-g1"},
			Status: "APPROVED",
		}, nil)
		f.platform.EXPECT().CaptureOrder(gomock.Any(), "O-4", gomock.Any()).DoAndReturn(
			func(c context.Context, orderID string, opts checkoutapi.CheckoutOptions) (platformapi.CaptureResult, error) {
				assert.Equal(t, "h-g1", opts.AuthHeader)
				return platformapi.CaptureResult{
					CaptureID:     "C-4",
					CaptureStatus: "COMPLETED",
				}, nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.AssignableToTypeOf(checkoutevents.OrderCaptured{})).Return(nil)
		f.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		response := doForm(f.router, http.MethodPost, "/api/checkout/sess-4/googlepay/confirm", "payment-method-data=wallet-data&partner-client-id=client-1")

		assert.Equal(t, 200, response.Code)
		outcome := GooglePayOutcome{}
		err := json.Unmarshal(response.Body.Bytes(), &outcome)
		assert.NoError(t, err)
		assert.Equal(t, "SUCCESS", outcome.TransactionState)
		assert.Nil(t, outcome.Error)

		session, _, err := f.sessionStore.Get(c, "sess-4")
		assert.NoError(t, err)
		assert.Equal(t, checkoutapi.StateDone, session.State)
	})

	t.Run("Google Pay incomplete capture yields structured error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, f := setup(t, ctrl)

		storeSession(t, c, f, checkoutapi.CheckoutSession{
			UID:     "sess-5",
			Variant: checkoutapi.FlowGooglePay,
			State:   checkoutapi.StateOrderCreated,
			OrderID: "O-5",
		})

		f.platform.EXPECT().ConfirmOrder(gomock.Any(), "O-5", gomock.Any(), gomock.Any()).Return(platformapi.ConfirmResult{
			Status: "APPROVED",
		}, nil)
		f.platform.EXPECT().CaptureOrder(gomock.Any(), "O-5", gomock.Any()).Return(platformapi.CaptureResult{
			CaptureID:     "C-5",
			CaptureStatus: "PENDING",
		}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.AssignableToTypeOf(checkoutevents.OrderCaptured{})).Return(nil)
		f.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		response := doForm(f.router, http.MethodPost, "/api/checkout/sess-5/googlepay/confirm", "payment-method-data=wallet-data&partner-client-id=client-1")

		assert.Equal(t, 200, response.Code)
		outcome := GooglePayOutcome{}
		err := json.Unmarshal(response.Body.Bytes(), &outcome)
		assert.NoError(t, err)
		assert.Equal(t, "ERROR", outcome.TransactionState)
		assert.NotNil(t, outcome.Error)
		assert.Equal(t, "CAPTURE", outcome.Error.Intent)
		assert.Contains(t, outcome.Error.Message, "PENDING")
	})

	t.Run("Buyer not present requires a vault id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, f := setup(t, ctrl)

		storeSession(t, c, f, checkoutapi.CheckoutSession{
			UID:     "sess-6",
			Variant: checkoutapi.FlowBuyerNotPresent,
			State:   checkoutapi.StateIdle,
		})

		response := doForm(f.router, http.MethodPost, "/api/checkout/sess-6/buyer-not-present", "intent=CAPTURE&partner-client-id=client-1")

		assert.Equal(t, 400, response.Code)
	})

	t.Run("Buyer not present capture carries the header rotated by order creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, f := setup(t, ctrl)

		storeSession(t, c, f, checkoutapi.CheckoutSession{
			UID:     "sess-11",
			Variant: checkoutapi.FlowBuyerNotPresent,
			State:   checkoutapi.StateIdle,
		})

		f.platform.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(platformapi.OrderResult{
			Result:  platformapi.Result{AuthHeader: "h-rotated"},
			OrderID: "O-11",
		}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.AssignableToTypeOf(checkoutevents.OrderCreated{})).Return(nil)
		f.platform.EXPECT().CaptureOrder(gomock.Any(), "O-11", gomock.Any()).DoAndReturn(
			func(c context.Context, orderID string, opts checkoutapi.CheckoutOptions) (platformapi.CaptureResult, error) {
				assert.Equal(t, "h-rotated", opts.AuthHeader)
				return platformapi.CaptureResult{
					CaptureID:     "C-11",
					CaptureStatus: "COMPLETED",
				}, nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.AssignableToTypeOf(checkoutevents.OrderCaptured{})).Return(nil)
		f.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		response := doForm(f.router, http.MethodPost, "/api/checkout/sess-11/buyer-not-present", "intent=AUTHORIZE&vault-id=V-1&partner-client-id=client-1")

		assert.Equal(t, 200, response.Code)

		session, _, err := f.sessionStore.Get(c, "sess-11")
		assert.NoError(t, err)
		assert.Equal(t, checkoutapi.StateCaptured, session.State)
	})

	t.Run("Deferred status refresh webhook accepts PUT", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, f := setup(t, ctrl)

		storeSession(t, c, f, checkoutapi.CheckoutSession{
			UID:     "sess-12",
			Variant: checkoutapi.FlowBrandedButtons,
			State:   checkoutapi.StateCaptured,
			OrderID: "O-12",
		})

		f.platform.EXPECT().GetOrderStatus(gomock.Any(), "O-12", gomock.Any()).Return(platformapi.StatusResult{
			Status: "COMPLETED",
		}, nil)

		response := doForm(f.router, http.MethodPut, "/api/checkout/sess-12/status", "")

		assert.Equal(t, 200, response.Code)
	})

	t.Run("Changed identity fields clear the relayed auth header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, f := setup(t, ctrl)

		storeSession(t, c, f, checkoutapi.CheckoutSession{
			UID:     "sess-7",
			Variant: checkoutapi.FlowBrandedButtons,
			State:   checkoutapi.StateIdle,
		})
		err := f.relay.Set(c, "sess-7", "h1")
		assert.NoError(t, err)

		response := doForm(f.router, http.MethodPut, "/api/checkout/sess-7/options", "partner-id=p1&intent=CAPTURE&auth-header=should-not-be-saved")
		assert.Equal(t, 200, response.Code)

		// same identity: header survives
		header, err := f.relay.Get(c, "sess-7")
		assert.NoError(t, err)
		assert.Equal(t, "h1", header)

		response = doForm(f.router, http.MethodPut, "/api/checkout/sess-7/options", "partner-id=p2&intent=CAPTURE")
		assert.Equal(t, 200, response.Code)

		header, err = f.relay.Get(c, "sess-7")
		assert.NoError(t, err)
		assert.Empty(t, header)

		// the auth header never lands in the saved options
		response = doRequest(f.router, http.MethodGet, "/api/checkout/sess-7/options")
		assert.Equal(t, 200, response.Code)
		assert.NotContains(t, response.Body.String(), "auth-header")
	})
}

func TestFastlane(t *testing.T) {

	t.Run("Recognized email gets the returning-buyer flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, f := setup(t, ctrl)

		storeSession(t, c, f, checkoutapi.CheckoutSession{
			UID:     "sess-8",
			Variant: checkoutapi.FlowFastlaneGuest,
			State:   checkoutapi.StateIdle,
		})

		f.identity.EXPECT().LookupCustomerByEmail(gomock.Any(), "jane@example.com", gomock.Any()).Return("ctx-1", nil)
		f.identity.EXPECT().TriggerAuthenticationFlow(gomock.Any(), "ctx-1", gomock.Any()).Return(FastlaneAuthentication{
			Succeeded:       true,
			ProfileName:     "Jane Doe",
			ShippingAddress: "2 Side St",
		}, nil)

		response := doForm(f.router, http.MethodPost, "/api/checkout/sess-8/fastlane/lookup", "email=jane@example.com&partner-client-id=client-1")

		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "returning")
		assert.Contains(t, response.Body.String(), "Jane Doe")

		session, _, err := f.sessionStore.Get(c, "sess-8")
		assert.NoError(t, err)
		assert.Equal(t, checkoutapi.FlowFastlaneReturning, session.Variant)
	})

	t.Run("Failed authentication falls back to guest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, f := setup(t, ctrl)

		storeSession(t, c, f, checkoutapi.CheckoutSession{
			UID:     "sess-9",
			Variant: checkoutapi.FlowFastlaneGuest,
			State:   checkoutapi.StateIdle,
		})

		f.identity.EXPECT().LookupCustomerByEmail(gomock.Any(), "jane@example.com", gomock.Any()).Return("ctx-1", nil)
		f.identity.EXPECT().TriggerAuthenticationFlow(gomock.Any(), "ctx-1", gomock.Any()).Return(FastlaneAuthentication{
			Succeeded: false,
		}, nil)

		response := doForm(f.router, http.MethodPost, "/api/checkout/sess-9/fastlane/lookup", "email=jane@example.com&partner-client-id=client-1")

		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "guest")

		session, _, err := f.sessionStore.Get(c, "sess-9")
		assert.NoError(t, err)
		assert.Equal(t, checkoutapi.FlowFastlaneGuest, session.Variant)
	})

	t.Run("Single-use token pays and captures when not settled in one go", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, f := setup(t, ctrl)

		storeSession(t, c, f, checkoutapi.CheckoutSession{
			UID:     "sess-10",
			Variant: checkoutapi.FlowFastlaneGuest,
			State:   checkoutapi.StateIdle,
		})

		f.platform.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(c context.Context, opts checkoutapi.CheckoutOptions) (platformapi.OrderResult, error) {
				assert.Equal(t, "sut-1", opts.SingleUseToken)
				assert.Equal(t, "card", opts.PaymentSource)
				return platformapi.OrderResult{
					Result:  platformapi.Result{AuthHeader: "h-f1"},
					OrderID: "O-10",
				}, nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.AssignableToTypeOf(checkoutevents.OrderCreated{})).Return(nil)
		f.platform.EXPECT().CaptureOrder(gomock.Any(), "O-10", gomock.Any()).DoAndReturn(
			func(c context.Context, orderID string, opts checkoutapi.CheckoutOptions) (platformapi.CaptureResult, error) {
				assert.Equal(t, "h-f1", opts.AuthHeader)
				return platformapi.CaptureResult{
					CaptureID:     "C-10",
					CaptureStatus: "COMPLETED",
				}, nil
			})
		f.publisher.EXPECT().Publish(gomock.Any(), checkoutevents.TopicName, gomock.AssignableToTypeOf(checkoutevents.OrderCaptured{})).Return(nil)
		f.queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil)

		response := doForm(f.router, http.MethodPost, "/api/checkout/sess-10/fastlane/pay", "single-use-token=sut-1&partner-client-id=client-1")

		assert.Equal(t, 200, response.Code)

		session, _, err := f.sessionStore.Get(c, "sess-10")
		assert.NoError(t, err)
		assert.Equal(t, checkoutapi.StateCaptured, session.State)
	})
}

func TestBundleSelection(t *testing.T) {
	opts := checkoutapi.CheckoutOptions{ThreeDSPreference: "SCA_ALWAYS"}

	orderBundle := BundleFor(checkoutapi.FlowBrandedButtons, opts)
	assert.Equal(t, "createOrder", orderBundle.Create)
	assert.Equal(t, "captureOrder", orderBundle.OnApprove)
	assert.Empty(t, orderBundle.OnError)

	vaultBundle := BundleFor(checkoutapi.FlowVaultWithoutPurchase, opts)
	assert.Equal(t, "createVaultSetupToken", vaultBundle.Create)
	assert.Equal(t, "createVaultPaymentToken", vaultBundle.OnApprove)

	cardBundle := BundleFor(checkoutapi.FlowCardFields, opts)
	assert.Equal(t, "createOrder", cardBundle.Create)
	assert.Equal(t, "onError", cardBundle.OnError)
	assert.Equal(t, []string{"SCA_ALWAYS"}, cardBundle.Contingencies)

	// pure: same inputs, same bundle
	assert.Equal(t, cardBundle, BundleFor(checkoutapi.FlowCardFields, opts))
}

type fixture struct {
	router       *mux.Router
	sessionStore mystore.Store[checkoutapi.CheckoutSession]
	relay        credentials.Relay
	platform     *platformapi.MockClient
	identity     *MockFastlaneIdentity
	publisher    *mypublisher.MockPublisher
	queue        *myqueue.MockTaskQueuer
	uuider       *myuuid.MockUUIDer
}

type fakeScriptBuilder struct{}

func (b fakeScriptBuilder) Build(c context.Context, sessionUID string, opts checkoutapi.CheckoutOptions, variant checkoutapi.FlowVariant) (sdkloader.ScriptSpec, error) {
	return sdkloader.ScriptSpec{URL: "https://sdk.example.com/js?client-id=" + opts.PartnerClientID}, nil
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *fixture) {
	c := context.TODO()

	sessionStore, _, _ := mystore.NewInMemoryStore[checkoutapi.CheckoutSession](c)
	optionsStore, _, _ := mystore.NewInMemoryStore[checkoutapi.SavedOptions](c)
	credStore, _, _ := mystore.NewInMemoryStore[credentials.Credential](c)
	transcriptStore, _, _ := mystore.NewInMemoryStore[transcript.SessionTranscript](c)

	relay := credentials.NewRelay(credStore, mytime.RealNower{})
	recorder := transcript.NewRecorder(transcriptStore, mytime.RealNower{})

	platform := platformapi.NewMockClient(ctrl)
	identity := NewMockFastlaneIdentity(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)
	queue := myqueue.NewMockTaskQueuer(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)

	sut := NewWebService(sessionStore, optionsStore, relay, platform, recorder, fakeScriptBuilder{},
		identity, rebinder.New(), queue, publisher, mytime.RealNower{}, uuider)

	router := mux.NewRouter()

	// Called by RegisterEndpoints
	publisher.EXPECT().CreateTopic(c, checkoutevents.TopicName).Return(nil)

	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, &fixture{
		router:       router,
		sessionStore: sessionStore,
		relay:        relay,
		platform:     platform,
		identity:     identity,
		publisher:    publisher,
		queue:        queue,
		uuider:       uuider,
	}
}

func startSession(t *testing.T, c context.Context, f *fixture, uid string, variant checkoutapi.FlowVariant) {
	f.uuider.EXPECT().Create().Return(uid)

	response := doForm(f.router, http.MethodPost, "/checkout/"+string(variant), "partner-client-id=client-1")
	assert.Equal(t, 200, response.Code)

	session, exists, err := f.sessionStore.Get(c, uid)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, variant, session.Variant)
}

func storeSession(t *testing.T, c context.Context, f *fixture, session checkoutapi.CheckoutSession) {
	err := f.sessionStore.Put(c, session.UID, session)
	assert.NoError(t, err)
}

func doForm(router *mux.Router, method string, path string, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func doRequest(router *mux.Router, method string, path string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}
