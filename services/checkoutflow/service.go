// Package checkoutflow drives the checkout lifecycle: it creates sessions,
// posts orders, runs captures and the vault handshake, and keeps the auth
// header relay and the call transcript up to date after every platform call.
package checkoutflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MarcGrol/partnercheckout/lib/myerrors"
	"github.com/MarcGrol/partnercheckout/lib/mylog"
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

const instrumentDeclined = "INSTRUMENT_DECLINED"

// scriptBuilder composes the SDK bootstrap for a render.
type scriptBuilder interface {
	Build(c context.Context, sessionUID string, opts checkoutapi.CheckoutOptions, variant checkoutapi.FlowVariant) (sdkloader.ScriptSpec, error)
}

type service struct {
	sessionStore mystore.Store[checkoutapi.CheckoutSession]
	optionsStore mystore.Store[checkoutapi.SavedOptions]
	relay        credentials.Relay
	platform     platformapi.Client
	recorder     transcript.Recorder
	scripts      scriptBuilder
	identity     FastlaneIdentity
	rebinder     *rebinder.Rebinder
	queue        myqueue.TaskQueuer
	publisher    mypublisher.Publisher
	nower        mytime.Nower
	uuider       myuuid.UUIDer
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newCommandService(sessionStore mystore.Store[checkoutapi.CheckoutSession], optionsStore mystore.Store[checkoutapi.SavedOptions],
	relay credentials.Relay, platform platformapi.Client, recorder transcript.Recorder, scripts scriptBuilder,
	identity FastlaneIdentity, binder *rebinder.Rebinder, queue myqueue.TaskQueuer, publisher mypublisher.Publisher,
	nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	return &service{
		sessionStore: sessionStore,
		optionsStore: optionsStore,
		relay:        relay,
		platform:     platform,
		recorder:     recorder,
		scripts:      scripts,
		identity:     identity,
		rebinder:     binder,
		queue:        queue,
		publisher:    publisher,
		nower:        nower,
		uuider:       uuider,
		logger:       logger,
	}
}

func (s *service) CreateTopics(c context.Context) error {
	err := s.publisher.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}
	return nil
}

// startSession creates a fresh session for a variant and rebinds the
// reconfiguration listeners for this render.
func (s *service) startSession(c context.Context, variant checkoutapi.FlowVariant) (checkoutapi.CheckoutSession, error) {
	session := checkoutapi.NewCheckoutSession(s.uuider.Create(), variant, s.nower.Now())

	err := s.sessionStore.Put(c, session.UID, session)
	if err != nil {
		return session, myerrors.NewInternalError(fmt.Errorf("error storing session: %s", err))
	}

	s.rebinder.Rebind(func(c context.Context, elementID string) error {
		s.logger.Log(c, session.UID, mylog.SeverityInfo, "Field %s changed: checkout must be reconfigured", elementID)
		return nil
	})

	s.logger.Log(c, session.UID, mylog.SeverityInfo, "Started %s checkout session", variant)

	return session, nil
}

func (s *service) getSession(c context.Context, sessionUID string) (checkoutapi.CheckoutSession, error) {
	session, exists, err := s.sessionStore.Get(c, sessionUID)
	if err != nil {
		return session, myerrors.NewInternalError(fmt.Errorf("error fetching session %s: %s", sessionUID, err))
	}
	if !exists {
		return session, myerrors.NewNotFoundError(fmt.Errorf("session %s not found", sessionUID))
	}
	return session, nil
}

// resolveOptions rebuilds the effective options from the submitted form, the
// identity fields and the freshest relayed auth header. Never cached.
func (s *service) resolveOptions(c context.Context, sessionUID string, opts checkoutapi.CheckoutOptions) (checkoutapi.CheckoutOptions, error) {
	authHeader, err := s.relay.Get(c, sessionUID)
	if err != nil {
		return opts, myerrors.NewInternalError(fmt.Errorf("error reading auth header: %s", err))
	}

	values, err := opts.ToForm()
	if err != nil {
		return opts, myerrors.NewInvalidInputError(err)
	}

	resolved, err := checkoutapi.Resolve(values, opts.PartnerMerchantIdentity, authHeader)
	if err != nil {
		return opts, myerrors.NewInvalidInputError(err)
	}
	return resolved, nil
}

// createOrder posts the order and moves the session to order-created. A
// response without an order id is a loud failure, never silently ignored.
func (s *service) createOrder(c context.Context, session checkoutapi.CheckoutSession, opts checkoutapi.CheckoutOptions, paymentSourceOverride string) (checkoutapi.CheckoutSession, platformapi.OrderResult, error) {
	s.logger.Log(c, session.UID, mylog.SeverityInfo, "Create order for session %s", session.UID)

	source := paymentSourceOverride
	if source == "" {
		source = opts.PaymentSource
	}
	opts.PaymentSource = checkoutapi.CanonicalPaymentSource(source)

	if opts.PartnerClientID == "" {
		return session, platformapi.OrderResult{}, myerrors.NewInvalidInputError(fmt.Errorf("missing partner client id"))
	}

	resp, err := s.platform.CreateOrder(c, opts)
	if err != nil {
		session, _ = s.storeState(c, session, checkoutapi.StateFailed)
		return session, resp, myerrors.NewInternalError(fmt.Errorf("error creating order for session %s: %s", session.UID, err))
	}

	err = s.relayAndRecord(c, session.UID, resp.Result)
	if err != nil {
		return session, resp, err
	}

	if resp.OrderID == "" {
		session, _ = s.storeState(c, session, checkoutapi.StateFailed)
		return session, resp, myerrors.NewInternalError(fmt.Errorf("order creation for session %s returned no order id: %s", session.UID, resp.Error))
	}

	session.OrderID = resp.OrderID
	session.AuthID = resp.AuthID
	session.State = checkoutapi.StateOrderCreated
	now := s.nower.Now()
	session.LastModified = &now

	err = s.sessionStore.RunInTransaction(c, func(c context.Context) error {
		err := s.sessionStore.Put(c, session.UID, session)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing session: %s", err))
		}
		err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.OrderCreated{
			SessionUID:    session.UID,
			OrderID:       resp.OrderID,
			Intent:        opts.Intent,
			Currency:      opts.Currency,
			PaymentSource: opts.PaymentSource,
			MerchantID:    opts.MerchantID,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}
		return nil
	})
	if err != nil {
		return session, resp, err
	}

	return session, resp, nil
}

// captureOrder completes the payment. An INSTRUMENT_DECLINED answer is a
// recoverable outcome: the session goes to declined so the buyer can restart,
// no error is returned.
func (s *service) captureOrder(c context.Context, session checkoutapi.CheckoutSession, opts checkoutapi.CheckoutOptions) (checkoutapi.CheckoutSession, platformapi.CaptureResult, error) {
	s.logger.Log(c, session.UID, mylog.SeverityInfo, "Capture order %s for session %s", session.OrderID, session.UID)

	if session.OrderID == "" {
		return session, platformapi.CaptureResult{}, myerrors.NewInvalidInputError(fmt.Errorf("session %s has no order to capture", session.UID))
	}
	if opts.AuthID == "" {
		opts.AuthID = session.AuthID
	}

	resp, err := s.platform.CaptureOrder(c, session.OrderID, opts)
	if err != nil {
		session, _ = s.storeState(c, session, checkoutapi.StateFailed)
		return session, resp, myerrors.NewInternalError(fmt.Errorf("error capturing order %s: %s", session.OrderID, err))
	}

	err = s.relayAndRecord(c, session.UID, resp.Result)
	if err != nil {
		return session, resp, err
	}

	if resp.Error == instrumentDeclined {
		return s.declineOrder(c, session, opts, resp)
	}
	if resp.Error != "" {
		session, _ = s.storeState(c, session, checkoutapi.StateFailed)
		return session, resp, myerrors.NewInternalError(fmt.Errorf("error capturing order %s: %s", session.OrderID, resp.Error))
	}

	session.CaptureID = resp.CaptureID
	session.CaptureStatus = resp.CaptureStatus
	session.State = checkoutapi.StateCaptured
	now := s.nower.Now()
	session.LastModified = &now

	err = s.sessionStore.RunInTransaction(c, func(c context.Context) error {
		err := s.sessionStore.Put(c, session.UID, session)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing session: %s", err))
		}
		err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.OrderCaptured{
			SessionUID:    session.UID,
			OrderID:       session.OrderID,
			CaptureID:     resp.CaptureID,
			CaptureStatus: resp.CaptureStatus,
			MerchantID:    opts.MerchantID,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}
		return nil
	})
	if err != nil {
		return session, resp, err
	}

	// Deferred status poll so the debug panel shows the settled order.
	err = s.enqueueStatusRefresh(c, session.UID)
	if err != nil {
		s.logger.Log(c, session.UID, mylog.SeverityWarn, "Could not enqueue status refresh: %s", err)
	}

	return session, resp, nil
}

func (s *service) declineOrder(c context.Context, session checkoutapi.CheckoutSession, opts checkoutapi.CheckoutOptions, resp platformapi.CaptureResult) (checkoutapi.CheckoutSession, platformapi.CaptureResult, error) {
	s.logger.Log(c, session.UID, mylog.SeverityInfo, "Order %s declined: buyer may restart", session.OrderID)

	session.State = checkoutapi.StateDeclined
	now := s.nower.Now()
	session.LastModified = &now

	err := s.sessionStore.RunInTransaction(c, func(c context.Context) error {
		err := s.sessionStore.Put(c, session.UID, session)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing session: %s", err))
		}
		err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.OrderDeclined{
			SessionUID: session.UID,
			OrderID:    session.OrderID,
			Reason:     instrumentDeclined,
			MerchantID: opts.MerchantID,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}
		return nil
	})
	return session, resp, err
}

// createVaultSetupToken starts the two-phase vault handshake.
func (s *service) createVaultSetupToken(c context.Context, session checkoutapi.CheckoutSession, opts checkoutapi.CheckoutOptions) (checkoutapi.CheckoutSession, platformapi.SetupTokenResult, error) {
	s.logger.Log(c, session.UID, mylog.SeverityInfo, "Create vault setup token for session %s", session.UID)

	resp, err := s.platform.CreateSetupToken(c, opts)
	if err != nil {
		session, _ = s.storeState(c, session, checkoutapi.StateFailed)
		return session, resp, myerrors.NewInternalError(fmt.Errorf("error creating setup token for session %s: %s", session.UID, err))
	}

	err = s.relayAndRecord(c, session.UID, resp.Result)
	if err != nil {
		return session, resp, err
	}

	if resp.SetupTokenID == "" {
		session, _ = s.storeState(c, session, checkoutapi.StateFailed)
		return session, resp, myerrors.NewInternalError(fmt.Errorf("setup token creation for session %s returned no token id", session.UID))
	}

	session.SetupTokenID = resp.SetupTokenID
	session.State = checkoutapi.StateOrderCreated
	now := s.nower.Now()
	session.LastModified = &now

	err = s.sessionStore.Put(c, session.UID, session)
	if err != nil {
		return session, resp, myerrors.NewInternalError(fmt.Errorf("error storing session: %s", err))
	}

	return session, resp, nil
}

// createVaultPaymentToken exchanges the approved setup token for a durable
// payment token.
func (s *service) createVaultPaymentToken(c context.Context, session checkoutapi.CheckoutSession, opts checkoutapi.CheckoutOptions, setupTokenID string) (checkoutapi.CheckoutSession, platformapi.PaymentTokenResult, error) {
	s.logger.Log(c, session.UID, mylog.SeverityInfo, "Create vault payment token for session %s", session.UID)

	if setupTokenID == "" {
		setupTokenID = session.SetupTokenID
	}
	if setupTokenID == "" {
		return session, platformapi.PaymentTokenResult{}, myerrors.NewInvalidInputError(fmt.Errorf("session %s has no setup token", session.UID))
	}

	resp, err := s.platform.CreatePaymentToken(c, setupTokenID, opts)
	if err != nil {
		session, _ = s.storeState(c, session, checkoutapi.StateFailed)
		return session, resp, myerrors.NewInternalError(fmt.Errorf("error creating payment token for session %s: %s", session.UID, err))
	}

	err = s.relayAndRecord(c, session.UID, resp.Result)
	if err != nil {
		return session, resp, err
	}

	session.PaymentTokenID = resp.PaymentTokenID
	session.State = checkoutapi.StateVaultTokenIssued
	now := s.nower.Now()
	session.LastModified = &now

	err = s.sessionStore.RunInTransaction(c, func(c context.Context) error {
		err := s.sessionStore.Put(c, session.UID, session)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing session: %s", err))
		}
		err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.PaymentTokenCreated{
			SessionUID:     session.UID,
			SetupTokenID:   setupTokenID,
			PaymentTokenID: resp.PaymentTokenID,
			CustomerID:     resp.CustomerID,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}
		return nil
	})
	if err != nil {
		return session, resp, err
	}

	return session, resp, nil
}

// getStatus polls the order for the debug panel. Transcript-only: the session
// state does not move.
func (s *service) getStatus(c context.Context, session checkoutapi.CheckoutSession, opts checkoutapi.CheckoutOptions) (platformapi.StatusResult, error) {
	if session.OrderID == "" {
		return platformapi.StatusResult{}, myerrors.NewInvalidInputError(fmt.Errorf("session %s has no order to poll", session.UID))
	}

	resp, err := s.platform.GetOrderStatus(c, session.OrderID, opts)
	if err != nil {
		return resp, myerrors.NewInternalError(fmt.Errorf("error fetching status of order %s: %s", session.OrderID, err))
	}

	err = s.relayAndRecord(c, session.UID, resp.Result)
	if err != nil {
		return resp, err
	}

	return resp, nil
}

// buyerNotPresentCheckout charges a stored payment method without the buyer.
// The vault id is mandatory up front; capture only follows for authorize
// intents because a capture intent settles within order creation.
func (s *service) buyerNotPresentCheckout(c context.Context, session checkoutapi.CheckoutSession, opts checkoutapi.CheckoutOptions) (checkoutapi.CheckoutSession, platformapi.OrderResult, error) {
	if opts.VaultID == "" {
		return session, platformapi.OrderResult{}, myerrors.NewInvalidInputError(fmt.Errorf("buyer-not-present checkout requires a vault id"))
	}

	session, orderResp, err := s.createOrder(c, session, opts, "card")
	if err != nil {
		return session, orderResp, err
	}

	if strings.EqualFold(opts.Intent, "AUTHORIZE") {
		opts, err = s.withFreshAuthHeader(c, session.UID, opts)
		if err != nil {
			return session, orderResp, err
		}
		session, _, err = s.captureOrder(c, session, opts)
		if err != nil {
			return session, orderResp, err
		}
	}

	return session, orderResp, nil
}

func (s *service) enqueueStatusRefresh(c context.Context, sessionUID string) error {
	payload, err := json.Marshal(statusRefreshTask{SessionUID: sessionUID})
	if err != nil {
		return err
	}
	return s.queue.Enqueue(c, myqueue.Task{
		UID:            sessionUID + "-status",
		WebhookURLPath: fmt.Sprintf("/api/checkout/%s/status", sessionUID),
		Payload:        payload,
	})
}

type statusRefreshTask struct {
	SessionUID string `json:"sessionUID"`
}

func (s *service) storeState(c context.Context, session checkoutapi.CheckoutSession, state checkoutapi.SessionState) (checkoutapi.CheckoutSession, error) {
	session.State = state
	now := s.nower.Now()
	session.LastModified = &now
	err := s.sessionStore.Put(c, session.UID, session)
	if err != nil {
		s.logger.Log(c, session.UID, mylog.SeverityWarn, "Could not store session state %s: %s", state, err)
	}
	return session, err
}

// withFreshAuthHeader re-reads the relay slot so that the next chained call
// carries the header rotated by the previous response.
func (s *service) withFreshAuthHeader(c context.Context, sessionUID string, opts checkoutapi.CheckoutOptions) (checkoutapi.CheckoutOptions, error) {
	authHeader, err := s.relay.Get(c, sessionUID)
	if err != nil {
		return opts, myerrors.NewInternalError(fmt.Errorf("error reading auth header: %s", err))
	}
	if authHeader != "" {
		opts.AuthHeader = authHeader
	}
	return opts, nil
}

// relayAndRecord stores the rotated auth header before anything else can read
// it and appends the call transcripts.
func (s *service) relayAndRecord(c context.Context, sessionUID string, result platformapi.Result) error {
	err := s.relay.Set(c, sessionUID, result.AuthHeader)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error relaying auth header: %s", err))
	}

	exchanges := map[string]transcript.Exchange{}
	for label, t := range result.Formatted {
		exchanges[label] = transcript.Exchange{
			Label:  label,
			Human:  t.Human,
			Replay: t.Replay,
		}
	}
	err = s.recorder.RecordAll(c, sessionUID, exchanges)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error recording transcript: %s", err))
	}
	return nil
}
