package partner

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/partnercheckout/lib/mycontext"
	"github.com/MarcGrol/partnercheckout/lib/myerrors"
	"github.com/MarcGrol/partnercheckout/lib/myhttp"
	"github.com/MarcGrol/partnercheckout/lib/mylog"
	"github.com/MarcGrol/partnercheckout/lib/mypublisher"
	"github.com/MarcGrol/partnercheckout/lib/mypubsub"
	"github.com/MarcGrol/partnercheckout/lib/mystore"
	"github.com/MarcGrol/partnercheckout/lib/mytime"
	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
	"github.com/MarcGrol/partnercheckout/services/checkoutevents"
	"github.com/MarcGrol/partnercheckout/services/credentials"
	"github.com/MarcGrol/partnercheckout/services/platformapi"
	"github.com/MarcGrol/partnercheckout/services/transcript"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(relay credentials.Relay, platform platformapi.Client, recorder transcript.Recorder,
	activityStore mystore.Store[MerchantActivity], subscriber mypubsub.PubSub, publisher mypublisher.Publisher,
	nower mytime.Nower) *webService {
	logger := mylog.New("partner")
	return &webService{
		logger:  logger,
		service: newCommandService(relay, platform, recorder, activityStore, subscriber, publisher, nower, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/partner/{sessionUID}/referrals", s.createReferral()).Methods("POST")
	router.HandleFunc("/api/partner/{sessionUID}/sellers/{merchantID}", s.getSellerStatus()).Methods("GET")
	router.HandleFunc("/api/partner/activity/{merchantID}", s.getMerchantActivity()).Methods("GET")

	// Receives the events pushed for the checkout topic
	router.HandleFunc("/api/partner/event", s.handleEventEnvelope()).Methods("POST")

	err := s.service.CreateTopics(c)
	if err != nil {
		return err
	}

	return s.service.Subscribe(c)
}

func (s *webService) handleEventEnvelope() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := checkoutevents.DispatchEvent(c, r.Body, s.service)
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed event",
		})
	}
}

func (s *webService) getMerchantActivity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		activity, err := s.service.getMerchantActivity(c, mux.Vars(r)["merchantID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, activity)
	}
}

func (s *webService) createReferral() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		opts, err := s.resolvedOptions(c, r, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp, err := s.service.createReferral(c, sessionUID, opts)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) getSellerStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]

		opts, err := s.resolvedOptions(c, r, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp, err := s.service.getSellerStatus(c, sessionUID, mux.Vars(r)["merchantID"], opts)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) resolvedOptions(c context.Context, r *http.Request, sessionUID string) (checkoutapi.CheckoutOptions, error) {
	err := r.ParseForm()
	if err != nil {
		return checkoutapi.CheckoutOptions{}, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err))
	}

	authHeader, err := s.service.relay.Get(c, sessionUID)
	if err != nil {
		return checkoutapi.CheckoutOptions{}, myerrors.NewInternalError(fmt.Errorf("error reading auth header: %s", err))
	}

	opts, err := checkoutapi.NewFromValues(r.Form)
	if err != nil {
		return opts, myerrors.NewInvalidInputError(err)
	}

	return checkoutapi.Resolve(r.Form, opts.PartnerMerchantIdentity, authHeader)
}
