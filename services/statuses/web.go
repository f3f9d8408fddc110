package statuses

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/partnercheckout/lib/mycontext"
	"github.com/MarcGrol/partnercheckout/lib/myerrors"
	"github.com/MarcGrol/partnercheckout/lib/myhttp"
	"github.com/MarcGrol/partnercheckout/lib/mylog"
	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
	"github.com/MarcGrol/partnercheckout/services/credentials"
	"github.com/MarcGrol/partnercheckout/services/platformapi"
	"github.com/MarcGrol/partnercheckout/services/transcript"
)

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(relay credentials.Relay, platform platformapi.Client, recorder transcript.Recorder) *webService {
	logger := mylog.New("statuses")
	return &webService{
		logger:  logger,
		service: newCommandService(relay, platform, recorder, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/admin/{sessionUID}/orders/{orderID}", s.getOrder()).Methods("GET")
	router.HandleFunc("/api/admin/{sessionUID}/authorizations/{authID}", s.getAuthorization()).Methods("GET")
	router.HandleFunc("/api/admin/{sessionUID}/captures/{captureID}", s.getCapture()).Methods("GET")
	router.HandleFunc("/api/admin/{sessionUID}/captures/{captureID}/refund", s.refundCapture()).Methods("POST")
	router.HandleFunc("/api/admin/{sessionUID}/payment-tokens/{tokenID}", s.getPaymentToken()).Methods("GET")
	router.HandleFunc("/api/admin/{sessionUID}/payment-tokens/{tokenID}", s.deletePaymentToken()).Methods("DELETE")
	router.HandleFunc("/api/admin/{sessionUID}/customers/{customerID}/tokens", s.getCustomerTokens()).Methods("GET")

	return nil
}

func (s *webService) getOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]
		opts, err := s.resolvedOptions(c, r, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp, err := s.service.getOrder(c, sessionUID, mux.Vars(r)["orderID"], opts)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) getAuthorization() http.HandlerFunc {
	return s.lookupHandler("authID", "authorization", func(c context.Context, id string, opts checkoutapi.CheckoutOptions) (platformapi.LookupResult, error) {
		return s.service.platform.GetAuthorization(c, id, opts)
	})
}

func (s *webService) getCapture() http.HandlerFunc {
	return s.lookupHandler("captureID", "capture", func(c context.Context, id string, opts checkoutapi.CheckoutOptions) (platformapi.LookupResult, error) {
		return s.service.platform.GetCapture(c, id, opts)
	})
}

func (s *webService) refundCapture() http.HandlerFunc {
	return s.lookupHandler("captureID", "refund of capture", func(c context.Context, id string, opts checkoutapi.CheckoutOptions) (platformapi.LookupResult, error) {
		return s.service.platform.RefundCapture(c, id, opts)
	})
}

func (s *webService) getPaymentToken() http.HandlerFunc {
	return s.lookupHandler("tokenID", "payment token", func(c context.Context, id string, opts checkoutapi.CheckoutOptions) (platformapi.LookupResult, error) {
		return s.service.platform.GetPaymentToken(c, id, opts)
	})
}

func (s *webService) deletePaymentToken() http.HandlerFunc {
	return s.lookupHandler("tokenID", "deletion of payment token", func(c context.Context, id string, opts checkoutapi.CheckoutOptions) (platformapi.LookupResult, error) {
		return s.service.platform.DeletePaymentToken(c, id, opts)
	})
}

func (s *webService) getCustomerTokens() http.HandlerFunc {
	return s.lookupHandler("customerID", "tokens of customer", func(c context.Context, id string, opts checkoutapi.CheckoutOptions) (platformapi.LookupResult, error) {
		return s.service.platform.GetCustomerTokens(c, id, opts)
	})
}

func (s *webService) lookupHandler(pathVar string, what string, call lookupFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		sessionUID := mux.Vars(r)["sessionUID"]
		opts, err := s.resolvedOptions(c, r, sessionUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp, err := s.service.lookup(c, sessionUID, mux.Vars(r)[pathVar], what, call, opts)
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
