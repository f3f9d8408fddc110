package checkoutflow

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/partnercheckout/lib/mycontext"
	"github.com/MarcGrol/partnercheckout/lib/myerrors"
	"github.com/MarcGrol/partnercheckout/lib/myhttp"
	"github.com/MarcGrol/partnercheckout/lib/mylog"
	"github.com/MarcGrol/partnercheckout/lib/mypublisher"
	"github.com/MarcGrol/partnercheckout/lib/myqueue"
	"github.com/MarcGrol/partnercheckout/lib/mystore"
	"github.com/MarcGrol/partnercheckout/lib/mytime"
	"github.com/MarcGrol/partnercheckout/lib/myuuid"
	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
	"github.com/MarcGrol/partnercheckout/services/credentials"
	"github.com/MarcGrol/partnercheckout/services/platformapi"
	"github.com/MarcGrol/partnercheckout/services/rebinder"
	"github.com/MarcGrol/partnercheckout/services/sdkloader"
	"github.com/MarcGrol/partnercheckout/services/transcript"
)

//go:embed templates
var templateFolder embed.FS
var (
	checkoutPageTemplate *template.Template
)

func init() {
	checkoutPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/checkout.html"))
}

type webService struct {
	logger   mylog.Logger
	service  *service
	recorder transcript.Recorder
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(sessionStore mystore.Store[checkoutapi.CheckoutSession], optionsStore mystore.Store[checkoutapi.SavedOptions],
	relay credentials.Relay, platform platformapi.Client, recorder transcript.Recorder, scripts scriptBuilder,
	identity FastlaneIdentity, binder *rebinder.Rebinder, queue myqueue.TaskQueuer, publisher mypublisher.Publisher,
	nower mytime.Nower, uuider myuuid.UUIDer) *webService {
	logger := mylog.New("checkoutflow")
	return &webService{
		logger: logger,
		service: newCommandService(sessionStore, optionsStore, relay, platform, recorder, scripts,
			identity, binder, queue, publisher, nower, uuider, logger),
		recorder: recorder,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	// Pages
	router.HandleFunc("/checkout/{variant}", s.startCheckoutPage()).Methods("POST")
	router.HandleFunc("/checkout/session/{sessionUID}", s.resumeCheckoutPage()).Methods("GET")

	// Flow steps, called by the page
	router.HandleFunc("/api/checkout/{sessionUID}/order", s.createOrder()).Methods("POST")
	router.HandleFunc("/api/checkout/{sessionUID}/order/capture", s.captureOrder()).Methods("POST")
	router.HandleFunc("/api/checkout/{sessionUID}/vault/setup-token", s.createVaultSetupToken()).Methods("POST")
	router.HandleFunc("/api/checkout/{sessionUID}/vault/payment-token", s.createVaultPaymentToken()).Methods("POST")
	router.HandleFunc("/api/checkout/{sessionUID}/googlepay/confirm", s.googlePayConfirm()).Methods("POST")
	router.HandleFunc("/api/checkout/{sessionUID}/fastlane/lookup", s.fastlaneLookup()).Methods("POST")
	router.HandleFunc("/api/checkout/{sessionUID}/fastlane/pay", s.fastlanePay()).Methods("POST")
	router.HandleFunc("/api/checkout/{sessionUID}/buyer-not-present", s.buyerNotPresent()).Methods("POST")

	// Debug panel and deferred status refresh (also the task-queue webhook)
	router.HandleFunc("/api/checkout/{sessionUID}/status", s.getStatus()).Methods("GET", "POST", "PUT")
	router.HandleFunc("/api/checkout/{sessionUID}/transcript", s.listTranscript()).Methods("GET")

	// Options persistence
	router.HandleFunc("/api/checkout/{sessionUID}/options", s.saveOptions()).Methods("PUT")
	router.HandleFunc("/api/checkout/{sessionUID}/options", s.loadOptions()).Methods("GET")

	return s.service.CreateTopics(c)
}

type checkoutPage struct {
	BaseURL          string
	Session          checkoutapi.CheckoutSession
	Options          checkoutapi.CheckoutOptions
	Script           sdkloader.ScriptSpec
	ScriptAttributes template.HTMLAttr
	Bundle           CallbackBundle
	Transcripts      []transcript.Exchange
}

// scriptAttributes renders the data-attributes for the script tag. Attribute
// names cannot be dynamic inside html/template, so they are composed here.
func scriptAttributes(attrs map[string]string) template.HTMLAttr {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%q", name, attrs[name]))
	}
	return template.HTMLAttr(strings.Join(parts, " "))
}

// startCheckoutPage creates a session for the chosen variant and renders the
// page with the SDK bootstrap and the callback bundle for that variant.
func (s *webService) startCheckoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		variant, err := checkoutapi.ParseFlowVariant(mux.Vars(r)["variant"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		opts, err := checkoutapi.NewFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err)))
			return
		}

		session, err := s.service.startSession(c, variant)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		s.renderPage(c, w, errorWriter, myhttp.HostnameWithScheme(r), session, opts)
	}
}

func (s *webService) resumeCheckoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		session, err := s.service.getSession(c, mux.Vars(r)["sessionUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		savedValues, err := s.service.loadOptions(c, session.UID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}
		opts := checkoutapi.CheckoutOptions{}
		if len(savedValues) > 0 {
			values := make(url.Values, len(savedValues))
			for key, value := range savedValues {
				values[key] = []string{value}
			}
			opts, err = checkoutapi.NewFromValues(values)
			if err != nil {
				errorWriter.WriteError(c, w, 3, myerrors.NewInternalError(err))
				return
			}
		}

		s.renderPage(c, w, errorWriter, myhttp.HostnameWithScheme(r), session, opts)
	}
}

func (s *webService) renderPage(c context.Context, w http.ResponseWriter, errorWriter myhttp.ResponseWriter, baseURL string, session checkoutapi.CheckoutSession, opts checkoutapi.CheckoutOptions) {
	resolved, err := s.service.resolveOptions(c, session.UID, opts)
	if err != nil {
		errorWriter.WriteError(c, w, 4, err)
		return
	}

	spec, err := s.service.scripts.Build(c, session.UID, resolved, session.Variant)
	if err != nil {
		errorWriter.WriteError(c, w, 5, err)
		return
	}

	entries, err := s.recorder.List(c, session.UID)
	if err != nil {
		errorWriter.WriteError(c, w, 6, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = checkoutPageTemplate.Execute(w, checkoutPage{
		BaseURL:          baseURL,
		Session:          session,
		Options:          resolved,
		Script:           spec,
		ScriptAttributes: scriptAttributes(spec.Attributes),
		Bundle:           BundleFor(session.Variant, resolved),
		Transcripts:      entries,
	})
	if err != nil {
		errorWriter.WriteError(c, w, 7, myerrors.NewInternalError(fmt.Errorf("error executing template: %s", err)))
		return
	}
}

// sessionAndOptions loads the session and re-resolves the options from the
// request body plus the relayed auth header.
func (s *webService) sessionAndOptions(c context.Context, r *http.Request) (checkoutapi.CheckoutSession, checkoutapi.CheckoutOptions, error) {
	session, err := s.service.getSession(c, mux.Vars(r)["sessionUID"])
	if err != nil {
		return session, checkoutapi.CheckoutOptions{}, err
	}

	opts, err := checkoutapi.NewFromRequest(r)
	if err != nil {
		return session, opts, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err))
	}

	resolved, err := s.service.resolveOptions(c, session.UID, opts)
	if err != nil {
		return session, opts, err
	}
	return session, resolved, nil
}

func (s *webService) createOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		session, opts, err := s.sessionAndOptions(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		_, resp, err := s.service.createOrder(c, session, opts, r.FormValue("payment-source"))
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) captureOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		session, opts, err := s.sessionAndOptions(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		session, resp, err := s.service.captureOrder(c, session, opts)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		if session.State == checkoutapi.StateDeclined {
			// Recoverable: tell the page to restart the buttons.
			errorWriter.Write(c, w, http.StatusOK, map[string]any{
				"restart": true,
				"reason":  resp.Error,
			})
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) createVaultSetupToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		session, opts, err := s.sessionAndOptions(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		_, resp, err := s.service.createVaultSetupToken(c, session, opts)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) createVaultPaymentToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		session, opts, err := s.sessionAndOptions(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		_, resp, err := s.service.createVaultPaymentToken(c, session, opts, r.FormValue("setup-token-id"))
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) googlePayConfirm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		session, opts, err := s.sessionAndOptions(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		// Always answers 200 with a structured outcome: the wallet sheet
		// decides what to show.
		_, outcome := s.service.googlePayConfirm(c, session, opts, r.FormValue("payment-method-data"))
		errorWriter.Write(c, w, http.StatusOK, outcome)
	}
}

func (s *webService) fastlaneLookup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		session, opts, err := s.sessionAndOptions(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		_, profile, err := s.service.fastlaneLookup(c, session, opts, r.FormValue("email"))
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, profile)
	}
}

func (s *webService) fastlanePay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		session, opts, err := s.sessionAndOptions(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		_, resp, err := s.service.fastlanePay(c, session, opts, r.FormValue("single-use-token"))
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) buyerNotPresent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		session, opts, err := s.sessionAndOptions(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		_, resp, err := s.service.buyerNotPresentCheckout(c, session, opts)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) getStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		session, opts, err := s.sessionAndOptions(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp, err := s.service.getStatus(c, session, opts)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) listTranscript() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		entries, err := s.recorder.List(c, mux.Vars(r)["sessionUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, entries)
	}
}

func (s *webService) saveOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		err = s.service.saveOptions(c, mux.Vars(r)["sessionUID"], r.Form)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{Message: "options saved"})
	}
}

func (s *webService) loadOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		values, err := s.service.loadOptions(c, mux.Vars(r)["sessionUID"])
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, values)
	}
}
