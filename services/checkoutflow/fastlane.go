package checkoutflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/MarcGrol/partnercheckout/lib/myerrors"
	"github.com/MarcGrol/partnercheckout/lib/mylog"
	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
	"github.com/MarcGrol/partnercheckout/services/platformapi"
)

// FastlaneIdentity answers whether an email belongs to a recognized buyer and
// runs the authentication challenge for recognized ones.
//
//go:generate mockgen -source=fastlane.go -package checkoutflow -destination fastlane_mock.go FastlaneIdentity
type FastlaneIdentity interface {
	// LookupCustomerByEmail returns the customer context id, or empty when
	// the email is not recognized.
	LookupCustomerByEmail(c context.Context, email string, opts checkoutapi.CheckoutOptions) (string, error)
	// TriggerAuthenticationFlow challenges the recognized buyer.
	TriggerAuthenticationFlow(c context.Context, customerContextID string, opts checkoutapi.CheckoutOptions) (FastlaneAuthentication, error)
}

type FastlaneAuthentication struct {
	Succeeded       bool
	ProfileName     string
	ShippingAddress string
}

// FastlaneProfile is what the page renders after the email lookup: either the
// recognized buyer's profile or the guest defaults.
type FastlaneProfile struct {
	Mode            string `json:"mode"`
	Name            string `json:"name"`
	ShippingAddress string `json:"shippingAddress"`
}

const (
	fastlaneModeReturning = "returning"
	fastlaneModeGuest     = "guest"

	guestProfileName     = "Guest"
	guestShippingAddress = "1 Main St, San Jose, CA 95131"
)

// fastlaneLookup decides the sub-flow before anything renders: a recognized
// email whose authentication succeeds gets the returning-buyer treatment,
// everything else falls back to guest.
func (s *service) fastlaneLookup(c context.Context, session checkoutapi.CheckoutSession, opts checkoutapi.CheckoutOptions, email string) (checkoutapi.CheckoutSession, FastlaneProfile, error) {
	if email == "" {
		return session, FastlaneProfile{}, myerrors.NewInvalidInputError(fmt.Errorf("email is required for the profile lookup"))
	}

	customerContextID, err := s.identity.LookupCustomerByEmail(c, email, opts)
	if err != nil {
		return session, FastlaneProfile{}, myerrors.NewInternalError(fmt.Errorf("error looking up %s: %s", email, err))
	}

	if customerContextID != "" {
		auth, err := s.identity.TriggerAuthenticationFlow(c, customerContextID, opts)
		if err == nil && auth.Succeeded {
			session.Variant = checkoutapi.FlowFastlaneReturning
			session, _ = s.storeState(c, session, session.State)
			return session, FastlaneProfile{
				Mode:            fastlaneModeReturning,
				Name:            auth.ProfileName,
				ShippingAddress: auth.ShippingAddress,
			}, nil
		}
		if err != nil {
			s.logger.Log(c, session.UID, mylog.SeverityWarn, "Authentication of %s failed, continuing as guest: %s", email, err)
		} else {
			s.logger.Log(c, session.UID, mylog.SeverityInfo, "Buyer %s cancelled authentication, continuing as guest", email)
		}
	}

	session.Variant = checkoutapi.FlowFastlaneGuest
	session, _ = s.storeState(c, session, session.State)

	return session, FastlaneProfile{
		Mode:            fastlaneModeGuest,
		Name:            guestProfileName,
		ShippingAddress: guestShippingAddress,
	}, nil
}

// fastlanePay charges the single-use payment token issued by the profile
// component. Order creation may capture in one go; otherwise an explicit
// capture follows, reusing the authorization when the intent asked for one.
func (s *service) fastlanePay(c context.Context, session checkoutapi.CheckoutSession, opts checkoutapi.CheckoutOptions, singleUseToken string) (checkoutapi.CheckoutSession, platformapi.OrderResult, error) {
	if singleUseToken == "" {
		return session, platformapi.OrderResult{}, myerrors.NewInvalidInputError(fmt.Errorf("missing single-use payment token"))
	}

	opts.SingleUseToken = singleUseToken

	session, orderResp, err := s.createOrder(c, session, opts, "card")
	if err != nil {
		return session, orderResp, err
	}

	if orderResp.CaptureID != "" {
		session.CaptureID = orderResp.CaptureID
		session.CaptureStatus = orderResp.CaptureStatus
		session, _ = s.storeState(c, session, checkoutapi.StateCaptured)
		return session, orderResp, nil
	}

	if strings.EqualFold(opts.Intent, "AUTHORIZE") {
		opts.AuthID = orderResp.AuthID
	}
	opts, err = s.withFreshAuthHeader(c, session.UID, opts)
	if err != nil {
		return session, orderResp, err
	}
	session, _, err = s.captureOrder(c, session, opts)
	if err != nil {
		return session, orderResp, err
	}

	return session, orderResp, nil
}

// staticIdentity recognizes a fixed set of emails. Good enough for demo and
// test traffic; a real deployment swaps in the platform's identity service.
type staticIdentity struct {
	profiles map[string]FastlaneAuthentication
}

func NewStaticIdentity(profiles map[string]FastlaneAuthentication) FastlaneIdentity {
	return &staticIdentity{profiles: profiles}
}

func (i *staticIdentity) LookupCustomerByEmail(c context.Context, email string, opts checkoutapi.CheckoutOptions) (string, error) {
	_, exists := i.profiles[strings.ToLower(email)]
	if !exists {
		return "", nil
	}
	return "ctx-" + strings.ToLower(email), nil
}

func (i *staticIdentity) TriggerAuthenticationFlow(c context.Context, customerContextID string, opts checkoutapi.CheckoutOptions) (FastlaneAuthentication, error) {
	email := strings.TrimPrefix(customerContextID, "ctx-")
	auth, exists := i.profiles[email]
	if !exists {
		return FastlaneAuthentication{}, fmt.Errorf("unknown customer context %s", customerContextID)
	}
	return auth, nil
}
