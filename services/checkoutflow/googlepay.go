package checkoutflow

import (
	"context"

	"github.com/MarcGrol/partnercheckout/lib/mylog"
	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
)

// GooglePayOutcome is the structured answer handed back to the wallet sheet.
// It always carries a transaction state; failures carry the error detail
// instead of being propagated.
type GooglePayOutcome struct {
	TransactionState string          `json:"transactionState"`
	Error            *GooglePayError `json:"error,omitempty"`
}

type GooglePayError struct {
	Intent  string `json:"intent"`
	Message string `json:"message"`
}

const (
	googlePaySuccess = "SUCCESS"
	googlePayError   = "ERROR"

	statusPayerActionRequired = "PAYER_ACTION_REQUIRED"
	statusApproved            = "APPROVED"
	statusCompleted           = "COMPLETED"
)

// googlePayConfirm runs the wallet confirmation: confirm the order with the
// wallet's payment data, walk the payer through a contingency when the
// platform asks for it, then capture. Whatever goes wrong, the wallet sheet
// gets an ERROR outcome rather than an exception.
func (s *service) googlePayConfirm(c context.Context, session checkoutapi.CheckoutSession, opts checkoutapi.CheckoutOptions, paymentMethodData string) (checkoutapi.CheckoutSession, GooglePayOutcome) {
	s.logger.Log(c, session.UID, mylog.SeverityInfo, "Confirm order %s with wallet payment data", session.OrderID)

	if session.OrderID == "" {
		return session, paymentAuthorizationError("no order to confirm")
	}

	confirmResp, err := s.platform.ConfirmOrder(c, session.OrderID, paymentMethodData, opts)
	if err != nil {
		session, _ = s.storeState(c, session, checkoutapi.StateFailed)
		return session, paymentAuthorizationError(err.Error())
	}
	err = s.relayAndRecord(c, session.UID, confirmResp.Result)
	if err != nil {
		return session, paymentAuthorizationError(err.Error())
	}

	opts, err = s.withFreshAuthHeader(c, session.UID, opts)
	if err != nil {
		return session, paymentAuthorizationError(err.Error())
	}

	status := confirmResp.Status
	if status == statusPayerActionRequired {
		session, status, err = s.resolvePayerAction(c, session, opts)
		if err != nil {
			return session, paymentAuthorizationError(err.Error())
		}
	}

	if status != statusApproved && status != statusCompleted {
		session, _ = s.storeState(c, session, checkoutapi.StateFailed)
		return session, paymentAuthorizationError("order confirmation ended in status " + status)
	}

	session, _ = s.storeState(c, session, checkoutapi.StateApproved)

	opts, err = s.withFreshAuthHeader(c, session.UID, opts)
	if err != nil {
		return session, captureError(err.Error())
	}

	session, captureResp, err := s.captureOrder(c, session, opts)
	if err != nil {
		return session, captureError(err.Error())
	}
	if captureResp.CaptureStatus != statusCompleted {
		return session, captureError("capture ended in status " + captureResp.CaptureStatus)
	}

	session, _ = s.storeState(c, session, checkoutapi.StateDone)

	return session, GooglePayOutcome{TransactionState: googlePaySuccess}
}

// resolvePayerAction sends the payer through the requested contingency and
// re-polls the order until the platform reports the post-action status.
func (s *service) resolvePayerAction(c context.Context, session checkoutapi.CheckoutSession, opts checkoutapi.CheckoutOptions) (checkoutapi.CheckoutSession, string, error) {
	s.logger.Log(c, session.UID, mylog.SeverityInfo, "Order %s requires a payer action", session.OrderID)

	session, _ = s.storeState(c, session, checkoutapi.StateContingencyPending)

	actionResp, err := s.platform.InitiatePayerAction(c, session.OrderID, opts)
	if err != nil {
		session, _ = s.storeState(c, session, checkoutapi.StateFailed)
		return session, "", err
	}
	err = s.relayAndRecord(c, session.UID, actionResp.Result)
	if err != nil {
		return session, "", err
	}

	opts, err = s.withFreshAuthHeader(c, session.UID, opts)
	if err != nil {
		return session, "", err
	}

	statusResp, err := s.platform.GetOrderStatus(c, session.OrderID, opts)
	if err != nil {
		session, _ = s.storeState(c, session, checkoutapi.StateFailed)
		return session, "", err
	}
	err = s.relayAndRecord(c, session.UID, statusResp.Result)
	if err != nil {
		return session, "", err
	}

	return session, statusResp.Status, nil
}

func paymentAuthorizationError(message string) GooglePayOutcome {
	return GooglePayOutcome{
		TransactionState: googlePayError,
		Error: &GooglePayError{
			Intent:  "PAYMENT_AUTHORIZATION",
			Message: message,
		},
	}
}

func captureError(message string) GooglePayOutcome {
	return GooglePayOutcome{
		TransactionState: googlePayError,
		Error: &GooglePayError{
			Intent:  "CAPTURE",
			Message: message,
		},
	}
}
