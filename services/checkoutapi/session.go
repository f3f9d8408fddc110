package checkoutapi

import "time"

// SessionState tracks where a checkout attempt is in its lifecycle.
type SessionState string

const (
	StateIdle               SessionState = "idle"
	StateOrderCreated       SessionState = "order-created"
	StateContingencyPending SessionState = "contingency-pending"
	StateApproved           SessionState = "approved"
	StateCaptured           SessionState = "captured"
	StateVaultTokenIssued   SessionState = "vault-token-issued"
	StateDone               SessionState = "done"
	StateDeclined           SessionState = "declined"
	StateFailed             SessionState = "failed"
)

// CheckoutSession is the per-attempt value object. Each flow step receives it,
// returns the updated copy and the caller re-stores it; no step mutates
// shared state through captured references.
type CheckoutSession struct {
	UID            string
	Variant        FlowVariant
	State          SessionState
	CreatedAt      time.Time
	LastModified   *time.Time
	OrderID        string
	AuthID         string
	CaptureID      string
	CaptureStatus  string
	SetupTokenID   string
	PaymentTokenID string
}

func NewCheckoutSession(uid string, variant FlowVariant, now time.Time) CheckoutSession {
	return CheckoutSession{
		UID:       uid,
		Variant:   variant,
		State:     StateIdle,
		CreatedAt: now,
	}
}

// SavedOptions are the form values persisted across page reloads for one
// browser session. The auth header is deliberately never saved.
type SavedOptions struct {
	SessionUID   string
	Values       map[string]string `datastore:",noindex"`
	LastModified *time.Time
}
