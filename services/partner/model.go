package partner

import "time"

// MerchantActivity aggregates what happened for one onboarded seller, fed by
// the events on the checkout topic.
type MerchantActivity struct {
	MerchantID     string
	OrdersCreated  int
	OrdersCaptured int
	OrdersDeclined int
	LastActivityAt *time.Time
}
