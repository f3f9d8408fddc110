package checkoutevents

const (
	TopicName                = "checkout"
	orderCreatedName         = TopicName + ".orderCreated"
	orderCapturedName        = TopicName + ".orderCaptured"
	orderDeclinedName        = TopicName + ".orderDeclined"
	paymentTokenCreatedName  = TopicName + ".paymentTokenCreated"
	referralCreatedEventName = TopicName + ".referralCreated"
)

type OrderCreated struct {
	SessionUID    string
	OrderID       string
	Intent        string
	Currency      string
	PaymentSource string
	MerchantID    string
}

func (e OrderCreated) GetEventTypeName() string {
	return orderCreatedName
}

func (e OrderCreated) GetAggregateName() string {
	return e.SessionUID
}

type OrderCaptured struct {
	SessionUID    string
	OrderID       string
	CaptureID     string
	CaptureStatus string
	MerchantID    string
}

func (e OrderCaptured) GetEventTypeName() string {
	return orderCapturedName
}

func (e OrderCaptured) GetAggregateName() string {
	return e.SessionUID
}

type OrderDeclined struct {
	SessionUID string
	OrderID    string
	Reason     string
	MerchantID string
}

func (e OrderDeclined) GetEventTypeName() string {
	return orderDeclinedName
}

func (e OrderDeclined) GetAggregateName() string {
	return e.SessionUID
}

type PaymentTokenCreated struct {
	SessionUID     string
	SetupTokenID   string
	PaymentTokenID string
	CustomerID     string
}

func (e PaymentTokenCreated) GetEventTypeName() string {
	return paymentTokenCreatedName
}

func (e PaymentTokenCreated) GetAggregateName() string {
	return e.SessionUID
}

type ReferralCreated struct {
	TrackingID string
	ActionURL  string
}

func (e ReferralCreated) GetEventTypeName() string {
	return referralCreatedEventName
}

func (e ReferralCreated) GetAggregateName() string {
	return e.TrackingID
}
