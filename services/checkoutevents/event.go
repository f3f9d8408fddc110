package checkoutevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MarcGrol/partnercheckout/lib/myerrors"
	"github.com/MarcGrol/partnercheckout/lib/myevents"
)

// CheckoutEventService is implemented by subscribers of the checkout topic.
type CheckoutEventService interface {
	Subscribe(c context.Context) error
	OnOrderCreated(c context.Context, topic string, event OrderCreated) error
	OnOrderCaptured(c context.Context, topic string, event OrderCaptured) error
	OnOrderDeclined(c context.Context, topic string, event OrderDeclined) error
	OnPaymentTokenCreated(c context.Context, topic string, event PaymentTokenCreated) error
	OnReferralCreated(c context.Context, topic string, event ReferralCreated) error
}

func DispatchEvent(c context.Context, reader io.Reader, service CheckoutEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case orderCreatedName:
		{
			event := OrderCreated{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnOrderCreated(c, envelope.Topic, event)
		}
	case orderCapturedName:
		{
			event := OrderCaptured{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnOrderCaptured(c, envelope.Topic, event)
		}
	case orderDeclinedName:
		{
			event := OrderDeclined{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnOrderDeclined(c, envelope.Topic, event)
		}
	case paymentTokenCreatedName:
		{
			event := PaymentTokenCreated{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnPaymentTokenCreated(c, envelope.Topic, event)
		}
	case referralCreatedEventName:
		{
			event := ReferralCreated{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnReferralCreated(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("unknown event type %s", envelope.EventTypeName))
	}
}
