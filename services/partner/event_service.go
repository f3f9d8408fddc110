package partner

import (
	"context"
	"fmt"

	"github.com/MarcGrol/partnercheckout/lib/myerrors"
	"github.com/MarcGrol/partnercheckout/lib/myhttp"
	"github.com/MarcGrol/partnercheckout/lib/mylog"
	"github.com/MarcGrol/partnercheckout/services/checkoutevents"
)

func (s *service) Subscribe(c context.Context) error {
	err := s.subscriber.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}

	err = s.subscriber.Subscribe(c, checkoutevents.TopicName, myhttp.GuessHostnameWithScheme()+"/api/partner/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", checkoutevents.TopicName, err)
	}

	return nil
}

func (s *service) OnOrderCreated(c context.Context, topic string, event checkoutevents.OrderCreated) error {
	return s.bumpActivity(c, event.MerchantID, func(activity *MerchantActivity) {
		activity.OrdersCreated++
	})
}

func (s *service) OnOrderCaptured(c context.Context, topic string, event checkoutevents.OrderCaptured) error {
	return s.bumpActivity(c, event.MerchantID, func(activity *MerchantActivity) {
		activity.OrdersCaptured++
	})
}

func (s *service) OnOrderDeclined(c context.Context, topic string, event checkoutevents.OrderDeclined) error {
	return s.bumpActivity(c, event.MerchantID, func(activity *MerchantActivity) {
		activity.OrdersDeclined++
	})
}

func (s *service) OnPaymentTokenCreated(c context.Context, topic string, event checkoutevents.PaymentTokenCreated) error {
	s.logger.Log(c, event.SessionUID, mylog.SeverityInfo, "Payment token %s vaulted for customer %s", event.PaymentTokenID, event.CustomerID)
	return nil
}

func (s *service) OnReferralCreated(c context.Context, topic string, event checkoutevents.ReferralCreated) error {
	s.logger.Log(c, event.TrackingID, mylog.SeverityInfo, "Referral issued: %s", event.ActionURL)
	return nil
}

// bumpActivity folds one event into the per-merchant aggregate. Events for
// checkouts without a merchant id are not attributable and are skipped.
func (s *service) bumpActivity(c context.Context, merchantID string, apply func(activity *MerchantActivity)) error {
	if merchantID == "" {
		return nil
	}

	return s.activityStore.RunInTransaction(c, func(c context.Context) error {
		activity, exists, err := s.activityStore.Get(c, merchantID)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error fetching activity of merchant %s: %s", merchantID, err))
		}
		if !exists {
			activity = MerchantActivity{MerchantID: merchantID}
		}

		apply(&activity)
		now := s.nower.Now()
		activity.LastActivityAt = &now

		err = s.activityStore.Put(c, merchantID, activity)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing activity of merchant %s: %s", merchantID, err))
		}
		return nil
	})
}
