// Package partner covers the onboarding side: creating a partner referral for
// a prospective seller and checking how far a seller got with onboarding.
package partner

import (
	"context"
	"fmt"

	"github.com/MarcGrol/partnercheckout/lib/myerrors"
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

type service struct {
	relay         credentials.Relay
	platform      platformapi.Client
	recorder      transcript.Recorder
	activityStore mystore.Store[MerchantActivity]
	subscriber    mypubsub.PubSub
	publisher     mypublisher.Publisher
	nower         mytime.Nower
	logger        mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newCommandService(relay credentials.Relay, platform platformapi.Client, recorder transcript.Recorder,
	activityStore mystore.Store[MerchantActivity], subscriber mypubsub.PubSub, publisher mypublisher.Publisher,
	nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		relay:         relay,
		platform:      platform,
		recorder:      recorder,
		activityStore: activityStore,
		subscriber:    subscriber,
		publisher:     publisher,
		nower:         nower,
		logger:        logger,
	}
}

func (s *service) getMerchantActivity(c context.Context, merchantID string) (MerchantActivity, error) {
	activity, exists, err := s.activityStore.Get(c, merchantID)
	if err != nil {
		return activity, myerrors.NewInternalError(fmt.Errorf("error fetching activity of merchant %s: %s", merchantID, err))
	}
	if !exists {
		return MerchantActivity{MerchantID: merchantID}, nil
	}
	return activity, nil
}

func (s *service) CreateTopics(c context.Context) error {
	err := s.publisher.CreateTopic(c, checkoutevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", checkoutevents.TopicName, err)
	}
	return nil
}

// createReferral asks the platform for a sign-up link. A response without an
// action url means the partner account is misconfigured: surfaced, never
// silently redirected nowhere.
func (s *service) createReferral(c context.Context, sessionUID string, opts checkoutapi.CheckoutOptions) (platformapi.ReferralResult, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Create referral for partner %s", opts.PartnerID)

	resp, err := s.platform.CreateReferral(c, opts)
	if err != nil {
		return resp, myerrors.NewInternalError(fmt.Errorf("error creating referral: %s", err))
	}

	err = s.relayAndRecord(c, sessionUID, resp.Result)
	if err != nil {
		return resp, err
	}

	if resp.ActionURL == "" {
		return resp, myerrors.NewInternalError(fmt.Errorf("referral response carried no action url: check the partner configuration"))
	}

	err = s.publisher.Publish(c, checkoutevents.TopicName, checkoutevents.ReferralCreated{
		TrackingID: sessionUID,
		ActionURL:  resp.ActionURL,
	})
	if err != nil {
		return resp, myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
	}

	return resp, nil
}

func (s *service) getSellerStatus(c context.Context, sessionUID string, merchantID string, opts checkoutapi.CheckoutOptions) (platformapi.LookupResult, error) {
	if merchantID == "" {
		return platformapi.LookupResult{}, myerrors.NewInvalidInputError(fmt.Errorf("missing merchant id"))
	}

	resp, err := s.platform.GetSellerStatus(c, merchantID, opts)
	if err != nil {
		return resp, myerrors.NewInternalError(fmt.Errorf("error fetching status of seller %s: %s", merchantID, err))
	}

	err = s.relayAndRecord(c, sessionUID, resp.Result)
	if err != nil {
		return resp, err
	}

	return resp, nil
}

func (s *service) relayAndRecord(c context.Context, sessionUID string, result platformapi.Result) error {
	err := s.relay.Set(c, sessionUID, result.AuthHeader)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error relaying auth header: %s", err))
	}

	exchanges := map[string]transcript.Exchange{}
	for label, t := range result.Formatted {
		exchanges[label] = transcript.Exchange{
			Label:  label,
			Human:  t.Human,
			Replay: t.Replay,
		}
	}
	err = s.recorder.RecordAll(c, sessionUID, exchanges)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error recording transcript: %s", err))
	}
	return nil
}
