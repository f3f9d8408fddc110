// Package statuses offers the admin lookups behind the debug panel: orders,
// authorizations, captures, refunds and the vault token administration. These
// calls do not move any checkout forward; their value is the transcript and,
// as with every platform call, the rotated auth header they relay.
package statuses

import (
	"context"
	"fmt"

	"github.com/MarcGrol/partnercheckout/lib/myerrors"
	"github.com/MarcGrol/partnercheckout/lib/mylog"
	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
	"github.com/MarcGrol/partnercheckout/services/credentials"
	"github.com/MarcGrol/partnercheckout/services/platformapi"
	"github.com/MarcGrol/partnercheckout/services/transcript"
)

type service struct {
	relay    credentials.Relay
	platform platformapi.Client
	recorder transcript.Recorder
	logger   mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newCommandService(relay credentials.Relay, platform platformapi.Client, recorder transcript.Recorder, logger mylog.Logger) *service {
	return &service{
		relay:    relay,
		platform: platform,
		recorder: recorder,
		logger:   logger,
	}
}

type lookupFunc func(c context.Context, id string, opts checkoutapi.CheckoutOptions) (platformapi.LookupResult, error)

// lookup runs one admin call and applies the shared post-processing: relay
// the header, record the transcript.
func (s *service) lookup(c context.Context, sessionUID string, id string, what string, call lookupFunc, opts checkoutapi.CheckoutOptions) (platformapi.LookupResult, error) {
	if id == "" {
		return platformapi.LookupResult{}, myerrors.NewInvalidInputError(fmt.Errorf("missing %s id", what))
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Lookup %s %s", what, id)

	resp, err := call(c, id, opts)
	if err != nil {
		return resp, myerrors.NewInternalError(fmt.Errorf("error on %s %s: %s", what, id, err))
	}

	err = s.relayAndRecord(c, sessionUID, resp.Result)
	if err != nil {
		return resp, err
	}

	return resp, nil
}

func (s *service) getOrder(c context.Context, sessionUID string, orderID string, opts checkoutapi.CheckoutOptions) (platformapi.StatusResult, error) {
	if orderID == "" {
		return platformapi.StatusResult{}, myerrors.NewInvalidInputError(fmt.Errorf("missing order id"))
	}

	resp, err := s.platform.GetOrderStatus(c, orderID, opts)
	if err != nil {
		return resp, myerrors.NewInternalError(fmt.Errorf("error fetching order %s: %s", orderID, err))
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
