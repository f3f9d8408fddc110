package checkoutflow

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MarcGrol/partnercheckout/lib/myerrors"
	"github.com/MarcGrol/partnercheckout/lib/mylog"
	"github.com/MarcGrol/partnercheckout/services/checkoutapi"
	"github.com/MarcGrol/partnercheckout/services/rebinder"
)

// identityFieldNames are the credential fields whose change invalidates the
// relayed auth header.
var identityFieldNames = []string{
	"partner-id",
	"partner-client-id",
	"partner-secret",
	"partner-bn-code",
	"merchant-id",
}

const authHeaderFieldName = "auth-header"

// saveOptions persists the submitted form values for this session. The auth
// header is never saved. A changed identity field clears the relay slot; a
// changed tracked field fires the reconfiguration listeners.
func (s *service) saveOptions(c context.Context, sessionUID string, values url.Values) error {
	submitted := map[string]string{}
	for key := range values {
		if key == authHeaderFieldName {
			continue
		}
		submitted[key] = values.Get(key)
	}

	previous, exists, err := s.optionsStore.Get(c, sessionUID)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error fetching saved options: %s", err))
	}

	if exists {
		if identityChanged(previous.Values, submitted) {
			s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Identity fields changed: clearing relayed auth header")
			err = s.relay.Clear(c, sessionUID)
			if err != nil {
				return myerrors.NewInternalError(fmt.Errorf("error clearing auth header: %s", err))
			}
		}

		for _, elementID := range rebinder.TrackedElementIDs {
			if previous.Values[elementID] != submitted[elementID] {
				err = s.rebinder.Fire(c, elementID)
				if err != nil {
					s.logger.Log(c, sessionUID, mylog.SeverityWarn, "No listener reacted to %s change: %s", elementID, err)
				}
			}
		}
	}

	now := s.nower.Now()
	err = s.optionsStore.Put(c, sessionUID, checkoutapi.SavedOptions{
		SessionUID:   sessionUID,
		Values:       submitted,
		LastModified: &now,
	})
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error storing options: %s", err))
	}
	return nil
}

func (s *service) loadOptions(c context.Context, sessionUID string) (map[string]string, error) {
	saved, exists, err := s.optionsStore.Get(c, sessionUID)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error fetching saved options: %s", err))
	}
	if !exists {
		return map[string]string{}, nil
	}
	return saved.Values, nil
}

func identityChanged(previous map[string]string, submitted map[string]string) bool {
	for _, field := range identityFieldNames {
		if previous[field] != submitted[field] {
			return true
		}
	}
	return false
}
