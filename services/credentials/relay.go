// Package credentials holds the auth-header relay: the single slot per browser
// session carrying the most recently received opaque bearer credential. Every
// platform response that contains a fresh header must be written here before
// the next dependent call reads it.
//
// Known race, left as-is: an in-flight platform call cannot be cancelled, so
// reconfiguring mid-flight still lets the pending response overwrite the slot
// when it eventually lands.
package credentials

import (
	"context"
	"time"

	"github.com/MarcGrol/partnercheckout/lib/mystore"
	"github.com/MarcGrol/partnercheckout/lib/mytime"
)

type Credential struct {
	SessionUID   string
	AuthHeader   string `datastore:",noindex"`
	LastModified *time.Time
}

type Relay interface {
	Get(c context.Context, sessionUID string) (string, error)
	Set(c context.Context, sessionUID string, authHeader string) error
	Clear(c context.Context, sessionUID string) error
}

type storeRelay struct {
	store mystore.Store[Credential]
	nower mytime.Nower
}

func NewRelay(store mystore.Store[Credential], nower mytime.Nower) Relay {
	return &storeRelay{
		store: store,
		nower: nower,
	}
}

func (r *storeRelay) Get(c context.Context, sessionUID string) (string, error) {
	cred, exists, err := r.store.Get(c, sessionUID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", nil
	}
	return cred.AuthHeader, nil
}

// Set stores the freshest header. Empty values are ignored so that responses
// which do not carry a header never erase a live credential.
func (r *storeRelay) Set(c context.Context, sessionUID string, authHeader string) error {
	if authHeader == "" {
		return nil
	}
	now := r.nower.Now()
	return r.store.Put(c, sessionUID, Credential{
		SessionUID:   sessionUID,
		AuthHeader:   authHeader,
		LastModified: &now,
	})
}

// Clear resets the slot. Called when partner/merchant identity fields change.
func (r *storeRelay) Clear(c context.Context, sessionUID string) error {
	return r.store.Delete(c, sessionUID)
}
