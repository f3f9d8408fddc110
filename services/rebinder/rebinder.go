// Package rebinder keeps change-listeners on the option fields that force a
// checkout reconfiguration. Rebinding always detaches the previously attached
// handler first, so repeated reconfiguration never stacks duplicate listeners.
package rebinder

import (
	"context"
	"fmt"
	"sync"

	"github.com/MarcGrol/partnercheckout/lib/myerrors"
)

// TrackedElementIDs are the option fields whose change requires the checkout
// to be torn down and rebuilt.
var TrackedElementIDs = []string{
	"intent",
	"vault-flow",
	"vault-level",
	"customer-id",
}

// Handler reacts to a change of one tracked field.
type Handler func(c context.Context, elementID string) error

type listener struct {
	handle Handler
}

type Rebinder struct {
	mutex     sync.Mutex
	listeners map[string][]*listener
	current   *listener
}

func New() *Rebinder {
	return &Rebinder{
		listeners: map[string][]*listener{},
	}
}

// Rebind attaches handler to every tracked field, after first detaching the
// handler from the previous Rebind call. Calling it N times leaves exactly
// one active listener per field.
func (r *Rebinder) Rebind(handler Handler) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.current != nil {
		for _, elementID := range TrackedElementIDs {
			r.detachLocked(elementID, r.current)
		}
	}

	attached := &listener{handle: handler}
	for _, elementID := range TrackedElementIDs {
		r.listeners[elementID] = append(r.listeners[elementID], attached)
	}
	r.current = attached
}

// Fire runs the listeners currently attached to elementID.
func (r *Rebinder) Fire(c context.Context, elementID string) error {
	r.mutex.Lock()
	attached := make([]*listener, len(r.listeners[elementID]))
	copy(attached, r.listeners[elementID])
	r.mutex.Unlock()

	if len(attached) == 0 {
		return myerrors.NewNotFoundError(fmt.Errorf("no listener bound to element %q", elementID))
	}

	for _, l := range attached {
		err := l.handle(c, elementID)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListenerCount reports how many listeners are attached to elementID.
func (r *Rebinder) ListenerCount(elementID string) int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.listeners[elementID])
}

func (r *Rebinder) detachLocked(elementID string, target *listener) {
	attached := r.listeners[elementID]
	for idx, l := range attached {
		if l == target {
			r.listeners[elementID] = append(attached[:idx:idx], attached[idx+1:]...)
			return
		}
	}
}
