// Package transcript records the human-readable and replayable reproductions
// of every platform API call, for display in the tabbed debug panel. The log
// is append-only: entries are never edited or removed within a session.
package transcript

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MarcGrol/partnercheckout/lib/mystore"
	"github.com/MarcGrol/partnercheckout/lib/mytime"
)

// Exchange is one recorded API call: what happened in prose and how to
// replay it in an API client.
type Exchange struct {
	Label     string
	Human     string `datastore:",noindex"`
	Replay    string `datastore:",noindex"`
	CreatedAt time.Time
}

type SessionTranscript struct {
	SessionUID string
	Entries    []Exchange `datastore:",noindex"`
}

type Recorder interface {
	Record(c context.Context, sessionUID string, label string, human string, replay string) error
	RecordAll(c context.Context, sessionUID string, exchanges map[string]Exchange) error
	List(c context.Context, sessionUID string) ([]Exchange, error)
}

type storeRecorder struct {
	store mystore.Store[SessionTranscript]
	nower mytime.Nower
}

func NewRecorder(store mystore.Store[SessionTranscript], nower mytime.Nower) Recorder {
	return &storeRecorder{
		store: store,
		nower: nower,
	}
}

func (r *storeRecorder) Record(c context.Context, sessionUID string, label string, human string, replay string) error {
	return r.store.RunInTransaction(c, func(c context.Context) error {
		return r.append(c, sessionUID, label, human, replay)
	})
}

// RecordAll appends multiple exchanges in label order within one transaction.
func (r *storeRecorder) RecordAll(c context.Context, sessionUID string, exchanges map[string]Exchange) error {
	if len(exchanges) == 0 {
		return nil
	}

	labels := make([]string, 0, len(exchanges))
	for label := range exchanges {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return r.store.RunInTransaction(c, func(c context.Context) error {
		for _, label := range labels {
			exchange := exchanges[label]
			err := r.append(c, sessionUID, label, exchange.Human, exchange.Replay)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *storeRecorder) append(c context.Context, sessionUID string, label string, human string, replay string) error {
	current, exists, err := r.store.Get(c, sessionUID)
	if err != nil {
		return fmt.Errorf("error fetching transcript %s: %s", sessionUID, err)
	}
	if !exists {
		current = SessionTranscript{SessionUID: sessionUID}
	}

	current.Entries = append(current.Entries, Exchange{
		Label:     disambiguate(current.Entries, label),
		Human:     human,
		Replay:    replay,
		CreatedAt: r.nower.Now(),
	})

	return r.store.Put(c, sessionUID, current)
}

// disambiguate suffixes repeated labels: the second "create-order" becomes
// "create-order (2)".
func disambiguate(entries []Exchange, label string) string {
	n := 1
	for _, entry := range entries {
		if entry.Label == label || strings.HasPrefix(entry.Label, label+" (") {
			n++
		}
	}
	if n == 1 {
		return label
	}
	return fmt.Sprintf("%s (%d)", label, n)
}

func (r *storeRecorder) List(c context.Context, sessionUID string) ([]Exchange, error) {
	current, exists, err := r.store.Get(c, sessionUID)
	if err != nil {
		return nil, fmt.Errorf("error fetching transcript %s: %s", sessionUID, err)
	}
	if !exists {
		return []Exchange{}, nil
	}
	return current.Entries, nil
}
