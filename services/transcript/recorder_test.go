package transcript

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/partnercheckout/lib/mystore"
	"github.com/MarcGrol/partnercheckout/lib/mytime"
)

func TestRecorder(t *testing.T) {
	ctx := context.TODO()
	store, _, _ := mystore.NewInMemoryStore[SessionTranscript](ctx)
	recorder := NewRecorder(store, mytime.RealNower{})

	t.Run("Empty session yields empty list", func(t *testing.T) {
		entries, err := recorder.List(ctx, "sess-1")
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Entries are appended in order", func(t *testing.T) {
		assert.NoError(t, recorder.Record(ctx, "sess-1", "access-token", "got token", "curl -X POST ..."))
		assert.NoError(t, recorder.Record(ctx, "sess-1", "create-order", "created O1", "curl -X POST ..."))

		entries, err := recorder.List(ctx, "sess-1")
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, "access-token", entries[0].Label)
		assert.Equal(t, "create-order", entries[1].Label)
	})

	t.Run("Duplicate labels get a numeric disambiguator", func(t *testing.T) {
		assert.NoError(t, recorder.Record(ctx, "sess-1", "create-order", "created O2", ""))
		assert.NoError(t, recorder.Record(ctx, "sess-1", "create-order", "created O3", ""))

		entries, err := recorder.List(ctx, "sess-1")
		assert.NoError(t, err)
		assert.Len(t, entries, 4)
		assert.Equal(t, "create-order (2)", entries[2].Label)
		assert.Equal(t, "create-order (3)", entries[3].Label)
	})

	t.Run("Prior entries are never rewritten", func(t *testing.T) {
		entries, err := recorder.List(ctx, "sess-1")
		assert.NoError(t, err)
		assert.Equal(t, "got token", entries[0].Human)
		assert.Equal(t, "created O1", entries[1].Human)
	})

	t.Run("RecordAll appends a whole formatted map", func(t *testing.T) {
		err := recorder.RecordAll(ctx, "sess-2", map[string]Exchange{
			"create-order":  {Human: "created", Replay: "curl"},
			"capture-order": {Human: "captured", Replay: "curl"},
		})
		assert.NoError(t, err)

		entries, err := recorder.List(ctx, "sess-2")
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		// label order is deterministic
		assert.Equal(t, "capture-order", entries[0].Label)
		assert.Equal(t, "create-order", entries[1].Label)
	})
}
