package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/partnercheckout/lib/mystore"
	"github.com/MarcGrol/partnercheckout/lib/mytime"
)

func TestRelay(t *testing.T) {
	ctx := context.TODO()
	store, _, _ := mystore.NewInMemoryStore[Credential](ctx)
	relay := NewRelay(store, mytime.RealNower{})

	t.Run("Unknown session yields empty header", func(t *testing.T) {
		header, err := relay.Get(ctx, "unknown")
		assert.NoError(t, err)
		assert.Equal(t, "", header)
	})

	t.Run("Get returns the latest Set value, never a stale one", func(t *testing.T) {
		assert.NoError(t, relay.Set(ctx, "sess-1", "Bearer h1"))

		header, err := relay.Get(ctx, "sess-1")
		assert.NoError(t, err)
		assert.Equal(t, "Bearer h1", header)

		assert.NoError(t, relay.Set(ctx, "sess-1", "Bearer h2"))

		header, err = relay.Get(ctx, "sess-1")
		assert.NoError(t, err)
		assert.Equal(t, "Bearer h2", header)
	})

	t.Run("Empty value does not erase a live credential", func(t *testing.T) {
		assert.NoError(t, relay.Set(ctx, "sess-1", ""))

		header, err := relay.Get(ctx, "sess-1")
		assert.NoError(t, err)
		assert.Equal(t, "Bearer h2", header)
	})

	t.Run("Clear resets the slot", func(t *testing.T) {
		assert.NoError(t, relay.Clear(ctx, "sess-1"))

		header, err := relay.Get(ctx, "sess-1")
		assert.NoError(t, err)
		assert.Equal(t, "", header)
	})

	t.Run("Sessions are isolated", func(t *testing.T) {
		assert.NoError(t, relay.Set(ctx, "sess-a", "Bearer a"))
		assert.NoError(t, relay.Set(ctx, "sess-b", "Bearer b"))

		header, err := relay.Get(ctx, "sess-a")
		assert.NoError(t, err)
		assert.Equal(t, "Bearer a", header)
	})
}
