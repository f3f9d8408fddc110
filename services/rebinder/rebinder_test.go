package rebinder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebindReplacesPreviousHandler(t *testing.T) {
	c := context.TODO()
	r := New()

	firstCalls := 0
	r.Rebind(func(c context.Context, elementID string) error {
		firstCalls++
		return nil
	})

	secondCalls := 0
	r.Rebind(func(c context.Context, elementID string) error {
		secondCalls++
		return nil
	})

	err := r.Fire(c, "intent")
	assert.NoError(t, err)

	assert.Equal(t, 0, firstCalls)
	assert.Equal(t, 1, secondCalls)
}

func TestRepeatedRebindLeavesSingleListenerPerField(t *testing.T) {
	r := New()

	handler := func(c context.Context, elementID string) error { return nil }
	for i := 0; i < 5; i++ {
		r.Rebind(handler)
	}

	for _, elementID := range TrackedElementIDs {
		assert.Equal(t, 1, r.ListenerCount(elementID), elementID)
	}
}

func TestFireCoversAllTrackedFields(t *testing.T) {
	c := context.TODO()
	r := New()

	fired := map[string]int{}
	r.Rebind(func(c context.Context, elementID string) error {
		fired[elementID]++
		return nil
	})

	for _, elementID := range TrackedElementIDs {
		err := r.Fire(c, elementID)
		assert.NoError(t, err)
	}

	assert.Equal(t, map[string]int{
		"intent":      1,
		"vault-flow":  1,
		"vault-level": 1,
		"customer-id": 1,
	}, fired)
}

func TestFireOnUnboundElementFails(t *testing.T) {
	c := context.TODO()
	r := New()

	err := r.Fire(c, "intent")
	assert.Error(t, err)

	r.Rebind(func(c context.Context, elementID string) error { return nil })

	err = r.Fire(c, "button-color")
	assert.Error(t, err)
}
