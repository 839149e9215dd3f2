package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventClaimSubmitted, func(_ context.Context, event Event) error {
		got = append(got, event)
		return nil
	})
	d.Subscribe(EventClaimApproved, func(_ context.Context, event Event) error {
		t.Fatal("handler for a different event type must not fire")
		return nil
	})

	event := Event{
		Type:      EventClaimSubmitted,
		ItemID:    "item-1",
		ClaimID:   "claim-1",
		Timestamp: time.Now(),
	}
	require.NoError(t, d.Publish(context.Background(), event))
	require.Len(t, got, 1)
	assert.Equal(t, "claim-1", got[0].ClaimID)
}

func TestDispatcherHandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var secondFired bool
	d.Subscribe(EventClaimRejected, func(context.Context, Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventClaimRejected, func(context.Context, Event) error {
		secondFired = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventClaimRejected})
	require.NoError(t, err)
	assert.True(t, secondFired)
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventItemResolved}))
}
