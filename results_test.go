package coffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEvent(t *testing.T) {
	ev := NewEvent("fee_deposited", "amount", "10", "category", "leaderboard")
	assert.Equal(t, "fee_deposited", ev.Type)
	assert.Len(t, ev.Attributes, 2)

	amount, ok := ev.Attr("amount")
	assert.True(t, ok)
	assert.Equal(t, "10", amount)

	_, ok = ev.Attr("missing")
	assert.False(t, ok)

	assert.Panics(t, func() { NewEvent("broken", "key") })
}

func TestEventsOf(t *testing.T) {
	events := []Event{
		NewEvent("a", "n", "1"),
		NewEvent("b"),
		NewEvent("a", "n", "2"),
	}
	got := EventsOf(events, "a")
	assert.Len(t, got, 2)
	n, _ := got[1].Attr("n")
	assert.Equal(t, "2", n)
	assert.Empty(t, EventsOf(events, "c"))
}
