package coffer

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult captures any non-error check information, passed back to
// the caller of Check.
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
}

// NewCheck sets the Log of a CheckResult.
func NewCheck(log string) CheckResult {
	return CheckResult{Log: log}
}

// DeliverResult captures any non-error information returned by Deliver.
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// Events are the observable records of a successful state change, in
	// emission order. A failed Deliver never returns events.
	Events []Event
}

// Event is a typed record emitted by a successful state change.
type Event struct {
	Type       string
	Attributes []common.KVPair
}

// NewEvent creates an event of the given type. Attributes are provided as
// key value string pairs, so the number of arguments must be even.
func NewEvent(typ string, attrs ...string) Event {
	if len(attrs)%2 != 0 {
		panic(fmt.Sprintf("odd number of event attributes: %d", len(attrs)))
	}
	ev := Event{Type: typ}
	for i := 0; i < len(attrs); i += 2 {
		ev.Attributes = append(ev.Attributes, common.KVPair{
			Key:   []byte(attrs[i]),
			Value: []byte(attrs[i+1]),
		})
	}
	return ev
}

// Attr returns the value of the first attribute with the given key.
func (e Event) Attr(key string) (string, bool) {
	for _, a := range e.Attributes {
		if string(a.Key) == key {
			return string(a.Value), true
		}
	}
	return "", false
}

// EventsOf returns all events of the given type, in emission order.
func EventsOf(events []Event, typ string) []Event {
	var res []Event
	for _, e := range events {
		if e.Type == typ {
			res = append(res, e)
		}
	}
	return res
}
