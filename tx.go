package coffer

import (
	"reflect"
	"regexp"

	"github.com/boxmeout/coffer/errors"
	"github.com/gogo/protobuf/proto"
)

// IsValidPath is the RegExp to ensure valid message paths.
var IsValidPath = regexp.MustCompile(`^[a-zA-Z0-9_\-]+/[a-zA-Z0-9_\-]+$`).MatchString

// Msg is message for the ledger to take an action
// (Make a state transition). It is just the request, and
// must be validated by the Handlers. All authentication
// information is in the wrapping Tx.
type Msg interface {
	proto.Message

	// Return the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to them.
	//
	// Multiple types may have the same value, and will end up at the
	// same Handler.
	//
	// Must be of the form <extension>/<action>
	Path() string

	// Validate performs a sanity checks on this message. It returns an
	// error if at least one test does not pass and message is considered
	// invalid.
	// This validation performs only tests that do not require access to
	// the store.
	Validate() error
}

// Tx represent the data sent from the user to the ledger.
// It includes the actual message, along with information needed
// to authenticate the sender (cryptographic signatures),
// and anything else needed to pass through middleware.
type Tx interface {
	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message represented by given transaction into given
// destination. Before returning message validation method is called.
// Destination must be a pointer to a value of the message type.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrMsg, "no message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dst := reflect.ValueOf(destination)
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return errors.Wrapf(errors.ErrType, "destination must be a non nil pointer, got %T", destination)
	}
	src := reflect.ValueOf(msg)
	if src.Kind() == reflect.Ptr {
		src = src.Elem()
	}
	if !src.Type().AssignableTo(dst.Elem().Type()) {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	dst.Elem().Set(src)
	return nil
}
