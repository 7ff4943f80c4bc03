package errors

import (
	"fmt"
	"reflect"
)

// Kinds shared by all modules. Modules with errors of their own register
// them next to their code, see x/treasury and x/sigs.
var (
	ErrUnauthorized       = Register(2, "unauthorized")
	ErrNotFound           = Register(3, "not found")
	ErrMsg                = Register(4, "invalid message")
	ErrModel              = Register(5, "invalid model")
	ErrDuplicate          = Register(6, "duplicate")
	ErrHuman              = Register(7, "coding error")
	ErrImmutable          = Register(8, "cannot be modified")
	ErrEmpty              = Register(9, "value is empty")
	ErrState              = Register(10, "invalid state")
	ErrType               = Register(11, "invalid type")
	ErrInsufficientAmount = Register(12, "insufficient amount")
	ErrAmount             = Register(13, "invalid amount")
	ErrInput              = Register(14, "invalid input")
	ErrOverflow           = Register(15, "an operation cannot be completed due to value overflow")
	ErrDatabase           = Register(16, "database")

	// ErrPanic marks a recovered panic. Its details never leave the node,
	// see Redact.
	ErrPanic = Register(111222, "panic")
)

// codeForeign is the code of any error not rooted in a registered kind.
const codeForeign = 1

var registry = map[uint32]*Error{codeForeign: nil}

// Register declares a new error kind. Codes are part of the client API and
// must be unique, reusing one panics. Call it from package level vars only.
func Register(code uint32, description string) *Error {
	if prev, taken := registry[code]; taken {
		name := "reserved"
		if prev != nil {
			name = prev.desc
		}
		panic(fmt.Sprintf("error code %d already taken by %q", code, name))
	}
	e := &Error{code: code, desc: description}
	registry[code] = e
	return e
}

// Error is a registered error kind. Errors returned at runtime wrap a kind,
// so callers test them with Is and clients receive its code.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string { return e.desc }

func (e Error) Code() uint32 { return e.code }

// New returns an error of this kind with the given description.
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

func (e *Error) Newf(format string, args ...interface{}) error {
	return Wrapf(e, format, args...)
}

// Is reports whether err is of this kind, looking through any wraps. The
// nil kind matches only nil errors, including typed nil pointers, which
// lets table tests use a nil *Error to expect success.
func (kind *Error) Is(err error) bool {
	if kind == nil {
		return err == nil || reflect.ValueOf(err).IsNil()
	}
	found := false
	walk(err, func(e error) bool {
		found = e == kind
		return !found
	})
	return found
}

// Code returns the code of the kind err is rooted in. nil is 0 and errors
// from outside this package are 1.
func Code(err error) uint32 {
	if err == nil {
		return 0
	}
	code := uint32(codeForeign)
	walk(err, func(e error) bool {
		if k, ok := e.(*Error); ok {
			code = k.code
			return false
		}
		return true
	})
	return code
}
