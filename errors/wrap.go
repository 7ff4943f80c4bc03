package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Wrap adds context to err. The innermost wrap records a stack trace.
// Wrapping nil gives nil, so the result of a call can be wrapped directly.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{msg: description, parent: err}
}

func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format adds the recorded stack trace for %+v.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s%+v", e.Error(), stackTrace(e))
		return
	}
	fmt.Fprint(s, e.Error())
}

// Recover turns a panic into an ErrPanic assigned to *err. It must be
// deferred directly.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// Redact hides the details of a recovered panic from clients.
func Redact(err error) error {
	if ErrPanic.Is(err) {
		return ErrPanic
	}
	return err
}

// walk calls fn on err and then on each error it wraps, until fn returns
// false or the chain ends.
func walk(err error, fn func(error) bool) {
	for err != nil && fn(err) {
		c, ok := err.(interface{ Cause() error })
		if !ok {
			return
		}
		err = c.Cause()
	}
}

func stackTrace(err error) errors.StackTrace {
	var st errors.StackTrace
	walk(err, func(e error) bool {
		if t, ok := e.(interface{ StackTrace() errors.StackTrace }); ok {
			st = t.StackTrace()
			return false
		}
		return true
	})
	return st
}
