package app

import (
	"reflect"

	"github.com/boxmeout/coffer"
)

// Decorators is an ordered stack of decorators waiting for the handler
// they wrap. The first decorator sees a transaction first.
type Decorators []coffer.Decorator

// ChainDecorators builds a stack from the given decorators, skipping nil
// ones so optional decorators can be passed unconditionally:
//
//	app.ChainDecorators(
//	  utils.NewLogging(),
//	  utils.NewRecovery(),
//	  sigs.NewDecorator(),
//	  utils.NewSavepoint().OnDeliver(),
//	).WithHandler(router)
func ChainDecorators(ds ...coffer.Decorator) Decorators {
	return Decorators(nil).Chain(ds...)
}

// Chain returns a new stack with ds appended below the current ones. The
// receiver is never modified, so a common base can be extended several
// times.
func (d Decorators) Chain(ds ...coffer.Decorator) Decorators {
	res := make(Decorators, len(d), len(d)+len(ds))
	copy(res, d)
	for _, dec := range ds {
		if !isNil(dec) {
			res = append(res, dec)
		}
	}
	return res
}

// WithHandler closes the stack over h.
func (d Decorators) WithHandler(h coffer.Handler) coffer.Handler {
	for i := len(d) - 1; i >= 0; i-- {
		h = decorated{dec: d[i], next: h}
	}
	return h
}

func isNil(d coffer.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// decorated is a handler running dec around next.
type decorated struct {
	dec  coffer.Decorator
	next coffer.Handler
}

func (s decorated) Check(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx) (*coffer.CheckResult, error) {
	return s.dec.Check(ctx, store, tx, s.next)
}

func (s decorated) Deliver(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx) (*coffer.DeliverResult, error) {
	return s.dec.Deliver(ctx, store, tx, s.next)
}
