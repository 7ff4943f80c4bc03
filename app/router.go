package app

import (
	"fmt"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
)

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]coffer.Handler
}

var _ coffer.Registry = (*Router)(nil)
var _ coffer.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]coffer.Handler),
	}
}

// Handle adds a new Handler for the given path. This function panics if a
// handler for given path is already registered or the path is malformed.
func (r *Router) Handle(path string, h coffer.Handler) {
	if !coffer.IsValidPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path. If no path is
// found, returns a noSuchPath Handler. Always returns a non-nil Handler.
func (r *Router) Handler(path string) coffer.Handler {
	h, ok := r.routes[path]
	if !ok {
		return notFoundHandler(path)
	}
	return h
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx) (*coffer.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx) (*coffer.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound error regardless of the
// arguments passed.
type notFoundHandler string

func (path notFoundHandler) Check(coffer.Context, coffer.KVStore, coffer.Tx) (*coffer.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(coffer.Context, coffer.KVStore, coffer.Tx) (*coffer.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
