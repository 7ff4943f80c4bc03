package coffertest

import "github.com/boxmeout/coffer"

// Handler is a mock implementation of the coffer.Handler interface.
//
// Each method call is counted. Results and errors returned are the ones
// declared on this structure.
type Handler struct {
	checkCall   int
	CheckResult coffer.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult coffer.DeliverResult
	DeliverErr    error
}

var _ coffer.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// WriteHandler writes the key value pair to the store in both Check and
// Deliver, then returns Err (may be nil).
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ coffer.Handler = WriteHandler{}

func (h WriteHandler) Check(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &coffer.CheckResult{}, nil
}

func (h WriteHandler) Deliver(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	if h.Err != nil {
		return nil, h.Err
	}
	return &coffer.DeliverResult{}, nil
}

// PanicHandler panics on every call with the given value.
type PanicHandler struct {
	Value interface{}
}

var _ coffer.Handler = PanicHandler{}

func (h PanicHandler) Check(coffer.Context, coffer.KVStore, coffer.Tx) (*coffer.CheckResult, error) {
	panic(h.Value)
}

func (h PanicHandler) Deliver(coffer.Context, coffer.KVStore, coffer.Tx) (*coffer.DeliverResult, error) {
	panic(h.Value)
}
