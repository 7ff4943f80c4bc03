package sigs

import (
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/coffertest"
)

// StdTx is a signed transaction whose sign bytes are the raw payload.
type StdTx struct {
	coffertest.Tx
	Payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ coffer.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{
		Tx:      coffertest.Tx{Msg: &coffertest.Msg{RoutePath: "test/signed"}},
		Payload: payload,
	}
}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	return tx.Payload, nil
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []coffer.Condition
}

var _ coffer.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx) (*coffer.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &coffer.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx) (*coffer.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &coffer.DeliverResult{}, nil
}
