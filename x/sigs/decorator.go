/*
Package sigs authenticates transactions by their ed25519 signatures.

Every signature carries the sequence of its signer's account, which must
match the stored one and is then incremented, so a signed transaction
cannot be replayed. The decorator places the verified signers in the
context, where Authenticate reads them.
*/
package sigs

import (
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
)

// Decorator verifies the signatures of a transaction before passing it
// on. By default at least one valid signature is required.
type Decorator struct {
	optional bool
}

var _ coffer.Decorator = Decorator{}

func NewDecorator() Decorator {
	return Decorator{}
}

// AllowMissingSigs returns a decorator that lets unsigned transactions
// pass with no signers in the context. Any signature present must still
// be valid.
func (d Decorator) AllowMissingSigs() Decorator {
	d.optional = true
	return d
}

func (d Decorator) Check(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx, next coffer.Checker) (*coffer.CheckResult, error) {
	ctx, err := d.authenticate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

func (d Decorator) Deliver(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx, next coffer.Deliverer) (*coffer.DeliverResult, error) {
	ctx, err := d.authenticate(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

// authenticate verifies the signatures, bumping the sequence of every
// signer in store, and returns a context carrying the signers.
func (d Decorator) authenticate(ctx coffer.Context, store coffer.KVStore, tx coffer.Tx) (coffer.Context, error) {
	var signers []coffer.Condition
	if signed, ok := tx.(SignedTx); ok {
		var err error
		signers, err = VerifyTxSignatures(store, signed, coffer.GetChainID(ctx))
		if err != nil {
			return nil, errors.Wrap(err, "cannot verify signatures")
		}
	}
	if len(signers) == 0 && !d.optional {
		return nil, errors.Wrap(errors.ErrUnauthorized, "transaction is not signed")
	}
	ctx = coffer.WithLogInfo(ctx, "signers", len(signers))
	return withSigners(ctx, signers), nil
}
