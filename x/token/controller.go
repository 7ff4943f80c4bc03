package token

import (
	sdkmath "cosmossdk.io/math"
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
	"github.com/boxmeout/coffer/x"
)

// Controller moves assets between holders.
type Controller struct {
	auth x.Authenticator
}

// NewController returns a controller that requires auth to prove the
// debited holder on every transfer.
func NewController(auth x.Authenticator) Controller {
	return Controller{auth: auth}
}

// Balance returns the amount of asset owned by holder, zero if none.
func (c Controller) Balance(db coffer.ReadOnlyKVStore, asset, holder coffer.Address) (sdkmath.Int, error) {
	if err := asset.Validate(); err != nil {
		return sdkmath.Int{}, errors.Wrap(err, "asset")
	}
	if err := holder.Validate(); err != nil {
		return sdkmath.Int{}, errors.Wrap(err, "holder")
	}
	return loadBalance(db, asset, holder)
}

// Transfer moves amount of asset from one holder to another. The context
// must carry the authorization of from. Nothing is written unless the
// whole transfer succeeds.
func (c Controller) Transfer(ctx coffer.Context, db coffer.KVStore, asset, from, to coffer.Address, amount sdkmath.Int) error {
	if err := validateTransfer(asset, from, to, amount); err != nil {
		return err
	}
	if err := x.RequireAddress(ctx, c.auth, from, "sender"); err != nil {
		return err
	}

	fromBalance, err := loadBalance(db, asset, from)
	if err != nil {
		return err
	}
	if fromBalance.LT(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %s, need %s", fromBalance, amount)
	}
	if from.Equals(to) {
		return nil
	}
	toBalance, err := loadBalance(db, asset, to)
	if err != nil {
		return err
	}
	newTo, err := coffer.AddAmounts(toBalance, amount)
	if err != nil {
		return errors.Wrap(err, "recipient balance")
	}
	newFrom, err := coffer.SubAmounts(fromBalance, amount)
	if err != nil {
		return errors.Wrap(err, "sender balance")
	}

	if err := saveBalance(db, asset, from, newFrom); err != nil {
		return err
	}
	if err := saveBalance(db, asset, to, newTo); err != nil {
		return err
	}

	coffer.GetLogger(ctx).Debug("Asset transferred",
		"asset", asset.String(),
		"from", from.String(),
		"to", to.String(),
		"amount", amount.String())
	return nil
}

// Mint creates amount of asset out of thin air and credits it to holder.
// It does not check any authorization and must only be used by genesis
// and tests.
func (c Controller) Mint(db coffer.KVStore, asset, to coffer.Address, amount sdkmath.Int) error {
	if err := validateTransfer(asset, to, to, amount); err != nil {
		return err
	}
	balance, err := loadBalance(db, asset, to)
	if err != nil {
		return err
	}
	total, err := coffer.AddAmounts(balance, amount)
	if err != nil {
		return errors.Wrap(err, "balance")
	}
	return saveBalance(db, asset, to, total)
}

func validateTransfer(asset, from, to coffer.Address, amount sdkmath.Int) error {
	if err := asset.Validate(); err != nil {
		return errors.Wrap(err, "asset")
	}
	if err := from.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := coffer.ValidateAmount(amount); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non positive amount %s", amount)
	}
	return nil
}
