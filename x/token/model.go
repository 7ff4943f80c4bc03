package token

import (
	sdkmath "cosmossdk.io/math"
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
	"github.com/gogo/protobuf/proto"
)

// BucketName is the key prefix of all balances.
const BucketName = "token"

// Validate returns an error if the balance is negative or out of range.
func (b *Balance) Validate() error {
	if err := coffer.ValidateAmount(b.Amount); err != nil {
		return err
	}
	if b.Amount.IsNegative() {
		return errors.Wrapf(errors.ErrAmount, "negative balance %s", b.Amount)
	}
	return nil
}

func balanceKey(asset, holder coffer.Address) []byte {
	key := make([]byte, 0, len(BucketName)+1+len(asset)+len(holder))
	key = append(key, BucketName...)
	key = append(key, ':')
	key = append(key, asset...)
	return append(key, holder...)
}

func loadBalance(db coffer.ReadOnlyKVStore, asset, holder coffer.Address) (sdkmath.Int, error) {
	raw, err := db.Get(balanceKey(asset, holder))
	if err != nil {
		return sdkmath.Int{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return sdkmath.ZeroInt(), nil
	}
	var b Balance
	if err := proto.Unmarshal(raw, &b); err != nil {
		return sdkmath.Int{}, errors.Wrap(errors.ErrModel, err.Error())
	}
	if b.Amount.IsNil() {
		return sdkmath.ZeroInt(), nil
	}
	return b.Amount, nil
}

// saveBalance writes the balance, removing the record once it drops to
// zero.
func saveBalance(db coffer.KVStore, asset, holder coffer.Address, amount sdkmath.Int) error {
	key := balanceKey(asset, holder)
	b := Balance{Amount: amount}
	if err := b.Validate(); err != nil {
		return errors.Wrap(err, "balance")
	}
	if amount.IsZero() {
		if err := db.Delete(key); err != nil {
			return errors.Wrap(errors.ErrDatabase, err.Error())
		}
		return nil
	}
	raw, err := proto.Marshal(&b)
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	if err := db.Set(key, raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
