package token

import (
	sdkmath "cosmossdk.io/math"
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
)

const optKey = "token"

// GenesisAccount is used to parse the json from genesis file
// use coffer.Address, so address in hex, not base64
type GenesisAccount struct {
	Asset   coffer.Address `json:"asset"`
	Address coffer.Address `json:"address"`
	Amount  sdkmath.Int    `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ coffer.Initializer = Initializer{}

// FromGenesis will parse initial balances from genesis
// and save them to the database
func (Initializer) FromGenesis(opts coffer.Options, kv coffer.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	var c Controller
	for i, acct := range accts {
		if err := c.Mint(kv, acct.Asset, acct.Address, acct.Amount); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
