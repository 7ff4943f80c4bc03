package treasury

import (
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
	"github.com/boxmeout/coffer/gconf"
)

const optKey = "treasury"

// GenesisTreasury is used to parse the json from genesis file.
type GenesisTreasury struct {
	Admin         coffer.Address `json:"admin"`
	AssetContract coffer.Address `json:"asset_contract"`
	Factory       coffer.Address `json:"factory"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ coffer.Initializer = Initializer{}

// FromGenesis creates the treasury state when the genesis declares one.
// The configuration is stored when present.
func (Initializer) FromGenesis(opts coffer.Options, db coffer.KVStore) error {
	var gt *GenesisTreasury
	if err := opts.ReadOptions(optKey, &gt); err != nil {
		return err
	}
	if gt != nil {
		if err := validateInit(gt.Admin, gt.AssetContract, gt.Factory); err != nil {
			return errors.Wrap(err, "genesis treasury")
		}
		if old, err := loadState(db); err != nil {
			return err
		} else if old != nil {
			return errors.Wrap(errors.ErrDuplicate, "treasury already initialized")
		}
		if err := saveState(db, newState(gt.Admin, gt.AssetContract, gt.Factory)); err != nil {
			return err
		}
	}

	var conf Configuration
	switch err := gconf.InitConfig(db, opts, confPkg, &conf); {
	case errors.ErrNotFound.Is(err):
		return nil
	case err != nil:
		return errors.Wrap(err, "treasury configuration")
	}
	return nil
}
