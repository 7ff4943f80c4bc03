package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
)

// Genesis file format
type Genesis struct {
	ChainID  string         `json:"chain_id"`
	AppState coffer.Options `json:"app_state"`
}

// LoadGenesis reads the genesis file at given path.
func LoadGenesis(filePath string) (Genesis, error) {
	var gen Genesis

	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "read genesis file: %s", err)
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "parse genesis file: %s", err)
	}
	return gen, nil
}
