/*
Package gconf stores one configuration record per module. A record is a
protobuf message validated on every save, and can be set from the "conf"
section of the genesis file:

	{"conf": {"treasury": {"max_recipients": 50}}}
*/
package gconf

import (
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
	"github.com/gogo/protobuf/proto"
)

// ReadStore is the part of coffer.ReadOnlyKVStore that Load needs.
type ReadStore interface {
	Get([]byte) ([]byte, error)
}

// Store is the part of coffer.KVStore that Save needs.
type Store interface {
	ReadStore
	Set([]byte, []byte) error
}

// Configuration is a module configuration record.
type Configuration interface {
	proto.Message
	Validate() error
}

const keyPrefix = "_conf:"

// Save validates and writes the configuration of module pkg, replacing any
// previous one.
func Save(db Store, pkg string, conf Configuration) error {
	if err := conf.Validate(); err != nil {
		return errors.Wrapf(err, "%s configuration", pkg)
	}
	raw, err := proto.Marshal(conf)
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "%s configuration: %s", pkg, err)
	}
	if err := db.Set([]byte(keyPrefix+pkg), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Load reads the configuration of module pkg into dst, or fails with
// ErrNotFound when none was saved.
func Load(db ReadStore, pkg string, dst Configuration) error {
	raw, err := db.Get([]byte(keyPrefix + pkg))
	switch {
	case err != nil:
		return errors.Wrap(errors.ErrDatabase, err.Error())
	case raw == nil:
		return errors.Wrapf(errors.ErrNotFound, "%s configuration", pkg)
	}
	if err := proto.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(errors.ErrModel, "%s configuration: %s", pkg, err)
	}
	return nil
}

// InitConfig saves opts["conf"][pkg] as the configuration of module pkg.
// It fails with ErrNotFound when the genesis has no such entry, which
// callers treat as "keep the defaults".
func InitConfig(db Store, opts coffer.Options, pkg string, conf Configuration) error {
	var all coffer.Options
	if err := opts.ReadOptions("conf", &all); err != nil {
		return err
	}
	if _, ok := all[pkg]; !ok {
		return errors.Wrapf(errors.ErrNotFound, "no %s configuration in genesis", pkg)
	}
	if err := all.ReadOptions(pkg, conf); err != nil {
		return err
	}
	return Save(db, pkg, conf)
}
