package sigs

import (
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/crypto"
	"github.com/boxmeout/coffer/errors"
	"github.com/gogo/protobuf/proto"
)

// BucketName is the key prefix of the stored accounts
const BucketName = "sigs"

// maxSequenceValue is limited by the client. The greatest supported
// nonce value at client side is
//
//	Number.MAX_SAFE_INTEGER = 9007199254740991 = 2^53 - 1
const maxSequenceValue = (1 << 53) - 1

// Validate returns an error if the sequence is out of range or set without
// a public key.
func (u *UserData) Validate() error {
	if seq := u.Sequence; seq < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	} else if seq > 0 && len(u.Pubkey) == 0 {
		return errors.Wrap(ErrInvalidSequence, "needs pubkey")
	}
	return nil
}

// CheckAndIncrementSequence implements check and increment operation.
// If current sequence value is the same as given expected value then it is
// incremented. Otherwise an error is returned.
func (u *UserData) CheckAndIncrementSequence(expected int64) error {
	if u.Sequence != expected {
		return errors.Wrapf(ErrInvalidSequence, "mismatch expected %d, got %d", expected, u.Sequence)
	}
	next := u.Sequence + 1
	if next <= 0 || next > maxSequenceValue {
		return errors.Wrap(errors.ErrOverflow, "sequence out of range")
	}
	u.Sequence = next
	return nil
}

func userKey(addr coffer.Address) []byte {
	return append([]byte(BucketName+":"), addr...)
}

// loadUser returns the account of given address, or nil if it was never
// seen.
func loadUser(db coffer.ReadOnlyKVStore, addr coffer.Address) (*UserData, error) {
	raw, err := db.Get(userKey(addr))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if raw == nil {
		return nil, nil
	}
	var u UserData
	if err := proto.Unmarshal(raw, &u); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return &u, nil
}

// getOrCreateUser loads the account owned by pubkey, or returns a fresh
// one starting at sequence zero.
func getOrCreateUser(db coffer.ReadOnlyKVStore, pubkey crypto.PublicKey) (*UserData, error) {
	u, err := loadUser(db, pubkey.Address())
	if err != nil || u != nil {
		return u, err
	}
	return &UserData{Pubkey: pubkey}, nil
}

func saveUser(db coffer.KVStore, u *UserData) error {
	if err := u.Validate(); err != nil {
		return errors.Wrap(err, "user")
	}
	raw, err := proto.Marshal(u)
	if err != nil {
		return errors.Wrap(errors.ErrModel, err.Error())
	}
	addr := crypto.PublicKey(u.Pubkey).Address()
	if err := db.Set(userKey(addr), raw); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// NextNonce returns the sequence the next signature of signer must carry.
// Accounts are created on their first signature, so an unknown address
// starts at zero.
func NextNonce(db coffer.ReadOnlyKVStore, signer coffer.Address) (int64, error) {
	u, err := loadUser(db, signer)
	switch {
	case err != nil:
		return 0, errors.Wrap(err, "load user")
	case u == nil:
		return 0, nil
	default:
		return u.Sequence, nil
	}
}
