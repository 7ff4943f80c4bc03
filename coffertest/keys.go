package coffertest

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/crypto"
	"github.com/stellar/go/exp/crypto/derivation"
)

// pathFormat is the Stellar account derivation path.
const pathFormat = "m/44'/148'/%d'"

// seed is the master seed all deterministic test keys derive from.
const seed = "d34c1970ae90acf3405f2d99dcaca16d0c7db379f4beafcfdf667b9d69ce350d27f5fb440509dfa79ec883a0510bc9a9614c3d44188881f0c5e402898b4bf3c9"

func NewKey() crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

func NewCondition() coffer.Condition {
	return NewKey().PublicKey().Condition()
}

// DeriveKey returns the ed25519 key found at the SLIP-10 path
// m/44'/148'/index' of the test seed. The same index always yields the
// same key, which keeps addresses stable across test runs.
func DeriveKey(t testing.TB, index uint32) crypto.PrivateKey {
	t.Helper()

	raw, err := hex.DecodeString(seed)
	if err != nil {
		t.Fatalf("cannot decode seed: %s", err)
	}
	path := fmt.Sprintf(pathFormat, index)
	k, err := derivation.DeriveForPath(path, raw)
	if err != nil {
		t.Fatalf("cannot derive key using path=%q: %s", path, err)
	}
	return crypto.PrivKeyEd25519FromSeed(k.Key)
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation.
func ParseAddress(t testing.TB, encodedAddress string) coffer.Address {
	t.Helper()

	addr, err := coffer.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
