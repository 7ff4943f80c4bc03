package crypto

import (
	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we get from signatures.
const ExtensionName = "sigs"

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() PublicKey
}

// PublicKey is an ed25519 public key.
type PublicKey []byte

// Validate returns an error if the key does not have the ed25519 size.
func (p PublicKey) Validate() error {
	if len(p) != ed25519.PublicKeySize {
		return errors.Wrapf(errors.ErrInput, "public key length %d", len(p))
	}
	return nil
}

// Verify verifies the signature was created with this message and public key
func (p PublicKey) Verify(message []byte, sig []byte) bool {
	if p.Validate() != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p), message, sig)
}

// Condition encodes the public key into a coffer condition.
func (p PublicKey) Condition() coffer.Condition {
	return coffer.NewCondition(ExtensionName, "ed25519", p)
}

// Address is a shortcut for p.Condition().Address()
func (p PublicKey) Address() coffer.Address {
	return p.Condition().Address()
}

// PrivateKey is an ed25519 private key.
type PrivateKey []byte

var _ Signer = PrivateKey(nil)

// Sign returns a matching signature for this private key
func (p PrivateKey) Sign(message []byte) ([]byte, error) {
	if len(p) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInput, "private key length %d", len(p))
	}
	return ed25519.Sign(ed25519.PrivateKey(p), message), nil
}

// PublicKey returns the corresponding PublicKey
func (p PrivateKey) PublicKey() PublicKey {
	pub := ed25519.PrivateKey(p).Public().(ed25519.PublicKey)
	return PublicKey(pub)
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return PrivateKey(priv)
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) PrivateKey {
	return PrivateKey(ed25519.NewKeyFromSeed(seed))
}
