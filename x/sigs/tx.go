package sigs

import (
	"github.com/boxmeout/coffer/crypto"
	"github.com/boxmeout/coffer/errors"
)

// SignedTx represents a transaction that contains signatures,
// which can be verified by the sigs.Decorator
type SignedTx interface {
	// GetSignBytes returns the canonical byte representation of the
	// transaction without its signatures.
	GetSignBytes() ([]byte, error)

	// GetSignatures returns the signature of signers who signed the Msg.
	GetSignatures() []*StdSignature
}

// Validate ensures the StdSignature meets basic standards
func (s *StdSignature) Validate() error {
	if s.GetSequence() < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if len(s.GetPubkey()) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if err := crypto.PublicKey(s.Pubkey).Validate(); err != nil {
		return errors.Wrap(errors.ErrUnauthorized, err.Error())
	}
	if len(s.GetSignature()) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}
