package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/crypto"
	"github.com/boxmeout/coffer/errors"
)

// SignCodeV1 starts every signed payload. Bump it when the layout built by
// BuildSignBytes changes.
var SignCodeV1 = []byte{0, 0xC0, 0xFF, 1}

// VerifyTxSignatures verifies every signature of tx in order and returns
// the condition of each signer. An unsigned tx yields an empty list. The
// first invalid signature fails the whole tx.
func VerifyTxSignatures(store coffer.KVStore, tx SignedTx, chainID string) ([]coffer.Condition, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	sigs := tx.GetSignatures()
	signers := make([]coffer.Condition, len(sigs))
	for i, sig := range sigs {
		if signers[i], err = VerifySignature(store, sig, payload, chainID); err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
	}
	return signers, nil
}

// VerifySignature checks sig over the payload for the given chain, then
// consumes the sequence it was made with from the signer's account.
func VerifySignature(db coffer.KVStore, sig *StdSignature, payload []byte, chainID string) (coffer.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(payload, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}
	pubkey := crypto.PublicKey(sig.Pubkey)
	if !pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "bad signature of %s", pubkey.Address())
	}

	user, err := getOrCreateUser(db, pubkey)
	if err != nil {
		return nil, err
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := saveUser(db, user); err != nil {
		return nil, err
	}
	return pubkey.Condition(), nil
}

// BuildSignBytes returns the sha512 digest that is signed for payload:
//
//	SignCodeV1 | uint8 len(chainID) | chainID | uint64 big endian seq | payload
//
// Binding the chain and the sequence stops a signature from being
// replayed on another chain or twice on the same one.
func BuildSignBytes(payload []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrapf(ErrInvalidSequence, "negative sequence %d", seq)
	}
	if !coffer.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], uint64(seq))

	h := sha512.New()
	h.Write(SignCodeV1)
	h.Write([]byte{byte(len(chainID))})
	h.Write([]byte(chainID))
	h.Write(nonce[:])
	h.Write(payload)
	return h.Sum(nil), nil
}

// BuildSignBytesTx is BuildSignBytes over the sign bytes of tx.
func BuildSignBytesTx(tx SignedTx, chainID string, seq int64) ([]byte, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	return BuildSignBytes(payload, chainID, seq)
}

// SignTx signs tx for chainID with the given sequence of signer.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	digest, err := BuildSignBytesTx(tx, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return &StdSignature{
		Pubkey:    signer.PublicKey(),
		Signature: sig,
		Sequence:  seq,
	}, nil
}
