package sigs

import (
	"testing"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/coffertest"
	"github.com/boxmeout/coffer/errors"
	"github.com/boxmeout/coffer/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSignBytes(t *testing.T) {
	const chainID = "coffer-sign-1"
	payload := []byte("deposit 600 lamports")

	base, err := BuildSignBytes(payload, chainID, 3)
	require.NoError(t, err)
	assert.Len(t, base, 64)

	fromTx, err := BuildSignBytesTx(NewStdTx(payload), chainID, 3)
	require.NoError(t, err)
	assert.Equal(t, base, fromTx)

	variants := map[string]struct {
		payload []byte
		chainID string
		seq     int64
	}{
		"other payload":  {payload: []byte("deposit 601 lamports"), chainID: chainID, seq: 3},
		"other chain":    {payload: payload, chainID: "coffer-sign-2", seq: 3},
		"other sequence": {payload: payload, chainID: chainID, seq: 4},
	}
	for name, v := range variants {
		t.Run(name, func(t *testing.T) {
			got, err := BuildSignBytes(v.payload, v.chainID, v.seq)
			require.NoError(t, err)
			assert.NotEqual(t, base, got)
		})
	}

	_, err = BuildSignBytes(payload, chainID, -1)
	assert.True(t, ErrInvalidSequence.Is(err))
	_, err = BuildSignBytes(payload, "tiny", 0)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestVerifySignature(t *testing.T) {
	const chainID = "coffer-verify"
	db := store.MemStore()
	key := coffertest.DeriveKey(t, 0)
	payload := []byte("distribute leaderboard")
	tx := NewStdTx(payload)

	sign := func(seq int64) *StdSignature {
		sig, err := SignTx(key, tx, chainID, seq)
		require.NoError(t, err)
		return sig
	}

	again, err := SignTx(key, tx, chainID, 2)
	require.NoError(t, err)
	assert.Equal(t, sign(2), again, "ed25519 signatures are deterministic")

	forged := *sign(2)
	forged.Signature = append([]byte{0xde, 0xad}, forged.Signature[2:]...)

	steps := []struct {
		name    string
		sig     *StdSignature
		chainID string
		wantErr *errors.Error
	}{
		{name: "accounts start at zero", sig: sign(1), chainID: chainID, wantErr: ErrInvalidSequence},
		{name: "empty signature", sig: new(StdSignature), chainID: chainID, wantErr: errors.ErrUnauthorized},
		{name: "first", sig: sign(0), chainID: chainID},
		{name: "next", sig: sign(1), chainID: chainID},
		{name: "replay", sig: sign(1), chainID: chainID, wantErr: ErrInvalidSequence},
		{name: "gap", sig: sign(9), chainID: chainID, wantErr: ErrInvalidSequence},
		{name: "other chain", sig: sign(2), chainID: "coffer-other", wantErr: errors.ErrUnauthorized},
		{name: "forged", sig: &forged, chainID: chainID, wantErr: errors.ErrUnauthorized},
		{name: "failures consume nothing", sig: sign(2), chainID: chainID},
	}
	for _, s := range steps {
		cond, err := VerifySignature(db, s.sig, payload, s.chainID)
		if s.wantErr != nil {
			assert.True(t, s.wantErr.Is(err), "%s: got %v", s.name, err)
			continue
		}
		require.NoError(t, err, s.name)
		assert.Equal(t, key.PublicKey().Condition(), cond, s.name)
	}

	next, err := NextNonce(db, key.PublicKey().Address())
	require.NoError(t, err)
	assert.EqualValues(t, 3, next)
}

func TestVerifyTxSignatures(t *testing.T) {
	const chainID = "coffer-multi"
	db := store.MemStore()
	admin := coffertest.DeriveKey(t, 1)
	payer := coffertest.DeriveKey(t, 2)
	tx := NewStdTx([]byte("init treasury"))

	adminSig0, err := SignTx(admin, tx, chainID, 0)
	require.NoError(t, err)
	adminSig1, err := SignTx(admin, tx, chainID, 1)
	require.NoError(t, err)
	payerSig0, err := SignTx(payer, tx, chainID, 0)
	require.NoError(t, err)
	otherTxSig, err := SignTx(admin, NewStdTx([]byte("other")), chainID, 0)
	require.NoError(t, err)

	signers, err := VerifyTxSignatures(db, tx, chainID)
	require.NoError(t, err)
	assert.Empty(t, signers)

	tx.Signatures = []*StdSignature{otherTxSig}
	_, err = VerifyTxSignatures(db, tx, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	tx.Signatures = []*StdSignature{adminSig0}
	signers, err = VerifyTxSignatures(db, tx, chainID)
	require.NoError(t, err)
	assert.Equal(t, []coffer.Condition{admin.PublicKey().Condition()}, signers)

	// admin replays its first signature
	tx.Signatures = []*StdSignature{adminSig0, payerSig0}
	_, err = VerifyTxSignatures(db, tx, chainID)
	assert.True(t, ErrInvalidSequence.Is(err))

	tx.Signatures = []*StdSignature{payerSig0, adminSig1}
	signers, err = VerifyTxSignatures(db, tx, chainID)
	require.NoError(t, err)
	assert.Equal(t, []coffer.Condition{
		payer.PublicKey().Condition(),
		admin.PublicKey().Condition(),
	}, signers)
}
