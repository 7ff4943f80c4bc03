package app

import (
	"testing"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/coffertest"
	"github.com/boxmeout/coffer/errors"
	"github.com/boxmeout/coffer/store/iavl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// genesisWriter stores its options under a fixed key.
type genesisWriter struct {
	err error
}

func (g genesisWriter) FromGenesis(opts coffer.Options, db coffer.KVStore) error {
	var value string
	if err := opts.ReadOptions("value", &value); err != nil {
		return err
	}
	if err := db.Set([]byte("genesis"), []byte(value)); err != nil {
		return err
	}
	return g.err
}

// writeMsgHandler stores the message value under the "msg" key.
type writeMsgHandler struct{}

func (writeMsgHandler) Check(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.CheckResult, error) {
	var msg testMsg
	if err := coffer.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	return &coffer.CheckResult{Log: "ok"}, nil
}

func (writeMsgHandler) Deliver(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.DeliverResult, error) {
	var msg testMsg
	if err := coffer.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if err := db.Set([]byte("msg"), msg.Value); err != nil {
		return nil, err
	}
	return &coffer.DeliverResult{Data: msg.Value}, nil
}

func newTestApp(t *testing.T, db coffer.CommitKVStore) *App {
	t.Helper()

	dec := NewMsgDecoder()
	dec.Register(&testMsg{})
	r := NewRouter()
	r.Handle("test/msg", writeMsgHandler{})

	a, err := NewApp(db, dec.Decode, r, genesisWriter{})
	require.NoError(t, err)
	return a
}

func encodeMsg(t *testing.T, value string) []byte {
	t.Helper()
	tx, err := NewTx(&testMsg{Value: []byte(value)})
	require.NoError(t, err)
	raw, err := tx.Encode()
	require.NoError(t, err)
	return raw
}

func TestAppLifecycle(t *testing.T) {
	db := iavl.NewMemCommitStore()
	a := newTestApp(t, db)

	// nothing is processed before the chain is initialized
	_, err := a.DeliverTx(encodeMsg(t, "early"))
	assert.True(t, errors.ErrState.Is(err))

	gen := Genesis{
		ChainID:  "test-chain",
		AppState: coffer.Options{"value": []byte(`"from genesis"`)},
	}
	require.NoError(t, a.InitChain(gen))
	assert.Equal(t, "test-chain", a.ChainID())

	err = a.InitChain(gen)
	assert.True(t, errors.ErrImmutable.Is(err))

	cres, err := a.CheckTx(encodeMsg(t, "first"))
	require.NoError(t, err)
	assert.Equal(t, "ok", cres.Log)

	_, err = a.CheckTx(encodeMsg(t, ""))
	assert.True(t, errors.ErrEmpty.Is(err))

	dres, err := a.DeliverTx(encodeMsg(t, "first"))
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), dres.Data)

	// not visible in the committed store until commit
	v, err := db.Get([]byte("msg"))
	require.NoError(t, err)
	assert.Nil(t, v)

	cid, err := a.Commit()
	require.NoError(t, err)
	assert.EqualValues(t, 1, cid.Version)

	v, err = db.Get([]byte("msg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), v)
	v, err = db.Get([]byte("genesis"))
	require.NoError(t, err)
	assert.Equal(t, []byte("from genesis"), v)

	// a new app on the same store restores the chain id
	b := newTestApp(t, db)
	assert.Equal(t, "test-chain", b.ChainID())
}

func TestAppFailedGenesisWritesNothing(t *testing.T) {
	db := iavl.NewMemCommitStore()
	dec := NewMsgDecoder()
	a, err := NewApp(db, dec.Decode, NewRouter(), genesisWriter{err: errors.ErrHuman})
	require.NoError(t, err)

	err = a.InitChain(Genesis{ChainID: "test-chain"})
	assert.True(t, errors.ErrHuman.Is(err))
	assert.Equal(t, "", a.ChainID())

	v, err := a.DeliverStore().Get([]byte("genesis"))
	require.NoError(t, err)
	assert.Nil(t, v)

	err = a.InitChain(Genesis{ChainID: "x"})
	assert.True(t, errors.ErrInput.Is(err))
}

func TestAppRedactsDecoderPanic(t *testing.T) {
	db := iavl.NewMemCommitStore()
	panicky := func([]byte) (coffer.Tx, error) { panic("secret details") }
	a, err := NewApp(db, panicky, NewRouter(), nil)
	require.NoError(t, err)
	require.NoError(t, a.InitChain(Genesis{ChainID: "test-chain"}))

	_, err = a.DeliverTx([]byte("anything"))
	assert.True(t, errors.ErrPanic.Is(err))
	assert.NotContains(t, err.Error(), "secret")

	_, err = a.WithDebug(true).DeliverTx([]byte("anything"))
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "secret")
}

func TestAppRestartsFromDisk(t *testing.T) {
	dir := coffertest.TempDir(t)

	db := coffertest.CommitKVStore(t, dir)
	a := newTestApp(t, db)
	require.NoError(t, a.InitChain(Genesis{ChainID: "disk-chain"}))
	_, err := a.DeliverTx(encodeMsg(t, "persisted"))
	require.NoError(t, err)
	_, err = a.Commit()
	require.NoError(t, err)
	_, err = a.DeliverTx(encodeMsg(t, "lost"))
	require.NoError(t, err)
	db.Close()

	// the uncommitted delivery is gone after a restart
	db = coffertest.CommitKVStore(t, dir)
	b := newTestApp(t, db)
	assert.Equal(t, "disk-chain", b.ChainID())
	v, err := b.DeliverStore().Get([]byte("msg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), v)

	id, err := db.LatestVersion()
	require.NoError(t, err)
	assert.EqualValues(t, 1, id.Version)
}

// genesisReader requires the genesis record in both phases.
type genesisReader struct{}

func (genesisReader) Check(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.CheckResult, error) {
	v, err := db.Get([]byte("genesis"))
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.ErrNotFound.New("genesis")
	}
	return &coffer.CheckResult{Log: string(v)}, nil
}

func (g genesisReader) Deliver(ctx coffer.Context, db coffer.KVStore, tx coffer.Tx) (*coffer.DeliverResult, error) {
	res, err := g.Check(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return &coffer.DeliverResult{Log: res.Log}, nil
}

func TestAppCheckSeesGenesisBeforeCommit(t *testing.T) {
	dec := NewMsgDecoder()
	dec.Register(&testMsg{})
	r := NewRouter()
	r.Handle("test/msg", genesisReader{})
	a, err := NewApp(iavl.NewMemCommitStore(), dec.Decode, r, genesisWriter{})
	require.NoError(t, err)

	require.NoError(t, a.InitChain(Genesis{
		ChainID:  "test-chain",
		AppState: coffer.Options{"value": []byte(`"pools"`)},
	}))

	cres, err := a.CheckTx(encodeMsg(t, "x"))
	require.NoError(t, err)
	assert.Equal(t, "pools", cres.Log)
	dres, err := a.DeliverTx(encodeMsg(t, "x"))
	require.NoError(t, err)
	assert.Equal(t, "pools", dres.Log)

	_, err = a.Commit()
	require.NoError(t, err)
	cres, err = a.CheckTx(encodeMsg(t, "x"))
	require.NoError(t, err)
	assert.Equal(t, "pools", cres.Log)
}
