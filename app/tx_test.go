package app

import (
	"testing"

	"github.com/boxmeout/coffer/coffertest"
	"github.com/boxmeout/coffer/errors"
	"github.com/boxmeout/coffer/x/sigs"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMsg is a minimal protobuf message used to exercise the envelope.
type testMsg struct {
	Value []byte `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *testMsg) Reset()         { *m = testMsg{} }
func (m *testMsg) String() string { return proto.CompactTextString(m) }
func (*testMsg) ProtoMessage()    {}
func (*testMsg) Path() string     { return "test/msg" }
func (m *testMsg) Validate() error {
	if len(m.Value) == 0 {
		return errors.Wrap(errors.ErrEmpty, "value")
	}
	return nil
}

func TestTxRoundTrip(t *testing.T) {
	dec := NewMsgDecoder()
	dec.Register(&testMsg{})

	tx, err := NewTx(&testMsg{Value: []byte("hello")})
	require.NoError(t, err)
	assert.Equal(t, "test/msg", tx.Path)

	raw, err := tx.Encode()
	require.NoError(t, err)

	got, err := dec.Decode(raw)
	require.NoError(t, err)
	msg, err := got.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, &testMsg{Value: []byte("hello")}, msg)

	stx, ok := got.(sigs.SignedTx)
	require.True(t, ok)
	assert.Empty(t, stx.GetSignatures())
}

func TestTxSignBytesIgnoreSignatures(t *testing.T) {
	tx, err := NewTx(&testMsg{Value: []byte("data")})
	require.NoError(t, err)

	before, err := tx.GetSignBytes()
	require.NoError(t, err)

	sig, err := sigs.SignTx(coffertest.DeriveKey(t, 0), tx, "test-chain", 0)
	require.NoError(t, err)
	tx.Signatures = append(tx.Signatures, sig)

	after, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// signatures travel with the encoded envelope
	dec := NewMsgDecoder()
	dec.Register(&testMsg{})
	raw, err := tx.Encode()
	require.NoError(t, err)
	got, err := dec.Decode(raw)
	require.NoError(t, err)
	assert.Len(t, got.(sigs.SignedTx).GetSignatures(), 1)
}

func TestMsgDecoderErrors(t *testing.T) {
	dec := NewMsgDecoder()
	dec.Register(&testMsg{})

	assert.Panics(t, func() { dec.Register(&testMsg{}) })
	assert.Panics(t, func() { dec.Register(&coffertest.Msg{RoutePath: "bad path"}) })

	_, err := dec.Decode([]byte{0xff, 0xff, 0xff})
	assert.True(t, errors.ErrInput.Is(err))

	unknown := &Tx{Path: "test/unknown"}
	raw, err := unknown.Encode()
	require.NoError(t, err)
	_, err = dec.Decode(raw)
	assert.True(t, errors.ErrNotFound.Is(err))
}
