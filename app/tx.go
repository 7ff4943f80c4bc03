package app

import (
	"reflect"

	"github.com/boxmeout/coffer"
	"github.com/boxmeout/coffer/errors"
	"github.com/boxmeout/coffer/x/sigs"
	"github.com/gogo/protobuf/proto"
)

// Tx is the envelope of every message submitted to the ledger. Payload is
// the serialized message registered under Path.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	Path       string               `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	Payload    []byte               `protobuf:"bytes,3,opt,name=payload,proto3" json:"payload,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

var _ sigs.SignedTx = (*Tx)(nil)

// GetSignatures returns the signatures attached to the envelope.
func (m *Tx) GetSignatures() []*sigs.StdSignature {
	if m != nil {
		return m.Signatures
	}
	return nil
}

// GetSignBytes returns the serialized envelope without signatures.
func (m *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{Path: m.Path, Payload: m.Payload}
	bz, err := proto.Marshal(&unsigned)
	if err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return bz, nil
}

// Encode serializes the envelope including its signatures.
func (m *Tx) Encode() ([]byte, error) {
	bz, err := proto.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return bz, nil
}

// DecodedTx is an envelope together with its decoded message.
type DecodedTx struct {
	*Tx
	msg coffer.Msg
}

var _ coffer.Tx = (*DecodedTx)(nil)
var _ sigs.SignedTx = (*DecodedTx)(nil)

// NewTx wraps the message into an unsigned envelope.
func NewTx(msg coffer.Msg) (*DecodedTx, error) {
	payload, err := proto.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMsg, err.Error())
	}
	return &DecodedTx{
		Tx:  &Tx{Path: msg.Path(), Payload: payload},
		msg: msg,
	}, nil
}

// GetMsg returns the decoded message.
func (tx *DecodedTx) GetMsg() (coffer.Msg, error) {
	if tx.msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	}
	return tx.msg, nil
}

// TxDecoder reads a transaction from its binary form.
type TxDecoder func(raw []byte) (coffer.Tx, error)

// MsgDecoder knows how to decode the payload of every registered message
// path.
type MsgDecoder struct {
	types map[string]reflect.Type
}

// NewMsgDecoder returns a decoder with no message registered.
func NewMsgDecoder() *MsgDecoder {
	return &MsgDecoder{types: make(map[string]reflect.Type)}
}

// Register adds the message type decoded for the prototype's path. It
// panics if the path is malformed or already taken.
func (d *MsgDecoder) Register(prototype coffer.Msg) {
	path := prototype.Path()
	if !coffer.IsValidPath(path) {
		panic("invalid message path: " + path)
	}
	if _, ok := d.types[path]; ok {
		panic("message path already registered: " + path)
	}
	t := reflect.TypeOf(prototype)
	if t.Kind() != reflect.Ptr {
		panic("message prototype must be a pointer: " + t.String())
	}
	d.types[path] = t.Elem()
}

// Decode reads the envelope and its message. Unknown paths fail with
// ErrNotFound.
func (d *MsgDecoder) Decode(raw []byte) (coffer.Tx, error) {
	var tx Tx
	if err := proto.Unmarshal(raw, &tx); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	t, ok := d.types[tx.Path]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "message path %q", tx.Path)
	}
	msg := reflect.New(t).Interface().(coffer.Msg)
	if err := proto.Unmarshal(tx.Payload, msg); err != nil {
		return nil, errors.Wrapf(errors.ErrMsg, "%s: %s", tx.Path, err)
	}
	return &DecodedTx{Tx: &tx, msg: msg}, nil
}
