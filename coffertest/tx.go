package coffertest

import "github.com/boxmeout/coffer"

// Tx carries Msg, or fails with Err when the message is requested.
type Tx struct {
	Msg coffer.Msg
	Err error
}

var _ coffer.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (coffer.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

// Msg routes to RoutePath. Validate returns Err.
type Msg struct {
	RoutePath string
	Err       error
}

var _ coffer.Msg = (*Msg)(nil)

func (m *Msg) Path() string    { return m.RoutePath }
func (m *Msg) Validate() error { return m.Err }

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return "coffertest.Msg(" + m.RoutePath + ")" }
func (*Msg) ProtoMessage()    {}
