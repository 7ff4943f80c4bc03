package token

import (
	sdkmath "cosmossdk.io/math"
	"github.com/gogo/protobuf/proto"
)

// Balance is the amount of one asset held by one address.
type Balance struct {
	Amount sdkmath.Int `protobuf:"bytes,1,opt,name=amount,proto3,customtype=cosmossdk.io/math.Int" json:"amount"`
}

func (m *Balance) Reset()         { *m = Balance{} }
func (m *Balance) String() string { return proto.CompactTextString(m) }
func (*Balance) ProtoMessage()    {}
