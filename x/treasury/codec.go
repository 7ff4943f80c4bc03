package treasury

import (
	sdkmath "cosmossdk.io/math"
	"github.com/boxmeout/coffer"
	"github.com/gogo/protobuf/proto"
)

// State is the singleton record of the treasury. Every pool is never
// negative.
type State struct {
	Admin           coffer.Address `protobuf:"bytes,1,opt,name=admin,proto3,casttype=github.com/boxmeout/coffer.Address" json:"admin,omitempty"`
	AssetContract   coffer.Address `protobuf:"bytes,2,opt,name=asset_contract,json=assetContract,proto3,casttype=github.com/boxmeout/coffer.Address" json:"asset_contract,omitempty"`
	Factory         coffer.Address `protobuf:"bytes,3,opt,name=factory,proto3,casttype=github.com/boxmeout/coffer.Address" json:"factory,omitempty"`
	PlatformFees    sdkmath.Int    `protobuf:"bytes,4,opt,name=platform_fees,json=platformFees,proto3,customtype=cosmossdk.io/math.Int" json:"platform_fees"`
	LeaderboardFees sdkmath.Int    `protobuf:"bytes,5,opt,name=leaderboard_fees,json=leaderboardFees,proto3,customtype=cosmossdk.io/math.Int" json:"leaderboard_fees"`
	CreatorFees     sdkmath.Int    `protobuf:"bytes,6,opt,name=creator_fees,json=creatorFees,proto3,customtype=cosmossdk.io/math.Int" json:"creator_fees"`
}

func (m *State) Reset()         { *m = State{} }
func (m *State) String() string { return proto.CompactTextString(m) }
func (*State) ProtoMessage()    {}

// Configuration is the treasury configuration stored with gconf.
type Configuration struct {
	// Owner is recorded for auditing.
	Owner coffer.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/boxmeout/coffer.Address" json:"owner,omitempty"`
	// MaxRecipients limits the length of a reward set. Zero is unlimited.
	MaxRecipients uint32 `protobuf:"varint,2,opt,name=max_recipients,json=maxRecipients,proto3" json:"max_recipients,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

// RewardShare is the part of a distribution paid to one recipient,
// expressed in basis points.
type RewardShare struct {
	Recipient coffer.Address `protobuf:"bytes,1,opt,name=recipient,proto3,casttype=github.com/boxmeout/coffer.Address" json:"recipient,omitempty"`
	ShareBps  uint32         `protobuf:"varint,2,opt,name=share_bps,json=shareBps,proto3" json:"share_bps,omitempty"`
}

func (m *RewardShare) Reset()         { *m = RewardShare{} }
func (m *RewardShare) String() string { return proto.CompactTextString(m) }
func (*RewardShare) ProtoMessage()    {}

// InitMsg creates the treasury state. It must be signed by admin.
type InitMsg struct {
	Admin         coffer.Address `protobuf:"bytes,1,opt,name=admin,proto3,casttype=github.com/boxmeout/coffer.Address" json:"admin,omitempty"`
	AssetContract coffer.Address `protobuf:"bytes,2,opt,name=asset_contract,json=assetContract,proto3,casttype=github.com/boxmeout/coffer.Address" json:"asset_contract,omitempty"`
	Factory       coffer.Address `protobuf:"bytes,3,opt,name=factory,proto3,casttype=github.com/boxmeout/coffer.Address" json:"factory,omitempty"`
}

func (m *InitMsg) Reset()         { *m = InitMsg{} }
func (m *InitMsg) String() string { return proto.CompactTextString(m) }
func (*InitMsg) ProtoMessage()    {}

// DepositFeesMsg moves amount from source into the pool of given category.
type DepositFeesMsg struct {
	Source   coffer.Address `protobuf:"bytes,1,opt,name=source,proto3,casttype=github.com/boxmeout/coffer.Address" json:"source,omitempty"`
	Category string         `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Amount   sdkmath.Int    `protobuf:"bytes,3,opt,name=amount,proto3,customtype=cosmossdk.io/math.Int" json:"amount"`
}

func (m *DepositFeesMsg) Reset()         { *m = DepositFeesMsg{} }
func (m *DepositFeesMsg) String() string { return proto.CompactTextString(m) }
func (*DepositFeesMsg) ProtoMessage()    {}

// DistributeLeaderboardMsg pays out the leaderboard pool. It must be
// signed by the treasury admin.
type DistributeLeaderboardMsg struct {
	Rewards []*RewardShare `protobuf:"bytes,1,rep,name=rewards,proto3" json:"rewards,omitempty"`
}

func (m *DistributeLeaderboardMsg) Reset()         { *m = DistributeLeaderboardMsg{} }
func (m *DistributeLeaderboardMsg) String() string { return proto.CompactTextString(m) }
func (*DistributeLeaderboardMsg) ProtoMessage()    {}
