// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

//RouletteAction 合约 action, Ty 决定哪一个参数有效
type RouletteAction struct {
	Ty          int32                `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Initialize  *RouletteInitialize  `protobuf:"bytes,2,opt,name=initialize,proto3" json:"initialize,omitempty"`
	StartRound  *RouletteStartRound  `protobuf:"bytes,3,opt,name=startRound,proto3" json:"startRound,omitempty"`
	SubmitWager *RouletteSubmitWager `protobuf:"bytes,4,opt,name=submitWager,proto3" json:"submitWager,omitempty"`
	SettleRound *RouletteSettleRound `protobuf:"bytes,5,opt,name=settleRound,proto3" json:"settleRound,omitempty"`
	CancelRound *RouletteCancelRound `protobuf:"bytes,6,opt,name=cancelRound,proto3" json:"cancelRound,omitempty"`
}

func (m *RouletteAction) Reset()         { *m = RouletteAction{} }
func (m *RouletteAction) String() string { return proto.CompactTextString(m) }
func (*RouletteAction) ProtoMessage()    {}

//GetTy get
func (m *RouletteAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

//GetInitialize get
func (m *RouletteAction) GetInitialize() *RouletteInitialize {
	if m != nil {
		return m.Initialize
	}
	return nil
}

//GetStartRound get
func (m *RouletteAction) GetStartRound() *RouletteStartRound {
	if m != nil {
		return m.StartRound
	}
	return nil
}

//GetSubmitWager get
func (m *RouletteAction) GetSubmitWager() *RouletteSubmitWager {
	if m != nil {
		return m.SubmitWager
	}
	return nil
}

//GetSettleRound get
func (m *RouletteAction) GetSettleRound() *RouletteSettleRound {
	if m != nil {
		return m.SettleRound
	}
	return nil
}

//GetCancelRound get
func (m *RouletteAction) GetCancelRound() *RouletteCancelRound {
	if m != nil {
		return m.CancelRound
	}
	return nil
}

//RouletteInitialize 初始化合约配置
type RouletteInitialize struct {
	RoundDuration   uint64 `protobuf:"varint,1,opt,name=roundDuration,proto3" json:"roundDuration,omitempty"`
	MaxWager        uint64 `protobuf:"varint,2,opt,name=maxWager,proto3" json:"maxWager,omitempty"`
	HouseFeePercent uint32 `protobuf:"varint,3,opt,name=houseFeePercent,proto3" json:"houseFeePercent,omitempty"`
}

func (m *RouletteInitialize) Reset()         { *m = RouletteInitialize{} }
func (m *RouletteInitialize) String() string { return proto.CompactTextString(m) }
func (*RouletteInitialize) ProtoMessage()    {}

//RouletteStartRound 开始一轮
type RouletteStartRound struct{}

func (m *RouletteStartRound) Reset()         { *m = RouletteStartRound{} }
func (m *RouletteStartRound) String() string { return proto.CompactTextString(m) }
func (*RouletteStartRound) ProtoMessage()    {}

//RouletteSubmitWager 下注, 金额必须等于交易附带的金额
type RouletteSubmitWager struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *RouletteSubmitWager) Reset()         { *m = RouletteSubmitWager{} }
func (m *RouletteSubmitWager) String() string { return proto.CompactTextString(m) }
func (*RouletteSubmitWager) ProtoMessage()    {}

//RouletteSettleRound 结算
type RouletteSettleRound struct{}

func (m *RouletteSettleRound) Reset()         { *m = RouletteSettleRound{} }
func (m *RouletteSettleRound) String() string { return proto.CompactTextString(m) }
func (*RouletteSettleRound) ProtoMessage()    {}

//RouletteCancelRound 取消一轮没有人参与的游戏
type RouletteCancelRound struct{}

func (m *RouletteCancelRound) Reset()         { *m = RouletteCancelRound{} }
func (m *RouletteCancelRound) String() string { return proto.CompactTextString(m) }
func (*RouletteCancelRound) ProtoMessage()    {}

//RoundConfig 合约配置, 初始化之后不再修改
type RoundConfig struct {
	Owner           string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	RoundDuration   uint64 `protobuf:"varint,2,opt,name=roundDuration,proto3" json:"roundDuration,omitempty"`
	MaxWager        uint64 `protobuf:"varint,3,opt,name=maxWager,proto3" json:"maxWager,omitempty"`
	HouseFeePercent uint32 `protobuf:"varint,4,opt,name=houseFeePercent,proto3" json:"houseFeePercent,omitempty"`
}

func (m *RoundConfig) Reset()         { *m = RoundConfig{} }
func (m *RoundConfig) String() string { return proto.CompactTextString(m) }
func (*RoundConfig) ProtoMessage()    {}

//Wager 一个参与者的下注
type Wager struct {
	Participant string `protobuf:"bytes,1,opt,name=participant,proto3" json:"participant,omitempty"`
	Amount      uint64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Wager) Reset()         { *m = Wager{} }
func (m *Wager) String() string { return proto.CompactTextString(m) }
func (*Wager) ProtoMessage()    {}

//RoundInfo 当前轮的状态, wagers 按下注顺序排列
type RoundInfo struct {
	Phase     int32    `protobuf:"varint,1,opt,name=phase,proto3" json:"phase,omitempty"`
	CloseTime uint64   `protobuf:"varint,2,opt,name=closeTime,proto3" json:"closeTime,omitempty"`
	PotTotal  uint64   `protobuf:"varint,3,opt,name=potTotal,proto3" json:"potTotal,omitempty"`
	Wagers    []*Wager `protobuf:"bytes,4,rep,name=wagers,proto3" json:"wagers,omitempty"`
}

func (m *RoundInfo) Reset()         { *m = RoundInfo{} }
func (m *RoundInfo) String() string { return proto.CompactTextString(m) }
func (*RoundInfo) ProtoMessage()    {}

//ReplyPotTotal 奖池查询结果
type ReplyPotTotal struct {
	PotTotal uint64 `protobuf:"varint,1,opt,name=potTotal,proto3" json:"potTotal"`
}

func (m *ReplyPotTotal) Reset()         { *m = ReplyPotTotal{} }
func (m *ReplyPotTotal) String() string { return proto.CompactTextString(m) }
func (*ReplyPotTotal) ProtoMessage()    {}

//ReceiptRouletteInit 初始化日志
type ReceiptRouletteInit struct {
	Config *RoundConfig `protobuf:"bytes,1,opt,name=config,proto3" json:"config,omitempty"`
}

func (m *ReceiptRouletteInit) Reset()         { *m = ReceiptRouletteInit{} }
func (m *ReceiptRouletteInit) String() string { return proto.CompactTextString(m) }
func (*ReceiptRouletteInit) ProtoMessage()    {}

//ReceiptRouletteStart 开始日志
type ReceiptRouletteStart struct {
	Owner     string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	StartTime uint64 `protobuf:"varint,2,opt,name=startTime,proto3" json:"startTime,omitempty"`
	CloseTime uint64 `protobuf:"varint,3,opt,name=closeTime,proto3" json:"closeTime,omitempty"`
}

func (m *ReceiptRouletteStart) Reset()         { *m = ReceiptRouletteStart{} }
func (m *ReceiptRouletteStart) String() string { return proto.CompactTextString(m) }
func (*ReceiptRouletteStart) ProtoMessage()    {}

//ReceiptRouletteWager 下注日志
type ReceiptRouletteWager struct {
	Participant  string `protobuf:"bytes,1,opt,name=participant,proto3" json:"participant,omitempty"`
	Amount       uint64 `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	PotTotal     uint64 `protobuf:"varint,3,opt,name=potTotal,proto3" json:"potTotal,omitempty"`
	Participants int32  `protobuf:"varint,4,opt,name=participants,proto3" json:"participants,omitempty"`
}

func (m *ReceiptRouletteWager) Reset()         { *m = ReceiptRouletteWager{} }
func (m *ReceiptRouletteWager) String() string { return proto.CompactTextString(m) }
func (*ReceiptRouletteWager) ProtoMessage()    {}

//ReceiptRouletteSettle 结算日志, 记录了转账需要的全部信息
type ReceiptRouletteSettle struct {
	Winner       string   `protobuf:"bytes,1,opt,name=winner,proto3" json:"winner,omitempty"`
	WinnerIndex  int32    `protobuf:"varint,2,opt,name=winnerIndex,proto3" json:"winnerIndex"`
	Payout       uint64   `protobuf:"varint,3,opt,name=payout,proto3" json:"payout"`
	Fee          uint64   `protobuf:"varint,4,opt,name=fee,proto3" json:"fee"`
	Owner        string   `protobuf:"bytes,5,opt,name=owner,proto3" json:"owner,omitempty"`
	PotTotal     uint64   `protobuf:"varint,6,opt,name=potTotal,proto3" json:"potTotal"`
	CloseTime    uint64   `protobuf:"varint,7,opt,name=closeTime,proto3" json:"closeTime,omitempty"`
	SettledAt    uint64   `protobuf:"varint,8,opt,name=settledAt,proto3" json:"settledAt,omitempty"`
	Participants []string `protobuf:"bytes,9,rep,name=participants,proto3" json:"participants,omitempty"`
}

func (m *ReceiptRouletteSettle) Reset()         { *m = ReceiptRouletteSettle{} }
func (m *ReceiptRouletteSettle) String() string { return proto.CompactTextString(m) }
func (*ReceiptRouletteSettle) ProtoMessage()    {}

//ReceiptRouletteCancel 取消日志
type ReceiptRouletteCancel struct {
	Owner       string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	CloseTime   uint64 `protobuf:"varint,2,opt,name=closeTime,proto3" json:"closeTime,omitempty"`
	CancelledAt uint64 `protobuf:"varint,3,opt,name=cancelledAt,proto3" json:"cancelledAt,omitempty"`
}

func (m *ReceiptRouletteCancel) Reset()         { *m = ReceiptRouletteCancel{} }
func (m *ReceiptRouletteCancel) String() string { return proto.CompactTextString(m) }
func (*ReceiptRouletteCancel) ProtoMessage()    {}
