// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/roulette/account"
	dbm "github.com/33cn/roulette/common/db"
	"github.com/33cn/roulette/system/dapp"
	rty "github.com/33cn/roulette/system/dapp/roulette/types"
	"github.com/33cn/roulette/types"
)

//Action 一次合约调用
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	amount       uint64
}

//NewAction new
func NewAction(r *Roulette, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: r.GetCoinsAccount(),
		db:           r.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    r.GetBlockTime(),
		height:       r.GetHeight(),
		execaddr:     r.GetAddr(),
		amount:       tx.Amount,
	}
}

func (action *Action) callContext() (CallContext, error) {
	if action.blocktime < 0 {
		return CallContext{}, types.ErrInvalidParam
	}
	return CallContext{Caller: action.fromaddr, Now: uint64(action.blocktime)}, nil
}

func (action *Action) load() (*Round, CallContext, error) {
	ctx, err := action.callContext()
	if err != nil {
		return nil, ctx, err
	}
	round, err := loadRound(action.db)
	if err != nil {
		return nil, ctx, err
	}
	return round, ctx, nil
}

func (action *Action) save(round *Round, withConfig bool) ([]*types.KeyValue, error) {
	kvc := dapp.NewKVCreator(action.db)
	if withConfig {
		kv := configKV(round)
		kvc.Add(kv.Key, kv.Value)
	}
	kv := roundKV(round)
	kvc.Add(kv.Key, kv.Value)
	if err := kvc.Err(); err != nil {
		return nil, err
	}
	return kvc.KVList(), nil
}

func newLog(ty int32, msg types.Message) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(msg)}
}

//Initialize 初始化合约配置, 调用者成为 owner
func (action *Action) Initialize(payload *rty.RouletteInitialize) (*types.Receipt, error) {
	if action.amount != 0 {
		return nil, rty.ErrDepositMismatch
	}
	round, ctx, err := action.load()
	if err != nil {
		return nil, err
	}
	err = round.Initialize(ctx, payload.RoundDuration, payload.MaxWager, payload.HouseFeePercent)
	if err != nil {
		rlog.Debug("Initialize", "from", action.fromaddr, "err", err)
		return nil, err
	}
	kv, err := action.save(round, true)
	if err != nil {
		return nil, err
	}
	rlog.Info("Initialize", "owner", ctx.Caller, "duration", payload.RoundDuration,
		"maxWager", payload.MaxWager, "fee", payload.HouseFeePercent)
	logs := []*types.ReceiptLog{newLog(rty.TyLogRouletteInit, &rty.ReceiptRouletteInit{Config: round.Config()})}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//StartRound 开始一轮
func (action *Action) StartRound(payload *rty.RouletteStartRound) (*types.Receipt, error) {
	if action.amount != 0 {
		return nil, rty.ErrDepositMismatch
	}
	round, ctx, err := action.load()
	if err != nil {
		return nil, err
	}
	if err := round.StartRound(ctx); err != nil {
		rlog.Debug("StartRound", "from", action.fromaddr, "err", err)
		return nil, err
	}
	kv, err := action.save(round, false)
	if err != nil {
		return nil, err
	}
	rlog.Info("StartRound", "owner", ctx.Caller, "closeTime", round.CloseTime())
	logs := []*types.ReceiptLog{newLog(rty.TyLogRouletteStart, &rty.ReceiptRouletteStart{
		Owner:     ctx.Caller,
		StartTime: ctx.Now,
		CloseTime: round.CloseTime(),
	})}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//SubmitWager 下注, 交易附带的金额已经由执行器转入合约地址
func (action *Action) SubmitWager(payload *rty.RouletteSubmitWager) (*types.Receipt, error) {
	if payload.Amount != action.amount {
		return nil, rty.ErrDepositMismatch
	}
	round, ctx, err := action.load()
	if err != nil {
		return nil, err
	}
	if err := round.SubmitWager(ctx, payload.Amount); err != nil {
		rlog.Debug("SubmitWager", "from", action.fromaddr, "amount", payload.Amount, "err", err)
		return nil, err
	}
	kv, err := action.save(round, false)
	if err != nil {
		return nil, err
	}
	rlog.Info("SubmitWager", "from", ctx.Caller, "amount", payload.Amount, "pot", round.PotTotal())
	logs := []*types.ReceiptLog{newLog(rty.TyLogRouletteWager, &rty.ReceiptRouletteWager{
		Participant:  ctx.Caller,
		Amount:       payload.Amount,
		PotTotal:     round.PotTotal(),
		Participants: int32(len(round.Participants())),
	})}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}

//SettleRound 结算, 从合约地址把奖金转给赢家, 手续费转给 owner
func (action *Action) SettleRound(payload *rty.RouletteSettleRound) (*types.Receipt, error) {
	if action.amount != 0 {
		return nil, rty.ErrDepositMismatch
	}
	round, ctx, err := action.load()
	if err != nil {
		return nil, err
	}
	s, err := round.SettleRound(ctx)
	if err != nil {
		rlog.Debug("SettleRound", "from", action.fromaddr, "err", err)
		return nil, err
	}
	kv, err := action.save(round, false)
	if err != nil {
		return nil, err
	}
	receipt := &types.Receipt{Ty: types.ExecOk, KV: kv}
	if s.Payout > 0 {
		r, err := action.coinsAccount.Transfer(action.execaddr, s.Winner, s.Payout)
		if err != nil {
			rlog.Error("SettleRound payout", "winner", s.Winner, "payout", s.Payout, "err", err)
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	if s.Fee > 0 {
		r, err := action.coinsAccount.Transfer(action.execaddr, s.Owner, s.Fee)
		if err != nil {
			rlog.Error("SettleRound fee", "owner", s.Owner, "fee", s.Fee, "err", err)
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, r)
	}
	rlog.Info("SettleRound", "winner", s.Winner, "index", s.WinnerIndex, "payout", s.Payout, "fee", s.Fee)
	receipt.Logs = append(receipt.Logs, newLog(rty.TyLogRouletteSettle, &rty.ReceiptRouletteSettle{
		Winner:       s.Winner,
		WinnerIndex:  int32(s.WinnerIndex),
		Payout:       s.Payout,
		Fee:          s.Fee,
		Owner:        s.Owner,
		PotTotal:     s.Pot,
		CloseTime:    s.CloseTime,
		SettledAt:    s.SettledAt,
		Participants: s.Participants,
	}))
	return receipt, nil
}

//CancelRound 取消没有人参与的一轮
func (action *Action) CancelRound(payload *rty.RouletteCancelRound) (*types.Receipt, error) {
	if action.amount != 0 {
		return nil, rty.ErrDepositMismatch
	}
	round, ctx, err := action.load()
	if err != nil {
		return nil, err
	}
	closeTime := round.CloseTime()
	if err := round.CancelRound(ctx); err != nil {
		rlog.Debug("CancelRound", "from", action.fromaddr, "err", err)
		return nil, err
	}
	kv, err := action.save(round, false)
	if err != nil {
		return nil, err
	}
	rlog.Info("CancelRound", "owner", ctx.Caller, "closeTime", closeTime)
	logs := []*types.ReceiptLog{newLog(rty.TyLogRouletteCancel, &rty.ReceiptRouletteCancel{
		Owner:       ctx.Caller,
		CloseTime:   closeTime,
		CancelledAt: ctx.Now,
	})}
	return &types.Receipt{Ty: types.ExecOk, KV: kv, Logs: logs}, nil
}
