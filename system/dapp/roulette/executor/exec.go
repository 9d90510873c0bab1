// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rty "github.com/33cn/roulette/system/dapp/roulette/types"
	"github.com/33cn/roulette/types"
)

//Exec_Initialize 初始化
func (r *Roulette) Exec_Initialize(payload *rty.RouletteInitialize, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.Initialize(payload)
}

//Exec_StartRound 开始一轮
func (r *Roulette) Exec_StartRound(payload *rty.RouletteStartRound, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.StartRound(payload)
}

//Exec_SubmitWager 下注
func (r *Roulette) Exec_SubmitWager(payload *rty.RouletteSubmitWager, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.SubmitWager(payload)
}

//Exec_SettleRound 结算
func (r *Roulette) Exec_SettleRound(payload *rty.RouletteSettleRound, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.SettleRound(payload)
}

//Exec_CancelRound 取消
func (r *Roulette) Exec_CancelRound(payload *rty.RouletteCancelRound, tx *types.Transaction, index int) (*types.Receipt, error) {
	action := NewAction(r, tx, index)
	return action.CancelRound(payload)
}
