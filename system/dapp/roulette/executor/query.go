// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	rty "github.com/33cn/roulette/system/dapp/roulette/types"
	"github.com/33cn/roulette/types"
)

//Query_GetPotTotal 奖池, 任何阶段都可以查询
func (r *Roulette) Query_GetPotTotal(in *types.ReqNil) (types.Message, error) {
	round, err := loadRound(r.GetStateDB())
	if err != nil {
		return nil, err
	}
	return &rty.ReplyPotTotal{PotTotal: round.PotTotal()}, nil
}

//Query_GetRoundInfo 当前轮的状态
func (r *Roulette) Query_GetRoundInfo(in *types.ReqNil) (types.Message, error) {
	round, err := loadRound(r.GetStateDB())
	if err != nil {
		return nil, err
	}
	return round.Info(), nil
}

//Query_GetConfig 合约配置
func (r *Roulette) Query_GetConfig(in *types.ReqNil) (types.Message, error) {
	round, err := loadRound(r.GetStateDB())
	if err != nil {
		return nil, err
	}
	if !round.Initialized() {
		return nil, rty.ErrNotInitialized
	}
	return round.Config(), nil
}
