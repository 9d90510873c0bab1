// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor roulette 合约: 一轮下注, 到期后按区块时间选出赢家, 扣除手续费后把奖池转给赢家
package executor

import (
	"github.com/33cn/roulette/system/dapp"
	rty "github.com/33cn/roulette/system/dapp/roulette/types"
	"github.com/33cn/roulette/types"
	log "github.com/inconshreveable/log15"
)

var rlog = log.New("module", "execs.roulette")

var driverName = rty.RouletteX

func init() {
	dapp.Register(driverName, newRoulette)
}

//GetName 执行器名字
func GetName() string {
	return newRoulette().GetName()
}

//Roulette 合约驱动
type Roulette struct {
	dapp.DriverBase
}

func newRoulette() dapp.Driver {
	r := &Roulette{}
	r.SetChild(r)
	r.SetExecutorType(types.LoadExecutorType(driverName))
	return r
}

//GetDriverName 驱动名字
func (r *Roulette) GetDriverName() string {
	return driverName
}

//CheckTx 交易附带的金额必须和下注金额一致, 其他 action 不允许附带金额
func (r *Roulette) CheckTx(tx *types.Transaction, index int) error {
	if err := r.DriverBase.CheckTx(tx, index); err != nil {
		return err
	}
	payload, err := r.GetExecutorType().DecodePayload(tx)
	if err != nil {
		return err
	}
	action := payload.(*rty.RouletteAction)
	return checkDeposit(action, tx.Amount)
}

func checkDeposit(action *rty.RouletteAction, attached uint64) error {
	if action.GetTy() == rty.RouletteActionSubmitWager {
		if action.GetSubmitWager() == nil || action.GetSubmitWager().Amount != attached {
			return rty.ErrDepositMismatch
		}
		return nil
	}
	if attached != 0 {
		return rty.ErrDepositMismatch
	}
	return nil
}
