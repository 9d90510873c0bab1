// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/roulette/account"
	"github.com/33cn/roulette/system/dapp"
	"github.com/33cn/roulette/types"
)

// executor 一笔交易的执行环境
type executor struct {
	stateDB   *StateDB
	coinsAcc  *account.DB
	height    int64
	blocktime int64
}

func newExecutor(stateDB *StateDB, height, blocktime int64) *executor {
	return &executor{
		stateDB:   stateDB,
		coinsAcc:  account.NewCoinsAccount(stateDB),
		height:    height,
		blocktime: blocktime,
	}
}

func (e *executor) checkTx(tx *types.Transaction) error {
	if err := tx.Check(); err != nil {
		return err
	}
	if !tx.CheckSign() {
		return types.ErrSign
	}
	if tx.IsExpire(e.height, e.blocktime) {
		return types.ErrTxExpire
	}
	return nil
}

func (e *executor) loadDriver(tx *types.Transaction) (dapp.Driver, error) {
	exec, err := dapp.LoadDriver(string(tx.Execer))
	if err != nil {
		return nil, err
	}
	e.setEnv(exec)
	return exec, nil
}

func (e *executor) setEnv(exec dapp.Driver) {
	exec.SetStateDB(e.stateDB)
	exec.SetEnv(e.height, e.blocktime)
}

// processCustody 交易附带的金额在合约执行之前转入合约地址
func (e *executor) processCustody(tx *types.Transaction) (*types.Receipt, error) {
	if tx.Amount == 0 {
		return nil, nil
	}
	return e.coinsAcc.Transfer(tx.From(), tx.To, tx.Amount)
}

// execTx 在事务中执行, 任何一步失败都回滚所有修改
func (e *executor) execTx(tx *types.Transaction, index int) (*types.Receipt, error) {
	exec, err := e.loadDriver(tx)
	if err != nil {
		return nil, err
	}
	if err := exec.CheckTx(tx, index); err != nil {
		return nil, err
	}
	e.stateDB.Begin()
	custody, err := e.processCustody(tx)
	if err != nil {
		e.stateDB.Rollback()
		return nil, err
	}
	receipt, err := exec.Exec(tx, index)
	if err != nil {
		e.stateDB.Rollback()
		return nil, err
	}
	if receipt == nil {
		receipt = &types.Receipt{Ty: types.ExecOk}
	}
	e.stateDB.Commit()
	if custody != nil {
		custody.Ty = receipt.Ty
		receipt = types.MergeReceipt(custody, receipt)
	}
	return receipt, nil
}
