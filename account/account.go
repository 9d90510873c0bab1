// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account 实现账本的资产操作

1. load from db
2. save to db
3. KVSet
4. Transfer
5. Account balance query
*/
package account

import (
	dbm "github.com/33cn/roulette/common/db"
	"github.com/33cn/roulette/types"
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var alog = log.New("module", "account")

//CoinsPrefix 主币账户的 key 前缀
const CoinsPrefix = "mavl-coins-bty-"

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
}

//NewCoinsAccount 主币账户
func NewCoinsAccount(db dbm.KV) *DB {
	acc := &DB{accountKeyPerfix: []byte(CoinsPrefix)}
	return acc.SetDB(db)
}

//SetDB 设置状态数据库
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

//AccountKey 账户的状态 key
func (acc *DB) AccountKey(addr string) []byte {
	key := make([]byte, 0, len(acc.accountKeyPerfix)+len(addr))
	key = append(key, acc.accountKeyPerfix...)
	return append(key, []byte(addr)...)
}

//LoadAccount 读取账户, 不存在时返回余额为0的账户
func (acc *DB) LoadAccount(addr string) (*types.Account, error) {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		if isNotFound(err) {
			return &types.Account{Addr: addr}, nil
		}
		return nil, err
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		alog.Error("LoadAccount decode", "addr", addr, "err", err)
		return nil, errors.Wrap(types.ErrDecode, err.Error())
	}
	return &acc1, nil
}

func isNotFound(err error) bool {
	err = errors.Cause(err)
	return err == types.ErrNotFound || err == dbm.ErrNotFoundInDb
}

//CheckTransfer 检查余额是否足够
func (acc *DB) CheckTransfer(from, to string, amount uint64) error {
	if amount == 0 {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrSendSameToRecv
	}
	accFrom, err := acc.LoadAccount(from)
	if err != nil {
		return err
	}
	if accFrom.GetBalance() < amount {
		return types.ErrNoBalance
	}
	return nil
}

//Transfer 转账, 余额不足或者溢出时不修改任何状态
func (acc *DB) Transfer(from, to string, amount uint64) (*types.Receipt, error) {
	if amount == 0 {
		return nil, types.ErrAmount
	}
	if from == to {
		return nil, types.ErrSendSameToRecv
	}
	accFrom, err := acc.LoadAccount(from)
	if err != nil {
		return nil, err
	}
	accTo, err := acc.LoadAccount(to)
	if err != nil {
		return nil, err
	}
	if accFrom.GetBalance() < amount {
		return nil, types.ErrNoBalance
	}
	toBalance, err := safeAdd(accTo.GetBalance(), amount)
	if err != nil {
		return nil, err
	}
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance = accFrom.GetBalance() - amount
	accTo.Balance = toBalance

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}
	if err := acc.SaveAccount(accFrom); err != nil {
		return nil, err
	}
	if err := acc.SaveAccount(accTo); err != nil {
		return nil, err
	}
	alog.Debug("Transfer", "from", from, "to", to, "amount", amount)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo proto.Message) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

//SaveAccount 保存账户
func (acc *DB) SaveAccount(acc1 *types.Account) error {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		if err := acc.db.Set(set[i].Key, set[i].Value); err != nil {
			return err
		}
	}
	return nil
}

//GetKVSet 账户的 kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}
