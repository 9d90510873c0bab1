// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 合约驱动的公共框架
package dapp

import (
	"reflect"

	"github.com/33cn/roulette/account"
	dbm "github.com/33cn/roulette/common/db"
	"github.com/33cn/roulette/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

//Driver 合约驱动接口
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	GetCoinsAccount() *account.DB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	//执行器的名称
	GetName() string
	SetName(string)
	SetEnv(height, blocktime int64)
	GetActionName(tx *types.Transaction) string
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetFuncMap() map[string]reflect.Method
	GetExecutorType() types.ExecutorType
}

//DriverBase 驱动的公共实现, 具体合约嵌入它并通过 SetChild 注册自己
type DriverBase struct {
	statedb      dbm.KV
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	name         string
	child        Driver
	childValue   reflect.Value
	funcmap      map[string]reflect.Method
	ety          types.ExecutorType
}

//SetEnv 设置执行环境
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

//SetExecutorType 设置执行器类型
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

//GetExecutorType 获取执行器类型
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

//SetChild 设置具体的合约
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	d.funcmap = types.ListMethod(e)
}

//GetFuncMap Exec_ 和 Query_ 方法列表
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return d.funcmap
}

//GetActionName action 名字
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	if d.ety == nil {
		return "unknown"
	}
	return d.ety.ActionName(tx)
}

//Exec 解码 action 并调用子类的 Exec_ 方法
func (d *DriverBase) Exec(tx *types.Transaction, index int) (receipt *types.Receipt, err error) {
	if d.ety == nil || d.child == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", string(tx.Execer), "info", r)
			err = types.ErrActionNotSupport
			receipt = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcmap := d.child.GetFuncMap()
	funcname := "Exec_" + name
	if _, ok := funcmap[funcname]; !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := funcmap[funcname].Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	//参数1
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.Receipt); ok {
			receipt = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	//参数2
	r2 := valueret[1].Interface()
	err = nil
	if r2 != nil {
		if r, ok := r2.(error); ok {
			err = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return receipt, err
}

//CheckTx 默认情况下，tx.To 地址指向合约地址
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	execer := string(tx.Execer)
	if ExecAddress(execer) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	return nil
}

//SetStateDB 设置状态数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount(db)
	}
	d.statedb = db
	d.coinsaccount.SetDB(db)
}

//GetStateDB 获取状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

//GetCoinsAccount 获取主币账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount(d.statedb)
	}
	return d.coinsaccount
}

//GetHeight 当前高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

//GetBlockTime 当前区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

//GetName 执行器名字
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

//SetName 设置执行器名字
func (d *DriverBase) SetName(name string) {
	d.name = name
}

//GetAddr 合约地址
func (d *DriverBase) GetAddr() string {
	return ExecAddress(d.GetName())
}
