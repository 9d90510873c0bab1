// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 执行交易并维护状态数据库
package executor

import (
	"sync"
	"time"

	"github.com/33cn/roulette/account"
	"github.com/33cn/roulette/common"
	"github.com/33cn/roulette/common/address"
	dbm "github.com/33cn/roulette/common/db"
	"github.com/33cn/roulette/metrics"
	"github.com/33cn/roulette/system/dapp"
	"github.com/33cn/roulette/types"
	lru "github.com/hashicorp/golang-lru"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

var (
	heightKey   = []byte("local-executor-height")
	genesisKey  = []byte("local-executor-genesis")
	txKeyPerfix = "local-executor-tx-"
)

func calcTxKey(hash []byte) []byte {
	return append([]byte(txKeyPerfix), hash...)
}

// Executor 串行执行交易, 每笔交易占用一个高度
type Executor struct {
	mu      sync.Mutex
	db      dbm.DB
	txCache *lru.Cache
	height  int64
	clock   func() int64
}

// New 打开执行器, 从数据库恢复高度
func New(cfg *types.Exec, db dbm.DB) (*Executor, error) {
	size := 10240
	if cfg != nil && cfg.TxCacheSize > 0 {
		size = int(cfg.TxCacheSize)
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	exec := &Executor{
		db:      db,
		txCache: cache,
		clock:   func() int64 { return types.Now().Unix() },
	}
	exec.height, err = loadHeight(db)
	if err != nil {
		return nil, err
	}
	elog.Info("executor open", "height", exec.height, "drivers", dapp.DriverNames())
	return exec, nil
}

func loadHeight(db dbm.DB) (int64, error) {
	data, err := db.Get(heightKey)
	if err == dbm.ErrNotFoundInDb {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var h types.Int64
	if err := types.Decode(data, &h); err != nil {
		return 0, errors.Wrap(types.ErrDecode, err.Error())
	}
	return h.Data, nil
}

// SetClock 设置区块时间的来源, 单位是秒
func (exec *Executor) SetClock(clock func() int64) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	exec.clock = clock
}

// Height 已经执行的交易数量
func (exec *Executor) Height() int64 {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.height
}

// Genesis 初始化创世账户, 只能执行一次
func (exec *Executor) Genesis(accounts []*types.GenesisAccount) (*types.Receipt, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	_, err := exec.db.Get(genesisKey)
	if err == nil {
		return nil, types.ErrGenesisDone
	}
	if err != dbm.ErrNotFoundInDb {
		return nil, err
	}
	stateDB := NewStateDB(exec.db)
	acc := account.NewCoinsAccount(stateDB)
	receipt := &types.Receipt{Ty: types.ExecOk}
	for _, a := range accounts {
		if err := address.CheckAddress(a.Addr); err != nil {
			return nil, errors.Wrap(err, "genesis "+a.Addr)
		}
		//合约地址的余额只能来自下注
		if dapp.IsDriverAddress(a.Addr) {
			return nil, errors.Wrap(types.ErrGenesisToExecAddr, "genesis "+a.Addr)
		}
		r, err := acc.GenesisInit(a.Addr, a.Amount)
		if err != nil {
			return nil, errors.Wrap(err, "genesis "+a.Addr)
		}
		receipt = types.MergeReceipt(receipt, r)
		elog.Info("genesis", "addr", a.Addr, "amount", a.Amount)
	}
	if err := stateDB.Set(genesisKey, types.Encode(&types.Int64{Data: 1})); err != nil {
		return nil, err
	}
	if err := stateDB.Flush(true); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (exec *Executor) isDup(hash []byte) (bool, error) {
	if exec.txCache.Contains(string(hash)) {
		return true, nil
	}
	_, err := exec.db.Get(calcTxKey(hash))
	if err == nil {
		return true, nil
	}
	if err == dbm.ErrNotFoundInDb {
		return false, nil
	}
	return false, err
}

// ExecTx 执行一笔交易, 成功时写入状态数据库并返回收据, 失败时状态不变
func (exec *Executor) ExecTx(tx *types.Transaction) (*types.Receipt, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	start := time.Now()
	receipt, err := exec.execTx(tx)
	action := actionName(tx)
	metrics.Timer("exec." + action).UpdateSince(start)
	if err != nil {
		metrics.Counter("exec.fail").Inc(1)
		metrics.Counter("exec.err." + types.ErrName(errors.Cause(err))).Inc(1)
		elog.Debug("ExecTx", "action", action, "err", err)
		return nil, err
	}
	metrics.Counter("exec.ok").Inc(1)
	return receipt, nil
}

// actionName 统计用的名字, 只包含已经注册的驱动
func actionName(tx *types.Transaction) string {
	if tx == nil {
		return "unknown"
	}
	exec, err := dapp.LoadDriver(string(tx.Execer))
	if err != nil {
		return "unknown"
	}
	return exec.GetDriverName() + "." + exec.GetActionName(tx)
}

func (exec *Executor) execTx(tx *types.Transaction) (*types.Receipt, error) {
	if tx == nil {
		return nil, types.ErrInvalidParam
	}
	height := exec.height + 1
	blocktime := exec.clock()
	stateDB := NewStateDB(exec.db)
	e := newExecutor(stateDB, height, blocktime)
	if err := e.checkTx(tx); err != nil {
		return nil, err
	}
	hash := tx.Hash()
	dup, err := exec.isDup(hash)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, types.ErrTxDup
	}
	receipt, err := e.execTx(tx, 0)
	if err != nil {
		return nil, err
	}
	if err := stateDB.Set(calcTxKey(hash), types.Encode(&types.Int64{Data: height})); err != nil {
		return nil, err
	}
	if err := stateDB.Set(heightKey, types.Encode(&types.Int64{Data: height})); err != nil {
		return nil, err
	}
	if err := stateDB.Flush(true); err != nil {
		elog.Error("ExecTx flush", "height", height, "err", err)
		return nil, err
	}
	exec.height = height
	exec.txCache.Add(string(hash), height)
	elog.Debug("ExecTx", "height", height, "blocktime", blocktime, "tx", common.ToHex(hash))
	return receipt, nil
}

// Query 调用合约的查询方法
func (exec *Executor) Query(driver, funcName string, params []byte) (types.Message, error) {
	exec.mu.Lock()
	height, blocktime := exec.height, exec.clock()
	exec.mu.Unlock()
	d, err := dapp.LoadDriver(driver)
	if err != nil {
		return nil, err
	}
	newExecutor(NewStateDB(exec.db), height, blocktime).setEnv(d)
	return d.Query(funcName, params)
}

// GetBalance 主币余额
func (exec *Executor) GetBalance(addr string) (*types.Account, error) {
	if err := address.CheckAddress(addr); err != nil {
		return nil, err
	}
	return account.NewCoinsAccount(NewStateDB(exec.db)).LoadAccount(addr)
}
