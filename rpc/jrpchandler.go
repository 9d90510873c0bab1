// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rpc

import (
	"errors"

	"github.com/33cn/roulette/common"
	"github.com/33cn/roulette/executor"
	"github.com/33cn/roulette/metrics"
	rpctypes "github.com/33cn/roulette/rpc/types"
	"github.com/33cn/roulette/system/dapp"
	"github.com/33cn/roulette/types"
)

//ServiceName jsonrpc 服务名
const ServiceName = "Roulette"

//ErrRateLimit 发送交易太频繁
var ErrRateLimit = errors.New("ErrRateLimit")

//Roulette jsonrpc 服务
type Roulette struct {
	exec *executor.Executor
}

//CreateRawTransaction 构造未签名的交易, 返回16进制编码
func (c *Roulette) CreateRawTransaction(in *rpctypes.CreateTxIn, result *interface{}) error {
	if in == nil {
		return types.ErrInvalidParam
	}
	execty := types.LoadExecutorType(in.Execer)
	if execty == nil {
		return types.ErrUnknowDriver
	}
	tx, err := execty.CreateTx(in.ActionName, in.Payload)
	if err != nil {
		return err
	}
	tx.Amount = in.Amount
	tx.Expire = in.Expire
	tx.Nonce = in.Nonce
	if tx.Nonce == 0 {
		tx.Nonce = types.Now().UnixNano()
	}
	tx.To = dapp.ExecAddress(in.Execer)
	*result = types.EncodeTxHex(tx)
	return nil
}

//SendTransaction 执行签名之后的交易, 返回收据
func (c *Roulette) SendTransaction(in rpctypes.RawParm, result *interface{}) error {
	tx, err := types.DecodeTxHex(in.Data)
	if err != nil {
		return err
	}
	receipt, err := c.exec.ExecTx(tx)
	if err != nil {
		return err
	}
	metrics.Meter("rpc.sendtx").Mark(1)
	*result = convertReceipt(tx, c.exec.Height(), receipt)
	return nil
}

//Query 合约查询, 目前的查询方法都不需要参数
func (c *Roulette) Query(in rpctypes.Query4Jrpc, result *interface{}) error {
	execty := types.LoadExecutorType(in.Execer)
	if execty == nil {
		return types.ErrUnknowDriver
	}
	msg, err := c.exec.Query(in.Execer, in.FuncName, types.Encode(&types.ReqNil{}))
	if err != nil {
		return err
	}
	*result = msg
	return nil
}

//GetBalance 主币余额
func (c *Roulette) GetBalance(in rpctypes.ReqAddr, result *interface{}) error {
	acc, err := c.exec.GetBalance(in.Addr)
	if err != nil {
		return err
	}
	*result = &rpctypes.Account{Addr: in.Addr, Balance: acc.GetBalance()}
	return nil
}

//GetMetrics 执行统计
func (c *Roulette) GetMetrics(in *types.ReqNil, result *interface{}) error {
	*result = metrics.Snapshot()
	return nil
}

func convertReceipt(tx *types.Transaction, height int64, receipt *types.Receipt) *rpctypes.ReceiptResult {
	result := &rpctypes.ReceiptResult{
		Hash:   tx.HexHash(),
		Height: height,
		Ty:     receipt.Ty,
	}
	execty := types.LoadExecutorType(string(tx.Execer))
	for _, l := range receipt.Logs {
		lr := &rpctypes.ReceiptLogResult{Ty: l.Ty, RawLog: common.ToHex(l.Log)}
		if execty != nil {
			name, log, err := execty.DecodeReceiptLog(l.Ty, l.Log)
			if err == nil {
				lr.TyName = name
				lr.Log = log
			}
		}
		result.Logs = append(result.Logs, lr)
	}
	return result
}
