// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types jsonrpc 的请求和返回结构
package types

import (
	"encoding/json"
)

//CreateTxIn 构造交易的参数, payload 是 action 参数的 json
type CreateTxIn struct {
	Execer     string          `json:"execer"`
	ActionName string          `json:"actionName"`
	Payload    json.RawMessage `json:"payload"`
	Amount     uint64          `json:"amount"`
	Expire     int64           `json:"expire"`
	Nonce      int64           `json:"nonce"`
}

//RawParm 16进制编码的数据
type RawParm struct {
	Data string `json:"data"`
}

//Query4Jrpc 查询参数
type Query4Jrpc struct {
	Execer   string `json:"execer"`
	FuncName string `json:"funcName"`
}

//ReqAddr 地址
type ReqAddr struct {
	Addr string `json:"addr"`
}

//Account 账户余额
type Account struct {
	Addr    string `json:"addr"`
	Balance uint64 `json:"balance"`
}

//ReceiptLogResult 解码之后的日志
type ReceiptLogResult struct {
	Ty     int32       `json:"ty"`
	TyName string      `json:"tyName"`
	Log    interface{} `json:"log"`
	RawLog string      `json:"rawLog"`
}

//ReceiptResult 交易执行结果
type ReceiptResult struct {
	Hash   string              `json:"hash"`
	Height int64               `json:"height"`
	Ty     int32               `json:"ty"`
	Logs   []*ReceiptLogResult `json:"logs"`
}
