// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin    uint64 = 1e8
	MaxCoin uint64 = 1e17
	MaxTxSize      = 100000 //100K
)

//exec result
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

//log type
const (
	TyLogErr             = 1
	TyLogGenesisTransfer = 2
	TyLogTransfer        = 3
)

//ExpireBound 交易过期边界值, 小于它比较height，大于它比较blockTime
const ExpireBound int64 = 1000000000

//SignTypeSecp256k1 默认签名类型
const SignTypeSecp256k1 = 1
