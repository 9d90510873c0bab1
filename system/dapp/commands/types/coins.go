// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 命令行的公共类型和金额格式化
package types

import (
	"math/big"

	"github.com/33cn/roulette/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const coinExp = -8

//FormatCoins 最小单位转换成币, 保留4位小数
func FormatCoins(amount uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), coinExp).StringFixed(4)
}

//ParseCoins 币转换成最小单位, 最多8位小数
func ParseCoins(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrap(types.ErrAmount, err.Error())
	}
	if d.Sign() < 0 {
		return 0, types.ErrAmount
	}
	v := d.Shift(-coinExp)
	if !v.Equal(v.Truncate(0)) {
		return 0, errors.Wrap(types.ErrAmount, "too many decimal places")
	}
	b := v.BigInt()
	if !b.IsUint64() {
		return 0, errors.Wrap(types.ErrAmount, "overflow")
	}
	return b.Uint64(), nil
}

//AccountResult 账户余额
type AccountResult struct {
	Addr    string `json:"addr"`
	Balance string `json:"balance"`
}

//KeyResult 新生成的私钥
type KeyResult struct {
	Privkey string `json:"privkey"`
	Pubkey  string `json:"pubkey"`
	Addr    string `json:"addr"`
}
