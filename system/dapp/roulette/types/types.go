// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types roulette 合约的消息, 错误和常量
package types

import (
	"reflect"

	"github.com/33cn/roulette/types"
)

func init() {
	types.RegistorExecutor(RouletteX, NewType())
}

//RouletteType 执行器类型
type RouletteType struct {
	types.ExecTypeBase
}

//NewType new
func NewType() *RouletteType {
	c := &RouletteType{}
	c.SetChild(c)
	return c
}

//GetName 执行器名字
func (t *RouletteType) GetName() string {
	return RouletteX
}

//GetPayload action 消息
func (t *RouletteType) GetPayload() types.Message {
	return &RouletteAction{}
}

//GetTypeMap action 名字和类型
func (t *RouletteType) GetTypeMap() map[string]int32 {
	return map[string]int32{
		"Initialize":  RouletteActionInitialize,
		"StartRound":  RouletteActionStartRound,
		"SubmitWager": RouletteActionSubmitWager,
		"SettleRound": RouletteActionSettleRound,
		"CancelRound": RouletteActionCancelRound,
	}
}

//GetLogMap 日志类型
func (t *RouletteType) GetLogMap() map[int64]*types.LogInfo {
	return map[int64]*types.LogInfo{
		TyLogRouletteInit:   {Ty: reflect.TypeOf(ReceiptRouletteInit{}), Name: "LogRouletteInit"},
		TyLogRouletteStart:  {Ty: reflect.TypeOf(ReceiptRouletteStart{}), Name: "LogRouletteStart"},
		TyLogRouletteWager:  {Ty: reflect.TypeOf(ReceiptRouletteWager{}), Name: "LogRouletteWager"},
		TyLogRouletteSettle: {Ty: reflect.TypeOf(ReceiptRouletteSettle{}), Name: "LogRouletteSettle"},
		TyLogRouletteCancel: {Ty: reflect.TypeOf(ReceiptRouletteCancel{}), Name: "LogRouletteCancel"},
	}
}
