// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//roulette action ty
const (
	RouletteActionInitialize = iota + 1
	RouletteActionStartRound
	RouletteActionSubmitWager
	RouletteActionSettleRound
	RouletteActionCancelRound
)

//log for roulette
const (
	TyLogRouletteInit   = 1101
	TyLogRouletteStart  = 1102
	TyLogRouletteWager  = 1103
	TyLogRouletteSettle = 1104
	TyLogRouletteCancel = 1105
)

//round phase
const (
	PhaseIdle = int32(0)
	PhaseOpen = int32(1)
)

//MaxHouseFeePercent 手续费百分比上限
const MaxHouseFeePercent = 100

//执行器名字可以通过配置文件来配置
var (
	JRPCName       = "Roulette"
	RouletteX      = "roulette"
	ExecerRoulette = []byte(RouletteX)
)

//查询方法名
const (
	FuncNameGetPotTotal  = "GetPotTotal"
	FuncNameGetRoundInfo = "GetRoundInfo"
	FuncNameGetConfig    = "GetConfig"
)

//PhaseName 阶段名字
func PhaseName(phase int32) string {
	switch phase {
	case PhaseIdle:
		return "Idle"
	case PhaseOpen:
		return "Open"
	}
	return "unknown"
}
