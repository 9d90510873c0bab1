// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands roulette 合约的命令行
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/roulette/rpc/jsonclient"
	rpctypes "github.com/33cn/roulette/rpc/types"
	"github.com/33cn/roulette/system/dapp/commands"
	commandtypes "github.com/33cn/roulette/system/dapp/commands/types"
	rty "github.com/33cn/roulette/system/dapp/roulette/types"
	"github.com/spf13/cobra"
)

// RouletteCmd roulette 合约命令
func RouletteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roulette",
		Short: "Roulette round management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		InitializeCmd(),
		StartRoundCmd(),
		SubmitWagerCmd(),
		SettleRoundCmd(),
		CancelRoundCmd(),
		PotTotalCmd(),
		RoundInfoCmd(),
		ConfigCmd(),
	)
	return cmd
}

// InitializeCmd 初始化合约
func InitializeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the contract, the sender becomes the owner",
		Run:   initialize,
	}
	commands.AddKeyFlags(cmd)
	cmd.Flags().Uint64P("duration", "d", 300, "round duration in seconds")
	cmd.Flags().StringP("max", "m", "", "max wager in coins")
	cmd.Flags().Uint32P("fee", "f", 0, "house fee percent, 0-100")
	cmd.MarkFlagRequired("max")
	return cmd
}

func initialize(cmd *cobra.Command, args []string) {
	duration, _ := cmd.Flags().GetUint64("duration")
	maxStr, _ := cmd.Flags().GetString("max")
	fee, _ := cmd.Flags().GetUint32("fee")
	maxWager, err := commandtypes.ParseCoins(maxStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	payload := &rty.RouletteInitialize{RoundDuration: duration, MaxWager: maxWager, HouseFeePercent: fee}
	commands.SendAction(cmd, rty.RouletteX, "Initialize", payload, 0)
}

// StartRoundCmd 开始一轮
func StartRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Open a new round, owner only",
		Run: func(cmd *cobra.Command, args []string) {
			commands.SendAction(cmd, rty.RouletteX, "StartRound", &rty.RouletteStartRound{}, 0)
		},
	}
	commands.AddKeyFlags(cmd)
	return cmd
}

// SubmitWagerCmd 下注
func SubmitWagerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wager",
		Short: "Submit a wager to the open round",
		Run:   submitWager,
	}
	commands.AddKeyFlags(cmd)
	cmd.Flags().StringP("amount", "a", "", "wager in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func submitWager(cmd *cobra.Command, args []string) {
	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := commandtypes.ParseCoins(amountStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	commands.SendAction(cmd, rty.RouletteX, "SubmitWager", &rty.RouletteSubmitWager{Amount: amount}, amount)
}

// SettleRoundCmd 结算
func SettleRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Settle the round after close time",
		Run: func(cmd *cobra.Command, args []string) {
			commands.SendAction(cmd, rty.RouletteX, "SettleRound", &rty.RouletteSettleRound{}, 0)
		},
	}
	commands.AddKeyFlags(cmd)
	return cmd
}

// CancelRoundCmd 取消
func CancelRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel an open round without wagers, owner only",
		Run: func(cmd *cobra.Command, args []string) {
			commands.SendAction(cmd, rty.RouletteX, "CancelRound", &rty.RouletteCancelRound{}, 0)
		},
	}
	commands.AddKeyFlags(cmd)
	return cmd
}

func query(cmd *cobra.Command, funcName string, res interface{}, cb jsonclient.Callback) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	params := rpctypes.Query4Jrpc{Execer: rty.RouletteX, FuncName: funcName}
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Query", params, res)
	if cb != nil {
		ctx.SetResultCb(cb)
	}
	ctx.Run()
}

// PotTotalCmd 奖池
func PotTotalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pot",
		Short: "Show the pot of the current round",
		Run: func(cmd *cobra.Command, args []string) {
			var res rty.ReplyPotTotal
			query(cmd, rty.FuncNameGetPotTotal, &res, func(res interface{}) (interface{}, error) {
				return commandtypes.FormatCoins(res.(*rty.ReplyPotTotal).PotTotal), nil
			})
		},
	}
}

// RoundResult 当前轮
type RoundResult struct {
	Phase     string         `json:"phase"`
	CloseTime uint64         `json:"closeTime"`
	PotTotal  string         `json:"potTotal"`
	Wagers    []*WagerResult `json:"wagers"`
}

// WagerResult 下注
type WagerResult struct {
	Participant string `json:"participant"`
	Amount      string `json:"amount"`
}

// RoundInfoCmd 当前轮的状态
func RoundInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "round",
		Short: "Show the current round",
		Run: func(cmd *cobra.Command, args []string) {
			var res rty.RoundInfo
			query(cmd, rty.FuncNameGetRoundInfo, &res, parseRoundInfo)
		},
	}
}

func parseRoundInfo(res interface{}) (interface{}, error) {
	info := res.(*rty.RoundInfo)
	result := &RoundResult{
		Phase:     rty.PhaseName(info.Phase),
		CloseTime: info.CloseTime,
		PotTotal:  commandtypes.FormatCoins(info.PotTotal),
	}
	for _, w := range info.Wagers {
		result.Wagers = append(result.Wagers, &WagerResult{Participant: w.Participant, Amount: commandtypes.FormatCoins(w.Amount)})
	}
	return result, nil
}

// ConfigCmd 合约配置
func ConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the contract configuration",
		Run: func(cmd *cobra.Command, args []string) {
			var res rty.RoundConfig
			query(cmd, rty.FuncNameGetConfig, &res, nil)
		},
	}
}
