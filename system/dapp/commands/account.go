// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 命令行的公共命令
package commands

import (
	"fmt"
	"os"

	"github.com/33cn/roulette/common"
	"github.com/33cn/roulette/common/address"
	"github.com/33cn/roulette/common/crypto"
	"github.com/33cn/roulette/rpc/jsonclient"
	rpctypes "github.com/33cn/roulette/rpc/types"
	commandtypes "github.com/33cn/roulette/system/dapp/commands/types"
	"github.com/33cn/roulette/types"
	"github.com/spf13/cobra"
)

// AccountCmd account command
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		GenKeyCmd(),
		KeyToAddrCmd(),
		GetBalanceCmd(),
	)
	return cmd
}

// GenKeyCmd 生成新的私钥
func GenKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genkey",
		Short: "Generate a secp256k1 private key",
		Run:   genKey,
	}
	return cmd
}

func genKey(cmd *cobra.Command, args []string) {
	c, err := crypto.New(crypto.GetName(types.SignTypeSecp256k1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	priv, err := c.GenKey()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	result := &commandtypes.KeyResult{
		Privkey: common.ToHex(priv.Bytes()),
		Pubkey:  common.ToHex(priv.PubKey().Bytes()),
		Addr:    address.PubKeyToAddr(priv.PubKey().Bytes()),
	}
	fmt.Println(string(types.MustJSON(result)))
}

// KeyToAddrCmd 私钥对应的地址
func KeyToAddrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addr",
		Short: "Get address of a private key",
		Run:   keyToAddr,
	}
	addKeyFlags(cmd)
	return cmd
}

func keyToAddr(cmd *cobra.Command, args []string) {
	priv, err := privKeyFromFlag(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(address.PubKeyToAddr(priv.PubKey().Bytes()))
}

// GetBalanceCmd get balance of an address
func GetBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Get balance of a account address",
		Run:   balance,
	}
	cmd.Flags().StringP("addr", "a", "", "account address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func balance(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	addr, _ := cmd.Flags().GetString("addr")
	var res rpctypes.Account
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "GetBalance", rpctypes.ReqAddr{Addr: addr}, &res)
	ctx.SetResultCb(parseBalance)
	ctx.Run()
}

func parseBalance(res interface{}) (interface{}, error) {
	acc := res.(*rpctypes.Account)
	return &commandtypes.AccountResult{Addr: acc.Addr, Balance: commandtypes.FormatCoins(acc.Balance)}, nil
}
