// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/33cn/roulette/common/log"
	"github.com/33cn/roulette/system/dapp/commands"
	roulettecmd "github.com/33cn/roulette/system/dapp/roulette/commands"
	"github.com/spf13/cobra"

	_ "github.com/33cn/roulette/system"
)

//NewClientCmd 命令行客户端
func NewClientCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "roulette-cli",
		Short: "roulette client tools",
	}
	rootCmd.PersistentFlags().String("rpc_laddr", "http://localhost:8801", "http url")
	rootCmd.AddCommand(
		commands.AccountCmd(),
		roulettecmd.RouletteCmd(),
	)
	return rootCmd
}

//Run 命令行客户端入口
func Run() {
	log.SetLogLevel("error")
	if err := NewClientCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
