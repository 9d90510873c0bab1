// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/33cn/roulette/common"
	"github.com/33cn/roulette/common/crypto"
	"github.com/33cn/roulette/rpc/jsonclient"
	rpctypes "github.com/33cn/roulette/rpc/types"
	"github.com/33cn/roulette/types"
	"github.com/spf13/cobra"
)

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "private key in hex")
	cmd.MarkFlagRequired("key")
}

// AddKeyFlags 发送交易的命令都需要私钥
func AddKeyFlags(cmd *cobra.Command) {
	addKeyFlags(cmd)
	cmd.Flags().Int64P("expire", "e", 0, "expire height or unix time, 0 never expire")
}

func privKeyFromFlag(cmd *cobra.Command) (crypto.PrivKey, error) {
	key, _ := cmd.Flags().GetString("key")
	data, err := common.FromHex(key)
	if err != nil {
		return nil, err
	}
	c, err := crypto.New(crypto.GetName(types.SignTypeSecp256k1))
	if err != nil {
		return nil, err
	}
	return c.PrivKeyFromBytes(data)
}

// SendAction 通过 rpc 构造交易, 本地签名之后发送, 打印收据
func SendAction(cmd *cobra.Command, execer, action string, payload interface{}, amount uint64) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	expire, _ := cmd.Flags().GetInt64("expire")
	priv, err := privKeyFromFlag(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	client, err := jsonclient.NewJSONClient(rpcLaddr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	var txhex string
	params := &rpctypes.CreateTxIn{Execer: execer, ActionName: action, Payload: raw, Amount: amount, Expire: expire}
	if err := client.Call("CreateRawTransaction", params, &txhex); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx, err := types.DecodeTxHex(txhex)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	tx.Sign(types.SignTypeSecp256k1, priv)
	var res rpctypes.ReceiptResult
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "SendTransaction", rpctypes.RawParm{Data: types.EncodeTxHex(tx)}, &res)
	ctx.Run()
}
