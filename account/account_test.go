// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"math"
	"testing"

	"github.com/33cn/roulette/common/db"
	"github.com/33cn/roulette/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr2 = "24ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
	addr3 = "34ZTV2wHG3uPHnA5cBJmNxAxxvbzS7Z5mE"
)

func genAccDb(t *testing.T) *DB {
	stroedb, err := db.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	acc := NewCoinsAccount(stroedb)
	require.NoError(t, acc.SaveAccount(&types.Account{Balance: 1000 * 1e8, Addr: addr1}))
	require.NoError(t, acc.SaveAccount(&types.Account{Balance: 900 * 1e8, Addr: addr2}))
	return acc
}

func balance(t *testing.T, acc *DB, addr string) uint64 {
	a, err := acc.LoadAccount(addr)
	require.NoError(t, err)
	return a.Balance
}

func TestLoadAccount(t *testing.T) {
	acc := genAccDb(t)
	assert.Equal(t, uint64(1000*1e8), balance(t, acc, addr1))
	a, err := acc.LoadAccount(addr3)
	require.NoError(t, err)
	assert.Equal(t, addr3, a.Addr)
	assert.Equal(t, uint64(0), a.Balance)
	assert.Equal(t, []byte(CoinsPrefix+addr1), acc.AccountKey(addr1))
}

func TestTransfer(t *testing.T) {
	acc := genAccDb(t)
	receipt, err := acc.Transfer(addr1, addr3, 10*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Len(t, receipt.KV, 2)
	require.Len(t, receipt.Logs, 2)

	var log1 types.ReceiptAccountTransfer
	require.NoError(t, types.Decode(receipt.Logs[0].Log, &log1))
	assert.Equal(t, uint64(1000*1e8), log1.Prev.Balance)
	assert.Equal(t, uint64(990*1e8), log1.Current.Balance)

	assert.Equal(t, uint64(990*1e8), balance(t, acc, addr1))
	assert.Equal(t, uint64(10*1e8), balance(t, acc, addr3))
}

func TestTransferFail(t *testing.T) {
	acc := genAccDb(t)
	_, err := acc.Transfer(addr1, addr3, 0)
	assert.Equal(t, types.ErrAmount, err)
	_, err = acc.Transfer(addr1, addr1, 1)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = acc.Transfer(addr3, addr1, 1)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, types.ErrNoBalance, acc.CheckTransfer(addr2, addr1, 901*1e8))
	assert.NoError(t, acc.CheckTransfer(addr2, addr1, 900*1e8))

	//失败不修改余额
	assert.Equal(t, uint64(1000*1e8), balance(t, acc, addr1))
	assert.Equal(t, uint64(0), balance(t, acc, addr3))
}

func TestTransferOverflow(t *testing.T) {
	acc := genAccDb(t)
	require.NoError(t, acc.SaveAccount(&types.Account{Balance: math.MaxUint64, Addr: addr3}))
	_, err := acc.Transfer(addr1, addr3, 1)
	assert.Equal(t, types.ErrBalanceOverflow, err)
	assert.Equal(t, uint64(1000*1e8), balance(t, acc, addr1))
}

func TestGenesisInit(t *testing.T) {
	acc := genAccDb(t)
	receipt, err := acc.GenesisInit(addr3, 5*1e8)
	require.NoError(t, err)
	assert.Equal(t, int32(types.TyLogGenesisTransfer), receipt.Logs[0].Ty)
	assert.Equal(t, uint64(5*1e8), balance(t, acc, addr3))

	_, err = acc.GenesisInit(addr3, 0)
	assert.Equal(t, types.ErrAmount, err)
}

func TestLoadAccountCorrupt(t *testing.T) {
	stroedb, err := db.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	acc := NewCoinsAccount(stroedb)
	require.NoError(t, stroedb.Set(acc.AccountKey(addr1), []byte{0xff, 0xff}))
	_, err = acc.LoadAccount(addr1)
	assert.Error(t, err)
}
