// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/roulette/common"
	"github.com/33cn/roulette/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genKey(t *testing.T) crypto.PrivKey {
	c, err := crypto.New("secp256k1")
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)
	return priv
}

func TestTxSignAndCheck(t *testing.T) {
	priv := genKey(t)
	tx := &Transaction{Execer: []byte("roulette"), Payload: []byte("payload"), Amount: 100, Nonce: 1, To: "1addr"}
	hash := tx.Hash()
	tx.Sign(SignTypeSecp256k1, priv)
	assert.True(t, tx.CheckSign())
	//签名不影响hash
	assert.Equal(t, hash, tx.Hash())

	tx.Amount = 101
	assert.False(t, tx.CheckSign())
	assert.NotEqual(t, hash, tx.Hash())
}

func TestTxCheckSignNil(t *testing.T) {
	tx := &Transaction{Execer: []byte("roulette")}
	assert.False(t, tx.CheckSign())
}

func TestTxFrom(t *testing.T) {
	key, err := common.FromHex("CC38546E9E659D15E6B4893F0AB32A06D103931A8230B0BDE71459D2B27D6944")
	require.NoError(t, err)
	c, err := crypto.New("secp256k1")
	require.NoError(t, err)
	priv, err := c.PrivKeyFromBytes(key)
	require.NoError(t, err)
	tx := &Transaction{Execer: []byte("roulette")}
	tx.Sign(SignTypeSecp256k1, priv)
	assert.Equal(t, "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt", tx.From())
}

func TestTxIsExpire(t *testing.T) {
	tx := &Transaction{}
	assert.False(t, tx.IsExpire(100, 2e9))

	tx.Expire = 10
	assert.False(t, tx.IsExpire(9, 0))
	assert.True(t, tx.IsExpire(10, 0))

	tx.Expire = ExpireBound + 100
	assert.False(t, tx.IsExpire(1, ExpireBound+99))
	assert.True(t, tx.IsExpire(1, ExpireBound+100))
}

func TestTxHexRoundTrip(t *testing.T) {
	priv := genKey(t)
	tx := &Transaction{Execer: []byte("roulette"), Payload: []byte{1, 2, 3}, Amount: 5, Expire: 3}
	tx.Sign(SignTypeSecp256k1, priv)
	tx2, err := DecodeTxHex(EncodeTxHex(tx))
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), tx2.Hash())
	assert.True(t, tx2.CheckSign())

	_, err = DecodeTxHex("zz")
	assert.Error(t, err)
}
