// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
	"testing"

	"github.com/33cn/roulette/common/crypto"
	_ "github.com/33cn/roulette/common/crypto/secp256k1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	c, err := crypto.New("secp256k1")
	require.NoError(t, err)
	key, err := c.GenKey()
	require.NoError(t, err)
	addr := PubKeyToAddress(key.PubKey().Bytes())
	require.NoError(t, CheckAddress(addr.String()))
}

func TestPubkeyToAddress(t *testing.T) {
	pubkey := "02504fa1c28caaf1d5a20fefb87c50a49724ff401043420cb3ba271997eb5a4387"
	b, err := hex.DecodeString(pubkey)
	require.NoError(t, err)
	assert.Equal(t, "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt", PubKeyToAddr(b))
}

func TestCheckAddress(t *testing.T) {
	assert.NoError(t, CheckAddress("14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"))
	//cache hit
	assert.NoError(t, CheckAddress("14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"))
	assert.Equal(t, ErrCheckChecksum, CheckAddress("14KEKbYtKKQm4wMthSK9J4La4nAiidGozu"))
	assert.Error(t, CheckAddress(""))
	assert.Error(t, CheckAddress("1abc"))
}

func TestExecAddress(t *testing.T) {
	a1 := ExecAddress("roulette")
	assert.Equal(t, a1, ExecAddress("roulette"))
	assert.NotEqual(t, a1, ExecAddress("coins"))
	assert.NoError(t, CheckAddress(a1))
}
