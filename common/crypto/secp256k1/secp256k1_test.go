// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package secp256k1

import (
	"testing"

	"github.com/33cn/roulette/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	assert.Equal(t, Name, crypto.GetName(ID))
	assert.Equal(t, int32(ID), crypto.GetType(Name))
	assert.Equal(t, "unknown", crypto.GetName(999))
	_, err := crypto.New("none")
	assert.Error(t, err)
}

func TestSignVerify(t *testing.T) {
	c, err := crypto.New(Name)
	require.NoError(t, err)
	priv, err := c.GenKey()
	require.NoError(t, err)

	msg := []byte("hello roulette")
	sig := priv.Sign(msg)
	assert.False(t, sig.IsZero())
	assert.True(t, priv.PubKey().VerifyBytes(msg, sig))
	assert.False(t, priv.PubKey().VerifyBytes([]byte("other"), sig))

	priv2, err := c.PrivKeyFromBytes(priv.Bytes())
	require.NoError(t, err)
	assert.True(t, priv.Equals(priv2))

	pub, err := c.PubKeyFromBytes(priv.PubKey().Bytes())
	require.NoError(t, err)
	assert.True(t, pub.Equals(priv.PubKey()))

	sig2, err := c.SignatureFromBytes(sig.Bytes())
	require.NoError(t, err)
	assert.True(t, pub.VerifyBytes(msg, sig2))
	assert.True(t, sig.Equals(sig2))
}

func TestBadBytes(t *testing.T) {
	c, err := crypto.New(Name)
	require.NoError(t, err)
	_, err = c.PrivKeyFromBytes([]byte{1})
	assert.Error(t, err)
	_, err = c.PubKeyFromBytes([]byte{1})
	assert.Error(t, err)

	priv, err := c.GenKey()
	require.NoError(t, err)
	assert.False(t, priv.PubKey().VerifyBytes([]byte("x"), SignatureSecp256k1{1, 2}))
	assert.Equal(t, "/0102/", SignatureSecp256k1{1, 2}.String())
}
