// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102", ToHex([]byte{1, 2}))

	b, err := FromHex("0x102")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	b, err = FromHex("0X0a")
	require.NoError(t, err)
	assert.Equal(t, []byte{10}, b)

	b, err = FromHex("")
	require.NoError(t, err)
	assert.Empty(t, b)

	_, err = FromHex("0xzz")
	assert.Error(t, err)
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	a := []byte{1, 2, 3}
	b := CopyBytes(a)
	b[0] = 9
	assert.Equal(t, byte(1), a[0])
}

func TestHashLen(t *testing.T) {
	assert.Len(t, Sha256([]byte("abc")), 32)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", Bytes2Hex(Sha256([]byte("abc"))))
	h := Sha2Sum([]byte("abc"))
	assert.Len(t, h[:], 32)
	assert.NotEqual(t, Sha256([]byte("abc")), h[:])
	assert.Len(t, Rimp160([]byte("abc")), 20)
}
