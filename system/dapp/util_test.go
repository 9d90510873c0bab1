// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"errors"
	"testing"

	dbm "github.com/33cn/roulette/common/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSetFail = errors.New("ErrSetFail")

// failKV 第 n 次 Set 开始失败
type failKV struct {
	dbm.KV
	n int
}

func (f *failKV) Set(key, value []byte) error {
	f.n--
	if f.n < 0 {
		return errSetFail
	}
	return f.KV.Set(key, value)
}

func TestKVCreator(t *testing.T) {
	db, err := dbm.NewGoMemDB("dapp", "", 0)
	require.NoError(t, err)
	creator := NewKVCreator(db)
	creator.Add([]byte("a"), []byte("b")).Add([]byte("a1"), []byte("b1"))
	assert.NoError(t, creator.Err())
	assert.Equal(t, 2, len(creator.KVList()))
	value, err := db.Get([]byte("a1"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("b1"), value)
}

func TestKVCreatorErr(t *testing.T) {
	db, err := dbm.NewGoMemDB("dapp", "", 0)
	require.NoError(t, err)
	creator := NewKVCreator(&failKV{KV: db, n: 1})
	creator.Add([]byte("a"), []byte("b"))
	creator.Add([]byte("c"), []byte("d"))
	creator.Add([]byte("e"), []byte("f"))
	assert.Equal(t, errSetFail, creator.Err())
	//失败之后的写入不会出现在列表里, 也不会写入数据库
	require.Len(t, creator.KVList(), 1)
	assert.Equal(t, []byte("a"), creator.KVList()[0].Key)
	_, err = db.Get([]byte("e"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
}
