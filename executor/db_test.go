// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	dbm "github.com/33cn/roulette/common/db"
	"github.com/33cn/roulette/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateDBCommit(t *testing.T) {
	db, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	require.NoError(t, db.Set([]byte("k0"), []byte("v0")))
	s := NewStateDB(db)

	s.Begin()
	require.NoError(t, s.Set([]byte("k1"), []byte("v1")))
	require.NoError(t, s.Set([]byte("k0"), nil))
	assert.Equal(t, []string{"k1", "k0"}, s.GetSetKeys())
	v, err := s.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
	_, err = s.Get([]byte("k0"))
	assert.Equal(t, types.ErrNotFound, err)
	s.Commit()

	//提交之后还没有写入数据库
	_, err = db.Get([]byte("k1"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
	require.NoError(t, s.Flush(false))
	v, err = db.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
	_, err = db.Get([]byte("k0"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
}

func TestStateDBRollback(t *testing.T) {
	db, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	require.NoError(t, db.Set([]byte("k0"), []byte("v0")))
	s := NewStateDB(db)

	s.Begin()
	require.NoError(t, s.Set([]byte("k0"), []byte("v1")))
	s.Rollback()
	v, err := s.Get([]byte("k0"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v0"), v)
	assert.Nil(t, s.GetSetKeys())
	_, err = s.Get([]byte("nokey"))
	assert.Equal(t, types.ErrNotFound, err)

	//事务之外的写入直接进入 cache
	require.NoError(t, s.Set([]byte("k2"), []byte("v2")))
	s.Begin()
	require.NoError(t, s.Set([]byte("k3"), []byte("v3")))
	require.NoError(t, s.Flush(false))
	_, err = db.Get([]byte("k3"))
	assert.Equal(t, dbm.ErrNotFoundInDb, err)
	v, err = db.Get([]byte("k2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
}
