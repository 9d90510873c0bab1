// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDBGetSet(t *testing.T, db DB) {
	_, err := db.Get([]byte("nokey"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, db.Set([]byte("aaaaaa/1"), []byte("aaaaaa/1")))
	require.NoError(t, db.Set([]byte("my_key/1"), []byte("my_key/1")))
	require.NoError(t, db.Set([]byte("my_key/2"), []byte("my_key/2")))
	require.NoError(t, db.Set([]byte("my"), []byte("my")))
	require.NoError(t, db.Set([]byte("zzzzzz/1"), []byte("zzzzzz/1")))

	v, err := db.Get([]byte("aaaaaa/1"))
	require.NoError(t, err)
	assert.Equal(t, "aaaaaa/1", string(v))

	list, err := db.PrefixScan([]byte("my_key/"))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("my_key/1"), []byte("my_key/2")}, list)

	require.NoError(t, db.Delete([]byte("my_key/1")))
	_, err = db.Get([]byte("my_key/1"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func testDBBatch(t *testing.T, db DB) {
	require.NoError(t, db.Set([]byte("b/old"), []byte("old")))
	batch := db.NewBatch(true)
	batch.Set([]byte("b/1"), []byte("1"))
	batch.Set([]byte("b/2"), []byte("2"))
	batch.Delete([]byte("b/old"))

	//未写入之前不可见
	_, err := db.Get([]byte("b/1"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, batch.Write())
	v, err := db.Get([]byte("b/2"))
	require.NoError(t, err)
	assert.Equal(t, "2", string(v))
	_, err = db.Get([]byte("b/old"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestMemDB(t *testing.T) {
	db, err := NewDB("test", MemDBBackendStr, "", 0)
	require.NoError(t, err)
	defer db.Close()
	testDBGetSet(t, db)
	testDBBatch(t, db)
}

func TestGoLevelDB(t *testing.T) {
	dir, err := ioutil.TempDir("", "goleveldb")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := NewDB("test", GoLevelDBBackendStr, dir, 16)
	require.NoError(t, err)
	defer db.Close()
	testDBGetSet(t, db)
	testDBBatch(t, db)
}

func TestGoBadgerDB(t *testing.T) {
	dir, err := ioutil.TempDir("", "badger")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := NewDB("test", GoBadgerDBBackendStr, dir, 16)
	require.NoError(t, err)
	defer db.Close()
	testDBGetSet(t, db)
	testDBBatch(t, db)
}

func TestUnknownBackend(t *testing.T) {
	_, err := NewDB("test", "cleveldb", "", 0)
	assert.Error(t, err)
}

func TestMemDBCopy(t *testing.T) {
	db, err := NewGoMemDB("test", "", 0)
	require.NoError(t, err)
	value := []byte("value")
	require.NoError(t, db.Set([]byte("k"), value))
	value[0] = 'x'
	v, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "value", string(v))
}
