// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"sort"

	dbm "github.com/33cn/roulette/common/db"
	"github.com/33cn/roulette/types"
)

// StateDB 状态数据库的写缓存
// 交易执行期间的写入先放在 txcache, Commit 之后进入 cache, Flush 之后才写入底层数据库
type StateDB struct {
	cache   map[string][]byte
	txcache map[string][]byte
	keys    []string
	intx    bool
	db      dbm.DB
}

// NewStateDB new state db
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{
		cache: make(map[string][]byte),
		db:    db,
	}
}

// Begin 开启内存事务处理
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = nil
}

// Rollback reset tx
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit canche tx
func (s *StateDB) Commit() {
	for k, v := range s.txcache {
		s.cache[k] = v
	}
	s.resetTx()
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get get value from state db
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx && s.txcache != nil {
		if value, ok := s.txcache[skey]; ok {
			return notFoundIfNil(value)
		}
	}
	if value, ok := s.cache[skey]; ok {
		return notFoundIfNil(value)
	}
	value, err := s.db.Get(key)
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		elog.Error("StateDB.Get", "key", skey, "err", err)
		return nil, err
	}
	return value, nil
}

// nil 表示已经删除
func notFoundIfNil(value []byte) ([]byte, error) {
	if value == nil {
		return nil, types.ErrNotFound
	}
	return value, nil
}

// Set set key value to state db, value 为 nil 表示删除
func (s *StateDB) Set(key []byte, value []byte) error {
	skey := string(key)
	if s.intx {
		if s.txcache == nil {
			s.txcache = make(map[string][]byte)
		}
		s.keys = append(s.keys, skey)
		s.txcache[skey] = value
	} else {
		s.cache[skey] = value
	}
	return nil
}

// GetSetKeys  get state db set keys
func (s *StateDB) GetSetKeys() (keys []string) {
	return s.keys
}

// Flush 把已经提交的数据批量写入数据库
func (s *StateDB) Flush(sync bool) error {
	if s.intx {
		s.Rollback()
	}
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	batch := s.db.NewBatch(sync)
	for _, k := range keys {
		v := s.cache[k]
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}
	s.cache = make(map[string][]byte)
	return nil
}
