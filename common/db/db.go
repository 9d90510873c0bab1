// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db key-value backends for the ledger state
package db

import (
	"errors"
	"fmt"
	"sync"

	log "github.com/inconshreveable/log15"
)

var dlog = log.New("module", "db")

//ErrNotFoundInDb key 不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV 合约可见的最小存储接口
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

//DB 数据库接口
type DB interface {
	KV
	Delete(key []byte) error
	Close()
	NewBatch(sync bool) Batch
	PrefixScan(prefix []byte) ([][]byte, error)
}

//Batch 批量写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
}

//backends
const (
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var (
	backends   = map[string]dbCreator{}
	backendsMu sync.Mutex
)

func registerDBCreator(backend string, creator dbCreator, force bool) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 按照 backend 名字创建数据库
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	backendsMu.Lock()
	creator, ok := backends[backend]
	backendsMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown db backend %q", backend)
	}
	db, err := creator(name, dir, cache)
	if err != nil {
		dlog.Error("NewDB", "backend", backend, "dir", dir, "err", err)
		return nil, err
	}
	return db, nil
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
