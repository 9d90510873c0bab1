// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"path"

	"github.com/dgraph-io/badger"
	"github.com/pkg/errors"
)

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open badger "+dbPath)
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		dlog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		dlog.Error("Set", "error", err)
	}
	return err
}

//Delete delete
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		dlog.Error("Delete", "error", err)
	}
	return err
}

//Close close
func (db *GoBadgerDB) Close() {
	err := db.db.Close()
	if err != nil {
		dlog.Error("Close", "error", err)
	}
}

//PrefixScan 前缀扫描
func (db *GoBadgerDB) PrefixScan(prefix []byte) ([][]byte, error) {
	var values [][]byte
	err := db.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			v, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, v)
		}
		return nil
	})
	if err != nil {
		dlog.Error("PrefixScan", "error", err)
		return nil, err
	}
	return values, nil
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &goBadgerDBBatch{db: db}
}

type goBadgerDBBatch struct {
	db     *GoBadgerDB
	writes []kv
}

func (b *goBadgerDBBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{copyBytes(key), copyBytes(value)})
}

func (b *goBadgerDBBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{copyBytes(key), nil})
}

func (b *goBadgerDBBatch) Write() error {
	err := b.db.db.Update(func(txn *badger.Txn) error {
		for _, kv := range b.writes {
			var err error
			if kv.v == nil {
				err = txn.Delete(kv.k)
			} else {
				err = txn.Set(kv.k, kv.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		dlog.Error("Write", "error", err)
		return err
	}
	b.writes = nil
	return nil
}
