// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/33cn/roulette/common/db"
	"github.com/33cn/roulette/types"
)

//KVCreator 创建KV的辅助工具
type KVCreator struct {
	kvs  []*types.KeyValue
	kvdb db.KV
	err  error
}

//NewKVCreator 创建创建者
func NewKVCreator(kv db.KV) *KVCreator {
	return &KVCreator{kvdb: kv}
}

//Add add and set to kvdb, 出错之后的 Add 都会被忽略
func (c *KVCreator) Add(key, value []byte) *KVCreator {
	if c.err != nil {
		return c
	}
	if c.err = c.kvdb.Set(key, value); c.err != nil {
		return c
	}
	c.kvs = append(c.kvs, &types.KeyValue{Key: key, Value: value})
	return c
}

//KVList 读取所有的kv列表
func (c *KVCreator) KVList() []*types.KeyValue {
	return c.kvs
}

//Err 第一个写入错误
func (c *KVCreator) Err() error {
	return c.err
}
