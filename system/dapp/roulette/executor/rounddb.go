// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/roulette/common/db"
	rty "github.com/33cn/roulette/system/dapp/roulette/types"
	"github.com/33cn/roulette/types"
	"github.com/pkg/errors"
)

func calcConfigKey() []byte {
	return []byte("mavl-" + rty.RouletteX + "-config")
}

func calcRoundKey() []byte {
	return []byte("mavl-" + rty.RouletteX + "-round")
}

func isNotFound(err error) bool {
	err = errors.Cause(err)
	return err == types.ErrNotFound || err == dbm.ErrNotFoundInDb
}

func readConfig(db dbm.KV) (*rty.RoundConfig, error) {
	data, err := db.Get(calcConfigKey())
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	var cfg rty.RoundConfig
	if err := types.Decode(data, &cfg); err != nil {
		rlog.Error("readConfig decode", "err", err)
		return nil, errors.Wrap(rty.ErrCorruptRound, err.Error())
	}
	return &cfg, nil
}

func readRoundInfo(db dbm.KV) (*rty.RoundInfo, error) {
	data, err := db.Get(calcRoundKey())
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	var info rty.RoundInfo
	if err := types.Decode(data, &info); err != nil {
		rlog.Error("readRoundInfo decode", "err", err)
		return nil, errors.Wrap(rty.ErrCorruptRound, err.Error())
	}
	return &info, nil
}

// loadRound reads the configuration and the current round from state.
func loadRound(db dbm.KV) (*Round, error) {
	cfg, err := readConfig(db)
	if err != nil {
		return nil, err
	}
	info, err := readRoundInfo(db)
	if err != nil {
		return nil, err
	}
	r, err := restoreRound(cfg, info)
	if err != nil {
		rlog.Error("loadRound", "err", err)
		return nil, err
	}
	return r, nil
}

func configKV(r *Round) *types.KeyValue {
	return &types.KeyValue{Key: calcConfigKey(), Value: types.Encode(r.Config())}
}

func roundKV(r *Round) *types.KeyValue {
	return &types.KeyValue{Key: calcRoundKey(), Value: types.Encode(r.Info())}
}
