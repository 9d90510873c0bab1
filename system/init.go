// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system 注册系统自带的加密算法和合约
package system

import (
	_ "github.com/33cn/roulette/common/crypto/secp256k1"       //register secp256k1
	_ "github.com/33cn/roulette/system/dapp/roulette/executor" //register roulette driver
	_ "github.com/33cn/roulette/system/dapp/roulette/types"    //register roulette type
)
