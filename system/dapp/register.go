// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	"github.com/33cn/roulette/common/address"
	"github.com/33cn/roulette/types"
)

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

var (
	registedExecDriver = make(map[string]DriverCreate)
	execAddressNameMap = make(map[string]string)
	mu                 sync.RWMutex
)

// Register register driver by name
func Register(name string, create DriverCreate) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
	execAddressNameMap[name] = address.ExecAddress(name)
}

// LoadDriver load driver
func LoadDriver(name string) (driver Driver, err error) {
	mu.RLock()
	c, ok := registedExecDriver[name]
	mu.RUnlock()
	if !ok {
		blog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrUnknowDriver
	}
	return c(), nil
}

// DriverNames 已注册的驱动
func DriverNames() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsDriverAddress whether or not execdrivers by address
func IsDriverAddress(addr string) bool {
	mu.RLock()
	defer mu.RUnlock()
	for _, a := range execAddressNameMap {
		if a == addr {
			return true
		}
	}
	return false
}

// ExecAddress return exec address
func ExecAddress(name string) string {
	mu.RLock()
	addr, ok := execAddressNameMap[name]
	mu.RUnlock()
	if ok {
		return addr
	}
	return address.ExecAddress(name)
}
