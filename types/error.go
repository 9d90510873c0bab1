// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"sync"
)

var (
	ErrNotFound                = errors.New("ErrNotFound")
	ErrActionNotSupport        = errors.New("ErrActionNotSupport")
	ErrInvalidParam            = errors.New("ErrInvalidParam")
	ErrAmount                  = errors.New("ErrAmount")
	ErrNoBalance               = errors.New("ErrNoBalance")
	ErrBalanceOverflow         = errors.New("ErrBalanceOverflow")
	ErrSign                    = errors.New("ErrSign")
	ErrTxDup                   = errors.New("ErrTxDup")
	ErrTxExpire                = errors.New("ErrTxExpire")
	ErrUnknowDriver            = errors.New("ErrUnknowDriver")
	ErrToAddrNotSameToExecAddr = errors.New("ErrToAddrNotSameToExecAddr")
	ErrSendSameToRecv          = errors.New("ErrSendSameToRecv")
	ErrExecNameNotAllow        = errors.New("ErrExecNameNotAllow")
	ErrQueryNotSupport         = errors.New("ErrQueryNotSupport")
	ErrDecode                  = errors.New("ErrDecode")
	ErrEmpty                   = errors.New("ErrEmpty")
	ErrGenesisDone             = errors.New("ErrGenesisDone")
	ErrGenesisToExecAddr       = errors.New("ErrGenesisToExecAddr")
)

var (
	ErrMethodReturnType   = errors.New("ErrMethodReturnType")
	ErrMethodNotFound     = errors.New("ErrMethodNotFound")
	ErrActionNameNotFound = errors.New("ErrActionNameNotFound")
)

var (
	errMu     sync.RWMutex
	registeredErrs = make(map[error]bool)
)

func init() {
	RegisterErrors(ErrNotFound, ErrActionNotSupport, ErrInvalidParam, ErrAmount, ErrNoBalance,
		ErrBalanceOverflow, ErrSign, ErrTxDup, ErrTxExpire, ErrUnknowDriver, ErrToAddrNotSameToExecAddr,
		ErrSendSameToRecv, ErrExecNameNotAllow, ErrQueryNotSupport, ErrDecode, ErrEmpty, ErrGenesisDone,
		ErrGenesisToExecAddr, ErrMethodReturnType, ErrMethodNotFound, ErrActionNameNotFound)
}

//RegisterErrors 登记合约的错误, 统计时按错误名字计数
func RegisterErrors(errs ...error) {
	errMu.Lock()
	defer errMu.Unlock()
	for _, err := range errs {
		registeredErrs[err] = true
	}
}

//ErrName 登记过的错误返回它的名字, 其他错误统一返回 "other"
func ErrName(err error) string {
	errMu.RLock()
	defer errMu.RUnlock()
	if registeredErrs[err] {
		return err.Error()
	}
	return "other"
}
