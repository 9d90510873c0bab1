// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

//ExecutorAction action 消息需要实现的接口
type ExecutorAction interface {
	Message
	GetTy() int32
}

//LogInfo 日志类型信息
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

//ExecutorType 执行器类型, 负责 action 的编解码
type ExecutorType interface {
	GetName() string
	//空的 action 消息
	GetPayload() Message
	GetTypeMap() map[string]int32
	GetLogMap() map[int64]*LogInfo
	DecodePayload(tx *Transaction) (Message, error)
	DecodePayloadValue(tx *Transaction) (string, reflect.Value, error)
	ActionName(tx *Transaction) string
	CreateTx(action string, message json.RawMessage) (*Transaction, error)
	DecodeReceiptLog(ty int32, data []byte) (string, interface{}, error)
}

//ExecTypeBase 执行器类型的公共实现
type ExecTypeBase struct {
	child         ExecutorType
	actionFunList map[string]reflect.Method
	actionName    map[int32]string
}

//SetChild 设置具体的执行器类型
func (base *ExecTypeBase) SetChild(child ExecutorType) {
	base.child = child
	base.actionFunList = ListMethod(child.GetPayload())
	base.actionName = make(map[int32]string)
	for name, ty := range child.GetTypeMap() {
		base.actionName[ty] = name
	}
}

//DecodePayload 解码 action
func (base *ExecTypeBase) DecodePayload(tx *Transaction) (Message, error) {
	payload := base.child.GetPayload()
	if payload == nil {
		return nil, ErrActionNotSupport
	}
	err := Decode(tx.Payload, payload)
	if err != nil {
		return nil, errors.Wrap(ErrDecode, err.Error())
	}
	return payload, nil
}

//DecodePayloadValue 解码 action, 返回 action 名字和具体参数
func (base *ExecTypeBase) DecodePayloadValue(tx *Transaction) (string, reflect.Value, error) {
	payload, err := base.DecodePayload(tx)
	if err != nil {
		return "", reflect.ValueOf(nil), err
	}
	action, ok := payload.(ExecutorAction)
	if !ok {
		return "", reflect.ValueOf(nil), ErrActionNotSupport
	}
	name, ok := base.actionName[action.GetTy()]
	if !ok {
		return "", reflect.ValueOf(nil), ErrActionNotSupport
	}
	get, ok := base.actionFunList["Get"+name]
	if !ok {
		return "", reflect.ValueOf(nil), ErrActionNotSupport
	}
	val := get.Func.Call([]reflect.Value{reflect.ValueOf(payload)})
	if !IsOK(val, 1) || IsNilVal(val[0]) {
		return "", reflect.ValueOf(nil), ErrActionNotSupport
	}
	return name, val[0], nil
}

//ActionName action 名字
func (base *ExecTypeBase) ActionName(tx *Transaction) string {
	name, _, err := base.DecodePayloadValue(tx)
	if err != nil {
		return "unknown"
	}
	return name
}

//CreateTx 根据 action 名字和 json 参数构造未签名交易
func (base *ExecTypeBase) CreateTx(action string, message json.RawMessage) (*Transaction, error) {
	ty, ok := base.child.GetTypeMap()[action]
	if !ok {
		return nil, ErrActionNameNotFound
	}
	get, ok := base.actionFunList["Get"+action]
	if !ok {
		return nil, ErrActionNotSupport
	}
	payload := base.child.GetPayload()
	//Get 方法返回值的类型就是参数的类型
	paramType := get.Type.Out(0)
	if paramType.Kind() != reflect.Ptr {
		return nil, ErrActionNotSupport
	}
	param := reflect.New(paramType.Elem())
	if len(message) > 0 {
		if err := json.Unmarshal(message, param.Interface()); err != nil {
			return nil, errors.Wrap(ErrInvalidParam, err.Error())
		}
	}
	elem := reflect.ValueOf(payload).Elem()
	set := false
	for i := 0; i < elem.NumField(); i++ {
		f := elem.Field(i)
		if f.Type() == paramType && f.CanSet() {
			f.Set(param)
			set = true
		}
	}
	tyField := elem.FieldByName("Ty")
	if !set || !tyField.IsValid() || !tyField.CanSet() {
		return nil, ErrActionNotSupport
	}
	tyField.SetInt(int64(ty))
	name := base.child.GetName()
	return &Transaction{Execer: []byte(name), Payload: Encode(payload)}, nil
}

//DecodeReceiptLog 解码执行日志
func (base *ExecTypeBase) DecodeReceiptLog(ty int32, data []byte) (string, interface{}, error) {
	if info, ok := base.child.GetLogMap()[int64(ty)]; ok {
		msg := reflect.New(info.Ty).Interface().(Message)
		if err := Decode(data, msg); err != nil {
			return info.Name, nil, err
		}
		return info.Name, msg, nil
	}
	return decodeSystemLog(ty, data)
}

func decodeSystemLog(ty int32, data []byte) (string, interface{}, error) {
	switch ty {
	case TyLogErr:
		return "LogErr", string(data), nil
	case TyLogTransfer, TyLogGenesisTransfer:
		var transfer ReceiptAccountTransfer
		if err := Decode(data, &transfer); err != nil {
			return "LogTransfer", nil, err
		}
		if ty == TyLogGenesisTransfer {
			return "LogGenesisTransfer", &transfer, nil
		}
		return "LogTransfer", &transfer, nil
	}
	return "unkownType", nil, ErrNotFound
}

var (
	executorMap = map[string]ExecutorType{}
	executorMu  sync.RWMutex
)

//RegistorExecutor 注册执行器类型
func RegistorExecutor(exec string, util ExecutorType) {
	executorMu.Lock()
	defer executorMu.Unlock()
	if _, exist := executorMap[exec]; exist {
		panic("DupExecutorType")
	}
	executorMap[exec] = util
}

//LoadExecutorType 读取执行器类型
func LoadExecutorType(exec string) ExecutorType {
	executorMu.RLock()
	defer executorMu.RUnlock()
	if e, exist := executorMap[exec]; exist {
		return e
	}
	return nil
}
