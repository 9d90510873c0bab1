// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/hex"
	"time"

	"github.com/33cn/roulette/common"
	"github.com/33cn/roulette/common/address"
	"github.com/33cn/roulette/common/crypto"
	_ "github.com/33cn/roulette/common/crypto/secp256k1" // register secp256k1
)

//Hash 交易hash, 不包含签名
func (tx *Transaction) Hash() []byte {
	copytx := clone(tx)
	copytx.Signature = nil
	data := Encode(copytx)
	return common.Sha256(data)
}

//clone copytx := proto.Clone(tx).(*Transaction) too slow
func clone(tx *Transaction) *Transaction {
	copytx := &Transaction{}
	copytx.Execer = tx.Execer
	copytx.Payload = tx.Payload
	copytx.Signature = tx.Signature
	copytx.Amount = tx.Amount
	copytx.Expire = tx.Expire
	copytx.Nonce = tx.Nonce
	copytx.To = tx.To
	return copytx
}

//Size 交易大小
func (tx *Transaction) Size() int {
	return Size(tx)
}

//Sign 交易签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

//CheckSign 检查签名
func (tx *Transaction) CheckSign() bool {
	if tx.GetSignature() == nil {
		return false
	}
	copytx := clone(tx)
	copytx.Signature = nil
	data := Encode(copytx)
	return CheckSign(data, tx.GetSignature())
}

//CheckSign 检查签名
func CheckSign(data []byte, sign *Signature) bool {
	c, err := crypto.New(crypto.GetName(sign.Ty))
	if err != nil {
		return false
	}
	pub, err := c.PubKeyFromBytes(sign.Pubkey)
	if err != nil {
		return false
	}
	signbytes, err := c.SignatureFromBytes(sign.Signature)
	if err != nil {
		return false
	}
	return pub.VerifyBytes(data, signbytes)
}

//Check 交易大小检查
func (tx *Transaction) Check() error {
	if tx.Size() > MaxTxSize {
		return ErrInvalidParam
	}
	if len(tx.Execer) == 0 {
		return ErrExecNameNotAllow
	}
	return nil
}

//SetExpire 设置交易过期时间
func (tx *Transaction) SetExpire(expire time.Duration) {
	if int64(expire) > ExpireBound {
		if expire < time.Second*120 {
			expire = time.Second * 120
		}
		//用秒数来表示的时间
		tx.Expire = Now().Unix() + int64(expire/time.Second)
	} else {
		tx.Expire = int64(expire)
	}
}

//IsExpire 检查交易是否过期，过期返回true，未过期返回false
func (tx *Transaction) IsExpire(height, blocktime int64) bool {
	valid := tx.Expire
	// Expire为0，返回false
	if valid == 0 {
		return false
	}
	if valid <= ExpireBound {
		//Expire小于1e9，为height valid > height 未过期返回false else true过期
		return valid <= height
	}
	// Expire大于1e9，为blockTime  valid > blocktime返回false 未过期 else true过期
	return valid <= blocktime
}

//From 交易from地址
func (tx *Transaction) From() string {
	return address.PubKeyToAddr(tx.GetSignature().GetPubkey())
}

//HexHash hash的16进制
func (tx *Transaction) HexHash() string {
	return common.ToHex(tx.Hash())
}

//EncodeTxHex 交易编码成16进制, rpc 传输用
func EncodeTxHex(tx *Transaction) string {
	return hex.EncodeToString(Encode(tx))
}

//DecodeTxHex 16进制解码交易
func DecodeTxHex(s string) (*Transaction, error) {
	data, err := common.FromHex(s)
	if err != nil {
		return nil, err
	}
	var tx Transaction
	if err := Decode(data, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
