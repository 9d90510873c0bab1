// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"testing"

	"github.com/33cn/roulette/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	ety := types.LoadExecutorType(RouletteX)
	require.NotNil(t, ety)
	assert.Equal(t, RouletteX, ety.GetName())
}

func TestCreateTxAndDecode(t *testing.T) {
	ety := NewType()
	tx, err := ety.CreateTx("SubmitWager", json.RawMessage(`{"amount":100}`))
	require.NoError(t, err)
	assert.Equal(t, ExecerRoulette, tx.Execer)

	name, value, err := ety.DecodePayloadValue(tx)
	require.NoError(t, err)
	assert.Equal(t, "SubmitWager", name)
	wager, ok := value.Interface().(*RouletteSubmitWager)
	require.True(t, ok)
	assert.Equal(t, uint64(100), wager.Amount)
	assert.Equal(t, "SubmitWager", ety.ActionName(tx))

	tx, err = ety.CreateTx("Initialize", json.RawMessage(`{"roundDuration":300,"maxWager":1000000000,"houseFeePercent":5}`))
	require.NoError(t, err)
	payload, err := ety.DecodePayload(tx)
	require.NoError(t, err)
	action := payload.(*RouletteAction)
	assert.Equal(t, int32(RouletteActionInitialize), action.Ty)
	assert.Equal(t, uint64(300), action.GetInitialize().RoundDuration)
	assert.Equal(t, uint32(5), action.GetInitialize().HouseFeePercent)

	tx, err = ety.CreateTx("StartRound", nil)
	require.NoError(t, err)
	assert.Equal(t, "StartRound", ety.ActionName(tx))
}

func TestCreateTxErr(t *testing.T) {
	ety := NewType()
	_, err := ety.CreateTx("Unknown", nil)
	assert.Equal(t, types.ErrActionNameNotFound, err)
	_, err = ety.CreateTx("SubmitWager", json.RawMessage(`{"amount":"x"}`))
	assert.Error(t, err)
}

func TestDecodePayloadMismatch(t *testing.T) {
	ety := NewType()
	//Ty 和参数不一致
	action := &RouletteAction{Ty: RouletteActionSettleRound, SubmitWager: &RouletteSubmitWager{Amount: 1}}
	tx := &types.Transaction{Execer: ExecerRoulette, Payload: types.Encode(action)}
	_, _, err := ety.DecodePayloadValue(tx)
	assert.Equal(t, types.ErrActionNotSupport, err)
	assert.Equal(t, "unknown", ety.ActionName(tx))

	tx.Payload = []byte{0xff}
	_, _, err = ety.DecodePayloadValue(tx)
	assert.Error(t, err)
}

func TestDecodeReceiptLog(t *testing.T) {
	ety := NewType()
	log := &ReceiptRouletteWager{Participant: "a", Amount: 3, PotTotal: 3, Participants: 1}
	name, v, err := ety.DecodeReceiptLog(TyLogRouletteWager, types.Encode(log))
	require.NoError(t, err)
	assert.Equal(t, "LogRouletteWager", name)
	assert.Equal(t, uint64(3), v.(*ReceiptRouletteWager).Amount)

	name, v, err = ety.DecodeReceiptLog(types.TyLogErr, []byte("ErrX"))
	require.NoError(t, err)
	assert.Equal(t, "LogErr", name)
	assert.Equal(t, "ErrX", v)
}

func TestPhaseName(t *testing.T) {
	assert.Equal(t, "Idle", PhaseName(PhaseIdle))
	assert.Equal(t, "Open", PhaseName(PhaseOpen))
	assert.Equal(t, "unknown", PhaseName(7))
}

func TestErrorsRegistered(t *testing.T) {
	for _, err := range []error{ErrRoundClosed, ErrDepositMismatch, ErrCorruptRound, ErrRoundNotEmpty} {
		assert.Equal(t, err.Error(), types.ErrName(err))
	}
}
