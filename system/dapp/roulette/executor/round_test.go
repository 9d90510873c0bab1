// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math"
	"testing"

	rty "github.com/33cn/roulette/system/dapp/roulette/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerA = "A"
	userB  = "B"
	userC  = "C"
	userD  = "D"
)

func at(caller string, now uint64) CallContext {
	return CallContext{Caller: caller, Now: now}
}

// openRound is the state after initializing with (300, 1e9, 5) and starting at t=1000.
func openRound(t *testing.T) *Round {
	r := NewRound()
	require.NoError(t, r.Initialize(at(ownerA, 0), 300, 1000000000, 5))
	require.NoError(t, r.StartRound(at(ownerA, 1000)))
	return r
}

func TestRoundLifecycle(t *testing.T) {
	r := openRound(t)
	assert.Equal(t, rty.PhaseOpen, r.Phase())
	assert.Equal(t, uint64(1300), r.CloseTime())
	assert.Equal(t, uint64(0), r.PotTotal())

	require.NoError(t, r.SubmitWager(at(userB, 1010), 500000000))
	assert.Equal(t, uint64(500000000), r.PotTotal())
	assert.Equal(t, []string{userB}, r.Participants())
	require.NoError(t, r.SubmitWager(at(userC, 1020), 1000000000))
	assert.Equal(t, uint64(1500000000), r.PotTotal())
	assert.Equal(t, []string{userB, userC}, r.Participants())

	assert.Equal(t, rty.ErrDuplicateEntry, r.SubmitWager(at(userB, 1030), 100))
	assert.Equal(t, rty.ErrWagerOutOfRange, r.SubmitWager(at(userD, 1030), 2000000000))
	assert.Equal(t, uint64(1500000000), r.PotTotal())

	s, err := r.SettleRound(at(userD, 1301))
	require.NoError(t, err)
	assert.Equal(t, 1, s.WinnerIndex)
	assert.Equal(t, userC, s.Winner)
	assert.Equal(t, uint64(75000000), s.Fee)
	assert.Equal(t, uint64(1425000000), s.Payout)
	assert.Equal(t, ownerA, s.Owner)
	assert.Equal(t, uint64(1500000000), s.Pot)
	assert.Equal(t, []string{userB, userC}, s.Participants)

	assert.Equal(t, rty.PhaseIdle, r.Phase())
	assert.Equal(t, uint64(0), r.PotTotal())
	assert.Empty(t, r.Participants())
	_, ok := r.WagerOf(userB)
	assert.False(t, ok)

	_, err = r.SettleRound(at(userD, 1302))
	assert.Equal(t, rty.ErrRoundNotOpen, err)
}

func TestSettleNoParticipants(t *testing.T) {
	r := openRound(t)
	_, err := r.SettleRound(at(userB, 1301))
	assert.Equal(t, rty.ErrNoParticipants, err)
	assert.Equal(t, rty.PhaseOpen, r.Phase())
	assert.Equal(t, uint64(1300), r.CloseTime())

	// the owner recovers by cancelling the empty round
	assert.Equal(t, rty.ErrUnauthorized, r.CancelRound(at(userB, 1302)))
	require.NoError(t, r.CancelRound(at(ownerA, 1302)))
	assert.Equal(t, rty.PhaseIdle, r.Phase())
	require.NoError(t, r.StartRound(at(ownerA, 2000)))
	assert.Equal(t, uint64(2300), r.CloseTime())
}

func TestCloseTimeBoundary(t *testing.T) {
	r := openRound(t)
	require.NoError(t, r.SubmitWager(at(userB, 1300), 1))
	assert.Equal(t, rty.ErrRoundClosed, r.SubmitWager(at(userC, 1301), 1))

	_, err := r.SettleRound(at(userC, 1300))
	assert.Equal(t, rty.ErrNotYetClosed, err)
	s, err := r.SettleRound(at(userC, 1301))
	require.NoError(t, err)
	assert.Equal(t, userB, s.Winner)
	assert.Equal(t, uint64(1), s.Payout)
	assert.Equal(t, uint64(0), s.Fee)
}

func TestWagerRange(t *testing.T) {
	r := openRound(t)
	assert.Equal(t, rty.ErrWagerOutOfRange, r.SubmitWager(at(userB, 1001), 0))
	assert.Equal(t, rty.ErrWagerOutOfRange, r.SubmitWager(at(userB, 1001), 1000000001))
	require.NoError(t, r.SubmitWager(at(userB, 1001), 1000000000))
}

func TestNotOpen(t *testing.T) {
	r := NewRound()
	assert.False(t, r.Initialized())
	assert.Equal(t, uint64(0), r.PotTotal())
	assert.Nil(t, r.Config())
	assert.Equal(t, rty.ErrNotInitialized, r.StartRound(at(ownerA, 1)))
	assert.Equal(t, rty.ErrRoundNotOpen, r.SubmitWager(at(userB, 1), 1))
	_, err := r.SettleRound(at(userB, 1))
	assert.Equal(t, rty.ErrRoundNotOpen, err)
	assert.Equal(t, rty.ErrNotInitialized, r.CancelRound(at(ownerA, 1)))

	require.NoError(t, r.Initialize(at(ownerA, 0), 10, 10, 0))
	assert.Equal(t, rty.ErrRoundNotOpen, r.SubmitWager(at(userB, 1), 1))
	assert.Equal(t, rty.ErrRoundNotOpen, r.CancelRound(at(ownerA, 1)))
}

func TestInitialize(t *testing.T) {
	r := NewRound()
	assert.Equal(t, rty.ErrFeePercentRange, r.Initialize(at(ownerA, 0), 10, 10, 101))
	assert.False(t, r.Initialized())
	require.NoError(t, r.Initialize(at(ownerA, 0), 10, 10, 100))
	assert.Equal(t, rty.ErrAlreadyInitialized, r.Initialize(at(userB, 0), 20, 20, 1))
	cfg := r.Config()
	assert.Equal(t, ownerA, cfg.Owner)
	assert.Equal(t, uint64(10), cfg.RoundDuration)
	assert.Equal(t, uint32(100), cfg.HouseFeePercent)
}

func TestStartRound(t *testing.T) {
	r := NewRound()
	require.NoError(t, r.Initialize(at(ownerA, 0), 300, 10, 5))
	assert.Equal(t, rty.ErrUnauthorized, r.StartRound(at(userB, 1)))
	require.NoError(t, r.StartRound(at(ownerA, 1)))
	assert.Equal(t, rty.ErrAlreadyOpen, r.StartRound(at(ownerA, 2)))
	assert.Equal(t, uint64(301), r.CloseTime())

	r2 := NewRound()
	require.NoError(t, r2.Initialize(at(ownerA, 0), math.MaxUint64, 10, 5))
	assert.Equal(t, rty.ErrArithmeticOverflow, r2.StartRound(at(ownerA, 1)))
	assert.Equal(t, rty.PhaseIdle, r2.Phase())
	require.NoError(t, r2.StartRound(at(ownerA, 0)))
	assert.Equal(t, uint64(math.MaxUint64), r2.CloseTime())
}

func TestZeroDuration(t *testing.T) {
	r := NewRound()
	require.NoError(t, r.Initialize(at(ownerA, 0), 0, 10, 5))
	require.NoError(t, r.StartRound(at(ownerA, 50)))
	require.NoError(t, r.SubmitWager(at(userB, 50), 10))
	assert.Equal(t, rty.ErrRoundClosed, r.SubmitWager(at(userC, 51), 10))
	s, err := r.SettleRound(at(userC, 51))
	require.NoError(t, err)
	assert.Equal(t, userB, s.Winner)
}

func TestPotOverflow(t *testing.T) {
	r := NewRound()
	require.NoError(t, r.Initialize(at(ownerA, 0), 300, math.MaxUint64, 5))
	require.NoError(t, r.StartRound(at(ownerA, 1000)))
	require.NoError(t, r.SubmitWager(at(userB, 1001), math.MaxUint64-1))
	assert.Equal(t, rty.ErrArithmeticOverflow, r.SubmitWager(at(userC, 1001), 2))
	assert.Equal(t, uint64(math.MaxUint64-1), r.PotTotal())
	assert.Equal(t, []string{userB}, r.Participants())
	require.NoError(t, r.SubmitWager(at(userC, 1001), 1))

	s, err := r.SettleRound(at(userD, 1301))
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), s.Fee+s.Payout)
}

func TestCancelRound(t *testing.T) {
	r := openRound(t)
	require.NoError(t, r.SubmitWager(at(userB, 1001), 10))
	assert.Equal(t, rty.ErrRoundNotEmpty, r.CancelRound(at(ownerA, 1002)))
	assert.Equal(t, rty.PhaseOpen, r.Phase())
	assert.Equal(t, uint64(10), r.PotTotal())
}

func TestRejectedCallKeepsState(t *testing.T) {
	r := openRound(t)
	require.NoError(t, r.SubmitWager(at(userB, 1001), 10))
	before := r.Info()
	calls := []func() error{
		func() error { return r.SubmitWager(at(userB, 1002), 5) },
		func() error { return r.SubmitWager(at(userC, 1002), 0) },
		func() error { return r.SubmitWager(at(userC, 2000), 5) },
		func() error { return r.StartRound(at(ownerA, 1002)) },
		func() error { return r.CancelRound(at(ownerA, 1002)) },
		func() error { _, err := r.SettleRound(at(userC, 1299)); return err },
	}
	for _, call := range calls {
		assert.Error(t, call())
		assert.Equal(t, before, r.Info())
	}
}

func TestSelectWinner(t *testing.T) {
	_, err := SelectWinner(10, 0)
	assert.Equal(t, rty.ErrNoParticipants, err)
	i, err := SelectWinner(1301, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	i, err = SelectWinner(math.MaxUint64, 7)
	require.NoError(t, err)
	assert.Equal(t, int(uint64(math.MaxUint64)%7), i)
}

func TestSplitPot(t *testing.T) {
	cases := []struct {
		pot, fee, payout uint64
		percent          uint32
	}{
		{1500000000, 75000000, 1425000000, 5},
		{99, 4, 95, 5},
		{100, 0, 100, 0},
		{100, 100, 0, 100},
		{math.MaxUint64, math.MaxUint64 / 2, math.MaxUint64 - math.MaxUint64/2, 50},
		{math.MaxUint64, math.MaxUint64, 0, 100},
	}
	for _, c := range cases {
		fee, payout, err := SplitPot(c.pot, c.percent)
		require.NoError(t, err)
		assert.Equal(t, c.fee, fee, "pot %d percent %d", c.pot, c.percent)
		assert.Equal(t, c.payout, payout)
		assert.Equal(t, c.pot, fee+payout)
	}
	_, _, err := SplitPot(1, 101)
	assert.Equal(t, rty.ErrFeePercentRange, err)
}

func TestRestoreRound(t *testing.T) {
	r := openRound(t)
	require.NoError(t, r.SubmitWager(at(userB, 1001), 10))
	require.NoError(t, r.SubmitWager(at(userC, 1002), 20))

	r2, err := restoreRound(r.Config(), r.Info())
	require.NoError(t, err)
	assert.Equal(t, r.Info(), r2.Info())
	assert.Equal(t, r.Config(), r2.Config())

	empty, err := restoreRound(nil, nil)
	require.NoError(t, err)
	assert.False(t, empty.Initialized())

	bad := r.Info()
	bad.PotTotal = 31
	_, err = restoreRound(r.Config(), bad)
	assert.Equal(t, rty.ErrCorruptRound, err)

	bad = r.Info()
	bad.Wagers = append(bad.Wagers, &rty.Wager{Participant: userB, Amount: 1})
	bad.PotTotal = 31
	_, err = restoreRound(r.Config(), bad)
	assert.Equal(t, rty.ErrCorruptRound, err)

	_, err = restoreRound(r.Config(), &rty.RoundInfo{Phase: 7})
	assert.Equal(t, rty.ErrCorruptRound, err)
	_, err = restoreRound(r.Config(), &rty.RoundInfo{Phase: rty.PhaseIdle, PotTotal: 1})
	assert.Equal(t, rty.ErrCorruptRound, err)
	_, err = restoreRound(nil, r.Info())
	assert.Equal(t, rty.ErrCorruptRound, err)
}
