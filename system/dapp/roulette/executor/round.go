// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math/bits"

	rty "github.com/33cn/roulette/system/dapp/roulette/types"
)

// CallContext is what the ledger tells the contract about the current call.
type CallContext struct {
	Caller string
	// block time in whole seconds
	Now uint64
}

// Settlement is the result of a settled round. The host moves Payout to
// Winner and Fee to Owner.
type Settlement struct {
	Winner       string
	WinnerIndex  int
	Payout       uint64
	Fee          uint64
	Owner        string
	Pot          uint64
	CloseTime    uint64
	SettledAt    uint64
	Participants []string
}

// Round is the configuration plus the state of the current round.
// Every operation works on a copy and replaces the receiver only when all
// checks pass, so a rejected call leaves the round untouched.
type Round struct {
	cfg          *rty.RoundConfig
	phase        int32
	closeTime    uint64
	pot          uint64
	participants []string
	wagers       map[string]uint64
}

// NewRound returns an uninitialized round.
func NewRound() *Round {
	return &Round{phase: rty.PhaseIdle, wagers: make(map[string]uint64)}
}

func (r *Round) clone() *Round {
	c := &Round{
		phase:        r.phase,
		closeTime:    r.closeTime,
		pot:          r.pot,
		participants: append([]string(nil), r.participants...),
		wagers:       make(map[string]uint64, len(r.wagers)),
	}
	if r.cfg != nil {
		cfg := *r.cfg
		c.cfg = &cfg
	}
	for k, v := range r.wagers {
		c.wagers[k] = v
	}
	return c
}

func (r *Round) reset() {
	r.phase = rty.PhaseIdle
	r.closeTime = 0
	r.pot = 0
	r.participants = nil
	r.wagers = make(map[string]uint64)
}

// insert keeps participants and wagers in step.
func (r *Round) insert(participant string, amount uint64) error {
	if _, ok := r.wagers[participant]; ok {
		return rty.ErrDuplicateEntry
	}
	pot, carry := bits.Add64(r.pot, amount, 0)
	if carry != 0 {
		return rty.ErrArithmeticOverflow
	}
	r.participants = append(r.participants, participant)
	r.wagers[participant] = amount
	r.pot = pot
	return nil
}

// Initialize writes the configuration once. The caller becomes the owner.
func (r *Round) Initialize(ctx CallContext, duration, maxWager uint64, feePercent uint32) error {
	if r.cfg != nil {
		return rty.ErrAlreadyInitialized
	}
	if feePercent > rty.MaxHouseFeePercent {
		return rty.ErrFeePercentRange
	}
	next := r.clone()
	next.cfg = &rty.RoundConfig{
		Owner:           ctx.Caller,
		RoundDuration:   duration,
		MaxWager:        maxWager,
		HouseFeePercent: feePercent,
	}
	next.reset()
	*r = *next
	return nil
}

// StartRound opens a round that closes round_duration seconds from now.
func (r *Round) StartRound(ctx CallContext) error {
	if r.cfg == nil {
		return rty.ErrNotInitialized
	}
	if ctx.Caller != r.cfg.Owner {
		return rty.ErrUnauthorized
	}
	if r.phase == rty.PhaseOpen {
		return rty.ErrAlreadyOpen
	}
	closeTime, carry := bits.Add64(ctx.Now, r.cfg.RoundDuration, 0)
	if carry != 0 {
		return rty.ErrArithmeticOverflow
	}
	next := r.clone()
	next.reset()
	next.phase = rty.PhaseOpen
	next.closeTime = closeTime
	*r = *next
	return nil
}

// SubmitWager records the caller's wager. A wager exactly at close time is
// still accepted.
func (r *Round) SubmitWager(ctx CallContext, amount uint64) error {
	if r.phase != rty.PhaseOpen || r.cfg == nil {
		return rty.ErrRoundNotOpen
	}
	if ctx.Now > r.closeTime {
		return rty.ErrRoundClosed
	}
	if amount == 0 || amount > r.cfg.MaxWager {
		return rty.ErrWagerOutOfRange
	}
	next := r.clone()
	if err := next.insert(ctx.Caller, amount); err != nil {
		return err
	}
	*r = *next
	return nil
}

// SettleRound picks the winner once the round is strictly past close time
// and resets the round to Idle. Anyone may settle.
func (r *Round) SettleRound(ctx CallContext) (*Settlement, error) {
	if r.phase != rty.PhaseOpen || r.cfg == nil {
		return nil, rty.ErrRoundNotOpen
	}
	if ctx.Now <= r.closeTime {
		return nil, rty.ErrNotYetClosed
	}
	index, err := SelectWinner(ctx.Now, len(r.participants))
	if err != nil {
		return nil, err
	}
	fee, payout, err := SplitPot(r.pot, r.cfg.HouseFeePercent)
	if err != nil {
		return nil, err
	}
	s := &Settlement{
		Winner:       r.participants[index],
		WinnerIndex:  index,
		Payout:       payout,
		Fee:          fee,
		Owner:        r.cfg.Owner,
		Pot:          r.pot,
		CloseTime:    r.closeTime,
		SettledAt:    ctx.Now,
		Participants: append([]string(nil), r.participants...),
	}
	next := r.clone()
	next.reset()
	*r = *next
	return s, nil
}

// CancelRound lets the owner close an open round nobody joined.
// A round with wagers cannot be cancelled since wagers are not refundable.
func (r *Round) CancelRound(ctx CallContext) error {
	if r.cfg == nil {
		return rty.ErrNotInitialized
	}
	if ctx.Caller != r.cfg.Owner {
		return rty.ErrUnauthorized
	}
	if r.phase != rty.PhaseOpen {
		return rty.ErrRoundNotOpen
	}
	if len(r.participants) != 0 {
		return rty.ErrRoundNotEmpty
	}
	next := r.clone()
	next.reset()
	*r = *next
	return nil
}

// PotTotal is callable in any phase, 0 before Initialize.
func (r *Round) PotTotal() uint64 {
	return r.pot
}

// Initialized reports whether the configuration exists.
func (r *Round) Initialized() bool {
	return r.cfg != nil
}

// Phase returns Idle or Open.
func (r *Round) Phase() int32 {
	return r.phase
}

// CloseTime is only meaningful while Open.
func (r *Round) CloseTime() uint64 {
	return r.closeTime
}

// Participants in entry order.
func (r *Round) Participants() []string {
	return append([]string(nil), r.participants...)
}

// WagerOf returns the wager of participant.
func (r *Round) WagerOf(participant string) (uint64, bool) {
	v, ok := r.wagers[participant]
	return v, ok
}

// Config returns a copy of the configuration, nil before Initialize.
func (r *Round) Config() *rty.RoundConfig {
	if r.cfg == nil {
		return nil
	}
	cfg := *r.cfg
	return &cfg
}

// Info is the persisted form of the state.
func (r *Round) Info() *rty.RoundInfo {
	info := &rty.RoundInfo{
		Phase:     r.phase,
		CloseTime: r.closeTime,
		PotTotal:  r.pot,
	}
	for _, p := range r.participants {
		info.Wagers = append(info.Wagers, &rty.Wager{Participant: p, Amount: r.wagers[p]})
	}
	return info
}

// restoreRound rebuilds a round from its persisted form and rejects state
// that breaks the round invariants.
func restoreRound(cfg *rty.RoundConfig, info *rty.RoundInfo) (*Round, error) {
	r := NewRound()
	if cfg == nil {
		if info != nil && (info.Phase != rty.PhaseIdle || len(info.Wagers) != 0 || info.PotTotal != 0) {
			return nil, rty.ErrCorruptRound
		}
		return r, nil
	}
	c := *cfg
	r.cfg = &c
	if info == nil {
		return r, nil
	}
	switch info.Phase {
	case rty.PhaseIdle:
		if info.PotTotal != 0 || len(info.Wagers) != 0 {
			return nil, rty.ErrCorruptRound
		}
		return r, nil
	case rty.PhaseOpen:
	default:
		return nil, rty.ErrCorruptRound
	}
	r.phase = rty.PhaseOpen
	r.closeTime = info.CloseTime
	for _, w := range info.Wagers {
		if w == nil || w.Participant == "" || w.Amount == 0 {
			return nil, rty.ErrCorruptRound
		}
		if err := r.insert(w.Participant, w.Amount); err != nil {
			return nil, rty.ErrCorruptRound
		}
	}
	if r.pot != info.PotTotal {
		return nil, rty.ErrCorruptRound
	}
	return r, nil
}
