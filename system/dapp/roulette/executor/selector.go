// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"math/bits"

	rty "github.com/33cn/roulette/system/dapp/roulette/types"
)

// SelectWinner returns timestamp mod count.
//
// The index only depends on the block time and the entry order, so whoever
// controls the block time can predict or bias the winner. This is the
// selection policy of the contract and is kept as is; a verifiable random
// input would be needed to make it fair.
func SelectWinner(timestamp uint64, count int) (int, error) {
	if count <= 0 {
		return 0, rty.ErrNoParticipants
	}
	return int(timestamp % uint64(count)), nil
}

// SplitPot computes fee = floor(percent*pot/100) and payout = pot - fee.
// The product is taken in 128 bits so it cannot overflow.
func SplitPot(pot uint64, percent uint32) (fee, payout uint64, err error) {
	if percent > rty.MaxHouseFeePercent {
		return 0, 0, rty.ErrFeePercentRange
	}
	hi, lo := bits.Mul64(pot, uint64(percent))
	// hi < 100 because percent <= 100, so Div64 cannot panic
	fee, _ = bits.Div64(hi, lo, 100)
	return fee, pot - fee, nil
}
