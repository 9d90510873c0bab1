// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"

	"github.com/33cn/roulette/types"
)

// rejected calls, none of them mutate the round
var (
	ErrAlreadyInitialized = errors.New("ErrAlreadyInitialized")
	ErrNotInitialized     = errors.New("ErrNotInitialized")
	ErrUnauthorized       = errors.New("ErrUnauthorized")
	ErrAlreadyOpen        = errors.New("ErrAlreadyOpen")
	ErrRoundNotOpen       = errors.New("ErrRoundNotOpen")
	ErrRoundClosed        = errors.New("ErrRoundClosed")
	ErrWagerOutOfRange    = errors.New("ErrWagerOutOfRange")
	ErrDuplicateEntry     = errors.New("ErrDuplicateEntry")
	ErrNotYetClosed       = errors.New("ErrNotYetClosed")
	ErrNoParticipants     = errors.New("ErrNoParticipants")
	ErrArithmeticOverflow = errors.New("ErrArithmeticOverflow")
	ErrFeePercentRange    = errors.New("ErrFeePercentRange")
	ErrDepositMismatch    = errors.New("ErrDepositMismatch")
	ErrRoundNotEmpty      = errors.New("ErrRoundNotEmpty")
	ErrCorruptRound       = errors.New("ErrCorruptRound")
)

func init() {
	types.RegisterErrors(ErrAlreadyInitialized, ErrNotInitialized, ErrUnauthorized, ErrAlreadyOpen,
		ErrRoundNotOpen, ErrRoundClosed, ErrWagerOutOfRange, ErrDuplicateEntry, ErrNotYetClosed,
		ErrNoParticipants, ErrArithmeticOverflow, ErrFeePercentRange, ErrDepositMismatch,
		ErrRoundNotEmpty, ErrCorruptRound)
}
