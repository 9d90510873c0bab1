// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrName(t *testing.T) {
	assert.Equal(t, "ErrTxDup", ErrName(ErrTxDup))
	assert.Equal(t, "ErrGenesisToExecAddr", ErrName(ErrGenesisToExecAddr))
	assert.Equal(t, "other", ErrName(errors.New("open /tmp/x: permission denied")))
	assert.Equal(t, "other", ErrName(errors.New("ErrTxDup")))

	errNew := errors.New("ErrNewOne")
	assert.Equal(t, "other", ErrName(errNew))
	RegisterErrors(errNew)
	assert.Equal(t, "ErrNewOne", ErrName(errNew))
}
