// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCoins(t *testing.T) {
	assert.Equal(t, "0.0000", FormatCoins(0))
	assert.Equal(t, "1.0000", FormatCoins(1e8))
	assert.Equal(t, "14.2500", FormatCoins(1425000000))
	assert.Equal(t, "184467440737.0955", FormatCoins(math.MaxUint64))
}

func TestParseCoins(t *testing.T) {
	v, err := ParseCoins("1.5")
	require.NoError(t, err)
	assert.Equal(t, uint64(150000000), v)
	v, err = ParseCoins("0.00000001")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
	v, err = ParseCoins("184467440737.09551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)

	for _, bad := range []string{"abc", "-1", "0.000000001", "184467440737.09551616"} {
		_, err := ParseCoins(bad)
		assert.Error(t, err, bad)
	}
}
