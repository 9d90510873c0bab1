// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"testing"
	"time"

	"github.com/33cn/roulette/types"
	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	c := Counter("test.counter")
	c.Inc(2)
	assert.Equal(t, int64(2), Counter("test.counter").Count())
	Timer("test.timer").Update(time.Millisecond)
	assert.Equal(t, int64(1), Timer("test.timer").Count())

	all := Snapshot()
	assert.Equal(t, int64(2), all["test.counter"]["count"])
	assert.Contains(t, Names(), "test.timer")
}

func TestStartMetrics(t *testing.T) {
	assert.Nil(t, StartMetrics(nil))
	assert.Nil(t, StartMetrics(&types.Metrics{Enable: false}))
	r := StartMetrics(&types.Metrics{Enable: true, LogInterval: 1})
	assert.NotNil(t, r)
	r.emit()
	r.Close()
	var nilr *Reporter
	nilr.Close()
}
