// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics 执行器和 rpc 的计数统计, 定期写入日志
package metrics

import (
	"sort"
	"sync"
	"time"

	"github.com/33cn/roulette/types"
	log "github.com/inconshreveable/log15"
	gometrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

//Registry 进程内的统计项
var Registry = gometrics.NewRegistry()

//Counter 获取或者注册计数器
func Counter(name string) gometrics.Counter {
	return gometrics.GetOrRegisterCounter(name, Registry)
}

//Timer 获取或者注册计时器
func Timer(name string) gometrics.Timer {
	return gometrics.GetOrRegisterTimer(name, Registry)
}

//Meter 获取或者注册速率统计
func Meter(name string) gometrics.Meter {
	return gometrics.GetOrRegisterMeter(name, Registry)
}

//Snapshot 所有统计项的当前值
func Snapshot() map[string]map[string]interface{} {
	return Registry.GetAll()
}

//Names 已注册的统计项, 按名字排序
func Names() []string {
	var names []string
	Registry.Each(func(name string, _ interface{}) {
		names = append(names, name)
	})
	sort.Strings(names)
	return names
}

//Reporter 定期把统计写入日志
type Reporter struct {
	interval time.Duration
	done     chan struct{}
	wg       sync.WaitGroup
}

//StartMetrics 根据配置启动定期输出, 未开启时返回 nil
func StartMetrics(cfg *types.Metrics) *Reporter {
	if cfg == nil || !cfg.Enable {
		mlog.Info("Metrics data is not enabled to emit")
		return nil
	}
	interval := time.Duration(cfg.LogInterval) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	r := &Reporter{interval: interval, done: make(chan struct{})}
	r.wg.Add(1)
	go r.loop()
	return r
}

func (r *Reporter) loop() {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.emit()
		case <-r.done:
			return
		}
	}
}

func (r *Reporter) emit() {
	all := Snapshot()
	for _, name := range Names() {
		values := all[name]
		ctx := make([]interface{}, 0, 2*len(values)+2)
		ctx = append(ctx, "name", name)
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			ctx = append(ctx, k, values[k])
		}
		mlog.Info("metrics", ctx...)
	}
}

//Close 停止输出
func (r *Reporter) Close() {
	if r == nil {
		return
	}
	close(r.done)
	r.wg.Wait()
}
