// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli 节点和命令行客户端的入口
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	dbm "github.com/33cn/roulette/common/db"
	clog "github.com/33cn/roulette/common/log"
	"github.com/33cn/roulette/executor"
	"github.com/33cn/roulette/metrics"
	"github.com/33cn/roulette/rpc"
	"github.com/33cn/roulette/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	_ "github.com/33cn/roulette/system"
)

var nlog = log.New("module", "node")

//Node 一个运行中的节点
type Node struct {
	cfg      *types.Config
	db       dbm.DB
	exec     *executor.Executor
	jrpc     *rpc.JSONRPCServer
	reporter *metrics.Reporter
}

//NewNode 打开数据库, 初始化创世账户, 启动 jsonrpc
func NewNode(cfg *types.Config) (*Node, error) {
	clog.SetFileLog(cfg.Log)
	if cfg.Exec != nil && cfg.Exec.BlockTimeOffset != 0 {
		types.SetTimeDelta(cfg.Exec.BlockTimeOffset * int64(time.Second))
	}
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		return nil, err
	}
	n := &Node{cfg: cfg, db: db}
	n.exec, err = executor.New(cfg.Exec, db)
	if err != nil {
		n.Close()
		return nil, err
	}
	if cfg.Genesis != nil && len(cfg.Genesis.Accounts) > 0 {
		_, err = n.exec.Genesis(cfg.Genesis.Accounts)
		if err != nil && err != types.ErrGenesisDone {
			n.Close()
			return nil, errors.Wrap(err, "genesis")
		}
	}
	n.jrpc, err = rpc.NewJSONRPCServer(cfg.RPC, n.exec)
	if err != nil {
		n.Close()
		return nil, err
	}
	if _, err := n.jrpc.Listen(); err != nil {
		n.Close()
		return nil, errors.Wrap(err, "jsonrpc listen "+cfg.RPC.JrpcBindAddr)
	}
	n.reporter = metrics.StartMetrics(cfg.Metrics)
	nlog.Info("node started", "title", cfg.Title, "store", cfg.Store.Driver, "height", n.exec.Height())
	return n, nil
}

//Close 按启动的相反顺序关闭
func (n *Node) Close() {
	n.reporter.Close()
	if n.jrpc != nil {
		n.jrpc.Close()
	}
	if n.db != nil {
		n.db.Close()
	}
	nlog.Info("node closed")
	clog.Close()
}

//NewNodeCmd 节点命令
func NewNodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roulette",
		Short: "roulette node with jsonrpc",
		RunE:  runNode,
	}
	cmd.Flags().StringP("conf", "f", "", "config file, use the built-in config if empty")
	cmd.Flags().String("datadir", "", "data dir, include logs and datas")
	return cmd
}

func runNode(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("conf")
	datadir, _ := cmd.Flags().GetString("datadir")
	cfg, err := types.ReadConfig(path)
	if err != nil {
		return err
	}
	if datadir != "" {
		cfg.Store.DbPath = filepath.Join(datadir, cfg.Store.DbPath)
		if cfg.Log.LogFile != "" {
			cfg.Log.LogFile = filepath.Join(datadir, cfg.Log.LogFile)
		}
	}
	n, err := NewNode(cfg)
	if err != nil {
		return err
	}
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	s := <-interrupt
	nlog.Info("receive signal", "signal", s.String())
	n.Close()
	return nil
}

//RunNode 节点入口
func RunNode() {
	if err := NewNodeCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
