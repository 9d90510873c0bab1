// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc 基于 http 的 jsonrpc 服务
package rpc

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/33cn/roulette/executor"
	"github.com/33cn/roulette/types"
	log "github.com/inconshreveable/log15"
	"github.com/kevinms/leakybucket-go"
	"github.com/rs/cors"
)

var rlog = log.New("module", "rpc")

// 单个请求的最大字节数
const maxRequestSize = 1 << 20

// 需要限流的方法
var limitedMethods = map[string]bool{
	"SendTransaction": true,
}

// HTTPConn adapt HTTP connection to ReadWriteCloser
type HTTPConn struct {
	r   *http.Request
	in  io.Reader
	out io.Writer
}

func (c *HTTPConn) Read(p []byte) (n int, err error) { return c.in.Read(p) }

func (c *HTTPConn) Write(d []byte) (n int, err error) { return c.out.Write(d) }

// Close rpc 不关闭 http 连接
func (c *HTTPConn) Close() error { return nil }

// JSONRPCServer  a json rpcserver object
type JSONRPCServer struct {
	cfg       *types.RPC
	s         *rpc.Server
	l         net.Listener
	whitelist map[string]bool
	limiter   *leakybucket.Collector
}

// NewJSONRPCServer new json rpcserver object
func NewJSONRPCServer(cfg *types.RPC, exec *executor.Executor) (*JSONRPCServer, error) {
	j := &JSONRPCServer{cfg: cfg, s: rpc.NewServer(), whitelist: make(map[string]bool)}
	if err := j.s.RegisterName(ServiceName, &Roulette{exec: exec}); err != nil {
		return nil, err
	}
	for _, ip := range cfg.Whitelist {
		j.whitelist[ip] = true
	}
	if cfg.RateLimit > 0 {
		j.limiter = leakybucket.NewCollector(cfg.RateLimit, cfg.RateBurst, true)
	}
	return j, nil
}

func (j *JSONRPCServer) checkIPWhitelist(addr string) bool {
	//回环网络直接允许
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	if ip.IsLoopback() {
		return true
	}
	if ipv4 := ip.To4(); ipv4 != nil {
		addr = ipv4.String()
	}
	return j.whitelist["0.0.0.0"] || j.whitelist[addr]
}

// allow 同一个ip发送交易的速率限制
func (j *JSONRPCServer) allow(ip string) bool {
	if j.limiter == nil {
		return true
	}
	//Add 在锁内检查并占用, 桶满时返回 0
	return j.limiter.Add(ip, 1) > 0
}

type rpcMethod struct {
	ID     interface{} `json:"id"`
	Method string      `json:"method"`
}

func writeError(w http.ResponseWriter, id interface{}, msg string) {
	w.Header().Set("Content-type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": id, "result": nil, "error": msg})
}

// Handler http 入口, 外层是 cors
func (j *JSONRPCServer) Handler() http.Handler {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			writeError(w, nil, err.Error())
			return
		}
		if !j.checkIPWhitelist(ip) {
			rlog.Error("HandlerFunc", "reject ip", ip)
			writeError(w, nil, "reject")
			return
		}
		data, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestSize))
		if err != nil {
			writeError(w, nil, err.Error())
			return
		}
		var req rpcMethod
		if err := json.Unmarshal(data, &req); err != nil {
			writeError(w, nil, "json format err")
			return
		}
		method := strings.TrimPrefix(req.Method, ServiceName+".")
		if limitedMethods[method] && !j.allow(ip) {
			rlog.Debug("HandlerFunc", "rate limit", ip, "method", method)
			writeError(w, req.ID, ErrRateLimit.Error())
			return
		}
		serverCodec := jsonrpc.NewServerCodec(&HTTPConn{in: bytes.NewReader(data), out: w, r: r})
		w.Header().Set("Content-type", "application/json")
		w.WriteHeader(200)
		if err := j.s.ServeRequest(serverCodec); err != nil {
			rlog.Debug("Error while serving JSON request", "err", err)
		}
	})
	origins := j.cfg.Origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	co := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return co.Handler(handler)
}

// Listen 监听端口, 返回实际的端口
func (j *JSONRPCServer) Listen() (int, error) {
	listener, err := net.Listen("tcp", j.cfg.JrpcBindAddr)
	if err != nil {
		return 0, err
	}
	j.l = listener
	go func() {
		err := http.Serve(listener, j.Handler())
		if err != nil {
			rlog.Info("jsonrpc serve stop", "err", err)
		}
	}()
	rlog.Info("jsonrpc listen", "addr", listener.Addr().String())
	return listener.Addr().(*net.TCPAddr).Port, nil
}

// Close json rpcserver close
func (j *JSONRPCServer) Close() {
	if j.l != nil {
		err := j.l.Close()
		if err != nil {
			rlog.Error("JSONRPCServer close", "err", err)
		}
	}
}
