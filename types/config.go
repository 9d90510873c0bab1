// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//Config 配置
type Config struct {
	Title   string   `json:"title,omitempty"`
	Log     *Log     `json:"log,omitempty"`
	Store   *Store   `json:"store,omitempty"`
	RPC     *RPC     `toml:"rpc" json:"rpc,omitempty"`
	Metrics *Metrics `json:"metrics,omitempty"`
	Genesis *Genesis `json:"genesis,omitempty"`
	Exec    *Exec    `json:"exec,omitempty"`
}

//Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `json:"loglevel,omitempty"`
	LogConsoleLevel string `json:"logConsoleLevel,omitempty"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `json:"logFile,omitempty"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `json:"maxFileSize,omitempty"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `json:"maxBackups,omitempty"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `json:"maxAge,omitempty"`
	// 日志文件名是否使用本地事件（否则使用UTC时间）
	LocalTime bool `json:"localTime,omitempty"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `json:"compress,omitempty"`
	// 是否打印调用源文件和行号
	CallerFile bool `json:"callerFile,omitempty"`
	// 是否打印调用方法
	CallerFunction bool `json:"callerFunction,omitempty"`
}

//Store 状态存储配置
type Store struct {
	Name    string `json:"name,omitempty"`
	Driver  string `json:"driver,omitempty"`
	DbPath  string `json:"dbPath,omitempty"`
	DbCache int32  `json:"dbCache,omitempty"`
}

//RPC jsonrpc 配置
type RPC struct {
	JrpcBindAddr string `json:"jrpcBindAddr,omitempty"`
	// 允许访问的ip, 回环地址总是允许, "0.0.0.0" 表示不限制
	Whitelist []string `json:"whitelist,omitempty"`
	// 允许跨域访问的 origin
	Origins []string `json:"origins,omitempty"`
	// 每个ip每秒允许发送的交易数, 0 表示不限制
	RateLimit float64 `json:"rateLimit,omitempty"`
	RateBurst int64   `json:"rateBurst,omitempty"`
}

//Metrics 统计配置
type Metrics struct {
	Enable bool `json:"enable,omitempty"`
	// 统计信息写入日志的间隔（单位：秒）
	LogInterval int64 `json:"logInterval,omitempty"`
}

//Genesis 创世账户
type Genesis struct {
	Accounts []*GenesisAccount `json:"accounts,omitempty"`
}

//GenesisAccount 创世账户余额
type GenesisAccount struct {
	Addr   string `json:"addr,omitempty"`
	Amount uint64 `json:"amount,omitempty"`
}

//Exec 执行器配置
type Exec struct {
	// 最近交易hash的缓存大小
	TxCacheSize int32 `json:"txCacheSize,omitempty"`
	// 本地时钟修正（单位：秒），超过60秒不生效
	BlockTimeOffset int64 `json:"blockTimeOffset,omitempty"`
}

//InitCfgString 从字符串解析配置
func InitCfgString(cfgstring string) (*Config, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	fillDefault(&cfg)
	return &cfg, nil
}

//ReadConfig 读取配置文件, path 为空时使用默认配置
func ReadConfig(path string) (*Config, error) {
	if path == "" {
		return InitCfgString(GetDefaultCfgstring())
	}
	var cfg Config
	if _, err := tml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config file "+path)
	}
	fillDefault(&cfg)
	return &cfg, nil
}

func fillDefault(cfg *Config) {
	if cfg.Title == "" {
		cfg.Title = "local"
	}
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "store"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "goleveldb"
	}
	if cfg.Store.DbPath == "" {
		cfg.Store.DbPath = "datadir"
	}
	if cfg.RPC == nil {
		cfg.RPC = &RPC{}
	}
	if cfg.RPC.JrpcBindAddr == "" {
		cfg.RPC.JrpcBindAddr = "localhost:8801"
	}
	if cfg.Metrics == nil {
		cfg.Metrics = &Metrics{}
	}
	if cfg.Genesis == nil {
		cfg.Genesis = &Genesis{}
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Exec.TxCacheSize <= 0 {
		cfg.Exec.TxCacheSize = 10240
	}
}
