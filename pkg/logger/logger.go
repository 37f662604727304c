// Package logger 基于log/slog的结构化日志初始化
//
// 输出目标：
//   - stdout / stderr
//   - 文件路径：通过lumberjack按大小轮转，保留有限个备份
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options 日志配置
type Options struct {
	Level      string // debug | info | warn | error
	Format     string // text | json
	Output     string // stdout | stderr | /path/to/file
	AddSource  bool
	MaxSizeMB  int // 单个日志文件最大体积（仅文件输出）
	MaxBackups int // 保留的旧文件个数
	MaxAgeDays int // 旧文件保留天数
}

// New 根据配置创建Logger
// 返回的io.Closer用于程序退出时关闭日志文件（stdout/stderr时为空操作）
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	w, closer := writer(opts)

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.AddSource,
	}

	var h slog.Handler
	switch strings.ToLower(opts.Format) {
	case "json":
		h = slog.NewJSONHandler(w, handlerOpts)
	case "", "text", "console":
		h = slog.NewTextHandler(w, handlerOpts)
	default:
		return nil, nil, fmt.Errorf("unknown log format: %s", opts.Format)
	}

	return slog.New(h), closer, nil
}

// Init 创建Logger并设置为slog默认Logger
func Init(opts Options) (io.Closer, error) {
	l, closer, err := New(opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(l)
	return closer, nil
}

// ParseLevel 解析日志级别，空字符串视为info
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func writer(opts Options) (io.Writer, io.Closer) {
	switch opts.Output {
	case "", "stdout":
		return os.Stdout, nopCloser{}
	case "stderr":
		return os.Stderr, nopCloser{}
	}

	lj := &lumberjack.Logger{
		Filename:   opts.Output,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	}
	return lj, lj
}
