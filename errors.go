package eventbus

import "errors"

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// Runtime 生命周期错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNotStarted Runtime 未启动
	ErrNotStarted = errors.New("runtime not started")

	// ErrAlreadyStarted Runtime 已启动
	ErrAlreadyStarted = errors.New("runtime already started")

	// ErrRuntimeClosed Runtime 已关闭
	ErrRuntimeClosed = errors.New("runtime closed")

	// ────────────────────────────────────────────────────────────────────────
	// 配置错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNilConfig 配置为 nil
	ErrNilConfig = errors.New("config is nil")
)
