package eventbus

import (
	core "github.com/dep2p/go-eventbus/internal/core/eventbus"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// ════════════════════════════════════════════════════════════════════════════
//                              类型导出
// ════════════════════════════════════════════════════════════════════════════

type (
	// Bus 事件总线，使用 NewBus 或 Runtime 创建
	Bus = core.Bus

	// Subscription Register 返回的注册令牌
	Subscription = core.Subscription

	// UnroutedEvent 无处理器事件的包装，使用 TryAs 还原
	UnroutedEvent = core.UnroutedEvent

	// HandlerError 处理器失败时 Post 返回的错误
	HandlerError = core.HandlerError

	// BusOption 总线选项
	BusOption = core.Option

	// DispatchObserver 投递观察者
	DispatchObserver = pkgif.DispatchObserver
)

// NewBus 创建新的事件总线
func NewBus(opts ...BusOption) *Bus {
	return core.NewBus(opts...)
}

// WithBusID 指定总线实例标识
func WithBusID(id string) BusOption {
	return core.WithID(id)
}

// WithBusObserver 设置投递观察者
func WithBusObserver(obs DispatchObserver) BusOption {
	return core.WithObserver(obs)
}

// WithWarnOnDiscard 事件被丢弃时输出 Warn 日志
func WithWarnOnDiscard(enable bool) BusOption {
	return core.WithWarnOnDiscard(enable)
}

// ════════════════════════════════════════════════════════════════════════════
//                              泛型操作
// ════════════════════════════════════════════════════════════════════════════

// Register 为事件类型 T 注册处理器
//
// 同一处理器（同一具名函数或同一闭包变量）重复注册只保留一份。
func Register[T any](b *Bus, h func(event T) error) Subscription {
	return core.Register[T](b, h)
}

// Unregister 按处理器身份注销，返回是否移除
func Unregister[T any](b *Bus, h func(event T) error) bool {
	return core.Unregister[T](b, h)
}

// UnregisterAll 移除事件类型 T 的全部处理器
func UnregisterAll[T any](b *Bus) {
	core.UnregisterAll[T](b)
}

// Post 投递事件到类型 T 的全部处理器
func Post[T any](b *Bus, event T) error {
	return core.Post(b, event)
}

// Count 返回事件类型 T 当前的处理器数量
func Count[T any](b *Bus) int {
	return core.Count[T](b)
}

// TryAs 尝试把未路由事件还原为类型 U
func TryAs[U any](e UnroutedEvent) (U, bool) {
	return core.TryAs[U](e)
}
