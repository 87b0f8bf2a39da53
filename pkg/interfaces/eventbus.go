// Package interfaces 定义 go-eventbus 公共接口
//
// 本文件定义 EventBus 与 DispatchObserver 接口。
package interfaces

import "reflect"

// EventBus 定义事件总线的类型擦除视图
//
// 带类型参数的操作（Register/Unregister/Post 等）以包级泛型函数形式提供，
// 本接口只包含不依赖具体事件类型的部分，便于注入和模拟。
type EventBus interface {
	// ID 返回总线实例标识
	ID() string

	// PostValue 按值的动态类型投递事件
	PostValue(event interface{}) error

	// HandlerCount 返回指定类型当前的处理器数量
	HandlerCount(eventType reflect.Type) int

	// EventTypes 返回所有已注册处理器的事件类型
	EventTypes() []reflect.Type

	// RemoveType 移除指定类型的全部处理器
	RemoveType(eventType reflect.Type) bool
}

// DispatchObserver 投递过程观察者
//
// 所有回调都在调用 Post 的 goroutine 上同步执行，实现必须快速返回且不得回调总线。
type DispatchObserver interface {
	// OnPost 每次投递开始时调用
	OnPost(eventType reflect.Type)

	// OnDelivered 主投递调用了 handlers 个处理器后调用（handlers > 0）
	OnDelivered(eventType reflect.Type, handlers int)

	// OnUnrouted 主投递没有处理器时调用
	//
	// redelivered 表示是否有 UnroutedEvent 处理器接收了该事件，
	// 为 false 时事件被丢弃。
	OnUnrouted(eventType reflect.Type, redelivered bool)

	// OnHandlerError 处理器返回错误时调用
	OnHandlerError(eventType reflect.Type, err error)
}

// NopObserver 空实现
type NopObserver struct{}

// OnPost 实现 DispatchObserver
func (NopObserver) OnPost(reflect.Type) {}

// OnDelivered 实现 DispatchObserver
func (NopObserver) OnDelivered(reflect.Type, int) {}

// OnUnrouted 实现 DispatchObserver
func (NopObserver) OnUnrouted(reflect.Type, bool) {}

// OnHandlerError 实现 DispatchObserver
func (NopObserver) OnHandlerError(reflect.Type, error) {}

var _ DispatchObserver = NopObserver{}
