// Package eventbus 实现类型路由的同步事件总线
package eventbus

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/google/uuid"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
)

var logger = log.Logger("core/eventbus")

// unroutedType 未路由事件的路由键
var unroutedType = reflect.TypeFor[UnroutedEvent]()

// ============================================================================
// 错误定义
// ============================================================================

// HandlerError 处理器返回的错误
//
// Post 遇到第一个失败的处理器即停止，本次投递中剩余的处理器不再调用。
type HandlerError struct {
	// EventType 失败处理器所在集合的事件类型
	// 未路由投递中失败时为 UnroutedEvent 的类型
	EventType reflect.Type

	// Err 处理器返回的原始错误
	Err error
}

// Error 实现 error 接口
func (e *HandlerError) Error() string {
	return fmt.Sprintf("eventbus: handler for %v failed: %v", e.EventType, e.Err)
}

// Unwrap 返回原始错误
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// ============================================================================
// Bus 实现
// ============================================================================

// Bus 事件总线
//
// 零值不可用，使用 NewBus 创建。Bus 可被多个 goroutine 并发使用；
// 投递在调用方 goroutine 上同步完成，处理器基于快照调用，
// 处理器内部可以重入 Register/Unregister/Post，变更从下一次投递开始生效。
type Bus struct {
	id  string
	reg *registry

	// seq 注册序号，用于令牌防误删
	seq atomic.Uint64

	observer      pkgif.DispatchObserver
	warnOnDiscard bool
}

var _ pkgif.EventBus = (*Bus)(nil)

// NewBus 创建新的事件总线
func NewBus(opts ...Option) *Bus {
	s := &settings{
		observer: pkgif.NopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.New().String()
	}

	return &Bus{
		id:            s.id,
		reg:           newRegistry(),
		observer:      s.observer,
		warnOnDiscard: s.warnOnDiscard,
	}
}

// ID 返回总线实例标识
func (b *Bus) ID() string {
	return b.id
}

// ============================================================================
// 注册与注销
// ============================================================================

// Register 为事件类型 T 注册处理器
//
// 同一身份的处理器重复注册时集合不变，返回已有条目的令牌。
// nil 处理器被忽略并返回无效令牌。
func Register[T any](b *Bus, h Handler[T]) Subscription {
	typ := reflect.TypeFor[T]()
	if h == nil {
		logger.Debug("忽略 nil 处理器", "bus", b.id, "type", typ)
		return Subscription{}
	}

	e := &entry[T]{
		id:  identityOf(h),
		seq: b.seq.Add(1),
		fn:  h,
	}

	var (
		sub   Subscription
		added bool
	)
	withSet(b.reg, typ, func(s *typedSet[T]) {
		var slot int
		var seq uint64
		slot, seq, added = s.insert(e)
		sub = Subscription{typ: typ, slot: slot, seq: seq}
	})

	if added {
		logger.Debug("处理器已注册", "bus", b.id, "type", typ, "slot", sub.slot)
	} else {
		logger.Debug("处理器已存在，忽略重复注册", "bus", b.id, "type", typ, "slot", sub.slot)
	}
	return sub
}

// Unregister 按处理器身份注销
//
// 返回是否移除了条目；注销从未注册过的处理器是空操作。
// 方法值（obj.Method）每次求值都会产生新的 func 值，应改用 Register 返回的令牌注销。
func Unregister[T any](b *Bus, h Handler[T]) bool {
	if h == nil {
		return false
	}
	typ := reflect.TypeFor[T]()
	id := identityOf(h)

	removed := b.reg.mutate(typ, func(s handlerSet) bool {
		return s.removeIdentity(id)
	})
	if removed {
		logger.Debug("处理器已注销", "bus", b.id, "type", typ)
	}
	return removed
}

// Unsubscribe 按令牌注销
//
// 令牌对应的条目已不存在时返回 false。
func (b *Bus) Unsubscribe(sub Subscription) bool {
	if !sub.Valid() {
		return false
	}

	removed := b.reg.mutate(sub.typ, func(s handlerSet) bool {
		return s.removeSlot(sub.slot, sub.seq)
	})
	if removed {
		logger.Debug("处理器已注销", "bus", b.id, "type", sub.typ, "slot", sub.slot)
	}
	return removed
}

// UnregisterAll 移除事件类型 T 的全部处理器，其他类型不受影响
func UnregisterAll[T any](b *Bus) {
	b.RemoveType(reflect.TypeFor[T]())
}

// RemoveType 移除指定类型的全部处理器
func (b *Bus) RemoveType(eventType reflect.Type) bool {
	removed := b.reg.remove(eventType)
	if removed {
		logger.Debug("类型的全部处理器已移除", "bus", b.id, "type", eventType)
	}
	return removed
}

// ============================================================================
// 查询
// ============================================================================

// Count 返回事件类型 T 当前的处理器数量
func Count[T any](b *Bus) int {
	return b.reg.count(reflect.TypeFor[T]())
}

// HandlerCount 返回指定类型当前的处理器数量
func (b *Bus) HandlerCount(eventType reflect.Type) int {
	return b.reg.count(eventType)
}

// EventTypes 返回所有已注册处理器的事件类型，顺序不确定
func (b *Bus) EventTypes() []reflect.Type {
	return b.reg.types()
}

// ============================================================================
// 投递
// ============================================================================

// Post 投递事件到类型 T 的全部处理器
//
// 路由键是静态类型 T。没有任何处理器时事件被包装为 UnroutedEvent 再投递一次；
// 仍无人接收则静默丢弃。处理器返回错误时立即停止并返回 *HandlerError，
// 处理器 panic 不会被恢复。
func Post[T any](b *Bus, event T) error {
	typ := reflect.TypeFor[T]()
	b.observer.OnPost(typ)

	n, err := invoke(snapshot[T](b.reg, typ), event)
	return b.settle(typ, event, n, err)
}

// PostValue 按值的动态类型投递事件
//
// 用于只持有 any 的场景，例如把 UnroutedEvent.Value() 重新投递。
// 注册在接口类型上的处理器不会被 PostValue 匹配。
func (b *Bus) PostValue(event any) error {
	typ := reflect.TypeOf(event)
	b.observer.OnPost(typ)

	var (
		n   int
		err error
	)
	if deliver := b.reg.bind(typ); deliver != nil {
		n, err = deliver(event)
	}
	return b.settle(typ, event, n, err)
}

// settle 处理主投递结果，必要时执行未路由投递
func (b *Bus) settle(typ reflect.Type, event any, n int, err error) error {
	if err != nil {
		return b.fail(typ, err)
	}
	if n > 0 {
		b.observer.OnDelivered(typ, n)
		return nil
	}
	return b.postUnrouted(typ, event)
}

// postUnrouted 执行唯一一次未路由投递
func (b *Bus) postUnrouted(typ reflect.Type, event any) error {
	ev := newUnroutedEvent(typ, event)
	n, err := invoke(snapshot[UnroutedEvent](b.reg, unroutedType), ev)
	b.observer.OnUnrouted(typ, n > 0)

	if err != nil {
		return b.fail(unroutedType, err)
	}
	if n == 0 {
		b.discard(typ)
	}
	return nil
}

func (b *Bus) fail(typ reflect.Type, err error) error {
	b.observer.OnHandlerError(typ, err)
	return &HandlerError{EventType: typ, Err: err}
}

func (b *Bus) discard(typ reflect.Type) {
	if b.warnOnDiscard {
		logger.Warn("事件无处理器且无未路由处理器，已丢弃", "bus", b.id, "type", typ)
		return
	}
	logger.Debug("事件无处理器且无未路由处理器，已丢弃", "bus", b.id, "type", typ)
}
