package eventbus

import (
	"reflect"
	"unsafe"
)

// Handler 事件处理器
//
// 返回非 nil 错误会中止本次投递，并由 Post 原样包装返回。
type Handler[T any] func(event T) error

// handlerID 处理器身份
//
// 取 func 值本身的引用（指向闭包记录的指针），而不是代码指针：
//   - 同一个具名函数的多次引用共享同一个静态记录，身份相同
//   - 同一闭包变量多次传入，身份相同
//   - 同一字面量多次求值得到的闭包各自分配记录，身份不同
//
// entry 持有 fn 本身，因此已注册处理器的地址在注销前不会被复用。
type handlerID uintptr

// identityOf 计算处理器身份，nil 处理器返回 0
func identityOf[T any](h Handler[T]) handlerID {
	return handlerID(*(*uintptr)(unsafe.Pointer(&h)))
}

// ============================================================================
// Subscription 令牌
// ============================================================================

// Subscription 注册令牌
//
// 由 Register 返回，交给 Bus.Unsubscribe 精确移除对应条目。
// 令牌携带事件类型标签、槽位下标和全局递增的序号，
// 槽位被复用或整个类型被 UnregisterAll 清除后，旧令牌失效且不会误删新条目。
type Subscription struct {
	typ  reflect.Type
	slot int
	seq  uint64
}

// Type 返回令牌对应的事件类型
func (s Subscription) Type() reflect.Type {
	return s.typ
}

// Valid 报告令牌是否由一次成功的注册产生
//
// 有效令牌对应的条目仍可能已经被移除。
func (s Subscription) Valid() bool {
	return s.typ != nil && s.seq != 0
}
