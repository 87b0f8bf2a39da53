package eventbus

import (
	"fmt"
	"reflect"
)

// UnroutedEvent 未路由事件
//
// 主投递没有任何处理器时，原事件被包装成 UnroutedEvent 再投递一次给
// 注册了 UnroutedEvent 的处理器。包装只发生一次，不会递归。
type UnroutedEvent struct {
	typ   reflect.Type
	value any
}

func newUnroutedEvent(typ reflect.Type, value any) UnroutedEvent {
	return UnroutedEvent{typ: typ, value: value}
}

// Type 返回原事件的路由类型
//
// 对 Post[T] 是静态类型 T，对 PostValue 是值的动态类型；PostValue(nil) 时为 nil。
func (e UnroutedEvent) Type() reflect.Type {
	return e.typ
}

// Value 返回原事件值，用于不关心具体类型的通用检查
func (e UnroutedEvent) Value() any {
	return e.value
}

// String 实现 fmt.Stringer
func (e UnroutedEvent) String() string {
	return fmt.Sprintf("UnroutedEvent(%v: %v)", e.typ, e.value)
}

// TryAs 尝试把未路由事件还原为类型 U
//
// 仅当 U 与原事件的路由类型完全相同时返回 (value, true)，否则返回零值和 false。
func TryAs[U any](e UnroutedEvent) (U, bool) {
	var zero U
	if e.typ == nil || e.typ != reflect.TypeFor[U]() {
		return zero, false
	}
	if e.value == nil {
		// U 是接口类型且原值为 nil 接口
		return zero, true
	}
	u, ok := e.value.(U)
	return u, ok
}
