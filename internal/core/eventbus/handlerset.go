package eventbus

import (
	"fmt"
	"reflect"
)

// handlerSet 类型擦除的处理器集合
//
// 注册表只通过该接口访问集合；插入和带类型的快照在 *typedSet[T] 上完成。
type handlerSet interface {
	// count 返回处理器数量
	count() int

	// removeIdentity 按身份移除，返回是否移除
	removeIdentity(id handlerID) bool

	// removeSlot 按令牌移除，返回是否移除
	removeSlot(slot int, seq uint64) bool

	// bind 在调用方持锁时拍快照，返回可在锁外执行的类型擦除投递函数
	bind() deliverFunc
}

// deliverFunc 对事件执行一次投递，返回调用的处理器数量和第一个错误
type deliverFunc func(event any) (int, error)

// entry 处理器条目
type entry[T any] struct {
	id  handlerID
	seq uint64
	fn  Handler[T]
}

// typedSet 单一事件类型的处理器集合
//
// slots 是按下标寻址的槽位数组，移除后槽位置空并进入 free 列表复用；
// index 保证同一身份只出现一次。
type typedSet[T any] struct {
	typ   reflect.Type
	slots []*entry[T]
	free  []int
	index map[handlerID]int
}

func newTypedSet[T any](typ reflect.Type) *typedSet[T] {
	return &typedSet[T]{
		typ:   typ,
		index: make(map[handlerID]int),
	}
}

// insert 插入条目
//
// 身份已存在时集合不变，返回已有条目的槽位和序号，added 为 false。
func (s *typedSet[T]) insert(e *entry[T]) (slot int, seq uint64, added bool) {
	if i, ok := s.index[e.id]; ok {
		return i, s.slots[i].seq, false
	}

	if n := len(s.free); n > 0 {
		slot = s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[slot] = e
	} else {
		slot = len(s.slots)
		s.slots = append(s.slots, e)
	}
	s.index[e.id] = slot
	return slot, e.seq, true
}

func (s *typedSet[T]) release(slot int) {
	delete(s.index, s.slots[slot].id)
	s.slots[slot] = nil
	s.free = append(s.free, slot)
}

func (s *typedSet[T]) removeIdentity(id handlerID) bool {
	slot, ok := s.index[id]
	if !ok {
		return false
	}
	s.release(slot)
	return true
}

func (s *typedSet[T]) removeSlot(slot int, seq uint64) bool {
	if slot < 0 || slot >= len(s.slots) {
		return false
	}
	e := s.slots[slot]
	if e == nil || e.seq != seq {
		return false
	}
	s.release(slot)
	return true
}

func (s *typedSet[T]) count() int {
	return len(s.index)
}

// snapshot 按槽位顺序复制当前处理器
func (s *typedSet[T]) snapshot() []Handler[T] {
	out := make([]Handler[T], 0, len(s.index))
	for _, e := range s.slots {
		if e != nil {
			out = append(out, e.fn)
		}
	}
	return out
}

func (s *typedSet[T]) bind() deliverFunc {
	handlers := s.snapshot()
	return func(event any) (int, error) {
		typed, ok := event.(T)
		if !ok {
			// 注册表按 reflect.Type 取到的集合必然与动态类型一致
			panic(fmt.Sprintf("eventbus: %T delivered to handler set of %v", event, s.typ))
		}
		return invoke(handlers, typed)
	}
}

// invoke 依次调用处理器，第一个错误立即返回
//
// 返回值 n 是已调用的处理器数量（包括返回错误的那个）。
func invoke[T any](handlers []Handler[T], event T) (n int, err error) {
	for _, h := range handlers {
		n++
		if err = h(event); err != nil {
			return n, err
		}
	}
	return n, nil
}
