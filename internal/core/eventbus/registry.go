package eventbus

import (
	"reflect"
	"sync"
)

// registry 事件类型到处理器集合的映射
//
// 集合以 handlerSet 接口存放，在泛型调用边界断言回 *typedSet[T]。
// 最后一个处理器被移除时整个条目随之删除，不保留空集合。
type registry struct {
	mu   sync.RWMutex
	sets map[reflect.Type]handlerSet
}

func newRegistry() *registry {
	return &registry{
		sets: make(map[reflect.Type]handlerSet),
	}
}

// withSet 在写锁内对 T 的集合执行操作，集合不存在时创建
func withSet[T any](r *registry, typ reflect.Type, cb func(*typedSet[T])) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sets[typ]
	if !ok {
		set = newTypedSet[T](typ)
		r.sets[typ] = set
	}
	cb(set.(*typedSet[T]))
}

// get 只读查找，不存在不是错误
//
// 返回的集合只能在持有 r.mu 时访问。
func (r *registry) get(typ reflect.Type) (handlerSet, bool) {
	set, ok := r.sets[typ]
	return set, ok
}

// mutate 在写锁内修改已存在的集合，集合变空时删除条目
func (r *registry) mutate(typ reflect.Type, cb func(handlerSet) bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.sets[typ]
	if !ok {
		return false
	}
	changed := cb(set)
	if set.count() == 0 {
		delete(r.sets, typ)
	}
	return changed
}

// remove 删除类型的整个集合
func (r *registry) remove(typ reflect.Type) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sets[typ]
	delete(r.sets, typ)
	return ok
}

// count 返回类型的处理器数量，不存在时为 0
func (r *registry) count(typ reflect.Type) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if set, ok := r.sets[typ]; ok {
		return set.count()
	}
	return 0
}

// types 返回所有存在处理器的类型
func (r *registry) types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reflect.Type, 0, len(r.sets))
	for typ := range r.sets {
		out = append(out, typ)
	}
	return out
}

// snapshot 在读锁内取 T 的处理器快照
func snapshot[T any](r *registry, typ reflect.Type) []Handler[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.get(typ)
	if !ok {
		return nil
	}
	return set.(*typedSet[T]).snapshot()
}

// bind 在读锁内取类型擦除的投递函数，集合不存在时返回 nil
func (r *registry) bind(typ reflect.Type) deliverFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.get(typ)
	if !ok {
		return nil
	}
	return set.bind()
}
