package metrics

import (
	"reflect"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// OverflowLabel 超出基数上限的类型使用的标签值
	OverflowLabel = "other"

	// NilTypeLabel PostValue(nil) 的标签值
	NilTypeLabel = "<nil>"
)

// typeLabels event_type 标签缓存
//
// 缓存容量即基数上限，缓存从不淘汰，已分配的标签在进程生命周期内保持稳定。
type typeLabels struct {
	max   int
	mu    sync.Mutex
	cache *lru.Cache[reflect.Type, string]
}

func newTypeLabels(max int) (*typeLabels, error) {
	cache, err := lru.New[reflect.Type, string](max)
	if err != nil {
		return nil, err
	}
	return &typeLabels{max: max, cache: cache}, nil
}

// label 返回类型的标签值
func (l *typeLabels) label(typ reflect.Type) string {
	if typ == nil {
		return NilTypeLabel
	}
	if v, ok := l.cache.Get(typ); ok {
		return v
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.cache.Get(typ); ok {
		return v
	}
	if l.cache.Len() >= l.max {
		return OverflowLabel
	}
	v := typ.String()
	l.cache.Add(typ, v)
	return v
}
