package eventbus

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_LazyCreate 测试首次注册时创建集合
func TestRegistry_LazyCreate(t *testing.T) {
	r := newRegistry()
	typ := reflect.TypeFor[int]()

	_, ok := r.get(typ)
	assert.False(t, ok)
	assert.Nil(t, r.bind(typ))
	assert.Nil(t, snapshot[int](r, typ))

	withSet(r, typ, func(s *typedSet[int]) {
		s.insert(newEntry(identityOf[int](nop), 1, nop))
	})

	_, ok = r.get(typ)
	assert.True(t, ok)
	assert.Equal(t, 1, r.count(typ))
	assert.Equal(t, []reflect.Type{typ}, r.types())
	assert.NotNil(t, r.bind(typ))
}

// TestRegistry_MutateDropsEmpty 测试集合变空后删除条目
func TestRegistry_MutateDropsEmpty(t *testing.T) {
	r := newRegistry()
	typ := reflect.TypeFor[int]()
	id := identityOf[int](nop)

	withSet(r, typ, func(s *typedSet[int]) {
		s.insert(newEntry(id, 1, nop))
	})

	removed := r.mutate(typ, func(s handlerSet) bool {
		return s.removeIdentity(id)
	})
	require.True(t, removed)
	assert.Empty(t, r.types())

	// 类型不存在时回调不执行
	called := false
	assert.False(t, r.mutate(typ, func(handlerSet) bool {
		called = true
		return true
	}))
	assert.False(t, called)
}

// TestRegistry_RemoveIsolated 测试删除只影响目标类型
func TestRegistry_RemoveIsolated(t *testing.T) {
	r := newRegistry()
	intType := reflect.TypeFor[int]()
	strType := reflect.TypeFor[string]()

	withSet(r, intType, func(s *typedSet[int]) {
		s.insert(newEntry(identityOf[int](nop), 1, nop))
	})
	withSet(r, strType, func(s *typedSet[string]) {
		s.insert(&entry[string]{id: 99, seq: 2, fn: func(string) error { return nil }})
	})

	assert.True(t, r.remove(intType))
	assert.False(t, r.remove(intType))
	assert.Zero(t, r.count(intType))
	assert.Equal(t, 1, r.count(strType))
}
