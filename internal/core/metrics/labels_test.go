package metrics

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTypeLabels_Cardinality 测试标签基数上限
func TestTypeLabels_Cardinality(t *testing.T) {
	l, err := newTypeLabels(2)
	require.NoError(t, err)

	assert.Equal(t, "string", l.label(reflect.TypeFor[string]()))
	assert.Equal(t, "int", l.label(reflect.TypeFor[int]()))
	assert.Equal(t, OverflowLabel, l.label(reflect.TypeFor[bool]()))

	// 已分配的标签保持稳定
	assert.Equal(t, "string", l.label(reflect.TypeFor[string]()))
	assert.Equal(t, NilTypeLabel, l.label(nil))
}

// TestTypeLabels_Concurrent 测试并发分配不超过上限
func TestTypeLabels_Concurrent(t *testing.T) {
	l, err := newTypeLabels(3)
	require.NoError(t, err)

	types := []reflect.Type{
		reflect.TypeFor[string](),
		reflect.TypeFor[int](),
		reflect.TypeFor[bool](),
		reflect.TypeFor[float32](),
		reflect.TypeFor[uint8](),
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, typ := range types {
				l.label(typ)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, l.cache.Len())
}

// TestNewTypeLabels_Invalid 测试非法容量
func TestNewTypeLabels_Invalid(t *testing.T) {
	_, err := newTypeLabels(0)
	assert.Error(t, err)
}
