package mocks

import (
	"reflect"
	"sync"

	"github.com/dep2p/go-eventbus/pkg/interfaces"
)

// MockEventBus 模拟 EventBus 接口实现
//
// 用于测试只依赖类型擦除视图的组件。Counts 中的类型即为 EventTypes 的返回值。
type MockEventBus struct {
	mu sync.RWMutex

	// 存储
	BusID  string
	Counts map[reflect.Type]int

	// 可覆盖的方法
	PostValueFunc func(event interface{}) error

	// 调用记录
	Posted  []interface{}
	Removed []reflect.Type
}

var _ interfaces.EventBus = (*MockEventBus)(nil)

// NewMockEventBus 创建带有默认值的 MockEventBus
func NewMockEventBus() *MockEventBus {
	return &MockEventBus{
		BusID:  "mock-bus",
		Counts: make(map[reflect.Type]int),
	}
}

// SetCount 设置类型的处理器数量，0 表示移除
func (m *MockEventBus) SetCount(typ reflect.Type, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n == 0 {
		delete(m.Counts, typ)
		return
	}
	m.Counts[typ] = n
}

// ID 返回总线标识
func (m *MockEventBus) ID() string {
	return m.BusID
}

// PostValue 记录投递
func (m *MockEventBus) PostValue(event interface{}) error {
	m.mu.Lock()
	m.Posted = append(m.Posted, event)
	m.mu.Unlock()

	if m.PostValueFunc != nil {
		return m.PostValueFunc(event)
	}
	return nil
}

// HandlerCount 返回设置的处理器数量
func (m *MockEventBus) HandlerCount(eventType reflect.Type) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Counts[eventType]
}

// EventTypes 返回所有设置过数量的类型
func (m *MockEventBus) EventTypes() []reflect.Type {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]reflect.Type, 0, len(m.Counts))
	for typ := range m.Counts {
		out = append(out, typ)
	}
	return out
}

// RemoveType 移除类型
func (m *MockEventBus) RemoveType(eventType reflect.Type) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Removed = append(m.Removed, eventType)
	_, ok := m.Counts[eventType]
	delete(m.Counts, eventType)
	return ok
}
