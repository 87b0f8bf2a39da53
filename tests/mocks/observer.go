package mocks

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ObserverCall 一次观察者回调
type ObserverCall struct {
	Method   string
	Type     reflect.Type
	Handlers int
	Handled  bool
	Err      error
}

// String 返回便于断言的紧凑形式，例如 "OnDelivered(string,2)"
func (c ObserverCall) String() string {
	switch c.Method {
	case "OnDelivered":
		return fmt.Sprintf("%s(%v,%d)", c.Method, c.Type, c.Handlers)
	case "OnUnrouted":
		return fmt.Sprintf("%s(%v,%t)", c.Method, c.Type, c.Handled)
	default:
		return fmt.Sprintf("%s(%v)", c.Method, c.Type)
	}
}

// MockObserver 模拟 DispatchObserver 接口实现
type MockObserver struct {
	mu    sync.Mutex
	calls []ObserverCall
}

var _ interfaces.DispatchObserver = (*MockObserver)(nil)

// NewMockObserver 创建 MockObserver
func NewMockObserver() *MockObserver {
	return &MockObserver{}
}

func (m *MockObserver) record(c ObserverCall) {
	m.mu.Lock()
	m.calls = append(m.calls, c)
	m.mu.Unlock()
}

// OnPost 记录回调
func (m *MockObserver) OnPost(eventType reflect.Type) {
	m.record(ObserverCall{Method: "OnPost", Type: eventType})
}

// OnDelivered 记录回调
func (m *MockObserver) OnDelivered(eventType reflect.Type, handlers int) {
	m.record(ObserverCall{Method: "OnDelivered", Type: eventType, Handlers: handlers})
}

// OnUnrouted 记录回调
func (m *MockObserver) OnUnrouted(eventType reflect.Type, redelivered bool) {
	m.record(ObserverCall{Method: "OnUnrouted", Type: eventType, Handled: redelivered})
}

// OnHandlerError 记录回调
func (m *MockObserver) OnHandlerError(eventType reflect.Type, err error) {
	m.record(ObserverCall{Method: "OnHandlerError", Type: eventType, Err: err})
}

// Calls 返回回调记录副本
func (m *MockObserver) Calls() []ObserverCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ObserverCall(nil), m.calls...)
}

// Trace 返回回调记录的字符串形式
func (m *MockObserver) Trace() []string {
	calls := m.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}

// Reset 清空记录
func (m *MockObserver) Reset() {
	m.mu.Lock()
	m.calls = nil
	m.mu.Unlock()
}
