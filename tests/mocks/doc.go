// Package mocks 提供统一的测试 Mock 实现
//
// # Mock 列表
//
//   - MockEventBus: 模拟 interfaces.EventBus，支持覆盖方法和记录调用
//   - MockObserver: 模拟 interfaces.DispatchObserver，按顺序记录回调
package mocks
