package config

import (
	"fmt"
	"strings"
)

// EventBusConfig 总线实例配置
type EventBusConfig struct {
	// Name 总线实例名称，用于日志区分多个实例
	// 为空时使用随机 UUID
	Name string `json:"name,omitempty"`

	// WarnOnDiscard 未路由且无人接收的事件被丢弃时输出 Warn 日志
	// 默认只输出 Debug 日志
	WarnOnDiscard bool `json:"warn_on_discard"`
}

// DefaultEventBusConfig 返回默认的总线配置
func DefaultEventBusConfig() EventBusConfig {
	return EventBusConfig{
		WarnOnDiscard: false,
	}
}

// Validate 验证总线配置
func (c *EventBusConfig) Validate() error {
	if c.Name != strings.TrimSpace(c.Name) {
		return fmt.Errorf("event_bus: name %q has surrounding whitespace", c.Name)
	}
	return nil
}
