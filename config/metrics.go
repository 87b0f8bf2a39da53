package config

import (
	"fmt"
	"regexp"
)

// 指标命名空间必须是合法的 Prometheus 指标名前缀
var namespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// MetricsConfig 投递指标配置
type MetricsConfig struct {
	// Enabled 是否启用 Prometheus 指标
	Enabled bool `json:"enabled"`

	// Namespace 指标名前缀
	// 默认值: "eventbus"
	Namespace string `json:"namespace"`

	// MaxTypeLabels event_type 标签允许的最大不同取值数
	// 超出后新类型统一记为 "other"，防止标签基数失控
	// 默认值: 256
	MaxTypeLabels int `json:"max_type_labels"`
}

// DefaultMetricsConfig 返回默认的指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:       false,
		Namespace:     "eventbus",
		MaxTypeLabels: 256,
	}
}

// Validate 验证指标配置
func (c *MetricsConfig) Validate() error {
	if !namespacePattern.MatchString(c.Namespace) {
		return fmt.Errorf("metrics: invalid namespace %q", c.Namespace)
	}
	if c.MaxTypeLabels <= 0 {
		return fmt.Errorf("metrics: max_type_labels must be positive, got %d", c.MaxTypeLabels)
	}
	return nil
}
