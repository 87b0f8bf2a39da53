// Package config 提供统一的配置管理
//
// 本包采用与组件对应的分文件配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义，各自提供 Default 和 Validate
//   - 支持从 JSON 加载和保存配置
//   - 支持预设配置（default/quiet/observable）
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Metrics.Enabled = true
//
//	// 应用预设到现有配置
//	config.ApplyPreset(cfg, config.PresetObservable)
//
//	// 从 JSON 加载
//	cfg, err := config.FromJSON(data)
package config

import "go.uber.org/multierr"

// Config 是 go-eventbus 的完整配置结构
//
// 配置按照功能模块组织：
//   - EventBus: 总线实例行为
//   - Metrics: Prometheus 投递指标
//   - Log: 日志级别和格式
type Config struct {
	// EventBus 总线配置
	EventBus EventBusConfig `json:"event_bus"`

	// Metrics 指标配置
	Metrics MetricsConfig `json:"metrics"`

	// Log 日志配置
	Log LogConfig `json:"log"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		EventBus: DefaultEventBusConfig(),
		Metrics:  DefaultMetricsConfig(),
		Log:      DefaultLogConfig(),
	}
}

// Validate 验证配置的有效性
//
// 与逐项返回不同，这里汇总所有子配置的错误，一次报告全部问题。
func (c *Config) Validate() error {
	var err error
	err = multierr.Append(err, c.EventBus.Validate())
	err = multierr.Append(err, c.Metrics.Validate())
	err = multierr.Append(err, c.Log.Validate())
	return err
}

// Clone 返回配置的深拷贝
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
