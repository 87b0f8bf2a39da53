package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// 预设名称
const (
	PresetDefault    = "default"
	PresetQuiet      = "quiet"
	PresetObservable = "observable"
)

// FromJSON 从 JSON 数据创建配置
//
// 未出现的字段保持默认值。
//
// 示例 JSON:
//
//	{
//	  "event_bus": {"name": "orders", "warn_on_discard": true},
//	  "metrics": {"enabled": true, "namespace": "orders"},
//	  "log": {"level": "debug", "format": "json"}
//	}
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ToJSON 将配置序列化为缩进 JSON
func ToJSON(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	return json.MarshalIndent(cfg, "", "  ")
}

// LoadFile 从 JSON 文件加载并验证配置
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg, err := FromJSON(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// ApplyPreset 应用预设配置
//
// 支持的预设：
//   - "default": 不做修改
//   - "quiet": 只输出 error 日志，关闭指标
//   - "observable": 开启指标，丢弃事件输出 Warn 日志
func ApplyPreset(cfg *Config, presetName string) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	switch presetName {
	case "", PresetDefault:
		return nil
	case PresetQuiet:
		cfg.Log.Level = "error"
		cfg.Metrics.Enabled = false
		cfg.EventBus.WarnOnDiscard = false
		return nil
	case PresetObservable:
		cfg.Metrics.Enabled = true
		cfg.EventBus.WarnOnDiscard = true
		return nil
	default:
		return fmt.Errorf("unknown preset: %s", presetName)
	}
}
