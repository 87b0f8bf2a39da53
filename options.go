package eventbus

import (
	"fmt"
	"io"

	"go.uber.org/fx"

	"github.com/dep2p/go-eventbus/config"
)

// Option Runtime 配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	config *config.Config

	// 日志输出，nil 表示 os.Stderr
	logOutput io.Writer

	// 用户自定义 Fx 选项
	fxOptions []fx.Option
}

func newOptions() *options {
	return &options{
		config: config.NewConfig(),
	}
}

// WithConfig 使用完整配置替换默认配置
//
// 配置会被复制，之后修改 cfg 不影响 Runtime。
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return ErrNilConfig
		}
		o.config = cfg.Clone()
		return nil
	}
}

// WithConfigFile 从 JSON 文件加载配置
func WithConfigFile(path string) Option {
	return func(o *options) error {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		o.config = cfg
		return nil
	}
}

// WithPreset 应用预设配置
//
// 预设在当前配置上修改，应放在 WithConfig/WithConfigFile 之后。
func WithPreset(name string) Option {
	return func(o *options) error {
		return config.ApplyPreset(o.config, name)
	}
}

// WithName 设置总线实例名称
func WithName(name string) Option {
	return func(o *options) error {
		o.config.EventBus.Name = name
		return nil
	}
}

// WithMetrics 开启或关闭 Prometheus 指标
func WithMetrics(enable bool) Option {
	return func(o *options) error {
		o.config.Metrics.Enabled = enable
		return nil
	}
}

// WithLogLevel 设置日志级别
func WithLogLevel(level string) Option {
	return func(o *options) error {
		o.config.Log.Level = level
		return nil
	}
}

// WithLogOutput 设置日志输出目标
func WithLogOutput(w io.Writer) Option {
	return func(o *options) error {
		if w == nil {
			return fmt.Errorf("log output is nil")
		}
		o.logOutput = w
		return nil
	}
}

// WithFxOptions 追加用户自定义 Fx 选项
//
// 可用于向总线所在的 Fx 应用注入观察者或调用 fx.Invoke 注册处理器。
func WithFxOptions(opts ...fx.Option) Option {
	return func(o *options) error {
		o.fxOptions = append(o.fxOptions, opts...)
		return nil
	}
}
