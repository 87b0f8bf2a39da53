package eventbus

import pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"

// ============================================================================
// 总线选项
// ============================================================================

// settings 总线构造设置
type settings struct {
	id            string
	observer      pkgif.DispatchObserver
	warnOnDiscard bool
}

// Option 总线选项函数
type Option func(*settings)

// WithID 指定总线实例标识，默认为随机 UUID
func WithID(id string) Option {
	return func(s *settings) {
		if id != "" {
			s.id = id
		}
	}
}

// WithObserver 设置投递观察者
func WithObserver(obs pkgif.DispatchObserver) Option {
	return func(s *settings) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// WithWarnOnDiscard 未路由事件被丢弃时输出 Warn 日志
func WithWarnOnDiscard(enable bool) Option {
	return func(s *settings) {
		s.warnOnDiscard = enable
	}
}
