package eventbus

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
)

var logger = log.Logger("eventbus/runtime")

// Runtime 由 Fx 组装的总线运行时
//
// 持有一个 Bus，以及按配置启用的 Prometheus 指标。
// Runtime 只能启动一次，Close 之后不可再用。
type Runtime struct {
	mu sync.Mutex

	app    *fx.App
	config *config.Config

	bus      *Bus
	gatherer prometheus.Gatherer

	started bool
	closed  bool
}

// ════════════════════════════════════════════════════════════════════════════
//                              构造函数
// ════════════════════════════════════════════════════════════════════════════

// New 创建 Runtime 但不启动
//
// 总线在 New 返回时已可使用，Start 只执行各模块的启动钩子。
//
// 示例：
//
//	rt, err := eventbus.New(
//	    eventbus.WithPreset(config.PresetObservable),
//	    eventbus.WithLogLevel("debug"),
//	)
func New(opts ...Option) (*Runtime, error) {
	o := newOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	rt := &Runtime{config: o.config}

	var err error
	rt.app, err = buildFxApp(o, rt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// Start 快捷启动函数，等价于 New() + Start()
func Start(ctx context.Context, opts ...Option) (*Runtime, error) {
	rt, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := rt.Start(ctx); err != nil {
		return nil, fmt.Errorf("start runtime: %w", err)
	}
	return rt, nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              生命周期
// ════════════════════════════════════════════════════════════════════════════

// Start 启动 Runtime
func (r *Runtime) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRuntimeClosed
	}
	if r.started {
		return ErrAlreadyStarted
	}

	if err := r.app.Start(ctx); err != nil {
		logger.Error("Runtime 启动失败", "error", err)
		return fmt.Errorf("start fx app: %w", err)
	}
	r.started = true
	logger.Info("Runtime 已启动", "bus", r.bus.ID(), "metrics", r.gatherer != nil)
	return nil
}

// Close 停止 Runtime
//
// 可重复调用；未启动时直接标记为关闭。
func (r *Runtime) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	if !r.started {
		return nil
	}
	r.started = false

	if err := r.app.Stop(ctx); err != nil {
		logger.Error("Runtime 停止失败", "error", err)
		return fmt.Errorf("stop fx app: %w", err)
	}
	logger.Info("Runtime 已停止", "bus", r.bus.ID())
	return nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              访问器
// ════════════════════════════════════════════════════════════════════════════

// Bus 返回运行时持有的总线
func (r *Runtime) Bus() *Bus {
	return r.bus
}

// Gatherer 返回指标采集入口，指标未启用时为 nil
func (r *Runtime) Gatherer() prometheus.Gatherer {
	return r.gatherer
}

// Config 返回生效配置的副本
func (r *Runtime) Config() *config.Config {
	return r.config.Clone()
}

// Started 报告 Runtime 是否处于运行状态
func (r *Runtime) Started() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}
