package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/multierr"

	"github.com/dep2p/go-eventbus/config"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
)

var logger = log.Logger("core/metrics")

// ConfigFromUnified 从统一配置创建指标配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return Config{
		Namespace:     cfg.Metrics.Namespace,
		MaxTypeLabels: cfg.Metrics.MaxTypeLabels,
	}
}

// Params Metrics 依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config `optional:"true"`
}

// Result Metrics 模块输出
type Result struct {
	fx.Out

	Collector *Collector
	Observer  pkgif.DispatchObserver
	Registry  *prometheus.Registry
	Gatherer  prometheus.Gatherer
}

// Module 是 metrics 的 Fx 模块
var Module = fx.Module("metrics",
	fx.Provide(NewCollectorFromParams),
	fx.Invoke(registerCollectors),
)

// NewCollectorFromParams 从参数创建 Collector 和独立的 Registry
func NewCollectorFromParams(p Params) (Result, error) {
	collector, err := NewCollector(ConfigFromUnified(p.UnifiedCfg))
	if err != nil {
		return Result{}, err
	}
	reg := prometheus.NewRegistry()
	return Result{
		Collector: collector,
		Observer:  collector,
		Registry:  reg,
		Gatherer:  reg,
	}, nil
}

// registerInput 注册参数
type registerInput struct {
	fx.In

	Registry  *prometheus.Registry
	Collector *Collector
	Bus       pkgif.EventBus `optional:"true"`
}

// registerCollectors 把采集器注册到 Registry
func registerCollectors(in registerInput) error {
	err := in.Registry.Register(in.Collector)
	if in.Bus != nil {
		err = multierr.Append(err, in.Registry.Register(in.Collector.HandlerGauge(in.Bus)))
	}
	if err != nil {
		return fmt.Errorf("register metrics collectors: %w", err)
	}

	logger.Info("投递指标已注册", "namespace", in.Collector.cfg.Namespace)
	return nil
}
