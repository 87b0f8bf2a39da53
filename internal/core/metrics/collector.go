package metrics

import (
	"fmt"
	"reflect"

	"github.com/prometheus/client_golang/prometheus"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// 未路由事件的 outcome 标签值
const (
	OutcomeRedelivered = "redelivered"
	OutcomeDiscarded   = "discarded"
)

// Config 指标配置
type Config struct {
	// Namespace 指标名前缀
	Namespace string

	// MaxTypeLabels event_type 标签的最大取值数
	MaxTypeLabels int
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Namespace:     "eventbus",
		MaxTypeLabels: 256,
	}
}

// Collector 投递指标采集器
//
// 同时实现 interfaces.DispatchObserver 和 prometheus.Collector。
type Collector struct {
	cfg    Config
	labels *typeLabels

	posted      *prometheus.CounterVec
	invocations *prometheus.CounterVec
	unrouted    *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

var (
	_ pkgif.DispatchObserver = (*Collector)(nil)
	_ prometheus.Collector   = (*Collector)(nil)
)

// NewCollector 创建采集器
func NewCollector(cfg Config) (*Collector, error) {
	if cfg.MaxTypeLabels <= 0 {
		return nil, fmt.Errorf("metrics: max type labels must be positive, got %d", cfg.MaxTypeLabels)
	}
	labels, err := newTypeLabels(cfg.MaxTypeLabels)
	if err != nil {
		return nil, fmt.Errorf("metrics: create label cache: %w", err)
	}

	return &Collector{
		cfg:    cfg,
		labels: labels,
		posted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "events_posted_total",
			Help:      "Number of events posted, by routed type.",
		}, []string{"event_type"}),
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "handler_invocations_total",
			Help:      "Number of handler invocations in successful primary dispatches.",
		}, []string{"event_type"}),
		unrouted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "unrouted_events_total",
			Help:      "Number of events posted with no handler for their type.",
		}, []string{"event_type", "outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "handler_errors_total",
			Help:      "Number of dispatches aborted by a handler error.",
		}, []string{"event_type"}),
	}, nil
}

// ============================================================================
// DispatchObserver 实现
// ============================================================================

// OnPost 实现 DispatchObserver
func (c *Collector) OnPost(eventType reflect.Type) {
	c.posted.WithLabelValues(c.labels.label(eventType)).Inc()
}

// OnDelivered 实现 DispatchObserver
func (c *Collector) OnDelivered(eventType reflect.Type, handlers int) {
	c.invocations.WithLabelValues(c.labels.label(eventType)).Add(float64(handlers))
}

// OnUnrouted 实现 DispatchObserver
func (c *Collector) OnUnrouted(eventType reflect.Type, redelivered bool) {
	outcome := OutcomeDiscarded
	if redelivered {
		outcome = OutcomeRedelivered
	}
	c.unrouted.WithLabelValues(c.labels.label(eventType), outcome).Inc()
}

// OnHandlerError 实现 DispatchObserver
func (c *Collector) OnHandlerError(eventType reflect.Type, _ error) {
	c.failures.WithLabelValues(c.labels.label(eventType)).Inc()
}

// ============================================================================
// prometheus.Collector 实现
// ============================================================================

// Describe 实现 prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.posted.Describe(ch)
	c.invocations.Describe(ch)
	c.unrouted.Describe(ch)
	c.failures.Describe(ch)
}

// Collect 实现 prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.posted.Collect(ch)
	c.invocations.Collect(ch)
	c.unrouted.Collect(ch)
	c.failures.Collect(ch)
}

// HandlerGauge 返回读取指定总线处理器数量的采集器，与本采集器共享标签缓存
func (c *Collector) HandlerGauge(bus pkgif.EventBus) *HandlerGauge {
	return newHandlerGauge(c.cfg.Namespace, bus, c.labels)
}
