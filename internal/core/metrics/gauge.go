package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// HandlerGauge 在采集时读取总线的处理器数量
type HandlerGauge struct {
	bus    pkgif.EventBus
	labels *typeLabels
	desc   *prometheus.Desc
}

var _ prometheus.Collector = (*HandlerGauge)(nil)

func newHandlerGauge(namespace string, bus pkgif.EventBus, labels *typeLabels) *HandlerGauge {
	return &HandlerGauge{
		bus:    bus,
		labels: labels,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "registered_handlers"),
			"Number of handlers currently registered, by event type.",
			[]string{"event_type"},
			prometheus.Labels{"bus": bus.ID()},
		),
	}
}

// Describe 实现 prometheus.Collector
func (g *HandlerGauge) Describe(ch chan<- *prometheus.Desc) {
	ch <- g.desc
}

// Collect 实现 prometheus.Collector
//
// 多个类型落入 "other" 标签时数量合并，避免同一标签重复上报。
func (g *HandlerGauge) Collect(ch chan<- prometheus.Metric) {
	counts := make(map[string]int)
	for _, typ := range g.bus.EventTypes() {
		counts[g.labels.label(typ)] += g.bus.HandlerCount(typ)
	}
	for label, n := range counts {
		ch <- prometheus.MustNewConstMetric(g.desc, prometheus.GaugeValue, float64(n), label)
	}
}
