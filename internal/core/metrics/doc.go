// Package metrics 提供事件总线的 Prometheus 指标
//
// metrics 模块实现 interfaces.DispatchObserver，把每次投递的结果记录为计数器：
//   - {ns}_events_posted_total{event_type}           投递次数
//   - {ns}_handler_invocations_total{event_type}     主投递调用的处理器数
//   - {ns}_unrouted_events_total{event_type,outcome} 未路由事件（redelivered/discarded）
//   - {ns}_handler_errors_total{event_type}          处理器错误
//
// 以及采集时从总线读取的仪表：
//   - {ns}_registered_handlers{event_type}           当前处理器数量
//
// # 快速开始
//
//	collector, _ := metrics.NewCollector(metrics.DefaultConfig())
//	bus := eventbus.NewBus(eventbus.WithObserver(collector))
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(collector, collector.HandlerGauge(bus))
//
// # 标签基数
//
// event_type 标签取 reflect.Type 的字符串形式。不同类型数量超过
// MaxTypeLabels 后，新类型统一记为 "other"。
//
// # Fx 模块
//
// Module 提供 *Collector、interfaces.DispatchObserver 和 *prometheus.Registry，
// 并在启动时把采集器注册到该 Registry。
package metrics
