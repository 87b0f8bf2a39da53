// Package eventbus 提供进程内类型路由的同步事件总线
//
// 处理器按事件的确切类型注册，Post 在调用方 goroutine 上同步调用该类型的全部处理器。
// 没有处理器的事件会被包装成 UnroutedEvent 再投递一次，便于发现无人认领的事件。
//
// # 快速开始
//
//	import "github.com/dep2p/go-eventbus"
//
//	bus := eventbus.NewBus()
//
//	eventbus.Register(bus, func(e OrderPlaced) error {
//	    return ship(e.ID)
//	})
//	eventbus.Register(bus, func(e eventbus.UnroutedEvent) error {
//	    log.Printf("nobody handled %v", e.Type())
//	    return nil
//	})
//
//	if err := eventbus.Post(bus, OrderPlaced{ID: 7}); err != nil {
//	    // 第一个失败的处理器的错误，其余处理器未被调用
//	}
//
// # Runtime
//
// Runtime 通过 Fx 组装配置、日志、Prometheus 指标和总线：
//
//	rt, err := eventbus.Start(ctx,
//	    eventbus.WithPreset(config.PresetObservable),
//	    eventbus.WithName("orders"),
//	)
//	if err != nil {
//	    return err
//	}
//	defer rt.Close(ctx)
//
//	eventbus.Register(rt.Bus(), onOrder)
//
// # 文件组织
//
//   - eventbus.go  类型和泛型函数导出
//   - runtime.go   Runtime 生命周期
//   - fx.go        Fx 应用组装
//   - options.go   Runtime 选项
//   - errors.go    公共错误
package eventbus
