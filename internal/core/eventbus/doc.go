// Package eventbus 实现进程内类型路由事件总线
//
// 处理器按事件的确切类型注册，Post 同步调用该类型的全部处理器：
//   - 按 reflect.Type 精确匹配，不做接口或子类型匹配
//   - 同一处理器重复注册只保留一份
//   - 无处理器的事件包装为 UnroutedEvent 回退投递一次
//   - 处理器返回错误时立即停止投递（fail-fast）
//
// # 快速开始
//
//	bus := eventbus.NewBus()
//
//	// 注册处理器
//	sub := eventbus.Register(bus, func(e OrderPlaced) error {
//	    return ship(e.ID)
//	})
//	defer bus.Unsubscribe(sub)
//
//	// 观察无人处理的事件
//	eventbus.Register(bus, func(e eventbus.UnroutedEvent) error {
//	    if n, ok := eventbus.TryAs[uint64](e); ok {
//	        fmt.Println("lost number", n)
//	    }
//	    return nil
//	})
//
//	// 投递
//	err := eventbus.Post(bus, OrderPlaced{ID: 7})
//
// # 处理器身份
//
// 处理器身份是 func 值的引用：同一具名函数或同一闭包变量视为同一处理器，
// 同一字面量的不同闭包实例互不相同。需要精确注销时使用 Register 返回的 Subscription。
//
// # Fx 模块
//
//	app := fx.New(
//	    eventbus.Module(),
//	    fx.Invoke(func(bus *eventbus.Bus) {
//	        eventbus.Register(bus, onOrder)
//	    }),
//	)
//
// # 并发安全
//
// 注册表由 sync.RWMutex 保护：
//   - 注册/注销：写锁
//   - 投递：读锁内拍快照，锁外调用处理器
//
// 因此处理器可以重入同一总线，变更从下一次投递开始生效。
package eventbus
