package eventbus

import (
	"context"

	"go.uber.org/fx"

	"github.com/dep2p/go-eventbus/config"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Params Fx 模块输入参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config          `optional:"true"`
	Observer   pkgif.DispatchObserver `optional:"true"`
}

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Bus      *Bus
	EventBus pkgif.EventBus
}

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module("eventbus",
		fx.Provide(ProvideEventBus),
		fx.Invoke(registerLifecycle),
	)
}

// OptionsFromUnified 从统一配置派生总线选项
func OptionsFromUnified(cfg *config.Config) []Option {
	if cfg == nil {
		return nil
	}
	return []Option{
		WithID(cfg.EventBus.Name),
		WithWarnOnDiscard(cfg.EventBus.WarnOnDiscard),
	}
}

// ProvideEventBus 提供 Bus 实例
func ProvideEventBus(p Params) Result {
	opts := OptionsFromUnified(p.UnifiedCfg)
	if p.Observer != nil {
		opts = append(opts, WithObserver(p.Observer))
	}

	bus := NewBus(opts...)
	return Result{
		Bus:      bus,
		EventBus: bus,
	}
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC  fx.Lifecycle
	Bus *Bus
}

// registerLifecycle 注册生命周期
//
// 总线本身没有后台任务，钩子只记录实例的启停。
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("事件总线已启动", "bus", input.Bus.ID())
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("事件总线已停止",
				"bus", input.Bus.ID(),
				"types", len(input.Bus.EventTypes()))
			return nil
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "eventbus"
	// Description 模块描述
	Description = "类型路由的同步事件总线，支持未路由事件回退投递"
)
