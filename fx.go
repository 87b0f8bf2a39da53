package eventbus

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	core "github.com/dep2p/go-eventbus/internal/core/eventbus"
	"github.com/dep2p/go-eventbus/internal/core/metrics"
	"github.com/dep2p/go-eventbus/pkg/lib/log"
)

var fxLogger = log.Logger("eventbus/fx")

// buildFxApp 构建 Fx 应用
//
// 加载顺序：
//  1. 配置验证与日志初始化
//  2. 指标模块（条件加载，提供 DispatchObserver）
//  3. 总线模块
//  4. 用户 Fx 选项
func buildFxApp(o *options, rt *Runtime) (*fx.App, error) {
	// ════════════════════════════════════════════════════════════════════════
	// 1. 配置验证（前置）
	// ════════════════════════════════════════════════════════════════════════
	cfg := o.config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	if err := log.Configure(o.logOutput, cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	modules := []fx.Option{
		fx.Supply(cfg),
	}

	// ════════════════════════════════════════════════════════════════════════
	// 2. 指标（条件加载）
	// ════════════════════════════════════════════════════════════════════════
	if cfg.Metrics.Enabled {
		modules = append(modules,
			metrics.Module,
			fx.Populate(&rt.gatherer),
		)
		fxLogger.Debug("指标模块已启用", "namespace", cfg.Metrics.Namespace)
	}

	// ════════════════════════════════════════════════════════════════════════
	// 3. 总线
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules,
		core.Module(),
		fx.Populate(&rt.bus),
	)

	// ════════════════════════════════════════════════════════════════════════
	// 4. 用户扩展与 Fx 配置
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules, o.fxOptions...)
	modules = append(modules,
		// 禁用 Fx 日志输出（避免干扰用户日志）
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
	)

	app := fx.New(modules...)
	if err := app.Err(); err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}
	return app, nil
}
