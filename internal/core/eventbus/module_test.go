package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dep2p/go-eventbus/config"
	pkgif "github.com/dep2p/go-eventbus/pkg/interfaces"
	"github.com/dep2p/go-eventbus/tests/mocks"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

// TestModule_Load 测试 Fx 模块加载
func TestModule_Load(t *testing.T) {
	var (
		bus    *Bus
		loaded pkgif.EventBus
	)

	app := fxtest.New(t,
		Module(),
		fx.Populate(&bus, &loaded),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, bus)
	assert.Same(t, bus, loaded.(*Bus))
}

// TestModule_UsesUnifiedConfig 测试从统一配置读取实例名
func TestModule_UsesUnifiedConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.EventBus.Name = "orders"

	var bus *Bus
	app := fxtest.New(t,
		fx.Supply(cfg),
		Module(),
		fx.Populate(&bus),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, "orders", bus.ID())
}

// TestModule_InjectsObserver 测试注入观察者
func TestModule_InjectsObserver(t *testing.T) {
	obs := mocks.NewMockObserver()

	var bus *Bus
	app := fxtest.New(t,
		fx.Provide(fx.Annotate(
			func() *mocks.MockObserver { return obs },
			fx.As(new(pkgif.DispatchObserver)),
		)),
		Module(),
		fx.Populate(&bus),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NoError(t, Post(bus, "x"))
	assert.Equal(t, "OnPost(string)", obs.Trace()[0])
}

// TestModule_Lifecycle 测试生命周期钩子
func TestModule_Lifecycle(t *testing.T) {
	app := fx.New(
		Module(),
		fx.NopLogger,
	)

	ctx := context.Background()
	require.NoError(t, app.Start(ctx))
	assert.NoError(t, app.Stop(ctx))
}

// TestProvideEventBus 测试直接调用提供函数
func TestProvideEventBus(t *testing.T) {
	result := ProvideEventBus(Params{})
	require.NotNil(t, result.Bus)
	assert.Equal(t, pkgif.EventBus(result.Bus), result.EventBus)

	assert.Nil(t, OptionsFromUnified(nil))
	assert.Len(t, OptionsFromUnified(config.NewConfig()), 2)
}
