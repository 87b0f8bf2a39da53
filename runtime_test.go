package eventbus

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/dep2p/go-eventbus/config"
	"github.com/dep2p/go-eventbus/tests/mocks"
)

// quietLogs 把日志写入缓冲区，测试结束后恢复默认 logger
func quietLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &bytes.Buffer{}
}

// TestRuntime_Lifecycle 测试启动与关闭
func TestRuntime_Lifecycle(t *testing.T) {
	buf := quietLogs(t)
	ctx := context.Background()

	rt, err := New(WithName("orders"), WithLogOutput(buf))
	require.NoError(t, err)
	require.NotNil(t, rt.Bus())
	assert.Equal(t, "orders", rt.Bus().ID())
	assert.Nil(t, rt.Gatherer())
	assert.False(t, rt.Started())

	require.NoError(t, rt.Start(ctx))
	assert.True(t, rt.Started())
	assert.ErrorIs(t, rt.Start(ctx), ErrAlreadyStarted)

	require.NoError(t, rt.Close(ctx))
	assert.NoError(t, rt.Close(ctx))
	assert.ErrorIs(t, rt.Start(ctx), ErrRuntimeClosed)

	assert.Contains(t, buf.String(), "eventbus/runtime")
}

// TestRuntime_DispatchThroughFacade 测试通过根包函数使用运行时总线
func TestRuntime_DispatchThroughFacade(t *testing.T) {
	buf := quietLogs(t)
	ctx := context.Background()

	rt, err := Start(ctx, WithLogOutput(buf))
	require.NoError(t, err)
	defer rt.Close(ctx)

	bus := rt.Bus()

	var got []string
	h := func(s string) error {
		got = append(got, s)
		return nil
	}
	Register(bus, h)
	Register(bus, h)
	assert.Equal(t, 1, Count[string](bus))

	var lost []int
	Register(bus, func(e UnroutedEvent) error {
		if n, ok := TryAs[int](e); ok {
			lost = append(lost, n)
		}
		return nil
	})

	require.NoError(t, Post(bus, "hi"))
	require.NoError(t, Post(bus, 42))
	assert.Equal(t, []string{"hi"}, got)
	assert.Equal(t, []int{42}, lost)

	assert.True(t, Unregister(bus, h))
	UnregisterAll[UnroutedEvent](bus)
	require.NoError(t, Post(bus, "again"))
	assert.Len(t, got, 1)
}

// TestRuntime_Metrics 测试启用指标
func TestRuntime_Metrics(t *testing.T) {
	buf := quietLogs(t)
	ctx := context.Background()

	rt, err := Start(ctx, WithMetrics(true), WithLogOutput(buf))
	require.NoError(t, err)
	defer rt.Close(ctx)

	require.NotNil(t, rt.Gatherer())
	require.NoError(t, Post(rt.Bus(), 1))

	families, err := rt.Gatherer().Gather()
	require.NoError(t, err)

	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "eventbus_events_posted_total")
	assert.Contains(t, names, "eventbus_unrouted_events_total")
}

// TestRuntime_FxOptions 测试注入用户 Fx 选项
func TestRuntime_FxOptions(t *testing.T) {
	buf := quietLogs(t)
	obs := mocks.NewMockObserver()

	rt, err := New(
		WithLogOutput(buf),
		WithFxOptions(fx.Provide(fx.Annotate(
			func() *mocks.MockObserver { return obs },
			fx.As(new(DispatchObserver)),
		))),
	)
	require.NoError(t, err)

	require.NoError(t, Post(rt.Bus(), true))
	assert.Equal(t, []string{"OnPost(bool)", "OnUnrouted(bool,false)"}, obs.Trace())
}

// TestRuntime_InvalidConfig 测试非法配置
func TestRuntime_InvalidConfig(t *testing.T) {
	quietLogs(t)

	_, err := New(WithLogLevel("loud"))
	assert.Error(t, err)

	_, err = New(WithConfig(nil))
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = New(WithPreset("turbo"))
	assert.Error(t, err)

	_, err = New(WithLogOutput(nil))
	assert.Error(t, err)
}

// TestRuntime_ConfigFile 测试从文件加载配置
func TestRuntime_ConfigFile(t *testing.T) {
	buf := quietLogs(t)

	path := filepath.Join(t.TempDir(), "bus.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"event_bus": {"name": "from-file"}, "log": {"format": "json"}}`), 0o600))

	rt, err := New(WithConfigFile(path), WithLogOutput(buf))
	require.NoError(t, err)
	assert.Equal(t, "from-file", rt.Bus().ID())
	assert.Equal(t, "json", rt.Config().Log.Format)

	_, err = New(WithConfigFile(filepath.Join(t.TempDir(), "missing.json")))
	assert.Error(t, err)
}

// TestRuntime_ConfigIsCopied 测试配置被复制
func TestRuntime_ConfigIsCopied(t *testing.T) {
	buf := quietLogs(t)

	cfg := config.NewConfig()
	rt, err := New(WithConfig(cfg), WithPreset(config.PresetObservable), WithLogOutput(buf))
	require.NoError(t, err)

	assert.False(t, cfg.Metrics.Enabled)
	assert.True(t, rt.Config().Metrics.Enabled)
	assert.NotNil(t, rt.Gatherer())
}

// TestFacade_HandlerError 测试根包导出的错误类型
func TestFacade_HandlerError(t *testing.T) {
	bus := NewBus(WithBusID("facade"), WithWarnOnDiscard(true))
	boom := errors.New("boom")
	Register(bus, func(int) error { return boom })

	err := Post(bus, 1)
	var herr *HandlerError
	require.ErrorAs(t, err, &herr)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "facade", bus.ID())
}
