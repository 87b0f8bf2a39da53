package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault 测试结束后恢复默认 logger
func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

// TestParseLevel 测试级别解析
func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        LevelInfo,
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" warn ":  LevelWarn,
		"error":   LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

// TestConfigure_JSON 测试 JSON 输出与组件字段
func TestConfigure_JSON(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	require.NoError(t, Configure(&buf, "debug", FormatJSON))

	Logger("core/eventbus").Debug("处理器已注册", "type", "string")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "core/eventbus", rec["component"])
	assert.Equal(t, "string", rec["type"])
	assert.Equal(t, "DEBUG", rec["level"])
}

// TestConfigure_LevelFilter 测试级别过滤
func TestConfigure_LevelFilter(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	require.NoError(t, Configure(&buf, "warn", FormatText))

	l := Logger("test")
	l.Info("不应输出")
	assert.Zero(t, buf.Len())
	assert.False(t, l.Enabled(LevelInfo))

	l.Warn("应输出")
	assert.Contains(t, buf.String(), "component=test")
}

// TestConfigure_Invalid 测试非法参数
func TestConfigure_Invalid(t *testing.T) {
	restoreDefault(t)

	assert.Error(t, Configure(nil, "loud", FormatText))
	assert.Error(t, Configure(nil, "info", "xml"))
}

// TestLazyLogger_FollowsDefault 测试 LazyLogger 跟随默认 logger 切换
func TestLazyLogger_FollowsDefault(t *testing.T) {
	restoreDefault(t)

	l := Logger("lazy")

	var first, second bytes.Buffer
	SetOutputWithLevel(&first, LevelInfo)
	l.Info("one")
	SetOutputWithLevel(&second, LevelInfo)
	l.Info("two")

	assert.Contains(t, first.String(), "one")
	assert.NotContains(t, first.String(), "two")
	assert.Contains(t, second.String(), "two")
}
