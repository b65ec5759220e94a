package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, uint32(logx.DebugLevel), parseLevel("debug"))
	require.Equal(t, uint32(logx.InfoLevel), parseLevel("info"))
	require.Equal(t, uint32(logx.ErrorLevel), parseLevel("ERROR"))
	require.Equal(t, uint32(logx.SevereLevel), parseLevel("fatal"))
	require.Equal(t, uint32(logx.InfoLevel), parseLevel(""))
	require.Equal(t, uint32(logx.InfoLevel), parseLevel("verbose"))
}

func TestMsgWithFields(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		require.Equal(t, "plain", msgWithFields("plain", nil))
		require.Equal(t, "plain", msgWithFields("plain", Fields{}))
	})

	t.Run("fields are sorted by key", func(t *testing.T) {
		got := msgWithFields("msg", Fields{
			"model":    "gpt-4o-mini",
			"duration": 12,
			"attempt":  1,
		})
		require.Equal(t, "msg | attempt=1 duration=12 model=gpt-4o-mini", got)
	})
}

func TestLoggerDoesNotPanic(t *testing.T) {
	logger := NewLogger("error")

	require.NotPanics(t, func() {
		ctx := context.Background()
		logger.Debug(ctx, "debug message", Fields{"k": "v"})
		logger.Info(ctx, "info message", nil)
		logger.Error(ctx, errors.New("boom"), Fields{"k": "v"})
	})
}
