package logger_test

import (
	"testing"

	"article-stream/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		cfg         logger.Config
		wantDebugOn bool
	}{
		{"Production JSON", logger.Config{Level: "info", Format: "json"}, false},
		{"Development Console", logger.Config{Level: "debug", Format: "console"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Equal(t, tt.wantDebugOn, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
