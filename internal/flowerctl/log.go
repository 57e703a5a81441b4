package flowerctl

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the console logger used for step tracing. User-facing
// output stays on stdout via fmt; this channel carries structured detail,
// with debug enabled through FLOWERCTL_DEBUG.
func NewLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.OutputPaths = []string{"stderr"}
	level := zapcore.WarnLevel
	if strings.TrimSpace(os.Getenv("FLOWERCTL_DEBUG")) != "" {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
