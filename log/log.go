package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Nop installs and returns a logger that discards everything.
func Nop() *zap.Logger {
	l := zap.NewNop()
	zap.ReplaceGlobals(l)
	return l
}

// Development builds a console logger writing to stderr, installs it as the
// global zap logger and returns it. Debug entries are only emitted when
// verbose is set. stdout is left alone so command output stays pipeable.
func Development(verbose bool, opts ...zap.Option) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	opts = append(opts, zap.WithCaller(verbose))
	l, err := cfg.Build(opts...)
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(l)

	return zap.L()
}
