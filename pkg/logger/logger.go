package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var levels = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
	"fatal": zap.FatalLevel,
}

// NewLogger writes JSON lines to the reopenable file syncer and stderr.
// Unknown level names fall back to info. Pass a nil syncer to log to
// stderr only.
func NewLogger(logLevel string, fileSyncer *ReopenableWriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	level, ok := levels[logLevel]
	if !ok {
		level = zap.InfoLevel
	}

	syncer := zapcore.WriteSyncer(os.Stderr)
	if fileSyncer != nil {
		syncer = zapcore.NewMultiWriteSyncer(fileSyncer, os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), syncer, level)
	return zap.New(core, zap.AddCaller())
}
