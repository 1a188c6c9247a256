// Package logging provides the debug trace log. User-facing output goes to
// stdout/stderr; this logger records probe results, dispatch decisions, and
// child-process exits to a rotating file under ~/.decode/logs/ so that
// "why did detection pick that folder" is answerable after the fact.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log *zap.Logger = zap.NewNop()

// Init sets up the rotating file logger. Failures fall back to a no-op
// logger: a CLI must never refuse to run because its trace log is broken.
func Init(logDir string) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return
	}

	writer := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "decode.log"),
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(writer),
		zapcore.DebugLevel,
	)
	log = zap.New(core)
}

// L returns the process logger. Safe to call before Init (returns a no-op).
func L() *zap.Logger { return log }

// Sync flushes buffered entries. Called once before process exit.
func Sync() {
	_ = log.Sync()
}
