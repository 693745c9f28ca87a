package logger

import (
	"os"
	"strings"

	"trivia_backend/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 在 InitLogger 之前是 no-op，测试中可以直接使用
var Log = zap.NewNop()

var level = zap.NewAtomicLevelAt(zap.InfoLevel)

func InitLogger(cfg *config.Config) {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	level.SetLevel(ParseLevel(cfg.Log.Level, cfg.Server.Mode))

	consoleWriter := zapcore.AddSync(os.Stdout)
	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			consoleWriter,
			level,
		),
	}

	if cfg.Log.File != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			fileWriter,
			level,
		))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// ParseLevel debug 模式下未配置级别时默认输出 debug 日志
func ParseLevel(raw, mode string) zapcore.Level {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if mode == "debug" {
			return zap.DebugLevel
		}
		return zap.InfoLevel
	}

	l, err := zapcore.ParseLevel(raw)
	if err != nil {
		return zap.InfoLevel
	}
	return l
}

// SetLevel 热更新日志级别
func SetLevel(cfg *config.Config) {
	next := ParseLevel(cfg.Log.Level, cfg.Server.Mode)
	if next != level.Level() {
		Log.Info("log level changed", zap.Stringer("from", level.Level()), zap.Stringer("to", next))
		level.SetLevel(next)
	}
}

func Level() zapcore.Level {
	return level.Level()
}
