package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Cheertaboi/coupon-feed-service/internal/core"
)

var DefaultLoggerOpts = &LoggerOpts{
	Environment: core.Development,
}

type LoggerOpts struct {
	Environment core.Environment
	// FilePath additionally writes JSON lines to a rotated file when set.
	FilePath  string
	MaxSizeMB int
}

func safe(opts ...LoggerOpts) *LoggerOpts {
	if len(opts) == 0 {
		return DefaultLoggerOpts
	}
	return &opts[0]
}

func Init(opts ...LoggerOpts) {
	o := safe(opts...)

	var out io.Writer = os.Stderr
	level := zerolog.InfoLevel
	if !o.Environment.IsProduction() {
		out = zerolog.NewConsoleWriter()
		level = zerolog.DebugLevel
	}

	if o.FilePath != "" {
		maxSize := o.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 100
		}
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   o.FilePath,
			MaxSize:    maxSize,
			MaxBackups: 10,
			MaxAge:     30,
			Compress:   true,
		})
	}

	logger := zerolog.New(out).With().Timestamp()
	if !o.Environment.IsProduction() {
		logger = logger.Caller()
	}
	log.Logger = logger.Logger().Level(level)
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
