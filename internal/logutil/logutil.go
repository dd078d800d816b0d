// Package logutil builds the zap loggers used by the command line tools.
package logutil

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig describes where and how much to log.
type LogConfig struct {
	Level      string `toml:"level" yaml:"level"`
	Format     string `toml:"format" yaml:"format"`
	Filename   string `toml:"filename" yaml:"filename"`
	MaxSize    int    `toml:"max-size" yaml:"max-size"`
	MaxDays    int    `toml:"max-days" yaml:"max-days"`
	MaxBackups int    `toml:"max-backups" yaml:"max-backups"`
}

// DefaultLogConfig logs at info level to stderr in console format.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "console",
	}
}

// NewLogger creates a logger from cfg. Logs go to stderr unless Filename is
// set, in which case they go to a size-rotated file.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := cfg.getLevel()
	if err != nil {
		return nil, err
	}
	encoder, err := cfg.getEncoder()
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(encoder, cfg.getSyncer(), level)
	return zap.New(core, cfg.getOptions()...), nil
}

func (cfg *LogConfig) getLevel() (zap.AtomicLevel, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level == "" {
		return level, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		return level, errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}
	return level, nil
}

func (cfg *LogConfig) getEncoder() (zapcore.Encoder, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	switch strings.ToLower(cfg.Format) {
	case "", "console":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	case "json":
		return zapcore.NewJSONEncoder(encoderConfig), nil
	default:
		return nil, errors.Errorf("unsupported log format %q", cfg.Format)
	}
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}
