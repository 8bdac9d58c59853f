package logger

import (
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logger. It is nil until Init runs; the helpers below are safe
// to call either way.
var Logger *log.Logger

type Config struct {
	Level string
	// Dir receives a rotating habitual.log when set.
	Dir        string
	JSON       bool
	ReportCall bool
}

func Init(cfg Config) error {
	writers := []io.Writer{os.Stderr}
	if strings.TrimSpace(cfg.Dir) != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, "habitual.log"),
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})
	}

	Logger = New(io.MultiWriter(writers...), cfg)
	return nil
}

// Bootstrap installs a plain logger on writer so warnings raised while the
// configuration is still loading are not lost. Init replaces it.
func Bootstrap(writer io.Writer, level string) {
	Logger = New(writer, Config{Level: level})
}

func New(writer io.Writer, cfg Config) *log.Logger {
	instance := log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.ReportCall,
		ReportTimestamp: true,
		Level:           ParseLevel(cfg.Level),
		Prefix:          "habitual",
	})
	if cfg.JSON {
		instance.SetFormatter(log.JSONFormatter)
	}
	return instance
}

func ParseLevel(raw string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// StandardLog adapts the logger for libraries that expect a *log.Logger (gorm, fiber).
func StandardLog() *stdlog.Logger {
	if Logger == nil {
		return stdlog.New(os.Stderr, "", stdlog.LstdFlags)
	}
	return Logger.StandardLog(log.StandardLogOptions{ForceLevel: log.WarnLevel})
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
