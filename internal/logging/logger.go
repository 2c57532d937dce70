// Package logging wraps logrus with the status-colored console format the
// checker uses, plus an optional rotating JSON file sink.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/yourneighborhoodchef/airmon/internal/notify"
)

type Config struct {
	Level string
	File  FileConfig
}

type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

type Logger struct {
	lg *logrus.Logger
}

func New(cfg Config) *Logger {
	lg := logrus.New()
	lg.SetLevel(parseLevel(cfg.Level))
	lg.SetFormatter(&consoleFormatter{timeFmt: "2006-01-02 15:04:05"})

	if cfg.File.Enabled && strings.TrimSpace(cfg.File.Path) != "" {
		lg.AddHook(newFileHook(cfg.File))
	}

	return &Logger{lg: lg}
}

// SetOutput redirects console output; used by tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.lg.SetOutput(w)
}

// Log writes one console line colored by status. Success and info map to the
// info level, warning and error to theirs.
func (l *Logger) Log(status notify.Status, format string, args ...interface{}) {
	entry := l.lg.WithField("status", status.String())
	msg := fmt.Sprintf(format, args...)
	switch status {
	case notify.StatusError:
		entry.Error(msg)
	case notify.StatusWarning:
		entry.Warn(msg)
	default:
		entry.Info(msg)
	}
}

func (l *Logger) Success(format string, args ...interface{}) {
	l.Log(notify.StatusSuccess, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(notify.StatusInfo, format, args...)
}

func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(notify.StatusWarning, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(notify.StatusError, format, args...)
}

func parseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[32m"
	ansiRed    = "\033[31m"
	ansiCyan   = "\033[36m"
	ansiYellow = "\033[33m"
)

var statusANSI = map[string]string{
	"success": ansiGreen,
	"error":   ansiRed,
	"info":    ansiCyan,
	"warning": ansiYellow,
}

// consoleFormatter prints "[2006-01-02 15:04:05] message" with the whole
// line colored by the entry's status field.
type consoleFormatter struct {
	timeFmt string
}

func (f *consoleFormatter) Format(e *logrus.Entry) ([]byte, error) {
	color := ansiCyan
	if s, ok := e.Data["status"].(string); ok {
		if c, found := statusANSI[s]; found {
			color = c
		}
	}
	line := fmt.Sprintf("%s[%s] %s%s\n", color, e.Time.Format(f.timeFmt), e.Message, ansiReset)
	return []byte(line), nil
}

// fileHook mirrors every entry into a size-rotated JSON log file.
type fileHook struct {
	w    io.Writer
	fmtr logrus.Formatter
}

func newFileHook(cfg FileConfig) *fileHook {
	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	return &fileHook{
		w: &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    maxSize,
			MaxBackups: cfg.MaxBackups,
		},
		fmtr: &logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano},
	}
}

func (h *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fileHook) Fire(e *logrus.Entry) error {
	b, err := h.fmtr.Format(e)
	if err != nil {
		return err
	}
	_, err = h.w.Write(b)
	return err
}
