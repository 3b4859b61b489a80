package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Level is the minimum severity a logger emits
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger is the logging interface services depend on
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DefaultLogger implements Logger on top of the log package
type DefaultLogger struct {
	level Level
	out   *log.Logger
}

// NewDefaultLogger writes to stderr
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{
		level: level,
		out:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

// NewFileLogger writes to stdout and to logs/app-YYYY-MM-DD.log under dir.
func NewFileLogger(level Level, dir string) (*DefaultLogger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	name := filepath.Join(dir, fmt.Sprintf("app-%s.log", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &DefaultLogger{
		level: level,
		out:   log.New(io.MultiWriter(os.Stdout, f), "", log.LstdFlags|log.Lshortfile),
	}, nil
}

// ParseLevel maps "debug", "info", "warn" and "error" to a Level; anything else is InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.out.Printf("[DEBUG] "+format, v...)
	}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.out.Printf("[INFO] "+format, v...)
	}
}

func (l *DefaultLogger) Warn(format string, v ...interface{}) {
	if l.level <= WarnLevel {
		l.out.Printf("[WARN] "+format, v...)
	}
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.out.Printf("[ERROR] "+format, v...)
	}
}

// Nop discards everything
type Nop struct{}

func (Nop) Debug(string, ...interface{}) {}
func (Nop) Info(string, ...interface{})  {}
func (Nop) Warn(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
