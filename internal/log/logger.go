// Package log wraps pterm's structured logger with a component field, so every line
// says which part of the ledger wrote it.
package log

import (
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

type Logger struct {
	base      *pterm.Logger
	component string
}

type Config struct {
	Level     string
	Format    string
	Component string
	Writer    io.Writer
}

func DefaultConfig() Config {
	return Config{
		Level:     "warn",
		Format:    "text",
		Component: ComponentApp,
		Writer:    os.Stderr,
	}
}

func New(cfg Config) *Logger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Component == "" {
		cfg.Component = ComponentApp
	}

	base := pterm.DefaultLogger.
		WithLevel(ParseLevel(cfg.Level)).
		WithWriter(cfg.Writer)

	if strings.EqualFold(cfg.Format, "json") {
		base = base.WithFormatter(pterm.LogFormatterJSON)
	}

	return &Logger{base: base, component: cfg.Component}
}

// Discard returns a logger that writes nothing.
func Discard() *Logger {
	return New(Config{Level: "error", Writer: io.Discard})
}

func ParseLevel(level string) pterm.LogLevel {
	switch strings.ToLower(level) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "info":
		return pterm.LogLevelInfo
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelWarn
	}
}

func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{base: l.base, component: component}
}

func (l *Logger) Component() string {
	return l.component
}

func (l *Logger) Debug(msg string, kv ...any) { l.base.Debug(msg, l.args(kv)) }
func (l *Logger) Info(msg string, kv ...any)  { l.base.Info(msg, l.args(kv)) }
func (l *Logger) Warn(msg string, kv ...any)  { l.base.Warn(msg, l.args(kv)) }
func (l *Logger) Error(msg string, kv ...any) { l.base.Error(msg, l.args(kv)) }

func (l *Logger) args(kv []any) []pterm.LoggerArgument {
	return l.base.Args(append([]any{FieldComponent, l.component}, kv...)...)
}
