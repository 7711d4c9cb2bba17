package config

import (
	"fmt"
	"strings"

	"github.com/hance08/tankhah/internal/calendar"
	"github.com/hance08/tankhah/internal/constants"
	"github.com/hance08/tankhah/internal/locale"
)

type Config struct {
	Ledger     LedgerConfig  `mapstructure:"ledger"`
	Display    DisplayConfig `mapstructure:"display"`
	Export     ExportConfig  `mapstructure:"export"`
	Log        LogConfig     `mapstructure:"log"`
	ConfigPath string        `mapstructure:"-"`
}

type LedgerConfig struct {
	Year     int    `mapstructure:"year"`
	Calendar string `mapstructure:"calendar"`
	Seed     bool   `mapstructure:"seed"`
}

type DisplayConfig struct {
	Locale string `mapstructure:"locale"`
}

type ExportConfig struct {
	Dir    string `mapstructure:"dir"`
	Prefix string `mapstructure:"prefix"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func NewDefault() *Config {
	return &Config{
		Ledger:  LedgerConfig{Year: constants.DefaultYear, Calendar: string(calendar.Jalali), Seed: true},
		Display: DisplayConfig{Locale: string(locale.Persian)},
		Export:  ExportConfig{Dir: ".", Prefix: "گزارش-تنخواه"},
		Log:     LogConfig{Level: "warn", Format: "text"},
	}
}

// Defaults lists every key with its default value, for seeding viper and the config file.
func Defaults() map[string]any {
	d := NewDefault()
	return map[string]any{
		"ledger.year":     d.Ledger.Year,
		"ledger.calendar": d.Ledger.Calendar,
		"ledger.seed":     d.Ledger.Seed,
		"display.locale":  d.Display.Locale,
		"export.dir":      d.Export.Dir,
		"export.prefix":   d.Export.Prefix,
		"log.level":       d.Log.Level,
		"log.format":      d.Log.Format,
	}
}

func (c *Config) Validate() error {
	if c.Ledger.Year <= 0 {
		return fmt.Errorf("invalid ledger.year %d", c.Ledger.Year)
	}
	if _, err := calendar.ParseSystem(c.Ledger.Calendar); err != nil {
		return fmt.Errorf("ledger.calendar: %w", err)
	}
	if _, err := locale.Get(locale.Code(c.Display.Locale)); err != nil {
		return fmt.Errorf("display.locale: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level '%s'", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format '%s' (must be text or json)", c.Log.Format)
	}
	return nil
}

func (c *Config) CalendarSystem() calendar.System {
	sys, err := calendar.ParseSystem(c.Ledger.Calendar)
	if err != nil {
		return calendar.Jalali
	}
	return sys
}

func (c *Config) Locale() locale.Locale {
	l, err := locale.Get(locale.Code(c.Display.Locale))
	if err != nil {
		return locale.MustGet(locale.Persian)
	}
	return l
}
