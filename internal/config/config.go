package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/actionsheet/internal/sheet"
)

// Config captures the presentation parameters and logging settings.
type Config struct {
	Sheet    sheet.Config
	LogFile  string
	LogLevel string
}

const (
	defaultConfigPath = "~/.config/actionsheet/config.toml"
	defaultLogFile    = "~/.local/state/actionsheet/actionsheet.log"
	defaultLogLevel   = "info"
)

type rawSheet struct {
	ButtonHeight    *int     `toml:"button_height"`
	VerticalSpacing *int     `toml:"vertical_spacing"`
	BottomMargin    *int     `toml:"bottom_margin"`
	HorizontalInset *int     `toml:"horizontal_inset"`
	CornerRadius    *int     `toml:"corner_radius"`
	FontColor       string   `toml:"font_color"`
	FontBold        bool     `toml:"font_bold"`
	FontItalic      bool     `toml:"font_italic"`
	FontUnderline   bool     `toml:"font_underline"`
	BackgroundColor string   `toml:"background_color"`
	BorderColor     string   `toml:"border_color"`
	OverlayColor    string   `toml:"overlay_color"`
	OverlayOpacity  *float64 `toml:"overlay_opacity"`
	FocusColor      string   `toml:"focus_color"`
	CancelEnabled   *bool    `toml:"cancel_enabled"`
	CancelLabel     *string  `toml:"cancel_label"`
	OpenDuration    string   `toml:"open_duration"`
	CloseDuration   string   `toml:"close_duration"`
	CloseOnTap      *bool    `toml:"close_on_tap"`
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Sheet:    sheet.DefaultConfig(),
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogFile  string   `toml:"log_file"`
		LogLevel string   `toml:"log_level"`
		Sheet    rawSheet `toml:"sheet"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}

	if err := applySheet(&cfg.Sheet, raw.Sheet); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applySheet(dst *sheet.Config, raw rawSheet) error {
	sizes := []struct {
		name string
		src  *int
		dst  *int
	}{
		{"button_height", raw.ButtonHeight, &dst.ButtonHeight},
		{"vertical_spacing", raw.VerticalSpacing, &dst.VerticalSpacing},
		{"bottom_margin", raw.BottomMargin, &dst.BottomMargin},
		{"horizontal_inset", raw.HorizontalInset, &dst.HorizontalInset},
		{"corner_radius", raw.CornerRadius, &dst.CornerRadius},
	}
	for _, s := range sizes {
		if s.src == nil {
			continue
		}
		if *s.src < 0 {
			return fmt.Errorf("invalid %s: %d is negative", s.name, *s.src)
		}
		*s.dst = *s.src
	}

	setColor(&dst.FontColor, raw.FontColor)
	setColor(&dst.BackgroundColor, raw.BackgroundColor)
	setColor(&dst.BorderColor, raw.BorderColor)
	setColor(&dst.OverlayColor, raw.OverlayColor)
	setColor(&dst.FocusColor, raw.FocusColor)

	dst.Font = lipgloss.NewStyle().
		Bold(raw.FontBold).
		Italic(raw.FontItalic).
		Underline(raw.FontUnderline)

	if raw.OverlayOpacity != nil {
		if *raw.OverlayOpacity < 0 || *raw.OverlayOpacity > 1 {
			return fmt.Errorf("invalid overlay_opacity: %v is outside [0, 1]", *raw.OverlayOpacity)
		}
		dst.OverlayOpacity = *raw.OverlayOpacity
	}
	if raw.CancelEnabled != nil {
		dst.CancelEnabled = *raw.CancelEnabled
	}
	if raw.CancelLabel != nil {
		dst.CancelLabel = *raw.CancelLabel
	}
	if raw.CloseOnTap != nil {
		dst.CloseOnTap = *raw.CloseOnTap
	}

	var err error
	if dst.OpenDuration, err = parseDuration("open_duration", raw.OpenDuration, dst.OpenDuration); err != nil {
		return err
	}
	if dst.CloseDuration, err = parseDuration("close_duration", raw.CloseDuration, dst.CloseDuration); err != nil {
		return err
	}
	return nil
}

func setColor(dst *lipgloss.Color, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = lipgloss.Color(v)
	}
}

func parseDuration(name, value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: %s is negative", name, value)
	}
	return d, nil
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
