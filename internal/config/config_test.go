package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/actionsheet/internal/sheet"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	def := sheet.DefaultConfig()
	if cfg.Sheet.ButtonHeight != def.ButtonHeight {
		t.Fatalf("ButtonHeight = %d, want %d", cfg.Sheet.ButtonHeight, def.ButtonHeight)
	}
	if cfg.Sheet.CancelLabel != sheet.DefaultCancelLabel {
		t.Fatalf("CancelLabel = %q, want %q", cfg.Sheet.CancelLabel, sheet.DefaultCancelLabel)
	}
	if !cfg.Sheet.CloseOnTap || !cfg.Sheet.CancelEnabled {
		t.Fatalf("CloseOnTap/CancelEnabled = %v/%v, want true/true", cfg.Sheet.CloseOnTap, cfg.Sheet.CancelEnabled)
	}
	if cfg.Sheet.OpenDuration != sheet.DefaultDuration {
		t.Fatalf("OpenDuration = %v, want %v", cfg.Sheet.OpenDuration, sheet.DefaultDuration)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_ParsesSheetSection(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_file = "  ~/logs/sheet.log  "
log_level = "debug"

[sheet]
button_height = 60
vertical_spacing = 15
bottom_margin = 25
horizontal_inset = 10
corner_radius = 0
font_color = " #ffffff "
font_bold = true
background_color = "#333333"
overlay_opacity = 0.8
cancel_enabled = false
cancel_label = ""
open_duration = "150ms"
close_duration = "1s"
close_on_tap = false
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	s := cfg.Sheet
	if s.ButtonHeight != 60 || s.VerticalSpacing != 15 || s.BottomMargin != 25 || s.HorizontalInset != 10 {
		t.Fatalf("sizes = %d/%d/%d/%d, want 60/15/25/10", s.ButtonHeight, s.VerticalSpacing, s.BottomMargin, s.HorizontalInset)
	}
	if s.CornerRadius != 0 {
		t.Fatalf("CornerRadius = %d, want 0", s.CornerRadius)
	}
	if s.FontColor != lipgloss.Color("#ffffff") {
		t.Fatalf("FontColor = %q, want %q", s.FontColor, "#ffffff")
	}
	if s.BorderColor != lipgloss.Color(sheet.DefaultBorderColor) {
		t.Fatalf("BorderColor = %q, want default", s.BorderColor)
	}
	if !s.Font.GetBold() {
		t.Fatalf("Font bold = false, want true")
	}
	if s.OverlayOpacity != 0.8 {
		t.Fatalf("OverlayOpacity = %v, want 0.8", s.OverlayOpacity)
	}
	if s.CancelEnabled || s.CloseOnTap {
		t.Fatalf("CancelEnabled/CloseOnTap = %v/%v, want false/false", s.CancelEnabled, s.CloseOnTap)
	}
	if s.CancelLabel != "" {
		t.Fatalf("CancelLabel = %q, want explicit empty", s.CancelLabel)
	}
	if s.OpenDuration != 150*time.Millisecond || s.CloseDuration != time.Second {
		t.Fatalf("durations = %v/%v, want 150ms/1s", s.OpenDuration, s.CloseDuration)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad toml", `log_level = [`, "parse config"},
		{"negative size", "[sheet]\nbutton_height = -1\n", "invalid button_height"},
		{"bad duration", "[sheet]\nopen_duration = \"soon\"\n", "parse open_duration"},
		{"negative duration", "[sheet]\nclose_duration = \"-1s\"\n", "invalid close_duration"},
		{"opacity range", "[sheet]\noverlay_opacity = 1.5\n", "invalid overlay_opacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
