package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/five82/actionsheet/internal/config"
	"github.com/five82/actionsheet/internal/logger"
	"github.com/five82/actionsheet/internal/prefs"
	"github.com/five82/actionsheet/internal/ui"
)

// Options configure the action sheet demo.
type Options struct {
	ConfigPath string // empty uses default ~/.config/actionsheet/config.toml
	PrefsPath  string // empty uses default ~/.config/actionsheet/prefs.toml
	LogPath    string // overrides log_file from the config
	LogLevel   string // overrides log_level from the config
}

// Run boots the demo until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	uiOpts, closer, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	uiOpts.Logger.Info("starting")
	err = ui.Run(ctx, uiOpts)
	uiOpts.Logger.Info("stopped")
	return err
}

// setup loads config and prefs and opens the log file.
func setup(opts Options) (ui.Options, io.Closer, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("load config: %w", err)
	}

	logPath := cfg.LogFile
	if p := strings.TrimSpace(opts.LogPath); p != "" {
		logPath = p
	}
	level := cfg.LogLevel
	if l := strings.TrimSpace(opts.LogLevel); l != "" {
		level = l
	}
	base, closer, err := logger.Setup(logPath, level)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("init logging: %w", err)
	}
	log := logger.Named(base, "app")

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		// Prefs are cosmetic; fall back to defaults.
		log.WithError(err).Warn("load prefs")
	}

	log.WithFields(logrus.Fields{
		"theme":        userPrefs.Theme,
		"close_on_tap": cfg.Sheet.CloseOnTap,
		"cancel":       cfg.Sheet.CancelEnabled,
	}).Debug("config loaded")

	return ui.Options{
		Sheet:     cfg.Sheet,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Logger:    logger.Named(base, "ui"),
	}, closer, nil
}
