package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/five82/actionsheet/internal/logger"
	"github.com/five82/actionsheet/internal/prefs"
	"github.com/five82/actionsheet/internal/sheet"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Sheet     sheet.Config
	ThemeName string
	PrefsPath string
	Logger    *logrus.Entry
	Clock     func() time.Time
}

// Messages produced by the sheet actions.
type (
	cycleThemeMsg       struct{}
	timestampMsg        struct{ at time.Time }
	toggleCloseOnTapMsg struct{}
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	prefsPath string
	log       *logrus.Entry
	now       func() time.Time

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool

	sheet       *sheet.Sheet
	customFocus bool
	history     []string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	log := opts.Logger
	if log == nil {
		log = logger.Named(logger.Discard(), "ui")
	}

	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	m := Model{
		ctx:       ctx,
		prefsPath: prefsPath,
		log:       log,
		now:       now,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		sheet:     sheet.New(opts.Sheet, sheet.WithLogger(log), sheet.WithClock(now)),
	}
	m.customFocus = opts.Sheet.FocusColor != "" && opts.Sheet.FocusColor != sheet.DefaultFocusColor
	m.sheet.SetConfig(m.themedConfig(m.sheet.Config()))
	m.registerActions()
	return m
}

// registerActions adds the demo actions. Each callback hands a message back
// to Update so the model changes inside the event loop.
func (m Model) registerActions() {
	m.sheet.AddAction(labelCycleTheme, func() tea.Cmd {
		return func() tea.Msg { return cycleThemeMsg{} }
	})
	now := m.now
	m.sheet.AddAction(labelTimestamp, func() tea.Cmd {
		at := now()
		return func() tea.Msg { return timestampMsg{at: at} }
	})
	m.sheet.AddAction(labelCloseOnTap, func() tea.Cmd {
		return func() tea.Msg { return toggleCloseOnTapMsg{} }
	})
	m.sheet.AddAction(labelQuit, func() tea.Cmd {
		return tea.Quit
	})
}

// themedConfig applies the current theme to cfg: the Quit action is drawn in
// the danger color and, unless configured, focus uses the accent color.
func (m Model) themedConfig(cfg sheet.Config) sheet.Config {
	danger := lipgloss.Color(m.theme.Danger)
	cfg.StyleFunc = func(_ int, label string, b sheet.Button) sheet.Button {
		if label == labelQuit {
			b.Style = b.Style.Foreground(danger).Bold(true)
		}
		return b
	}
	if !m.customFocus {
		cfg.FocusColor = lipgloss.Color(m.theme.Accent)
	}
	return cfg
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The sheet sees every message: it owns its frames and its own resize.
	sheetCmd := m.sheet.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, sheetCmd

	case tea.KeyMsg:
		if m.sheet.Active() {
			// The sheet owns q and esc; ctrl+c still quits.
			if key.Matches(msg, m.keys.Interrupt) {
				return m, tea.Quit
			}
			return m, sheetCmd
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, sheetCmd

	case sheet.ShownMsg:
		m.record("sheet shown")
		return m, sheetCmd

	case sheet.DismissedMsg:
		m.record("sheet dismissed")
		return m, sheetCmd

	case cycleThemeMsg:
		m.record(fmt.Sprintf("%s: %s", labelCycleTheme, m.cycleTheme()))
		return m, sheetCmd

	case timestampMsg:
		m.record(fmt.Sprintf("%s: %s", labelTimestamp, msg.at.Format(time.TimeOnly)))
		return m, sheetCmd

	case toggleCloseOnTapMsg:
		cfg := m.sheet.Config()
		cfg.CloseOnTap = !cfg.CloseOnTap
		m.sheet.SetConfig(cfg)
		m.record(fmt.Sprintf("%s: %t (next open)", labelCloseOnTap, cfg.CloseOnTap))
		return m, sheetCmd
	}

	return m, sheetCmd
}

// handleKey processes keyboard input while the sheet is hidden.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Interrupt):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.record(fmt.Sprintf("theme: %s", m.cycleTheme()))
		return m, nil

	case key.Matches(msg, m.keys.Open):
		return m, m.sheet.Show()
	}

	return m, nil
}

// cycleTheme switches to the next theme, persists it and restyles the sheet
// for its next presentation.
func (m *Model) cycleTheme() string {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.sheet.SetConfig(m.themedConfig(m.sheet.Config()))
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.log.WithError(err).Warn("save prefs")
		}
	}
	return m.theme.Name
}

func (m *Model) record(event string) {
	m.log.Info(event)
	entry := fmt.Sprintf("%s  %s", m.now().Format(time.TimeOnly), event)
	m.history = append(m.history, entry)
	if over := len(m.history) - HistoryLimit; over > 0 {
		m.history = append(m.history[:0:0], m.history[over:]...)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.sheet.View(m.renderMain())
}

// Run launches the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	opts.Context = ctx
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
