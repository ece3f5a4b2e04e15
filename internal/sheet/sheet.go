package sheet

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Action is a labelled choice and the callback run when it is tapped. The
// command returned by OnActivate, if any, is handed back to the program.
type Action struct {
	Label      string
	OnActivate func() tea.Cmd
}

// ShownMsg is emitted when the open animation of a sheet completes.
type ShownMsg struct {
	ID uuid.UUID
}

// DismissedMsg is emitted when the close animation of a sheet completes and
// its content has been torn down.
type DismissedMsg struct {
	ID uuid.UUID
}

// Option configures a Sheet.
type Option func(*Sheet)

// WithLogger sets the entry used for transition logging.
func WithLogger(entry *logrus.Entry) Option {
	return func(s *Sheet) {
		if entry != nil {
			s.log = entry
		}
	}
}

// WithClock overrides the time source used by animations.
func WithClock(now func() time.Time) Option {
	return func(s *Sheet) {
		if now != nil {
			s.now = now
		}
	}
}

// WithKeyMap overrides the keyboard bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(s *Sheet) {
		s.keys = keys
	}
}

// Sheet is a slide-up action sheet drawn over a dimmed backdrop.
//
// All methods must be called from the Bubble Tea update loop.
type Sheet struct {
	id   uuid.UUID
	cfg  Config
	keys KeyMap
	log  *logrus.Entry
	now  func() time.Time

	actions []Action

	width, height int

	state          State
	pendingDismiss bool
	progress       float64
	gen            int
	anim           *animation

	// Presentation snapshot; populated by render and cleared on teardown.
	shown    Config
	rendered []Action
	geom     Geometry
	buttons  []Button
	cancel   Button
	taps     []func() tea.Cmd
	focus    int
	hits     *HitMap
}

// New returns a hidden sheet with no actions.
func New(cfg Config, opts ...Option) *Sheet {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Sheet{
		id:   uuid.New(),
		cfg:  cfg,
		keys: DefaultKeyMap(),
		log:  logrus.NewEntry(discard),
		now:  time.Now,
		hits: NewHitMap(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("sheet", s.id.String())
	return s
}

// ID returns the identifier carried by messages this sheet emits.
func (s *Sheet) ID() uuid.UUID { return s.id }

// State returns the current presentation state.
func (s *Sheet) State() State { return s.state }

// Active reports whether the sheet is on screen in any form.
func (s *Sheet) Active() bool { return s.state != Hidden }

// Progress returns the presentation progress, 0 closed and 1 open.
func (s *Sheet) Progress() float64 { return s.progress }

// Config returns the configuration used by the next presentation.
func (s *Sheet) Config() Config { return s.cfg }

// SetConfig replaces the configuration. A presentation already on screen
// keeps the configuration it was rendered with.
func (s *Sheet) SetConfig(cfg Config) { s.cfg = cfg }

// KeyMap returns the keyboard bindings.
func (s *Sheet) KeyMap() KeyMap { return s.keys }

// HitMap exposes the regions of the current presentation.
func (s *Sheet) HitMap() *HitMap { return s.hits }

// Geometry returns the layout of the current presentation.
func (s *Sheet) Geometry() Geometry { return s.geom }

// Buttons returns the styled action buttons of the current presentation.
func (s *Sheet) Buttons() []Button { return slices.Clone(s.buttons) }

// AddAction appends an action. Labels need not be unique.
func (s *Sheet) AddAction(label string, onActivate func() tea.Cmd) {
	s.actions = append(s.actions, Action{Label: label, OnActivate: onActivate})
}

// Actions returns a copy of the registered actions.
func (s *Sheet) Actions() []Action {
	return slices.Clone(s.actions)
}

// ClearActions removes every registered action. It has no effect while the
// sheet is on screen.
func (s *Sheet) ClearActions() {
	if s.state != Hidden {
		s.log.Debug("clear actions ignored while active")
		return
	}
	s.actions = nil
}

// SetSize sets the container size the sheet lays itself out in.
func (s *Sheet) SetSize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	if s.state != Hidden {
		s.layout()
	}
}

// Show presents the sheet. It does nothing unless the sheet is hidden.
func (s *Sheet) Show() tea.Cmd {
	if s.state != Hidden {
		s.log.WithField("state", s.state).Debug("show ignored")
		return nil
	}

	s.render()
	s.state = Presenting
	s.pendingDismiss = false
	s.log.WithField("actions", len(s.rendered)).Debug("presenting")
	return s.animate(s.shown.OpenDuration, 1, s.finishShow)
}

// Dismiss hides the sheet. Dismissing while the open animation runs is
// deferred until the sheet becomes visible; in any other state but Visible
// it does nothing.
func (s *Sheet) Dismiss() tea.Cmd {
	switch s.state {
	case Visible:
		s.state = Dismissing
		s.log.Debug("dismissing")
		return s.animate(s.shown.CloseDuration, 0, s.finishDismiss)
	case Presenting:
		s.pendingDismiss = true
		s.log.Debug("dismiss queued until presented")
		return nil
	default:
		s.log.WithField("state", s.state).Debug("dismiss ignored")
		return nil
	}
}

func (s *Sheet) finishShow() tea.Cmd {
	if s.state != Presenting {
		return nil
	}
	s.state = Visible
	s.log.Debug("visible")

	id := s.id
	shown := func() tea.Msg { return ShownMsg{ID: id} }
	if s.pendingDismiss {
		s.pendingDismiss = false
		return tea.Batch(shown, s.Dismiss())
	}
	return shown
}

func (s *Sheet) finishDismiss() tea.Cmd {
	if s.state != Dismissing {
		return nil
	}
	s.teardown()
	s.state = Hidden
	s.log.Debug("hidden")

	id := s.id
	return func() tea.Msg { return DismissedMsg{ID: id} }
}

// render snapshots the configuration and actions and builds the buttons.
func (s *Sheet) render() {
	s.shown = s.cfg
	s.rendered = slices.Clone(s.actions)
	s.progress = 0
	s.focus = 0

	labels := make([]string, len(s.rendered))
	for i, a := range s.rendered {
		labels[i] = a.Label
	}
	s.buttons, s.cancel = buildButtons(s.shown, labels)

	s.taps = make([]func() tea.Cmd, len(s.rendered))
	for i := range s.rendered {
		i := i
		s.taps[i] = func() tea.Cmd { return s.tapAction(i) }
	}
	s.layout()
}

func (s *Sheet) layout() {
	s.geom = Compute(s.shown.params(len(s.rendered), s.width, s.height))
	s.syncHitMap()
}

func (s *Sheet) teardown() {
	s.rendered = nil
	s.buttons = nil
	s.cancel = Button{}
	s.taps = nil
	s.geom = Geometry{}
	s.progress = 0
	s.focus = 0
	s.hits.Clear()
}

// syncHitMap registers the overlay, the sheet body and every button at the
// sheet's current position.
func (s *Sheet) syncHitMap() {
	s.hits.Clear()
	y := s.geom.SheetY(s.progress)
	s.hits.Add(regionOverlay, Rect{W: s.width, H: s.height}, nil)
	s.hits.Add(regionBody, s.geom.SheetFrame(y), nil)
	for i, tap := range s.taps {
		s.hits.Add(regionAction, s.geom.ButtonFrame(i, y), tap)
	}
	if s.geom.HasCancel {
		s.hits.Add(regionCancel, s.geom.CancelFrame(y), nil)
	}
}

// tapAction runs the action at index i. With CloseOnTap the dismissal starts
// before the callback runs.
func (s *Sheet) tapAction(i int) tea.Cmd {
	if s.state != Visible || i < 0 || i >= len(s.rendered) {
		return nil
	}
	s.log.WithField("index", i).Debug("action tapped")

	var cmds []tea.Cmd
	if s.shown.CloseOnTap {
		cmds = append(cmds, s.Dismiss())
	}
	if fn := s.rendered[i].OnActivate; fn != nil {
		cmds = append(cmds, fn())
	}
	return tea.Batch(cmds...)
}

func (s *Sheet) tapCancel() tea.Cmd {
	if s.state != Visible {
		return nil
	}
	return s.Dismiss()
}

// TapOverlay handles a tap on the dimmed backdrop.
func (s *Sheet) TapOverlay() tea.Cmd {
	return s.tapCancel()
}

// TapCancel handles a tap on the cancel button.
func (s *Sheet) TapCancel() tea.Cmd {
	if !s.geom.HasCancel {
		return nil
	}
	return s.tapCancel()
}

// TapAction handles a tap on the action button at index i.
func (s *Sheet) TapAction(i int) tea.Cmd {
	if i < 0 || i >= len(s.taps) {
		return nil
	}
	return s.taps[i]()
}

// Update handles animation frames, resizes and, while visible, mouse and
// keyboard input.
func (s *Sheet) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		return s.handleFrame(msg)
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return nil
	case tea.MouseMsg:
		if s.state != Visible {
			return nil
		}
		return s.handleMouse(msg)
	case tea.KeyMsg:
		if s.state != Visible {
			return nil
		}
		return s.handleKey(msg)
	}
	return nil
}

func (s *Sheet) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	region := s.hits.Test(msg.X, msg.Y)
	if region == nil {
		return nil
	}
	switch region.ID {
	case regionAction:
		if tap, ok := region.Data.(func() tea.Cmd); ok {
			return tap()
		}
	case regionCancel:
		return s.TapCancel()
	case regionOverlay:
		return s.TapOverlay()
	}
	return nil
}

// focusCount is the number of keyboard-focusable buttons.
func (s *Sheet) focusCount() int {
	n := len(s.taps)
	if s.geom.HasCancel {
		n++
	}
	return n
}

// Focus returns the index of the focused button; len(actions) is the cancel
// button.
func (s *Sheet) Focus() int { return s.focus }

func (s *Sheet) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := s.focusCount()
	switch {
	case key.Matches(msg, s.keys.Up):
		if n > 0 {
			s.focus = (s.focus - 1 + n) % n
		}
	case key.Matches(msg, s.keys.Down):
		if n > 0 {
			s.focus = (s.focus + 1) % n
		}
	case key.Matches(msg, s.keys.Select):
		if s.focus < len(s.taps) {
			return s.taps[s.focus]()
		}
		return s.TapCancel()
	case key.Matches(msg, s.keys.Cancel):
		return s.TapOverlay()
	case key.Matches(msg, s.keys.Jump):
		i := int(msg.String()[0] - '1')
		if i >= 0 && i < len(s.taps) {
			return s.taps[i]()
		}
	}
	return nil
}
