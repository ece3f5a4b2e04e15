package sheet

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// frameInterval is the animation tick rate (roughly 60fps).
const frameInterval = time.Second / 60

// frameMsg advances the running animation of the sheet with the matching ID.
// Frames from a superseded animation carry an old generation and are dropped.
type frameMsg struct {
	id  uuid.UUID
	gen int
	at  time.Time
}

// animation linearly moves the presentation progress from one value to
// another over a duration, then runs done exactly once.
type animation struct {
	gen      int
	start    time.Time
	duration time.Duration
	from, to float64
	done     func() tea.Cmd
}

// progressAt returns the interpolated progress and whether the animation has
// reached its end at time t.
func (a *animation) progressAt(t time.Time) (float64, bool) {
	if a.duration <= 0 {
		return a.to, true
	}
	frac := float64(t.Sub(a.start)) / float64(a.duration)
	if frac >= 1 {
		return a.to, true
	}
	frac = clamp01(frac)
	return a.from + (a.to-a.from)*frac, false
}

// animate starts a new animation, superseding any running one, and returns
// the command that delivers its first frame.
func (s *Sheet) animate(duration time.Duration, to float64, done func() tea.Cmd) tea.Cmd {
	s.gen++
	s.anim = &animation{
		gen:      s.gen,
		start:    s.now(),
		duration: duration,
		from:     s.progress,
		to:       to,
		done:     done,
	}
	if duration <= 0 {
		return s.frameCmd(0)
	}
	return s.frameCmd(frameInterval)
}

func (s *Sheet) frameCmd(delay time.Duration) tea.Cmd {
	id, gen, now := s.id, s.gen, s.now
	if delay <= 0 {
		return func() tea.Msg {
			return frameMsg{id: id, gen: gen, at: now()}
		}
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return frameMsg{id: id, gen: gen, at: t}
	})
}

// handleFrame applies one animation frame.
func (s *Sheet) handleFrame(msg frameMsg) tea.Cmd {
	if msg.id != s.id || s.anim == nil || msg.gen != s.anim.gen {
		return nil
	}
	p, finished := s.anim.progressAt(msg.at)
	s.progress = p
	s.syncHitMap()
	if !finished {
		return s.frameCmd(frameInterval)
	}

	done := s.anim.done
	s.anim = nil
	if done == nil {
		return nil
	}
	return done()
}
