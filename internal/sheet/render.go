package sheet

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// dimBase is the foreground assumed for backdrop text before it is dimmed.
const dimBase = "#d0d0d0"

// View draws the sheet over background, which is clipped or padded to the
// container size. A hidden sheet returns the background untouched.
func (s *Sheet) View(background string) string {
	if s.state == Hidden {
		return background
	}

	lines := fitLines(background, s.width, s.height)
	overlay := s.overlayStyle()
	for i, line := range lines {
		lines[i] = overlay.Render(ansi.Strip(line))
	}

	y := s.geom.SheetY(s.progress)
	focused := lipgloss.NewStyle().Foreground(s.shown.FocusColor).Bold(true)
	radius := s.shown.CornerRadius
	holderRows := s.geom.Holder.H
	holderClip := func(holderRow int) int {
		if holderRow == 0 || holderRow == holderRows-1 {
			return radius
		}
		return 0
	}

	for i, b := range s.buttons {
		frame := s.geom.ButtonFrame(i, y)
		rows := b.render(frame.W, frame.H, focused, s.focus == i)
		for r, row := range rows {
			spliceRow(lines, frame.Y+r, frame.X, row, frame.W, holderClip(s.geom.Buttons[i].Y+r))
		}
	}

	// A one-row button has no room for a divider under its label.
	if s.shown.ButtonHeight >= 2 {
		for i := range s.geom.Separators {
			frame := s.geom.SeparatorFrame(i, y)
			row := s.buttons[i].separatorRow(frame.W)
			spliceRow(lines, frame.Y, frame.X, row, frame.W, holderClip(s.geom.Separators[i].Y))
		}
	}

	if s.geom.HasCancel {
		frame := s.geom.CancelFrame(y)
		rows := s.cancel.render(frame.W, frame.H, focused, s.focus == len(s.buttons))
		for r, row := range rows {
			clip := 0
			if r == 0 || r == len(rows)-1 {
				clip = radius
			}
			spliceRow(lines, frame.Y+r, frame.X, row, frame.W, clip)
		}
	}

	return strings.Join(lines, "\n")
}

// overlayStyle blends the backdrop foreground toward the overlay color by
// the current presentation progress.
func (s *Sheet) overlayStyle() lipgloss.Style {
	amount := clamp01(s.progress * s.shown.OverlayOpacity)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(blend(dimBase, string(s.shown.OverlayColor), amount)))
}

// blend mixes two hex colors; t=0 yields from and t=1 yields to. Unparseable
// colors fall back to from.
func blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	return a.BlendRgb(b, clamp01(t)).Clamped().Hex()
}

// fitLines splits content into exactly height lines of exactly width cells.
func fitLines(content string, width, height int) []string {
	src := strings.Split(content, "\n")
	lines := make([]string, height)
	for i := range lines {
		line := ""
		if i < len(src) {
			line = src[i]
		}
		lines[i] = cutRight(line, width)
	}
	return lines
}

func padLine(line string, width int) string {
	if w := ansi.StringWidth(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}

// spliceRow replaces width cells of lines[y] starting at column x with seg.
// clip cells at both ends of seg are left showing the underlying line. Rows
// and columns outside the container are dropped. A wide glyph cut by either
// edge of the splice is replaced by spaces so the row keeps its width.
func spliceRow(lines []string, y, x int, seg string, width, clip int) {
	if y < 0 || y >= len(lines) || width <= 0 {
		return
	}
	clip = min(max(clip, 0), width/2)
	if clip > 0 {
		seg = cutLeft(seg, clip)
		x += clip
		width -= 2 * clip
	}
	if width <= 0 {
		return
	}

	base := lines[y]
	total := ansi.StringWidth(base)
	if x >= total || x+width <= 0 {
		return
	}
	if x < 0 {
		seg = cutLeft(seg, -x)
		width += x
		x = 0
	}
	width = min(width, total-x)

	lines[y] = cutRight(base, x) + cutRight(seg, width) + cutLeft(base, x+width)
}

// cutRight keeps the first n cells of s, padding with spaces where a wide
// glyph straddles the cut.
func cutRight(s string, n int) string {
	return padLine(ansi.Truncate(s, n, ""), n)
}

// cutLeft drops the first n cells of s, padding with spaces where a wide
// glyph straddles the cut.
func cutLeft(s string, n int) string {
	want := max(ansi.StringWidth(s)-n, 0)
	out := ansi.TruncateLeft(s, n, "")
	if ansi.StringWidth(out) > want {
		out = ansi.TruncateLeft(s, n+1, "")
	}
	if w := ansi.StringWidth(out); w < want {
		out = strings.Repeat(" ", want-w) + out
	}
	return out
}
