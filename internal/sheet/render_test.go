package sheet

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func dottedBackground(width, height int) string {
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(".", width)
	}
	return strings.Join(rows, "\n")
}

// presentedABC returns a visible sheet with actions A, B and C in a 40x30
// container using the default configuration: open at row 16, buttons at
// rows 16, 19 and 22, cancel at row 26.
func presentedABC(t *testing.T) *Sheet {
	t.Helper()
	s := newTestSheet(t, DefaultConfig())
	s.AddAction("A", nil)
	s.AddAction("B", nil)
	s.AddAction("C", nil)
	present(t, s)
	return s
}

func TestView_HiddenReturnsBackground(t *testing.T) {
	s := newTestSheet(t, DefaultConfig())
	bg := dottedBackground(40, 30)
	if got := s.View(bg); got != bg {
		t.Fatalf("View while hidden changed the background")
	}
}

func TestView_FitsContainer(t *testing.T) {
	s := presentedABC(t)
	lines := strings.Split(s.View("short"), "\n")
	if len(lines) != 30 {
		t.Fatalf("lines = %d, want 30", len(lines))
	}
	for i, line := range lines {
		if w := len([]rune(line)); w != 40 {
			t.Fatalf("line %d width = %d, want 40: %q", i, w, line)
		}
	}
}

func TestView_ButtonsAndSeparators(t *testing.T) {
	s := presentedABC(t)
	lines := strings.Split(s.View(dottedBackground(40, 30)), "\n")

	labels := map[int]string{17: "A", 20: "B", 23: "C", 27: "Cancel"}
	for row, label := range labels {
		if !strings.Contains(lines[row], label) {
			t.Fatalf("row %d = %q, want label %q", row, lines[row], label)
		}
	}

	var separators []int
	for i, line := range lines {
		if strings.Contains(line, "─") {
			separators = append(separators, i)
		}
	}
	if len(separators) != 2 || separators[0] != 18 || separators[1] != 21 {
		t.Fatalf("separator rows = %v, want [18 21]", separators)
	}

	if got := lines[18]; !strings.HasPrefix(got, "..") || !strings.HasSuffix(got, "..") {
		t.Fatalf("separator row = %q, want inset of two cells each side", got)
	}
	if lines[29] != strings.Repeat(".", 40) {
		t.Fatalf("bottom margin row = %q, want backdrop", lines[29])
	}
	if lines[25] != strings.Repeat(".", 40) {
		t.Fatalf("spacing row = %q, want backdrop", lines[25])
	}
}

func TestView_CornerRadiusClipsFirstAndLastRows(t *testing.T) {
	s := presentedABC(t)
	lines := strings.Split(s.View(dottedBackground(40, 30)), "\n")

	for _, row := range []int{16, 24, 26, 28} {
		if lines[row][2] != '.' || lines[row][3] != ' ' {
			t.Fatalf("row %d = %q, want clipped corner at column 2", row, lines[row])
		}
	}
	if lines[17][2] != ' ' {
		t.Fatalf("row 17 = %q, want unclipped button edge", lines[17])
	}
}

func TestView_OpeningSheetStartsOffscreen(t *testing.T) {
	s := newTestSheet(t, DefaultConfig())
	s.AddAction("A", nil)
	s.Show()

	view := s.View(dottedBackground(40, 30))
	if strings.Contains(view, "A") || strings.Contains(view, "Cancel") {
		t.Fatalf("sheet visible before the open animation ran:\n%s", view)
	}
}

func TestView_LongLabelsAreTruncated(t *testing.T) {
	s := newTestSheet(t, DefaultConfig())
	s.SetSize(12, 10)
	s.AddAction(strings.Repeat("x", 50), nil)
	present(t, s)

	for i, line := range strings.Split(s.View(""), "\n") {
		if w := len([]rune(line)); w != 12 {
			t.Fatalf("line %d width = %d, want 12: %q", i, w, line)
		}
	}
}

func TestView_OverflowIsClipped(t *testing.T) {
	s := newTestSheet(t, DefaultConfig())
	s.SetSize(20, 6)
	for i := 0; i < 5; i++ {
		s.AddAction("Go", nil)
	}
	present(t, s)

	lines := strings.Split(s.View(""), "\n")
	if len(lines) != 6 {
		t.Fatalf("lines = %d, want 6", len(lines))
	}
}

func TestButtonRender(t *testing.T) {
	cfg := DefaultConfig()
	b := baseButton(cfg, "Go")

	rows := b.render(10, 3, cfg.Font, false)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[1] != "    Go    " {
		t.Fatalf("label row = %q, want centered label", rows[1])
	}
	if rows[2] != strings.Repeat(" ", 10) {
		t.Fatalf("bottom row = %q, want blank", rows[2])
	}
	if got := b.separatorRow(10); got != strings.Repeat("─", 10) {
		t.Fatalf("separatorRow = %q", got)
	}

	if rows := b.render(0, 3, cfg.Font, false); rows != nil {
		t.Fatalf("zero-width render = %q, want nil", rows)
	}
}

func TestView_OneRowButtonsHaveNoSeparators(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ButtonHeight = 1
	s := newTestSheet(t, cfg)
	s.AddAction("A", nil)
	s.AddAction("B", nil)
	present(t, s)

	view := s.View(dottedBackground(40, 30))
	if strings.Contains(view, "─") {
		t.Fatalf("separator drawn over one-row buttons:\n%s", view)
	}
	if !strings.Contains(view, "A") || !strings.Contains(view, "B") {
		t.Fatalf("labels missing:\n%s", view)
	}
}

func TestView_WideGlyphBackgroundKeepsWidth(t *testing.T) {
	s := presentedABC(t)
	rows := make([]string, 30)
	for i := range rows {
		rows[i] = strings.Repeat("漢", 20)
	}

	lines := strings.Split(s.View(strings.Join(rows, "\n")), "\n")
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 40 {
			t.Fatalf("line %d width = %d, want 40: %q", i, w, line)
		}
	}
	if got := ansi.Strip(lines[20]); !strings.HasPrefix(got, "漢 ") {
		t.Fatalf("row 20 = %q, want button starting at column 2", got)
	}
}

func TestBlend(t *testing.T) {
	if got := blend("#ffffff", "#000000", 0); got != "#ffffff" {
		t.Fatalf("blend t=0 = %q, want #ffffff", got)
	}
	if got := blend("#ffffff", "#000000", 1); got != "#000000" {
		t.Fatalf("blend t=1 = %q, want #000000", got)
	}
	if got := blend("#d0d0d0", "not-a-color", 0.5); got != "#d0d0d0" {
		t.Fatalf("blend with bad color = %q, want fallback", got)
	}
}

func TestSpliceRow(t *testing.T) {
	lines := []string{"0123456789"}
	spliceRow(lines, 0, 3, "abcd", 4, 0)
	if lines[0] != "012abcd789" {
		t.Fatalf("splice = %q", lines[0])
	}

	lines = []string{"0123456789"}
	spliceRow(lines, 0, 3, "abcd", 4, 1)
	if lines[0] != "0123bc6789" {
		t.Fatalf("clipped splice = %q", lines[0])
	}

	lines = []string{"0123456789"}
	spliceRow(lines, 0, 8, "abcd", 4, 0)
	if lines[0] != "01234567ab" {
		t.Fatalf("overflow splice = %q", lines[0])
	}

	lines = []string{"0123456789"}
	spliceRow(lines, 0, -2, "abcd", 4, 0)
	if lines[0] != "cd23456789" {
		t.Fatalf("negative column splice = %q", lines[0])
	}

	lines = []string{"0123456789"}
	spliceRow(lines, 5, 0, "abcd", 4, 0)
	if lines[0] != "0123456789" {
		t.Fatalf("out-of-range row changed line: %q", lines[0])
	}
}

func TestSpliceRow_WideGlyphs(t *testing.T) {
	cases := []struct {
		name  string
		base  string
		x     int
		seg   string
		width int
		clip  int
		want  string
	}{
		{"glyph cut on the right", "漢字漢", 2, "x", 1, 0, "漢x 漢"},
		{"glyph cut on the left", "漢字漢字漢字", 1, "xxxx", 4, 0, " xxxx 字漢字"},
		{"aligned", "漢字漢", 2, "ab", 2, 0, "漢ab漢"},
		{"clipped segment", "漢字漢字", 1, "漢字漢", 6, 1, "漢 字 字"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines := []string{tc.base}
			spliceRow(lines, 0, tc.x, tc.seg, tc.width, tc.clip)
			if lines[0] != tc.want {
				t.Fatalf("spliceRow = %q, want %q", lines[0], tc.want)
			}
			if got, want := ansi.StringWidth(lines[0]), ansi.StringWidth(tc.base); got != want {
				t.Fatalf("width = %d, want %d", got, want)
			}
		})
	}
}
