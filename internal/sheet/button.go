package sheet

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Button is a rendered control in the sheet. Style paints the whole button
// area; Separator paints the divider row under action buttons.
type Button struct {
	Label     string
	Style     lipgloss.Style
	Separator lipgloss.Style
}

// baseButton applies the shared font, colors and border color.
func baseButton(cfg Config, label string) Button {
	return Button{
		Label: label,
		Style: cfg.Font.
			Foreground(cfg.FontColor).
			Background(cfg.BackgroundColor),
		Separator: lipgloss.NewStyle().
			Foreground(cfg.BorderColor).
			Background(cfg.BackgroundColor),
	}
}

// buildButtons constructs the action buttons and the cancel button, running
// the caller's style hooks after base styling.
func buildButtons(cfg Config, labels []string) ([]Button, Button) {
	buttons := make([]Button, len(labels))
	for i, label := range labels {
		b := baseButton(cfg, label)
		if cfg.StyleFunc != nil {
			b = cfg.StyleFunc(i, label, b)
		}
		buttons[i] = b
	}

	cancel := baseButton(cfg, cfg.CancelLabel)
	if cfg.CancelStyleFunc != nil {
		cancel = cfg.CancelStyleFunc(cfg.CancelLabel, cancel)
	}
	return buttons, cancel
}

// render draws the button into exactly height rows of width cells with the
// label on the middle row.
func (b Button) render(width, height int, focused lipgloss.Style, isFocused bool) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	body := b.Style.Inline(true)
	blank := body.Render(strings.Repeat(" ", width))

	label := ansi.Truncate(b.Label, width, "…")
	labelStyle := body
	if isFocused {
		labelStyle = focused.Inherit(body)
	}
	pad := width - ansi.StringWidth(label)
	left := pad / 2
	labelLine := body.Render(strings.Repeat(" ", left)) +
		labelStyle.Render(label) +
		body.Render(strings.Repeat(" ", pad-left))

	labelRow := (height - 1) / 2
	rows := make([]string, height)
	for i := range rows {
		if i == labelRow {
			rows[i] = labelLine
		} else {
			rows[i] = blank
		}
	}
	return rows
}

// separatorRow draws the divider drawn under an action button.
func (b Button) separatorRow(width int) string {
	if width <= 0 {
		return ""
	}
	return b.Separator.Inline(true).Render(strings.Repeat("─", width))
}
