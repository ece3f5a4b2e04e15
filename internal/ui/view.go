package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderMain draws the backdrop the sheet slides over: a header, the event
// history and a footer of key hints.
func (m Model) renderMain() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)

	closeOnTap := "off"
	if m.sheet.Config().CloseOnTap {
		closeOnTap = "on"
	}
	header := m.bar(styles.Header,
		fmt.Sprintf("Action sheet  theme: %s  close on tap: %s", m.theme.Name, closeOnTap))

	var hints []string
	for _, b := range m.keys.ShortHelp() {
		hints = append(hints, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	footer := m.bar(styles.Footer, strings.Join(hints, "  "))

	bodyRows := max(m.height-2, 0)
	body := make([]string, 0, bodyRows)
	if len(m.history) == 0 {
		body = append(body, bg.FillLine(bg.Render(fit(" Press space to open the action sheet.", m.width), styles.MutedText), m.width))
	} else {
		start := max(len(m.history)-bodyRows, 0)
		for _, entry := range m.history[start:] {
			body = append(body, bg.FillLine(bg.Render(fit(" "+entry, m.width), styles.Text), m.width))
		}
	}
	for len(body) < bodyRows {
		body = append(body, bg.FillLine("", m.width))
	}
	if len(body) > bodyRows {
		body = body[:bodyRows]
	}

	lines := append([]string{header}, body...)
	if m.height > 1 {
		lines = append(lines, footer)
	}
	return strings.Join(lines, "\n")
}

// bar renders a one-row header or footer; lipgloss wraps text wider than the
// style, so it is cut first.
func (m Model) bar(style lipgloss.Style, text string) string {
	inner := max(m.width-style.GetHorizontalFrameSize(), 0)
	return style.Width(m.width).MaxWidth(m.width).Render(fit(text, inner))
}

func fit(text string, width int) string {
	return ansi.Truncate(text, width, "…")
}
