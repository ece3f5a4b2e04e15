package sheet

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StyleFunc post-processes an action button after base styling. The returned
// button is the one rendered.
type StyleFunc func(index int, label string, b Button) Button

// CancelStyleFunc post-processes the cancel button after base styling.
type CancelStyleFunc func(label string, b Button) Button

// Config holds the presentation parameters of a sheet. Sizes are in cells.
type Config struct {
	Font            lipgloss.Style
	FontColor       lipgloss.Color
	ButtonHeight    int
	BackgroundColor lipgloss.Color
	VerticalSpacing int
	BottomMargin    int
	HorizontalInset int
	BorderColor     lipgloss.Color
	CornerRadius    int
	StyleFunc       StyleFunc

	CancelEnabled   bool
	CancelLabel     string
	CancelStyleFunc CancelStyleFunc

	OpenDuration  time.Duration
	CloseDuration time.Duration

	OverlayColor   lipgloss.Color
	OverlayOpacity float64

	CloseOnTap bool

	// FocusColor highlights the button that has keyboard focus.
	FocusColor lipgloss.Color
}

// Defaults.
const (
	DefaultFontColor       = "#808080"
	DefaultButtonHeight    = 3
	DefaultBackgroundColor = "#d3d3d3"
	DefaultVerticalSpacing = 1
	DefaultBottomMargin    = 1
	DefaultHorizontalInset = 2
	DefaultBorderColor     = "#808080"
	DefaultCornerRadius    = 1
	DefaultCancelLabel     = "Cancel"
	DefaultDuration        = 200 * time.Millisecond
	DefaultOverlayColor    = "#000000"
	DefaultOverlayOpacity  = 0.5
	DefaultFocusColor      = "#5f87ff"
)

// DefaultConfig returns the stock presentation parameters.
func DefaultConfig() Config {
	return Config{
		Font:            lipgloss.NewStyle(),
		FontColor:       lipgloss.Color(DefaultFontColor),
		ButtonHeight:    DefaultButtonHeight,
		BackgroundColor: lipgloss.Color(DefaultBackgroundColor),
		VerticalSpacing: DefaultVerticalSpacing,
		BottomMargin:    DefaultBottomMargin,
		HorizontalInset: DefaultHorizontalInset,
		BorderColor:     lipgloss.Color(DefaultBorderColor),
		CornerRadius:    DefaultCornerRadius,
		CancelEnabled:   true,
		CancelLabel:     DefaultCancelLabel,
		OpenDuration:    DefaultDuration,
		CloseDuration:   DefaultDuration,
		OverlayColor:    lipgloss.Color(DefaultOverlayColor),
		OverlayOpacity:  DefaultOverlayOpacity,
		CloseOnTap:      true,
		FocusColor:      lipgloss.Color(DefaultFocusColor),
	}
}

func (c Config) params(actionCount, width, height int) Params {
	return Params{
		ActionCount:     actionCount,
		CancelEnabled:   c.CancelEnabled,
		ButtonHeight:    max(c.ButtonHeight, 0),
		VerticalSpacing: max(c.VerticalSpacing, 0),
		BottomMargin:    c.BottomMargin,
		HorizontalInset: max(c.HorizontalInset, 0),
		ContainerWidth:  width,
		ContainerHeight: height,
	}
}
