// Package sheet implements a slide-up action sheet for Bubble Tea programs.
//
// # Overview
//
// A Sheet owns an ordered list of actions, a dimming overlay and a stack of
// buttons anchored to the bottom of its container. The host registers actions
// with AddAction, calls Show, and forwards messages to Update while the sheet
// is Active. View composites the sheet over whatever the host renders.
//
// # Presentation States
//
//	Hidden ──Show()──> Presenting ──open done──> Visible
//	  ^                                             │
//	  └──────close done────── Dismissing <──Dismiss()┘
//
// Show is a no-op unless Hidden. Dismiss during Presenting is remembered and
// runs as soon as the sheet becomes Visible. Taps and keys are only handled
// while Visible. Animation frames carry the sheet ID and a generation, so a
// completion never runs twice or after it has been superseded.
//
// # Layout
//
// Compute is a pure function from Params to Geometry:
//
//	sheetHeight = buttonHeight*(n+cancel) + (cancel ? spacing : 0)
//	openY       = containerHeight - (sheetHeight + bottomMargin)
//	closedY     = containerHeight
//
// Action button i sits at i*buttonHeight inside the holder. Every action but
// the last carries a one-row separator on its bottom edge.
//
// # Input
//
// Mouse presses are resolved through a HitMap registered in z-order: overlay,
// sheet body, buttons. Keyboard focus moves over the actions and the cancel
// button; see DefaultKeyMap.
//
// # Styling
//
// Buttons receive base styling from Config, then Config.StyleFunc and
// Config.CancelStyleFunc may replace them. The returned Button is rendered.
package sheet
