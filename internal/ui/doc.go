// Package ui provides the demo screen that hosts an action sheet.
//
// Model draws a themed backdrop (header, event history, key hints) and owns
// a sheet.Sheet. Every message is offered to the sheet first so its
// animation frames and resizes are never lost; keyboard input reaches the
// screen only while the sheet is hidden.
//
// The sheet carries four actions whose callbacks return messages handled
// by Model.Update:
//
//   - Cycle theme: switch theme and save it to the prefs file
//   - Add timestamp: append the current time to the history
//   - Toggle close on tap: flip CloseOnTap for the next presentation
//   - Quit: exit the program; drawn in the theme's danger color
package ui
