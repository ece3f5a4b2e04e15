// Package app is the composition root of the action sheet demo.
//
// Run wires the pieces together and blocks until the program exits:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()   Sheet parameters, log file and level
//	       ├─────> logger.Setup()  Append-only log file (the screen is taken)
//	       ├─────> prefs.Load()    Last selected theme
//	       └─────> ui.Run()        Bubble Tea program (blocks)
//
// A missing config or prefs file is not an error. A malformed config file
// is fatal; a malformed prefs file is logged and replaced by defaults.
package app
