// Package ui provides the interactive terminal viewer for tailback.
//
// The viewer is a Bubble Tea program. A reader goroutine owned by the app
// package appends decoded records to a state.Store; the model polls the store
// on a tick, filters the snapshot by threshold and logger, renders each
// record through render.Renderer and shows the result in a scrolling
// viewport.
//
// # Key Bindings
//
//   - t/d/i/w/x: show trace, debug, info, warn or error and above
//   - f: toggle follow mode (stick to the newest record)
//   - /: filter by logger name (substring, case-insensitive); esc clears
//   - j/k, ctrl+d/ctrl+u, g/G: scroll
//   - T: cycle theme
//   - ?: toggle help
//   - q, e or ctrl+c: quit
//
// Theme and threshold changes are written to the prefs file so the next run
// starts where this one left off.
package ui
