// Package viz plays the atom sequence in a terminal.
//
// The package rasterizes a [scene.DisplayList] onto a coloured braille canvas
// and drives it with Bubble Tea:
//
//   - [Player]: Bubble Tea model that feeds clock ticks to the playback driver
//   - [Canvas]: Braille-based pixel canvas, one foreground and background per cell
//   - [Rasterize]: paints a display list onto a canvas
//   - Theme selection with 3 built-in colour schemes
//
// # Key Bindings
//
//	Q / Esc - Quit
//
// Playback is passive; frames change on the driver's interval only.
package viz
