// Package viz renders bead sort traces in the terminal.
//
// The package implements a replay player using the Bubble Tea framework:
//
//   - [Player]: steps through recorded frames at a fixed frame rate
//   - [RenderRack]: the bead rack with the active row or rod marked
//   - [RenderBars]: scaled columns for inputs too tall for the rack
//   - [Canvas]: Braille-based minimap of the rack
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from the first frame
//	T     - Cycle color themes
//	?     - Show help overlay
//	[]    - Step backward/forward
package viz
