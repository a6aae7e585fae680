// Package viz provides terminal-based visualization for field simulations.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live view that owns a solver and steps it per frame
//   - [FieldChart], [EnergyChart]: one-shot plots for non-interactive output
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial state
//	+/-   - Double/halve steps per frame
//	?     - Show help overlay
//	Q     - Quit
package viz
