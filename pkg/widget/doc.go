// Package widget renders a deck through the carousel engine as a bubbletea
// component.
//
// The widget owns the terminal side of the contract described in package
// carousel: it translates mouse events into pointer calls, key presses into
// navigation, window resizes into viewport updates, and drives the engine's
// Flush barrier from a frame tick while work is pending. Rendering draws
// every slide as a lipgloss box on a single strip and crops the strip to
// the viewport at the engine's scroll offset, so a mid-drag offset shows
// slides partially scrolled exactly like the geometry says.
package widget
