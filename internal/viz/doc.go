// Package viz renders the analysis bundle in the terminal.
//
// The bundle is turned into a two-column set of [Panel]s, each one either a
// line chart drawn with asciigraph or a scatter of wrapped angles drawn on a
// Braille [Canvas]:
//
//   - [BuildPanels]: derive every panel from a pipeline result
//   - [RenderPanel]: draw one panel with a [Theme] and colour palette
//   - [Viewer]: Bubble Tea pager over the panels
//
// # Key Bindings
//
//	j/k, ↑/↓  - Move through the panel list
//	Enter     - Open the selected panel
//	h/l, ←/→  - Previous / next panel
//	z / Z     - Zoom into the later half of the window / reset
//	T         - Cycle color themes
//	q, Esc    - Back / quit
package viz
