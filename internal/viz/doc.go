// Package viz draws shape boundaries on a braille terminal canvas.
//
//   - [Canvas]: braille pixel grid, each cell shaded by a color value
//   - [Fit] and [DrawCurve]: map centered boundary points onto the canvas
//   - [Normalize] and [ColormapBR]: blue-red coloring of the log-radius profile
//   - [Sparkline]: one-line bar chart of a profile
//   - [Theme]: color schemes for the interactive mixer
//
// The fit scale is returned to the caller as a [Transform]. Nothing is cached
// between calls.
package viz
