package render

import "github.com/gdamore/tcell/v2"

// Cell is one grid position of the render buffer. Rune 0 means empty
type Cell struct {
	Rune  rune
	Style tcell.Style
}
