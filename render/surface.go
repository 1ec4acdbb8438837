package render

import "github.com/gdamore/tcell/v2"

// Surface is the part of tcell.Screen the renderer needs
type Surface interface {
	Size() (width, height int)
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}
