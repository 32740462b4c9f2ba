package main

import (
	"github.com/gdamore/tcell/v2"

	"raycaster/bitmap"
)

// upperHalf draws the top pixel of a cell in the foreground colour and the
// bottom pixel in the background.
const upperHalf = '▀'

func cellColor(c bitmap.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blit copies b onto the screen at column x0 and row y0, two pixel rows per
// terminal row.
func blit(s tcell.Screen, b *bitmap.Bitmap, x0, y0 int) {
	for row := 0; row*2 < b.Height(); row++ {
		for x := 0; x < b.Width(); x++ {
			top, _ := b.At(x, row*2)
			bottom, ok := b.At(x, row*2+1)
			if !ok {
				bottom = bitmap.Black
			}
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			s.SetContent(x0+x, y0+row, upperHalf, nil, style)
		}
	}
}

// drawText writes a single line of text starting at x, y.
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
