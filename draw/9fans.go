package draw

import (
	draw "9fans.net/go/draw"
)

const (
	Black = draw.Black
	White = draw.White
)

var drawInit = draw.Init

type (
	Color       = draw.Color
	drawDisplay = draw.Display
	drawFont    = draw.Font
)
