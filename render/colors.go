package render

import "image/color"

var (
	White      = color.RGBA{255, 255, 255, 255}
	LightGreen = color.RGBA{144, 238, 144, 255}
	Red        = color.RGBA{255, 80, 80, 255}

	ObstacleColor = color.RGBA{0, 255, 255, 255}
	DoorColor     = color.RGBA{255, 200, 0, 255}
	ResidueColor  = color.RGBA{100, 100, 100, 255}
	LeafColor     = color.RGBA{255, 140, 0, 255}
)
