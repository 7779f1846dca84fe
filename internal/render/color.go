// internal/render/color.go
package render

import (
	"image/color"

	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/core"
)

// Palette holds the colors of the visible frame.
type Palette struct {
	Background  color.RGBA
	Tile        color.RGBA
	TileStroke  color.RGBA
	Selected    color.RGBA
	Path        color.RGBA
	Text        color.RGBA
	Players     []color.RGBA
	StrokeWidth float32
}

func DefaultPalette() Palette {
	return Palette{
		Background:  config.BackgroundColor,
		Tile:        config.TileColor,
		TileStroke:  config.TileStroke,
		Selected:    config.SelectedColor,
		Path:        config.PathColor,
		Text:        config.TextColor,
		Players:     config.PlayerColors,
		StrokeWidth: config.StrokeWidth,
	}
}

// PlayerColor cycles through the palette for players beyond its length.
func (p Palette) PlayerColor(id core.PlayerID) color.RGBA {
	if len(p.Players) == 0 {
		return p.Tile
	}
	return p.Players[int(id)%len(p.Players)]
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
