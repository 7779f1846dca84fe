// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	TPS          = 60

	// FramesPerSegment is how many ticks a unit spends walking from one tile to the next.
	// ebiten runs Update at a fixed TPS, so this is a duration independent of the display rate.
	FramesPerSegment = 40

	HexExRadius = 0.5
	MapWidth    = 12
	MapHeight   = 10
	Players     = 2

	CameraFov      = 45.0
	CameraNear     = 0.1
	CameraFar      = 100.0
	CameraZoom     = 10.0
	CameraMinZoom  = 3.0
	CameraMaxZoom  = 40.0
	CameraTilt     = 45.0
	CameraPanStep  = 1.0
	CameraDragGain = 0.1

	UnitScale   = 0.5
	StrokeWidth = 1.0

	// FlushFrames bounds how many ticks the headless runner plays.
	FlushFrames = 100000
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TileColor       = color.RGBA{70, 100, 120, 255}
	TileStroke      = color.RGBA{110, 140, 160, 255}
	SelectedColor   = color.RGBA{240, 220, 90, 255}
	PathColor       = color.RGBA{255, 255, 0, 128}
	TextColor       = color.RGBA{240, 240, 240, 255}
	PlayerColors    = []color.RGBA{
		{220, 60, 60, 255},
		{50, 100, 255, 255},
		{50, 205, 50, 255},
		{180, 50, 230, 255},
	}
)
