// internal/picker/device.go
package picker

import (
	"image/color"

	"go-hex-tactics/pkg/hexmap"
)

// Origin tells where row 0 of a device lies.
type Origin int

const (
	OriginTopLeft Origin = iota
	OriginBottomLeft
)

// Vertex is a screen-space vertex with a flat color.
type Vertex struct {
	X, Y  float32
	Color color.RGBA
}

// Device is the render target picking draws into. Triangles must be drawn without
// blending or anti-aliasing so that every covered pixel holds an exact vertex color.
type Device interface {
	Size() (w, h int)
	Origin() Origin
	Clear(c color.RGBA)
	DrawTriangles(vs []Vertex)
	ReadPixel(x, y int) color.RGBA
}

// Projector maps world positions to pixel coordinates of a w*h viewport with a
// top-left origin. ok is false for points behind the camera.
type Projector interface {
	Project(p hexmap.WorldPos, w, h int) (x, y float32, ok bool)
}
