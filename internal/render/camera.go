// internal/render/camera.go
package render

import (
	"math"

	"go-hex-tactics/internal/config"
	"go-hex-tactics/pkg/hexmap"
	"go-hex-tactics/pkg/utils"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera orbiting a point of the map plane.
// Angles are in degrees; Pos is the negated point the camera looks at.
type Camera struct {
	XAngle float32
	ZAngle float32
	Pos    hexmap.WorldPos
	Zoom   float32
}

func NewCamera() *Camera {
	return &Camera{
		XAngle: config.CameraTilt,
		Zoom:   config.CameraZoom,
	}
}

// LookAt centers the view on p.
func (c *Camera) LookAt(p hexmap.WorldPos) {
	c.Pos = p.Scale(-1)
}

// Matrix returns the model-view-projection matrix for a w*h viewport.
func (c *Camera) Matrix(w, h int) mgl32.Mat4 {
	aspect := float32(4.0 / 3.0)
	if w > 0 && h > 0 {
		aspect = float32(w) / float32(h)
	}
	m := mgl32.Perspective(mgl32.DegToRad(config.CameraFov), aspect, config.CameraNear, config.CameraFar)
	m = m.Mul4(mgl32.Translate3D(0, 0, -c.Zoom))
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(-c.XAngle)))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(-c.ZAngle)))
	m = m.Mul4(mgl32.Translate3D(c.Pos.X, c.Pos.Y, c.Pos.Z))
	return m
}

// Project maps p to pixel coordinates with a top-left origin.
func (c *Camera) Project(p hexmap.WorldPos, w, h int) (x, y float32, ok bool) {
	clip := c.Matrix(w, h).Mul4x1(mgl32.Vec4{p.X, p.Y, p.Z, 1})
	if clip[3] <= 0 {
		return 0, 0, false
	}
	ndcX := clip[0] / clip[3]
	ndcY := clip[1] / clip[3]
	x = (ndcX + 1) / 2 * float32(w)
	y = (1 - ndcY) / 2 * float32(h)
	return x, y, true
}

// Move pans the camera one step towards angle degrees, relative to its rotation.
func (c *Camera) Move(angle float32) {
	rad := float64(mgl32.DegToRad(c.ZAngle - angle))
	c.Pos.X -= float32(math.Cos(rad)) * config.CameraPanStep
	c.Pos.Y -= float32(math.Sin(rad)) * config.CameraPanStep
}

// Rotate turns the camera around the vertical axis and tilts it, keeping the
// tilt between looking straight down and almost horizontal.
func (c *Camera) Rotate(dz, dx float32) {
	c.ZAngle = utils.NormalizeDegrees(c.ZAngle + dz)
	c.XAngle = mgl32.Clamp(c.XAngle+dx, 0, 80)
}

// ZoomBy moves the camera closer (negative) or further (positive).
func (c *Camera) ZoomBy(d float32) {
	c.Zoom = mgl32.Clamp(c.Zoom+d, config.CameraMinZoom, config.CameraMaxZoom)
}
