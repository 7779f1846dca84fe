// internal/render/soft_device.go
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"go-hex-tactics/internal/picker"
	"go-hex-tactics/pkg/utils"

	"golang.org/x/image/vector"
)

// SoftDevice is a CPU picking target. It needs no GPU or window and backs the
// headless runner and the picking tests.
type SoftDevice struct {
	img  *image.RGBA
	ras  *vector.Rasterizer
	mask []uint8
}

func NewSoftDevice(w, h int) *SoftDevice {
	return &SoftDevice{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		ras: vector.NewRasterizer(w, h),
	}
}

func (d *SoftDevice) Size() (int, int) {
	b := d.img.Bounds()
	return b.Dx(), b.Dy()
}

func (d *SoftDevice) Origin() picker.Origin { return picker.OriginTopLeft }

func (d *SoftDevice) Clear(c color.RGBA) {
	draw.Draw(d.img, d.img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// DrawTriangles rasterizes runs of same-colored triangles together. Any pixel a
// run touches takes its color without blending and later runs overwrite earlier
// ones, so pixels where several hexes meet are never left as background.
func (d *SoftDevice) DrawTriangles(vs []picker.Vertex) {
	n := len(vs) / 3 * 3
	for start := 0; start < n; {
		c := vs[start].Color
		end := start + 3
		for end < n && vs[end].Color == c {
			end += 3
		}
		d.fill(vs[start:end], c)
		start = end
	}
}

func (d *SoftDevice) fill(vs []picker.Vertex, c color.RGBA) {
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for _, v := range vs {
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
	}
	w, h := d.Size()
	x0 := utils.Clamp(int(math.Floor(float64(minX))), 0, w)
	y0 := utils.Clamp(int(math.Floor(float64(minY))), 0, h)
	x1 := utils.Clamp(int(math.Ceil(float64(maxX))), 0, w)
	y1 := utils.Clamp(int(math.Ceil(float64(maxY))), 0, h)
	rw, rh := x1-x0, y1-y0
	if rw <= 0 || rh <= 0 {
		return
	}

	d.ras.Reset(rw, rh)
	ox, oy := float32(x0), float32(y0)
	for i := 0; i+2 < len(vs); i += 3 {
		d.ras.MoveTo(vs[i].X-ox, vs[i].Y-oy)
		d.ras.LineTo(vs[i+1].X-ox, vs[i+1].Y-oy)
		d.ras.LineTo(vs[i+2].X-ox, vs[i+2].Y-oy)
		d.ras.ClosePath()
	}

	if cap(d.mask) < rw*rh {
		d.mask = make([]uint8, rw*rh)
	}
	mask := &image.Alpha{Pix: d.mask[:rw*rh], Stride: rw, Rect: image.Rect(0, 0, rw, rh)}
	d.ras.DrawOp = draw.Src
	d.ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < rh; y++ {
		row := mask.Pix[y*rw : (y+1)*rw]
		for x, a := range row {
			if a > 0 {
				d.img.SetRGBA(x0+x, y0+y, c)
			}
		}
	}
}

func (d *SoftDevice) ReadPixel(x, y int) color.RGBA {
	return d.img.RGBAAt(x, y)
}

// Image exposes the picking buffer, e.g. to dump it for debugging.
func (d *SoftDevice) Image() *image.RGBA { return d.img }
