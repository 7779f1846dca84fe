// internal/render/gpu/device.go
package gpu

import (
	"image"
	"image/color"

	"go-hex-tactics/internal/picker"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices keeps every index of a DrawTriangles call inside uint16.
const maxBatchVertices = 65535 / 3 * 3

// newWhite returns the source texture for flat-colored triangles. Vertices sample
// its inner pixel so nothing bleeds in from the image edge.
func newWhite() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Device is an offscreen GPU picking target.
type Device struct {
	target *ebiten.Image
	white  *ebiten.Image
	vs     []ebiten.Vertex
	is     []uint16
	opts   ebiten.DrawTrianglesOptions
}

func NewDevice(w, h int) *Device {
	return &Device{
		target: ebiten.NewImage(w, h),
		white:  newWhite(),
		opts: ebiten.DrawTrianglesOptions{
			Blend:     ebiten.BlendCopy,
			AntiAlias: false,
		},
	}
}

func (d *Device) Size() (int, int) {
	b := d.target.Bounds()
	return b.Dx(), b.Dy()
}

func (d *Device) Origin() picker.Origin { return picker.OriginTopLeft }

func (d *Device) Clear(c color.RGBA) {
	d.target.Fill(c)
}

func (d *Device) DrawTriangles(vs []picker.Vertex) {
	n := len(vs) / 3 * 3
	for start := 0; start < n; start += maxBatchVertices {
		end := min(start+maxBatchVertices, n)
		d.vs, d.is = d.vs[:0], d.is[:0]
		for i, v := range vs[start:end] {
			d.vs = append(d.vs, ebiten.Vertex{
				DstX:   v.X,
				DstY:   v.Y,
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(v.Color.R) / 255,
				ColorG: float32(v.Color.G) / 255,
				ColorB: float32(v.Color.B) / 255,
				ColorA: 1,
			})
			d.is = append(d.is, uint16(i))
		}
		d.target.DrawTriangles(d.vs, d.is, d.white, &d.opts)
	}
}

func (d *Device) ReadPixel(x, y int) color.RGBA {
	return color.RGBAModel.Convert(d.target.At(x, y)).(color.RGBA)
}

// Image exposes the picking buffer, drawn by the picking debug view.
func (d *Device) Image() *ebiten.Image { return d.target }

// Deallocate releases the GPU texture, e.g. before replacing it on resize.
func (d *Device) Deallocate() { d.target.Deallocate() }
