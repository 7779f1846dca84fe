// internal/picker/picker.go
package picker

import (
	"image"

	"go-hex-tactics/internal/scene"
	"go-hex-tactics/pkg/hexmap"
	"go-hex-tactics/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Picker resolves screen pixels to tiles and units by rendering a frame in which
// every pickable hex is flat-shaded with a color encoding its identity.
type Picker struct {
	geom         *hexmap.Geom
	device       Device
	tiles        *Mesh
	units        *Mesh
	unitsVersion uint64
	unitsBuilt   bool
	scratch      []Vertex
	log          *logrus.Entry
}

// New builds the static tile mesh for a map of the given size.
func New(geom *hexmap.Geom, device Device, size hexmap.MapSize) (*Picker, error) {
	tiles, err := BuildTileMesh(geom, size)
	if err != nil {
		return nil, err
	}
	return &Picker{
		geom:   geom,
		device: device,
		tiles:  tiles,
		units:  &Mesh{},
		log:    logger.For("picker"),
	}, nil
}

// SetDevice swaps the render target, e.g. after the window was resized.
func (p *Picker) SetDevice(d Device) {
	p.device = d
}

func (p *Picker) Device() Device {
	return p.device
}

// UpdateUnits regenerates the unit mesh from the scene index.
func (p *Picker) UpdateUnits(ix *scene.Index) {
	m, skipped := BuildUnitMesh(p.geom, ix)
	for _, id := range skipped {
		p.log.WithField("node", id).Warn("unit id does not fit the picking buffer, node not pickable")
	}
	p.units = m
	p.unitsVersion = ix.Version()
	p.unitsBuilt = true
}

// Render draws the encoded scene into the device.
func (p *Picker) Render(cam Projector, ix *scene.Index) {
	if !p.unitsBuilt || p.unitsVersion != ix.Version() {
		p.UpdateUnits(ix)
	}
	w, h := p.device.Size()
	p.device.Clear(Background)
	p.draw(cam, p.tiles, w, h)
	p.draw(cam, p.units, w, h)
}

func (p *Picker) draw(cam Projector, m *Mesh, w, h int) {
	p.scratch = p.scratch[:0]
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		var tri [3]Vertex
		visible := true
		for k := 0; k < 3; k++ {
			x, y, ok := cam.Project(m.Vertices[i+k], w, h)
			if !ok {
				visible = false
				break
			}
			tri[k] = Vertex{X: x, Y: y, Color: m.Colors[i+k]}
		}
		if visible {
			p.scratch = append(p.scratch, tri[:]...)
		}
	}
	if len(p.scratch) > 0 {
		p.device.DrawTriangles(p.scratch)
	}
}

// Pick renders the encoded scene with the player's camera and decodes the pixel
// under mouse (top-left origin). It stalls on a synchronous readback, so call it
// at most once per input event.
func (p *Picker) Pick(cam Projector, ix *scene.Index, mouse image.Point) Result {
	w, h := p.device.Size()
	if mouse.X < 0 || mouse.Y < 0 || mouse.X >= w || mouse.Y >= h {
		return Nothing
	}
	p.Render(cam, ix)
	y := mouse.Y
	if p.device.Origin() == OriginBottomLeft {
		y = h - 1 - mouse.Y
	}
	px := p.device.ReadPixel(mouse.X, y)
	res, err := Decode(px)
	if err != nil {
		p.log.WithError(err).Panic("picking target holds a color no mesh wrote")
	}
	p.log.WithFields(logrus.Fields{
		"x":      mouse.X,
		"y":      mouse.Y,
		"result": res.String(),
	}).Debug("pick")
	return res
}
