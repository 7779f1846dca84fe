// internal/render/gpu/scene_renderer.go
package gpu

import (
	"image/color"

	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/core"
	"go-hex-tactics/internal/picker"
	"go-hex-tactics/internal/render"
	"go-hex-tactics/internal/scene"
	"go-hex-tactics/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneRenderer draws the visible frame: tiles, the move being shown, unit nodes
// and the selection marker.
type SceneRenderer struct {
	geom    *hexmap.Geom
	size    hexmap.MapSize
	palette render.Palette
	white   *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewSceneRenderer(geom *hexmap.Geom, size hexmap.MapSize, palette render.Palette) *SceneRenderer {
	return &SceneRenderer{
		geom:    geom,
		size:    size,
		palette: palette,
		white:   newWhite(),
		vs:      make([]ebiten.Vertex, 0, 36),
		is:      make([]uint16, 0, 36),
	}
}

func (r *SceneRenderer) Draw(screen *ebiten.Image, cam picker.Projector, ix *scene.Index, st *core.State, path []hexmap.MapPos) {
	screen.Fill(r.palette.Background)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	for _, pos := range r.size.Positions() {
		center := r.geom.TileToWorld(pos)
		path, ok := r.hexPath(cam, center, 1, w, h)
		if !ok {
			continue
		}
		r.fill(screen, &path, r.palette.Tile)
		r.stroke(screen, &path, r.palette.TileStroke, r.palette.StrokeWidth)
	}

	r.drawPath(screen, cam, path, w, h)

	for _, n := range ix.Nodes() {
		id, isUnit := n.ID.UnitID()
		if !isUnit {
			if n.ID == scene.MarkerNode {
				if outline, ok := r.hexPath(cam, n.Pos, 1, w, h); ok {
					r.stroke(screen, &outline, r.palette.Selected, r.palette.StrokeWidth*3)
				}
			}
			continue
		}
		c := r.palette.Tile
		if u, found := st.FindUnit(id); found {
			c = r.palette.PlayerColor(u.PlayerID)
		}
		path, ok := r.hexPath(cam, n.Pos, config.UnitScale, w, h)
		if !ok {
			continue
		}
		r.fill(screen, &path, c)
		r.stroke(screen, &path, render.DarkenColor(c), r.palette.StrokeWidth)
	}
}

func (r *SceneRenderer) hexPath(cam picker.Projector, center hexmap.WorldPos, scale float32, w, h int) (vector.Path, bool) {
	var path vector.Path
	for i := 0; i < hexmap.DirCount; i++ {
		p := center.Add(r.geom.HexCorner(i).Scale(scale))
		x, y, ok := cam.Project(p, w, h)
		if !ok {
			return path, false
		}
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return path, true
}

func (r *SceneRenderer) drawPath(screen *ebiten.Image, cam picker.Projector, tiles []hexmap.MapPos, w, h int) {
	if len(tiles) < 2 {
		return
	}
	var path vector.Path
	for i, pos := range tiles {
		x, y, ok := cam.Project(r.geom.TileToWorld(pos), w, h)
		if !ok {
			return
		}
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	r.stroke(screen, &path, r.palette.Path, r.palette.StrokeWidth*2)
}

func (r *SceneRenderer) fill(target *ebiten.Image, path *vector.Path, c color.RGBA) {
	r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	r.paint(target, c)
}

func (r *SceneRenderer) stroke(target *ebiten.Image, path *vector.Path, c color.RGBA, width float32) {
	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	})
	r.paint(target, c)
}

func (r *SceneRenderer) paint(target *ebiten.Image, c color.RGBA) {
	for i := range r.vs {
		r.vs[i].SrcX = 1
		r.vs[i].SrcY = 1
		r.vs[i].ColorR = float32(c.R) / 255
		r.vs[i].ColorG = float32(c.G) / 255
		r.vs[i].ColorB = float32(c.B) / 255
		r.vs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.vs, r.is, r.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
