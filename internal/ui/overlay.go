// internal/ui/overlay.go
package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"go-hex-tactics/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	fontSize    = 14
	lineSpacing = 18
	bannerSize  = 40
	margin      = 10
)

// Status is what the overlay reports about the session.
type Status struct {
	Turn     int
	Player   core.PlayerID
	Pending  int
	Selected string
	LastPick string
}

// Lines formats the status, one entry per overlay row.
func (s Status) Lines() []string {
	lines := []string{
		fmt.Sprintf("turn %d, player %d", s.Turn, s.Player),
		fmt.Sprintf("events pending: %d", s.Pending),
	}
	if s.Selected != "" {
		lines = append(lines, "selected: "+s.Selected)
	}
	if s.LastPick != "" {
		lines = append(lines, "pick: "+s.LastPick)
	}
	return lines
}

// Overlay draws status text and the pipeline indicator over the scene.
type Overlay struct {
	face      *text.GoTextFace
	banner    *text.GoTextFace
	color     color.RGBA
	indicator *Indicator
	players   []color.RGBA
}

func NewOverlay(c color.RGBA, players []color.RGBA) (*Overlay, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load overlay font: %w", err)
	}
	return &Overlay{
		face:      &text.GoTextFace{Source: src, Size: fontSize},
		banner:    &text.GoTextFace{Source: src, Size: bannerSize},
		color:     c,
		indicator: NewIndicator(0, 0, 8),
		players:   players,
	}, nil
}

// Pulse animates the indicator.
func (o *Overlay) Pulse() {
	o.indicator.Pulse()
}

func (o *Overlay) Draw(screen *ebiten.Image, s Status) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(margin, margin)
	op.ColorScale.ScaleWithColor(o.color)
	op.LineSpacing = lineSpacing
	for _, line := range s.Lines() {
		text.Draw(screen, line, o.face, op)
		op.GeoM.Translate(0, lineSpacing)
	}

	w := screen.Bounds().Dx()
	o.indicator.X = float32(w - margin*2)
	o.indicator.Y = float32(margin * 2)
	c := color.RGBA{80, 80, 80, 255}
	if len(o.players) > 0 {
		c = o.players[int(s.Player)%len(o.players)]
	}
	o.indicator.Draw(screen, c)
}

// DrawBanner dims the screen and centers msg on it.
func (o *Overlay) DrawBanner(screen *ebiten.Image, msg string) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, 128}, false)
	tw, th := text.Measure(msg, o.banner, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(b.Dx())-tw)/2, (float64(b.Dy())-th)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, o.banner, op)
}
