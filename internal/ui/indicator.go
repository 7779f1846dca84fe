// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Indicator is a circle that swells briefly after each pulse.
type Indicator struct {
	X, Y      float32
	Radius    float32
	LastPulse time.Time
}

func NewIndicator(x, y, radius float32) *Indicator {
	return &Indicator{X: x, Y: y, Radius: radius}
}

// Pulse restarts the swell animation, e.g. when an event gets committed.
func (i *Indicator) Pulse() {
	i.LastPulse = time.Now()
}

func (i *Indicator) Draw(screen *ebiten.Image, c color.Color) {
	elapsed := time.Since(i.LastPulse).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, c, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
