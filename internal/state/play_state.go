// internal/state/play_state.go
package state

import (
	"fmt"
	"image"

	"go-hex-tactics/internal/app"
	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/event"
	"go-hex-tactics/internal/render"
	"go-hex-tactics/internal/render/gpu"
	"go-hex-tactics/internal/ui"
	"go-hex-tactics/pkg/logger"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

var _ State = (*PlayState)(nil)

// Camera pan directions for Camera.Move, in degrees.
const (
	panRight = 0
	panDown  = 90
	panLeft  = 180
	panUp    = 270
)

// Picking debug view placement and brightness.
const (
	pickingViewScale = 0.25
	pickingViewGain  = 16
	margin           = 10
)

// PlayState shows the session and turns player input into commands.
type PlayState struct {
	sm       *StateMachine
	vis      *app.Visualizer
	device   *gpu.Device
	renderer *gpu.SceneRenderer
	overlay  *ui.Overlay

	dragging     bool
	dragX, dragY int
	showPicking  bool
	log          *logrus.Entry
}

func NewPlayState(sm *StateMachine, vis *app.Visualizer, device *gpu.Device) (*PlayState, error) {
	palette := render.DefaultPalette()
	overlay, err := ui.NewOverlay(palette.Text, palette.Players)
	if err != nil {
		return nil, err
	}
	s := &PlayState{
		sm:       sm,
		vis:      vis,
		device:   device,
		renderer: gpu.NewSceneRenderer(vis.Geom, vis.State.MapSize, palette),
		overlay:  overlay,
		log:      logger.For("play"),
	}
	vis.Dispatcher.SubscribeAll(event.ListenerFunc(func(event.Event) {
		s.overlay.Pulse()
	}), event.Committed...)
	return s, nil
}

func (s *PlayState) Enter() {}

func (s *PlayState) Exit() {}

func (s *PlayState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s, s.overlay))
		return nil
	}

	s.updateCamera()
	if err := s.handleInput(); err != nil {
		return err
	}

	if err := s.vis.Update(); err != nil {
		s.log.WithError(err).Fatal("scene and game state diverged")
	}
	return nil
}

func (s *PlayState) updateCamera() {
	cam := s.vis.Camera
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cam.Move(panUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cam.Move(panDown)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cam.Move(panLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cam.Move(panRight)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		cam.ZoomBy(float32(-dy))
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if s.dragging {
			cam.Rotate(float32(x-s.dragX)*config.CameraDragGain, float32(y-s.dragY)*config.CameraDragGain)
		}
		s.dragging = true
		s.dragX, s.dragY = x, y
	} else {
		s.dragging = false
	}
}

func (s *PlayState) handleInput() error {
	cursor := image.Pt(ebiten.CursorPosition())
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.showPicking = !s.showPicking
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		report := s.vis.PickReport()
		if err := clipboard.WriteAll(report); err != nil {
			s.log.WithError(err).Warn("clipboard unavailable")
		} else {
			s.log.WithField("report", report).Info("pick copied")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := s.vis.EndTurn(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := s.vis.CreateUnitAt(cursor); err != nil {
			return err
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := s.vis.Click(cursor); err != nil {
			return err
		}
	}
	return nil
}

// resize keeps the picking target the size of the screen.
func (s *PlayState) resize(w, h int) {
	if dw, dh := s.vis.Picker.Device().Size(); dw == w && dh == h {
		return
	}
	s.device.Deallocate()
	s.device = gpu.NewDevice(w, h)
	s.vis.Resize(s.device)
	s.log.WithFields(logrus.Fields{"w": w, "h": h}).Debug("picking target resized")
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	s.resize(b.Dx(), b.Dy())

	s.renderer.Draw(screen, s.vis.Camera, s.vis.Scene, s.vis.State, s.vis.ActivePath())
	if s.showPicking {
		s.drawPicking(screen)
	}
	s.overlay.Draw(screen, s.status())
}

// drawPicking shows the encoded picking frame in a corner of the screen.
func (s *PlayState) drawPicking(screen *ebiten.Image) {
	s.vis.Picker.Render(s.vis.Camera, s.vis.Scene)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pickingViewScale, pickingViewScale)
	b := screen.Bounds()
	op.GeoM.Translate(float64(b.Dx())*(1-pickingViewScale)-margin, float64(b.Dy())*(1-pickingViewScale)-margin)
	// Raw ids are dark; brighten them so tiles can be told apart.
	op.ColorScale.Scale(pickingViewGain, pickingViewGain, 60, 1)
	screen.DrawImage(s.device.Image(), op)
}

func (s *PlayState) status() ui.Status {
	st := ui.Status{
		Turn:    s.vis.Core.Turn(),
		Player:  s.vis.Core.CurrentPlayer(),
		Pending: s.vis.Pipeline.Len(),
	}
	if id, ok := s.vis.Selected(); ok {
		if u, found := s.vis.State.FindUnit(id); found {
			st.Selected = u.String()
		} else {
			st.Selected = fmt.Sprintf("unit#%d", id)
		}
	}
	if res, ok := s.vis.LastPick(); ok {
		st.LastPick = res.String()
	}
	return st
}
