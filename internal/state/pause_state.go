// internal/state/pause_state.go
package state

import (
	"go-hex-tactics/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the previous state: it is still drawn but never updated,
// so no event advances while paused.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	overlay       *ui.Overlay
}

func NewPauseState(sm *StateMachine, prevState State, overlay *ui.Overlay) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		overlay:       overlay,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Exit() {}

func (s *PauseState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	s.overlay.DrawBanner(screen, "PAUSED")
}
