// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"

	"go-hex-tactics/internal/app"
	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/defs"
	"go-hex-tactics/internal/render/gpu"
	"go-hex-tactics/internal/state"
	"go-hex-tactics/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	scenarioPath := flag.String("scenario", "", "scenario JSON file (built-in map when empty)")
	tps := flag.Int("tps", config.TPS, "animation ticks per second")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	if *pprofAddr != "" {
		go func() {
			log.WithError(http.ListenAndServe(*pprofAddr, nil)).Warn("pprof server stopped")
		}()
	}

	sc := defs.DefaultScenario()
	if *scenarioPath != "" {
		var err error
		if sc, err = defs.LoadScenario(*scenarioPath); err != nil {
			log.WithError(err).Fatal("cannot load scenario")
		}
	}

	device := gpu.NewDevice(config.ScreenWidth, config.ScreenHeight)
	vis, err := app.New(sc, device)
	if err != nil {
		log.WithError(err).Fatal("cannot start visualizer")
	}

	sm := state.NewStateMachine()
	play, err := state.NewPlayState(sm, vis, device)
	if err != nil {
		log.WithError(err).Fatal("cannot start play state")
	}
	sm.SetState(play)

	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Hex Tactics")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.WithError(err).Fatal("game loop failed")
	}
}
