// cmd/replay/main.go
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"go-hex-tactics/internal/app"
	"go-hex-tactics/internal/config"
	"go-hex-tactics/internal/defs"
	"go-hex-tactics/internal/render"
	"go-hex-tactics/pkg/hexmap"
	"go-hex-tactics/pkg/logger"

	"github.com/sirupsen/logrus"
)

// replay plays a scenario's commands through the visualizer pipeline without a
// window, then picks one pixel with the software device.
func main() {
	scenarioPath := flag.String("scenario", "", "scenario JSON file (built-in map when empty)")
	width := flag.Int("w", config.ScreenWidth, "picking target width")
	height := flag.Int("h", config.ScreenHeight, "picking target height")
	x := flag.Int("x", -1, "pick x (center when negative)")
	y := flag.Int("y", -1, "pick y (center when negative)")
	tileX := flag.Int("tile-x", -1, "look at this tile instead of the map center")
	tileY := flag.Int("tile-y", -1, "look at this tile instead of the map center")
	dump := flag.String("dump", "", "write the picking buffer to this PNG file")
	flag.Parse()

	logger.Init()
	log := logger.For("replay")

	sc := defs.DefaultScenario()
	if *scenarioPath != "" {
		var err error
		if sc, err = defs.LoadScenario(*scenarioPath); err != nil {
			log.WithError(err).Fatal("cannot load scenario")
		}
	}

	device := render.NewSoftDevice(*width, *height)
	vis, err := app.New(sc, device)
	if err != nil {
		log.WithError(err).Fatal("cannot start visualizer")
	}

	frames := 0
	for i, cmd := range sc.Commands {
		if err := vis.Apply(cmd); err != nil {
			log.WithError(err).WithField("command", i).Fatal("command rejected")
		}
		n, err := vis.Pipeline.Flush(config.FlushFrames)
		frames += n
		if err != nil {
			log.WithError(err).WithField("command", i).Fatal("commit failed")
		}
	}
	log.WithFields(logrus.Fields{
		"commands": len(sc.Commands),
		"frames":   frames,
		"units":    len(vis.State.Units),
	}).Info("replay finished")

	if *tileX >= 0 && *tileY >= 0 {
		vis.Camera.LookAt(vis.Geom.TileToWorld(hexmap.MapPos{X: *tileX, Y: *tileY}))
	}
	mouse := image.Pt(*x, *y)
	if mouse.X < 0 || mouse.Y < 0 {
		mouse = image.Pt(*width/2, *height/2)
	}
	res := vis.Pick(mouse)
	fmt.Println(vis.PickReport())
	log.WithField("result", res.String()).Debug("picked")

	if *dump != "" {
		if err := writePNG(*dump, device.Image()); err != nil {
			log.WithError(err).Fatal("cannot dump picking buffer")
		}
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
