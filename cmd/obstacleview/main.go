package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automoto/obstacle-sync/config"
	"github.com/automoto/obstacle-sync/fonts"
	"github.com/automoto/obstacle-sync/logging"
	"github.com/automoto/obstacle-sync/replay"
	"github.com/automoto/obstacle-sync/scenes"
	"github.com/automoto/obstacle-sync/shared/obstacledefs"
	"github.com/automoto/obstacle-sync/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Viewer.Width, config.C.Viewer.Height
}

func main() {
	configDir := flag.String("config", ".", "directory holding obstaclesync.json")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: obstacleview [-config dir] capture.obsr")
		os.Exit(2)
	}

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.Setup(config.C.LogLevel, config.C.LogFormat)

	if path := config.C.Viewer.FontPath; path != "" {
		for name, size := range map[fonts.FontName]float64{fonts.HUD: 14, fonts.Label: 10} {
			if err := fonts.LoadFontFile(name, path, size); err != nil {
				log.Warn().Err(err).Msg("using the built-in font")
			}
		}
	}

	defs, err := obstacledefs.Load(config.C.Definitions.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load obstacle definitions")
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open capture")
	}
	defer f.Close()
	r, err := replay.NewReader(f)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read capture")
	}

	p, err := systems.InitPersistence("obstaclesync", log)
	if err != nil {
		log.Warn().Err(err).Msg("viewer settings will not be saved")
	}

	scene := scenes.NewViewerScene(flag.Arg(0), replay.NewPlayer(r, log), defs, p, log)

	ebiten.SetWindowSize(config.C.Viewer.Width, config.C.Viewer.Height)
	ebiten.SetWindowTitle("obstacleview")
	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.Fatal().Err(err).Msg("viewer stopped")
	}
}
