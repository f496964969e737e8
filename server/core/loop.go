package core

import (
	"time"

	"github.com/rs/zerolog"
)

type GameLoop struct {
	server   *Server
	tickRate int
	log      zerolog.Logger
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int, log zerolog.Logger) *GameLoop {
	g := &GameLoop{
		server:   server,
		tickRate: tickRate,
		log:      log,
		stopChan: make(chan struct{}),
	}
	return g
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.log.Info().Int("tickRate", g.tickRate).Msg("game loop started")

	for {
		select {
		case <-g.stopChan:
			g.log.Info().Msg("game loop stopped")
			return
		case <-ticker.C:
			g.server.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}
