package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/obstacle-sync/config"
	"github.com/automoto/obstacle-sync/logging"
	"github.com/automoto/obstacle-sync/replay"
	"github.com/automoto/obstacle-sync/server/core"
	"github.com/automoto/obstacle-sync/shared/obstacledefs"
)

func main() {
	configDir := flag.String("config", ".", "directory holding obstaclesync.json")
	port := flag.Uint("port", 7373, "Server port")
	name := flag.String("name", "Obstacle Server", "Server display name")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: server [flags] capture.obsr")
		os.Exit(2)
	}

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.Setup(config.C.LogLevel, config.C.LogFormat)

	defs, err := obstacledefs.Load(config.C.Definitions.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load obstacle definitions")
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open capture")
	}
	r, err := replay.NewReader(f)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read capture")
	}

	server := core.NewServer(core.Options{
		Name:        *name,
		Version:     *version,
		TickRate:    config.C.Sync.TickRate,
		Definitions: defs.Len(),
	}, replay.NewPlayer(r, log), log)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info().Msg("shutting down server")
		server.Stop()
		f.Close()
		os.Exit(0)
	}()

	log.Info().
		Str("name", *name).
		Uint("port", *port).
		Int("tickRate", config.C.Sync.TickRate).
		Str("version", *version).
		Str("capture", flag.Arg(0)).
		Msg("starting obstacle server")
	if err := server.Start(*port); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
