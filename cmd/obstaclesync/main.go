package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/automoto/obstacle-sync/config"
	"github.com/automoto/obstacle-sync/logging"
	"github.com/automoto/obstacle-sync/network"
	"github.com/automoto/obstacle-sync/obstacle"
	"github.com/automoto/obstacle-sync/replay"
	"github.com/automoto/obstacle-sync/shared/obstacledefs"
	"github.com/automoto/obstacle-sync/systems"
	"github.com/leap-fish/necs/esync"
	"github.com/rs/zerolog"
)

func main() {
	configDir := flag.String("config", ".", "directory holding obstaclesync.json")
	replayPath := flag.String("replay", "", "play a capture instead of connecting to a server")
	recordPath := flag.String("record", "", "write the live update stream to this capture (overrides replay.record)")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *recordPath != "" {
		config.C.Replay.Record = *recordPath
	}
	log := logging.Setup(config.C.LogLevel, config.C.LogFormat)

	if err := run(log, *replayPath); err != nil {
		log.Error().Err(err).Msg("obstacle sync failed")
		os.Exit(1)
	}
}

// source is the update feed of a run plus its shutdown hook.
type source struct {
	systems.UpdateSource
	done  func() bool
	close func() error
}

func run(log zerolog.Logger, replayPath string) error {
	defs, err := obstacledefs.Load(config.C.Definitions.Path)
	if err != nil {
		return err
	}
	log.Info().Int("definitions", defs.Len()).Str("path", config.C.Definitions.Path).Msg("definitions loaded")

	var src source
	if replayPath != "" {
		src, err = openReplay(log, replayPath)
	} else {
		src, err = connect(log, defs.Len())
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := src.close(); err != nil {
			log.Warn().Err(err).Msg("close")
		}
	}()

	e, sync := systems.NewObstacleWorld(systems.WorldOptions{
		Config:      config.C,
		Definitions: defs,
		Source:      src,
		Log:         log,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(config.C.Sync.TickRate))
	defer ticker.Stop()

loop:
	for {
		select {
		case <-sigChan:
			log.Info().Msg("shutting down")
			break loop
		case <-ticker.C:
			e.Update()
			if sync.Err() != nil || src.done() {
				break loop
			}
		}
	}

	stats := sync.Stats()
	log.Info().
		Int("full", stats.Full).
		Int("partial", stats.Partial).
		Int("removed", stats.Removed).
		Int("created", stats.Created).
		Msg("sync finished")
	logSnapshots(log, systems.ObstacleSnapshots(e.World))

	return sync.Err()
}

func openReplay(log zerolog.Logger, path string) (source, error) {
	f, err := os.Open(path)
	if err != nil {
		return source{}, err
	}
	r, err := replay.NewReader(f)
	if err != nil {
		f.Close()
		return source{}, err
	}
	player := replay.NewPlayer(r, log)
	log.Info().Str("path", path).Msg("replaying capture")
	return source{
		UpdateSource: player,
		done:         player.Done,
		close:        f.Close,
	}, nil
}

func connect(log zerolog.Logger, definitions int) (source, error) {
	client := network.NewClient(log, definitions)
	client.Connect(config.C.Server.Address, config.C.Server.Version, config.C.Server.PlayerName)

	src := source{
		UpdateSource: client,
		done:         func() bool { return client.State() == network.StateError },
		close: func() error {
			client.Disconnect()
			return client.LastError()
		},
	}

	path := config.C.Replay.Record
	if path == "" {
		return src, nil
	}
	w, err := replay.Create(path)
	if err != nil {
		client.Disconnect()
		return source{}, err
	}
	log.Info().Str("path", path).Msg("recording capture")
	closeClient := src.close
	src.UpdateSource = replay.NewRecorder(client, w, log)
	src.close = func() error {
		werr := w.Close()
		if err := closeClient(); err != nil {
			return err
		}
		return werr
	}
	return src, nil
}

func logSnapshots(log zerolog.Logger, snaps map[esync.NetworkId]obstacle.Snapshot) {
	ids := make([]esync.NetworkId, 0, len(snaps))
	for id := range snaps {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		s := snaps[id]
		ev := log.Debug().
			Uint("id", uint(id)).
			Str("type", s.DefinitionID).
			Stringer("lifecycle", s.Lifecycle).
			Float64("x", s.Position.X).
			Float64("y", s.Position.Y).
			Float64("scale", s.Scale).
			Bool("dead", s.Dead)
		if s.Door != nil {
			ev = ev.Int("doorOffset", int(s.Door.Offset))
		}
		ev.Msg("obstacle")
	}
}
