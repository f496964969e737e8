package replay

import (
	"errors"
	"io"

	"github.com/automoto/obstacle-sync/shared/messages"
	"github.com/rs/zerolog"
)

// Source is anything that hands out obstacle updates in arrival order.
type Source interface {
	DrainUpdates() []messages.ObstacleUpdate
}

// Player feeds a capture back one recorded tick per DrainUpdates call.
type Player struct {
	r     *Reader
	log   zerolog.Logger
	done  bool
	err   error
	ticks int
}

func NewPlayer(r *Reader, log zerolog.Logger) *Player {
	return &Player{r: r, log: log.With().Str("component", "replay").Logger()}
}

// DrainUpdates returns the updates of the next recorded tick.
func (p *Player) DrainUpdates() []messages.ObstacleUpdate {
	if p.done {
		return nil
	}
	var out []messages.ObstacleUpdate
	for {
		rec, err := p.r.Next()
		if err != nil {
			p.done = true
			if !errors.Is(err, io.EOF) {
				p.err = err
				p.log.Error().Err(err).Int("tick", p.ticks).Msg("capture ended early")
			}
			return out
		}
		if rec.Tick {
			p.ticks++
			return out
		}
		out = append(out, rec.Update)
	}
}

// Done reports whether the capture is exhausted.
func (p *Player) Done() bool { return p.done }

// Err returns the read error that ended playback, if any.
func (p *Player) Err() error { return p.err }

// Ticks returns how many recorded ticks have been played.
func (p *Player) Ticks() int { return p.ticks }

// Recorder wraps a Source and writes everything it hands out to a capture,
// one tick per DrainUpdates call. A write error stops recording but never
// the source.
type Recorder struct {
	source Source
	w      *Writer
	log    zerolog.Logger
	failed bool
}

func NewRecorder(source Source, w *Writer, log zerolog.Logger) *Recorder {
	return &Recorder{source: source, w: w, log: log.With().Str("component", "replay").Logger()}
}

func (r *Recorder) DrainUpdates() []messages.ObstacleUpdate {
	updates := r.source.DrainUpdates()
	if r.failed {
		return updates
	}
	for _, u := range updates {
		if err := r.w.WriteUpdate(u); err != nil {
			r.fail(err)
			return updates
		}
	}
	if err := r.w.WriteTick(); err != nil {
		r.fail(err)
	}
	return updates
}

func (r *Recorder) fail(err error) {
	r.failed = true
	r.log.Error().Err(err).Int("records", r.w.Records()).Msg("recording stopped")
}
