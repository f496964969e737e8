package replay

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/obstacle-sync/shared/messages"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	ticks [][]messages.ObstacleUpdate
}

func (s *fixedSource) DrainUpdates() []messages.ObstacleUpdate {
	if len(s.ticks) == 0 {
		return nil
	}
	out := s.ticks[0]
	s.ticks = s.ticks[1:]
	return out
}

var sample = [][]messages.ObstacleUpdate{
	{
		messages.ObstacleFull{ID: 1, Type: 5, Payload: []byte{0x00, 0x10, 0x20, 0x30, 0x40}}.Update(),
		messages.ObstaclePartial{ID: 1, Type: 5, Payload: []byte{0x72, 0x40}}.Update(),
	},
	{},
	{
		messages.ObstaclePartial{ID: 1, Type: 5, Payload: []byte{0x72, 0x80}}.Update(),
		messages.ObstacleRemove{ID: 1}.Update(),
	},
}

func record(t *testing.T, ticks [][]messages.ObstacleUpdate) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	rec := NewRecorder(&fixedSource{ticks: ticks}, w, zerolog.Nop())
	for range ticks {
		rec.DrainUpdates()
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestRecordAndPlay(t *testing.T) {
	data := record(t, sample)
	assert.Equal(t, []byte("OBSR\x01"), data[:5])

	r, err := NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	p := NewPlayer(r, zerolog.Nop())

	for i, want := range sample {
		got := p.DrainUpdates()
		if len(want) == 0 {
			assert.Empty(t, got, "tick %d", i)
			continue
		}
		assert.Equal(t, want, got, "tick %d", i)
	}
	assert.Empty(t, p.DrainUpdates())
	assert.True(t, p.Done())
	assert.NoError(t, p.Err())
	assert.Equal(t, 3, p.Ticks())
}

func TestRecordLayout(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.WriteUpdate(messages.ObstaclePartial{ID: 0x01020304, Type: 0x0506, Payload: []byte{0xAA}}.Update()))
	require.NoError(t, w.WriteTick())
	require.NoError(t, w.Flush())

	assert.Equal(t, []byte{
		'O', 'B', 'S', 'R', 1,
		2, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x00, 0x01, 0xAA,
		0x10,
	}, buf.Bytes())
	assert.Equal(t, 1, w.Records())
}

func TestReaderRejectsBadInput(t *testing.T) {
	_, err := NewReader(bytes.NewReader([]byte("NOPE\x01")))
	assert.ErrorIs(t, err, ErrBadHeader)

	_, err = NewReader(bytes.NewReader([]byte("OBSR\x09")))
	assert.ErrorIs(t, err, ErrBadHeader)

	_, err = NewReader(bytes.NewReader([]byte("OB")))
	assert.ErrorIs(t, err, ErrBadHeader)

	r, err := NewReader(bytes.NewReader([]byte("OBSR\x01\x07")))
	require.NoError(t, err)
	_, err = r.Next()
	assert.ErrorIs(t, err, ErrCorrupt)

	r, err = NewReader(bytes.NewReader([]byte("OBSR\x01\x01\x00\x00\x00\x01\x00\x00\x00\x04\xAA")))
	require.NoError(t, err)
	_, err = r.Next()
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestPlayerStopsOnCorruptTail(t *testing.T) {
	data := record(t, sample[:1])
	data = append(data, 0x02, 0x00)

	r, err := NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	p := NewPlayer(r, zerolog.Nop())

	assert.Len(t, p.DrainUpdates(), 2)
	assert.Empty(t, p.DrainUpdates())
	assert.True(t, p.Done())
	assert.ErrorIs(t, p.Err(), ErrCorrupt)
}

func TestWriterRejects(t *testing.T) {
	w, err := NewWriter(io.Discard)
	require.NoError(t, err)

	assert.Error(t, w.WriteUpdate(messages.ObstacleUpdate{Kind: 9}))
	assert.Error(t, w.WriteUpdate(messages.ObstacleUpdate{Kind: messages.UpdateFull, Payload: make([]byte, 1<<16)}))
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.obsr")
	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.WriteUpdate(messages.ObstacleRemove{ID: 3}.Update()))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r, err := NewReader(f)
	require.NoError(t, err)
	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, messages.ObstacleRemove{ID: 3}.Update(), rec.Update)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}
