package replay

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/automoto/obstacle-sync/shared/messages"
	"github.com/leap-fish/necs/esync"
)

// Reader reads records from a capture.
type Reader struct {
	r *bufio.Reader
}

// NewReader checks the capture header.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)
	var hdr [len(magic) + 1]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	if string(hdr[:len(magic)]) != magic {
		return nil, ErrBadHeader
	}
	if hdr[len(magic)] != version {
		return nil, fmt.Errorf("%w: version %d", ErrBadHeader, hdr[len(magic)])
	}
	return &Reader{r: br}, nil
}

// Next returns the next record, or io.EOF after the last one.
func (r *Reader) Next() (Record, error) {
	kind, err := r.r.ReadByte()
	if err != nil {
		return Record{}, err
	}
	if RecordKind(kind) == RecordTick {
		return Record{Tick: true}, nil
	}
	switch RecordKind(kind) {
	case RecordFull, RecordPartial, RecordRemove:
	default:
		return Record{}, fmt.Errorf("%w: record kind %#x", ErrCorrupt, kind)
	}

	var hdr [recordHeaderSize - 1]byte
	if _, err := io.ReadFull(r.r, hdr[:]); err != nil {
		return Record{}, truncated(err)
	}
	u := messages.ObstacleUpdate{
		Kind: messages.UpdateKind(kind),
		ID:   esync.NetworkId(binary.BigEndian.Uint32(hdr[0:4])),
		Type: binary.BigEndian.Uint16(hdr[4:6]),
	}
	if n := binary.BigEndian.Uint16(hdr[6:8]); n > 0 {
		u.Payload = make([]byte, n)
		if _, err := io.ReadFull(r.r, u.Payload); err != nil {
			return Record{}, truncated(err)
		}
	}
	return Record{Update: u}, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: %w", ErrCorrupt, err)
}
