package replay

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/automoto/obstacle-sync/shared/messages"
)

// Writer appends records to a capture.
type Writer struct {
	w       *bufio.Writer
	closer  io.Closer
	records int
	ticks   int
}

// NewWriter writes the capture header to w.
func NewWriter(w io.Writer) (*Writer, error) {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(magic); err != nil {
		return nil, err
	}
	if err := bw.WriteByte(version); err != nil {
		return nil, err
	}
	return &Writer{w: bw}, nil
}

// Create creates the capture file at path. Close closes the file.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create capture: %w", err)
	}
	w, err := NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("create capture: %w", err)
	}
	w.closer = f
	return w, nil
}

func (w *Writer) WriteUpdate(u messages.ObstacleUpdate) error {
	kind, err := kindOf(u)
	if err != nil {
		return err
	}
	if len(u.Payload) > maxPayload {
		return fmt.Errorf("replay: payload of %d bytes is too large", len(u.Payload))
	}

	var hdr [recordHeaderSize]byte
	hdr[0] = byte(kind)
	binary.BigEndian.PutUint32(hdr[1:5], uint32(u.ID))
	binary.BigEndian.PutUint16(hdr[5:7], u.Type)
	binary.BigEndian.PutUint16(hdr[7:9], uint16(len(u.Payload)))

	if _, err := w.w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.w.Write(u.Payload); err != nil {
		return err
	}
	w.records++
	return nil
}

// WriteTick marks the end of a game tick.
func (w *Writer) WriteTick() error {
	if err := w.w.WriteByte(byte(RecordTick)); err != nil {
		return err
	}
	w.ticks++
	return nil
}

// Records returns the number of updates written.
func (w *Writer) Records() int { return w.records }

func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Close flushes the capture and closes the file opened by Create.
func (w *Writer) Close() error {
	err := w.w.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
