// Package replay stores obstacle updates in capture files so a session can
// be decoded again offline. A capture is a header followed by records:
//
//	header  "OBSR" magic, 1 byte version
//	record  1 byte kind, 4 bytes network id, 2 bytes type index,
//	        2 bytes payload length, payload
//	tick    1 byte kind (RecordTick) marking the end of a game tick
//
// Integers are big endian.
package replay

import (
	"errors"
	"fmt"

	"github.com/automoto/obstacle-sync/shared/messages"
)

const (
	magic   = "OBSR"
	version = 1

	recordHeaderSize = 1 + 4 + 2 + 2
	maxPayload       = 1<<16 - 1
)

// RecordKind is the first byte of every record. Update kinds share the
// values of messages.UpdateKind.
type RecordKind uint8

const (
	RecordFull               = RecordKind(messages.UpdateFull)
	RecordPartial            = RecordKind(messages.UpdatePartial)
	RecordRemove             = RecordKind(messages.UpdateRemove)
	RecordTick    RecordKind = 0x10
)

var (
	ErrBadHeader = errors.New("not an obstacle capture")
	ErrCorrupt   = errors.New("corrupt capture")
)

// Record is one entry of a capture: an update, or a tick boundary.
type Record struct {
	Tick   bool
	Update messages.ObstacleUpdate
}

func kindOf(u messages.ObstacleUpdate) (RecordKind, error) {
	switch u.Kind {
	case messages.UpdateFull, messages.UpdatePartial, messages.UpdateRemove:
		return RecordKind(u.Kind), nil
	default:
		return 0, fmt.Errorf("replay: cannot record update kind %d", u.Kind)
	}
}
