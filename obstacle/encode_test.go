package obstacle

import (
	"math"
	"testing"

	"github.com/automoto/obstacle-sync/shared/bitstream"
	"github.com/automoto/obstacle-sync/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePartialLayout(t *testing.T) {
	door := lookup(t, "door")

	payload, err := EncodePartial(door, PartialUpdate{
		Scale:      bitstream.MinScale,
		Destroyed:  true,
		HitEffect:  5,
		DoorOffset: 2,
	})
	require.NoError(t, err)
	// scale 00000000, destroyed 1, hit 101, offset 10, padding 00
	assert.Equal(t, []byte{0x00, 0xD8}, payload)

	crate := lookup(t, "crate_regular")
	payload, err = EncodePartial(crate, PartialUpdate{Scale: bitstream.MaxScale, HitEffect: 7})
	require.NoError(t, err)
	// scale 11111111, destroyed 0, hit 111, padding 0000
	assert.Equal(t, []byte{0xFF, 0x70}, payload)
}

func TestEncodeFullLength(t *testing.T) {
	tests := []struct {
		id    string
		u     FullUpdate
		bytes int
	}{
		{"crate_regular", FullUpdate{}, 4},
		{"window", FullUpdate{Orientation: 3}, 5},
		{"tree_oak", FullUpdate{Rotation: math.Pi / 3, Variation: 2}, 6},
		{"door", FullUpdate{HingeInit: true, Orientation: 1}, 5},
		{"door", FullUpdate{Orientation: 1}, 5},
	}

	for _, tt := range tests {
		payload, err := EncodeFull(lookup(t, tt.id), tt.u)
		require.NoError(t, err, tt.id)
		assert.Len(t, payload, tt.bytes, tt.id)
	}
}

func TestEncodeRejectsOutOfRange(t *testing.T) {
	_, err := EncodePartial(lookup(t, "crate_regular"), PartialUpdate{Scale: 1, HitEffect: 8})
	assert.Error(t, err)

	_, err = EncodeFull(lookup(t, "tree_oak"), FullUpdate{Variation: 3})
	assert.Error(t, err)
}

func TestFullRoundTrip(t *testing.T) {
	tree := lookup(t, "tree_oak")
	in := FullUpdate{
		Position:  gamemath.Vec2{X: 300.5, Y: 12.25},
		Rotation:  -math.Pi / 4,
		Variation: 1,
	}
	payload, err := EncodeFull(tree, in)
	require.NoError(t, err)

	out, err := ReadFull(bitstream.NewReader(payload), tree, true)
	require.NoError(t, err)
	assert.Equal(t, bitstream.QuantizePosition(in.Position), out.Position)
	assert.InDelta(t, in.Rotation, out.Rotation, 2*math.Pi/255)
	assert.Equal(t, gamemath.Orientation0, out.Orientation)
	assert.Equal(t, 1, out.Variation)
	assert.False(t, out.HingeInit)

	door := lookup(t, "door")
	payload, err = EncodeFull(door, FullUpdate{HingeInit: true, Orientation: 3})
	require.NoError(t, err)
	out, err = ReadFull(bitstream.NewReader(payload), door, true)
	require.NoError(t, err)
	assert.True(t, out.HingeInit)
	assert.Equal(t, gamemath.Orientation3, out.Orientation)
	assert.InDelta(t, gamemath.OrientationToRotation(3), out.Rotation, 1e-9)
}
