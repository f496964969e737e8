// Package bitstream reads and writes the bit-packed fields of the obstacle
// update stream. Fields are packed back to back with no padding; a payload
// is padded with zero bits to a whole byte only at its end.
package bitstream

import (
	"bytes"
	"fmt"
	"math"

	"github.com/automoto/obstacle-sync/shared/gamemath"
	"github.com/icza/bitio"
)

// Field widths and ranges shared by both ends of the connection.
const (
	MinScale  = 0.25
	MaxScale  = 2.0
	ScaleBits = 8

	MaxPosition  = 1024.0
	PositionBits = 16

	RotationBits    = 8
	OrientationBits = 2
	VariationBits   = 3
	HitEffectBits   = 3
)

// Reader decodes fields from one payload.
type Reader struct {
	r    *bitio.Reader
	read int
}

func NewReader(payload []byte) *Reader {
	return &Reader{r: bitio.NewReader(bytes.NewReader(payload))}
}

// BitsRead returns how many bits have been consumed so far.
func (r *Reader) BitsRead() int {
	return r.read
}

func (r *Reader) ReadBits(n uint8) (uint64, error) {
	v, err := r.r.ReadBits(n)
	if err != nil {
		return 0, fmt.Errorf("read %d bits at bit %d: %w", n, r.read, err)
	}
	r.read += int(n)
	return v, nil
}

func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadBits(1)
	return v == 1, err
}

// ReadFloat reads an n-bit value quantized over [min, max].
func (r *Reader) ReadFloat(min, max float64, n uint8) (float64, error) {
	v, err := r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	return dequantize(v, min, max, n), nil
}

func (r *Reader) ReadScale() (float64, error) {
	return r.ReadFloat(MinScale, MaxScale, ScaleBits)
}

func (r *Reader) ReadPosition() (gamemath.Vec2, error) {
	x, err := r.ReadFloat(0, MaxPosition, PositionBits)
	if err != nil {
		return gamemath.Vec2{}, err
	}
	y, err := r.ReadFloat(0, MaxPosition, PositionBits)
	if err != nil {
		return gamemath.Vec2{}, err
	}
	return gamemath.Vec2{X: x, Y: y}, nil
}

// ReadRotation reads a continuous angle in [-pi, pi].
func (r *Reader) ReadRotation() (float64, error) {
	return r.ReadFloat(-math.Pi, math.Pi, RotationBits)
}

func (r *Reader) ReadOrientation() (gamemath.Orientation, error) {
	v, err := r.ReadBits(OrientationBits)
	return gamemath.Orientation(v), err
}

func (r *Reader) ReadVariation() (int, error) {
	v, err := r.ReadBits(VariationBits)
	return int(v), err
}

// Writer encodes fields into a payload. The first error is kept and
// reported by Bytes; later writes are skipped.
type Writer struct {
	buf bytes.Buffer
	w   *bitio.Writer
	err error
}

func NewWriter() *Writer {
	w := &Writer{}
	w.w = bitio.NewWriter(&w.buf)
	return w
}

func (w *Writer) WriteBits(v uint64, n uint8) {
	if w.err != nil {
		return
	}
	w.err = w.w.WriteBits(v, n)
}

func (w *Writer) WriteBool(b bool) {
	var v uint64
	if b {
		v = 1
	}
	w.WriteBits(v, 1)
}

func (w *Writer) WriteFloat(x, min, max float64, n uint8) {
	w.WriteBits(quantize(x, min, max, n), n)
}

func (w *Writer) WriteScale(scale float64) {
	w.WriteFloat(scale, MinScale, MaxScale, ScaleBits)
}

func (w *Writer) WritePosition(p gamemath.Vec2) {
	w.WriteFloat(p.X, 0, MaxPosition, PositionBits)
	w.WriteFloat(p.Y, 0, MaxPosition, PositionBits)
}

func (w *Writer) WriteRotation(radians float64) {
	w.WriteFloat(radians, -math.Pi, math.Pi, RotationBits)
}

func (w *Writer) WriteOrientation(o gamemath.Orientation) {
	w.WriteBits(uint64(o%4), OrientationBits)
}

func (w *Writer) WriteVariation(v int) {
	w.WriteBits(uint64(v), VariationBits)
}

// Bytes flushes the pending bits, zero padded to a byte, and returns the
// payload. The writer must not be used afterwards.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if err := w.w.Close(); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

func maxValue(n uint8) float64 {
	return float64(uint64(1)<<n - 1)
}

func quantize(x, min, max float64, n uint8) uint64 {
	t := (x - min) / (max - min)
	t = math.Max(0, math.Min(1, t))
	return uint64(math.Round(t * maxValue(n)))
}

func dequantize(v uint64, min, max float64, n uint8) float64 {
	return min + (max-min)*float64(v)/maxValue(n)
}

// Quantize returns x as it will be seen by a reader after a round trip
// through an n-bit field over [min, max].
func Quantize(x, min, max float64, n uint8) float64 {
	return dequantize(quantize(x, min, max, n), min, max, n)
}

// QuantizeScale is Quantize for the scale field.
func QuantizeScale(scale float64) float64 {
	return Quantize(scale, MinScale, MaxScale, ScaleBits)
}

// QuantizePosition is Quantize for both components of a position.
func QuantizePosition(p gamemath.Vec2) gamemath.Vec2 {
	return gamemath.Vec2{
		X: Quantize(p.X, 0, MaxPosition, PositionBits),
		Y: Quantize(p.Y, 0, MaxPosition, PositionBits),
	}
}
