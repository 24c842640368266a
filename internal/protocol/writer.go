// Package protocol builds the payloads for the outbound combat messages.
// All multi-byte values are Little-Endian, matching the Titanium-era
// client structs. The numeric opcode mapping belongs to the transport;
// this package only names operations semantically.
package protocol

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Writer provides methods for writing packet payload data.
// Uses Little-Endian byte order for all multi-byte values.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates a payload writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	w := &Writer{}
	w.buf.Grow(capacity)
	return w
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf.WriteByte(v)
}

// WriteUint16 writes a uint16 (2 bytes, LE).
func (w *Writer) WriteUint16(v uint16) {
	w.buf.WriteByte(byte(v))
	w.buf.WriteByte(byte(v >> 8))
}

// WriteUint32 writes a uint32 (4 bytes, LE).
func (w *Writer) WriteUint32(v uint32) {
	w.buf.WriteByte(byte(v))
	w.buf.WriteByte(byte(v >> 8))
	w.buf.WriteByte(byte(v >> 16))
	w.buf.WriteByte(byte(v >> 24))
}

// WriteInt32 writes an int32 (4 bytes, LE).
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// WriteFloat32 writes a float32 (4 bytes, LE, IEEE 754).
func (w *Writer) WriteFloat32(v float32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(v))
	w.buf.Write(tmp[:])
}

// WriteZeros writes n zero bytes (struct padding).
func (w *Writer) WriteZeros(n int) {
	for i := 0; i < n; i++ {
		w.buf.WriteByte(0)
	}
}

// Bytes returns the accumulated payload.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the current payload length.
func (w *Writer) Len() int {
	return w.buf.Len()
}
