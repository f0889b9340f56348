package flatbuffers

import "math"

type (
	// SOffsetT is a signed offset from a table's start to its vtable.
	// Usually positive, since vtables are normally written before the
	// table that references them.
	SOffsetT int32
	// UOffsetT is an unsigned forward offset from a field's own location
	// to the object it references.
	UOffsetT uint32
	// VOffsetT is an unsigned offset from a table's start to a field
	// within that table's inline body, or 0 meaning "absent".
	VOffsetT uint16
)

// VtableMetadataFields is the number of fixed-width fields that precede
// the per-field voffsets in every vtable: vtable size and object size.
const VtableMetadataFields = 2

// GetByte decodes a byte from the front of buf.
func GetByte(buf []byte) byte { return byte(GetUint8(buf)) }

// GetBool decodes a bool from the front of buf. Any nonzero encoded
// byte other than 1 would be a malformed buffer; readers only ever see
// 0 or 1 because the encoder never writes anything else.
func GetBool(buf []byte) bool { return buf[0] == 1 }

// GetUint8 decodes a uint8 from the front of buf.
func GetUint8(buf []byte) uint8 { return buf[0] }

// GetUint16 decodes a little-endian uint16 from the front of buf.
func GetUint16(buf []byte) (n uint16) {
	_ = buf[1] // force a single bounds check, see golang.org/issue/14808
	return uint16(buf[0]) | uint16(buf[1])<<8
}

// GetUint32 decodes a little-endian uint32 from the front of buf.
func GetUint32(buf []byte) (n uint32) {
	_ = buf[3]
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
}

// GetUint64 decodes a little-endian uint64 from the front of buf.
func GetUint64(buf []byte) (n uint64) {
	_ = buf[7]
	return uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
		uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56
}

// GetInt8 decodes an int8 from the front of buf.
func GetInt8(buf []byte) int8 { return int8(buf[0]) }

// GetInt16 decodes a little-endian int16 from the front of buf.
func GetInt16(buf []byte) int16 { return int16(GetUint16(buf)) }

// GetInt32 decodes a little-endian int32 from the front of buf.
func GetInt32(buf []byte) int32 { return int32(GetUint32(buf)) }

// GetInt64 decodes a little-endian int64 from the front of buf.
func GetInt64(buf []byte) int64 { return int64(GetUint64(buf)) }

// GetFloat32 decodes a little-endian IEEE-754 float32 from the front of buf.
func GetFloat32(buf []byte) float32 { return math.Float32frombits(GetUint32(buf)) }

// GetFloat64 decodes a little-endian IEEE-754 float64 from the front of buf.
func GetFloat64(buf []byte) float64 { return math.Float64frombits(GetUint64(buf)) }

// GetUOffsetT decodes a UOffsetT from the front of buf.
func GetUOffsetT(buf []byte) UOffsetT { return UOffsetT(GetUint32(buf)) }

// GetSOffsetT decodes an SOffsetT from the front of buf.
func GetSOffsetT(buf []byte) SOffsetT { return SOffsetT(GetInt32(buf)) }

// GetVOffsetT decodes a VOffsetT from the front of buf.
func GetVOffsetT(buf []byte) VOffsetT { return VOffsetT(GetUint16(buf)) }

// WriteByte encodes a byte at the front of buf.
func WriteByte(buf []byte, n byte) { WriteUint8(buf, n) }

// WriteBool encodes a bool as 0 or 1 at the front of buf.
func WriteBool(buf []byte, b bool) {
	buf[0] = 0
	if b {
		buf[0] = 1
	}
}

// WriteUint8 encodes a uint8 at the front of buf.
func WriteUint8(buf []byte, n uint8) { buf[0] = n }

// WriteUint16 encodes a little-endian uint16 at the front of buf.
func WriteUint16(buf []byte, n uint16) {
	_ = buf[1]
	buf[0] = byte(n)
	buf[1] = byte(n >> 8)
}

// WriteUint32 encodes a little-endian uint32 at the front of buf.
func WriteUint32(buf []byte, n uint32) {
	_ = buf[3]
	buf[0] = byte(n)
	buf[1] = byte(n >> 8)
	buf[2] = byte(n >> 16)
	buf[3] = byte(n >> 24)
}

// WriteUint64 encodes a little-endian uint64 at the front of buf.
func WriteUint64(buf []byte, n uint64) {
	_ = buf[7]
	buf[0] = byte(n)
	buf[1] = byte(n >> 8)
	buf[2] = byte(n >> 16)
	buf[3] = byte(n >> 24)
	buf[4] = byte(n >> 32)
	buf[5] = byte(n >> 40)
	buf[6] = byte(n >> 48)
	buf[7] = byte(n >> 56)
}

// WriteInt8 encodes an int8 at the front of buf.
func WriteInt8(buf []byte, n int8) { buf[0] = byte(n) }

// WriteInt16 encodes a little-endian int16 at the front of buf.
func WriteInt16(buf []byte, n int16) { WriteUint16(buf, uint16(n)) }

// WriteInt32 encodes a little-endian int32 at the front of buf.
func WriteInt32(buf []byte, n int32) { WriteUint32(buf, uint32(n)) }

// WriteInt64 encodes a little-endian int64 at the front of buf.
func WriteInt64(buf []byte, n int64) { WriteUint64(buf, uint64(n)) }

// WriteFloat32 encodes a little-endian IEEE-754 float32 at the front of buf.
func WriteFloat32(buf []byte, n float32) { WriteUint32(buf, math.Float32bits(n)) }

// WriteFloat64 encodes a little-endian IEEE-754 float64 at the front of buf.
func WriteFloat64(buf []byte, n float64) { WriteUint64(buf, math.Float64bits(n)) }

// WriteVOffsetT encodes a VOffsetT at the front of buf.
func WriteVOffsetT(buf []byte, n VOffsetT) { WriteUint16(buf, uint16(n)) }

// WriteSOffsetT encodes an SOffsetT at the front of buf.
func WriteSOffsetT(buf []byte, n SOffsetT) { WriteInt32(buf, int32(n)) }

// WriteUOffsetT encodes a UOffsetT at the front of buf.
func WriteUOffsetT(buf []byte, n UOffsetT) { WriteUint32(buf, uint32(n)) }
