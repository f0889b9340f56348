package flatbuffers

import "unsafe"

// Byte widths of the scalar types the wire format knows how to place
// inline. See http://golang.org/ref/spec#Numeric_types for the Go side
// of this table.
const (
	SizeUint8  = 1
	SizeUint16 = 2
	SizeUint32 = 4
	SizeUint64 = 8

	SizeInt8  = 1
	SizeInt16 = 2
	SizeInt32 = 4
	SizeInt64 = 8

	SizeFloat32 = 4
	SizeFloat64 = 8

	// SizeByte is the width of a raw byte. By FlatBuffers convention
	// `byte` on the wire is the same as `uint8`.
	SizeByte = 1

	// SizeBool is the width of a bool on the wire. By FlatBuffers
	// convention a bool is stored as a single byte, 0 or 1.
	SizeBool = 1

	// SizeSOffsetT is the width of a signed vtable backlink.
	SizeSOffsetT = 4
	// SizeUOffsetT is the width of an unsigned forward offset.
	SizeUOffsetT = 4
	// SizeVOffsetT is the width of a field offset within a vtable.
	SizeVOffsetT = 2
)

// byteSliceToString reinterprets a []byte as a string without copying.
// Safe here because every caller hands us a slice carved out of a
// buffer that is never subsequently mutated through this alias.
func byteSliceToString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}
