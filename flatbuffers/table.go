package flatbuffers

// Table wraps a byte slice together with the position of one object's
// soffset within it. It is the raw, unvalidated navigation primitive
// that the typed accessors in decoder.go are built on top of — it never
// returns an error, because it has no way to report one: going out of
// bounds here panics with a slice-index-out-of-range. The accessors in
// decoder.go add field-presence, vector-index, UTF-8 and enum/union
// checks on top of it, but they do not bounds-check offsets either.
type Table struct {
	Bytes []byte
	Pos   UOffsetT // always < 1<<31
}

// Offset looks up vtableOffset (a field's slot number translated to a
// byte offset: 4 + field_index*2) in this table's vtable and returns
// the field's position relative to the table start, or 0 if the field
// is absent — either because the writer elided a default, or because
// the vtable predates this field's schema position (fields added after
// a buffer was written read back as absent, which is how the format
// stays backward compatible).
func (t *Table) Offset(vtableOffset VOffsetT) VOffsetT {
	vtable := UOffsetT(SOffsetT(t.Pos) - t.GetSOffsetT(t.Pos))
	if vtableOffset < t.GetVOffsetT(vtable) {
		return t.GetVOffsetT(vtable + UOffsetT(vtableOffset))
	}
	return 0
}

// Indirect follows the uoffset stored at off and returns the absolute
// position it points to.
func (t *Table) Indirect(off UOffsetT) UOffsetT {
	return off + GetUOffsetT(t.Bytes[off:])
}

// String reads a NUL-terminated string vector at off as a Go string.
func (t *Table) String(off UOffsetT) string {
	return byteSliceToString(t.ByteVector(off))
}

// ByteVector reads the raw bytes of the vector (string or ubyte vector)
// whose uoffset is stored at off.
func (t *Table) ByteVector(off UOffsetT) []byte {
	off += GetUOffsetT(t.Bytes[off:])
	length := GetUOffsetT(t.Bytes[off:])
	start := off + SizeUOffsetT
	return t.Bytes[start : start+length]
}

// VectorLen returns the element count of the vector whose uoffset is
// stored at off within this table (off is relative to t.Pos).
func (t *Table) VectorLen(off UOffsetT) int {
	off += t.Pos
	off += GetUOffsetT(t.Bytes[off:])
	return int(GetUOffsetT(t.Bytes[off:]))
}

// Vector returns the absolute position of the first element of the
// vector whose uoffset is stored at off within this table.
func (t *Table) Vector(off UOffsetT) UOffsetT {
	off += t.Pos
	x := off + GetUOffsetT(t.Bytes[off:])
	x += SizeUOffsetT // skip the length prefix
	return x
}

// Union points t2 at the object referenced by the uoffset stored at off
// within this table, sharing the same backing bytes.
func (t *Table) Union(t2 *Table, off UOffsetT) {
	off += t.Pos
	t2.Pos = off + GetUOffsetT(t.Bytes[off:])
	t2.Bytes = t.Bytes
}

// GetBool reads a bool at an absolute position.
func (t *Table) GetBool(off UOffsetT) bool { return GetBool(t.Bytes[off:]) }

// GetByte reads a byte at an absolute position.
func (t *Table) GetByte(off UOffsetT) byte { return GetByte(t.Bytes[off:]) }

// GetUint8 reads a uint8 at an absolute position.
func (t *Table) GetUint8(off UOffsetT) uint8 { return GetUint8(t.Bytes[off:]) }

// GetUint16 reads a uint16 at an absolute position.
func (t *Table) GetUint16(off UOffsetT) uint16 { return GetUint16(t.Bytes[off:]) }

// GetUint32 reads a uint32 at an absolute position.
func (t *Table) GetUint32(off UOffsetT) uint32 { return GetUint32(t.Bytes[off:]) }

// GetUint64 reads a uint64 at an absolute position.
func (t *Table) GetUint64(off UOffsetT) uint64 { return GetUint64(t.Bytes[off:]) }

// GetInt8 reads an int8 at an absolute position.
func (t *Table) GetInt8(off UOffsetT) int8 { return GetInt8(t.Bytes[off:]) }

// GetInt16 reads an int16 at an absolute position.
func (t *Table) GetInt16(off UOffsetT) int16 { return GetInt16(t.Bytes[off:]) }

// GetInt32 reads an int32 at an absolute position.
func (t *Table) GetInt32(off UOffsetT) int32 { return GetInt32(t.Bytes[off:]) }

// GetInt64 reads an int64 at an absolute position.
func (t *Table) GetInt64(off UOffsetT) int64 { return GetInt64(t.Bytes[off:]) }

// GetFloat32 reads a float32 at an absolute position.
func (t *Table) GetFloat32(off UOffsetT) float32 { return GetFloat32(t.Bytes[off:]) }

// GetFloat64 reads a float64 at an absolute position.
func (t *Table) GetFloat64(off UOffsetT) float64 { return GetFloat64(t.Bytes[off:]) }

// GetUOffsetT reads a UOffsetT at an absolute position.
func (t *Table) GetUOffsetT(off UOffsetT) UOffsetT { return GetUOffsetT(t.Bytes[off:]) }

// GetVOffsetT reads a VOffsetT at an absolute position.
func (t *Table) GetVOffsetT(off UOffsetT) VOffsetT { return GetVOffsetT(t.Bytes[off:]) }

// GetSOffsetT reads an SOffsetT at an absolute position.
func (t *Table) GetSOffsetT(off UOffsetT) SOffsetT { return GetSOffsetT(t.Bytes[off:]) }

// GetBoolSlot reads the bool at vtable slot, or returns d if absent.
func (t *Table) GetBoolSlot(slot VOffsetT, d bool) bool {
	if off := t.Offset(slot); off != 0 {
		return t.GetBool(t.Pos + UOffsetT(off))
	}
	return d
}

// GetByteSlot reads the byte at vtable slot, or returns d if absent.
func (t *Table) GetByteSlot(slot VOffsetT, d byte) byte {
	if off := t.Offset(slot); off != 0 {
		return t.GetByte(t.Pos + UOffsetT(off))
	}
	return d
}

// GetInt8Slot reads the int8 at vtable slot, or returns d if absent.
func (t *Table) GetInt8Slot(slot VOffsetT, d int8) int8 {
	if off := t.Offset(slot); off != 0 {
		return t.GetInt8(t.Pos + UOffsetT(off))
	}
	return d
}

// GetUint8Slot reads the uint8 at vtable slot, or returns d if absent.
func (t *Table) GetUint8Slot(slot VOffsetT, d uint8) uint8 {
	if off := t.Offset(slot); off != 0 {
		return t.GetUint8(t.Pos + UOffsetT(off))
	}
	return d
}

// GetInt16Slot reads the int16 at vtable slot, or returns d if absent.
func (t *Table) GetInt16Slot(slot VOffsetT, d int16) int16 {
	if off := t.Offset(slot); off != 0 {
		return t.GetInt16(t.Pos + UOffsetT(off))
	}
	return d
}

// GetUint16Slot reads the uint16 at vtable slot, or returns d if absent.
func (t *Table) GetUint16Slot(slot VOffsetT, d uint16) uint16 {
	if off := t.Offset(slot); off != 0 {
		return t.GetUint16(t.Pos + UOffsetT(off))
	}
	return d
}

// GetInt32Slot reads the int32 at vtable slot, or returns d if absent.
func (t *Table) GetInt32Slot(slot VOffsetT, d int32) int32 {
	if off := t.Offset(slot); off != 0 {
		return t.GetInt32(t.Pos + UOffsetT(off))
	}
	return d
}

// GetUint32Slot reads the uint32 at vtable slot, or returns d if absent.
func (t *Table) GetUint32Slot(slot VOffsetT, d uint32) uint32 {
	if off := t.Offset(slot); off != 0 {
		return t.GetUint32(t.Pos + UOffsetT(off))
	}
	return d
}

// GetInt64Slot reads the int64 at vtable slot, or returns d if absent.
func (t *Table) GetInt64Slot(slot VOffsetT, d int64) int64 {
	if off := t.Offset(slot); off != 0 {
		return t.GetInt64(t.Pos + UOffsetT(off))
	}
	return d
}

// GetUint64Slot reads the uint64 at vtable slot, or returns d if absent.
func (t *Table) GetUint64Slot(slot VOffsetT, d uint64) uint64 {
	if off := t.Offset(slot); off != 0 {
		return t.GetUint64(t.Pos + UOffsetT(off))
	}
	return d
}

// GetFloat32Slot reads the float32 at vtable slot, or returns d if absent.
func (t *Table) GetFloat32Slot(slot VOffsetT, d float32) float32 {
	if off := t.Offset(slot); off != 0 {
		return t.GetFloat32(t.Pos + UOffsetT(off))
	}
	return d
}

// GetFloat64Slot reads the float64 at vtable slot, or returns d if absent.
func (t *Table) GetFloat64Slot(slot VOffsetT, d float64) float64 {
	if off := t.Offset(slot); off != 0 {
		return t.GetFloat64(t.Pos + UOffsetT(off))
	}
	return d
}

// GetVOffsetTSlot reads the raw field offset at vtable slot, or returns
// d if absent. Used by generated accessors for inline struct fields,
// where the "value" at the slot is the struct's own position.
func (t *Table) GetVOffsetTSlot(slot VOffsetT, d VOffsetT) VOffsetT {
	if off := t.Offset(slot); off != 0 {
		return off
	}
	return d
}

// MutateBool overwrites the bool at an absolute position in an
// already-encoded buffer. The Mutate family is a low-level primitive:
// nothing else in this package calls it, and it only rewrites bytes
// that are already present.
func (t *Table) MutateBool(off UOffsetT, n bool) { WriteBool(t.Bytes[off:], n) }

// MutateByte overwrites the byte at an absolute position.
func (t *Table) MutateByte(off UOffsetT, n byte) { WriteByte(t.Bytes[off:], n) }

// MutateUint8 overwrites the uint8 at an absolute position.
func (t *Table) MutateUint8(off UOffsetT, n uint8) { WriteUint8(t.Bytes[off:], n) }

// MutateUint16 overwrites the uint16 at an absolute position.
func (t *Table) MutateUint16(off UOffsetT, n uint16) { WriteUint16(t.Bytes[off:], n) }

// MutateUint32 overwrites the uint32 at an absolute position.
func (t *Table) MutateUint32(off UOffsetT, n uint32) { WriteUint32(t.Bytes[off:], n) }

// MutateUint64 overwrites the uint64 at an absolute position.
func (t *Table) MutateUint64(off UOffsetT, n uint64) { WriteUint64(t.Bytes[off:], n) }

// MutateInt8 overwrites the int8 at an absolute position.
func (t *Table) MutateInt8(off UOffsetT, n int8) { WriteInt8(t.Bytes[off:], n) }

// MutateInt16 overwrites the int16 at an absolute position.
func (t *Table) MutateInt16(off UOffsetT, n int16) { WriteInt16(t.Bytes[off:], n) }

// MutateInt32 overwrites the int32 at an absolute position.
func (t *Table) MutateInt32(off UOffsetT, n int32) { WriteInt32(t.Bytes[off:], n) }

// MutateInt64 overwrites the int64 at an absolute position.
func (t *Table) MutateInt64(off UOffsetT, n int64) { WriteInt64(t.Bytes[off:], n) }

// MutateFloat32 overwrites the float32 at an absolute position.
func (t *Table) MutateFloat32(off UOffsetT, n float32) { WriteFloat32(t.Bytes[off:], n) }

// MutateFloat64 overwrites the float64 at an absolute position.
func (t *Table) MutateFloat64(off UOffsetT, n float64) { WriteFloat64(t.Bytes[off:], n) }

// MutateBoolSlot overwrites the bool at vtable slot, returning false if
// the field is absent. A field cannot be created by mutation, only an
// already-present one rewritten in place.
func (t *Table) MutateBoolSlot(slot VOffsetT, n bool) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateBool(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

// MutateByteSlot overwrites the byte at vtable slot, returning false if absent.
func (t *Table) MutateByteSlot(slot VOffsetT, n byte) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateByte(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

// MutateUint8Slot overwrites the uint8 at vtable slot, returning false if absent.
func (t *Table) MutateUint8Slot(slot VOffsetT, n uint8) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateUint8(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

// MutateUint16Slot overwrites the uint16 at vtable slot, returning false if absent.
func (t *Table) MutateUint16Slot(slot VOffsetT, n uint16) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateUint16(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

// MutateUint32Slot overwrites the uint32 at vtable slot, returning false if absent.
func (t *Table) MutateUint32Slot(slot VOffsetT, n uint32) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateUint32(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

// MutateUint64Slot overwrites the uint64 at vtable slot, returning false if absent.
func (t *Table) MutateUint64Slot(slot VOffsetT, n uint64) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateUint64(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

// MutateInt8Slot overwrites the int8 at vtable slot, returning false if absent.
func (t *Table) MutateInt8Slot(slot VOffsetT, n int8) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateInt8(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

// MutateInt16Slot overwrites the int16 at vtable slot, returning false if absent.
func (t *Table) MutateInt16Slot(slot VOffsetT, n int16) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateInt16(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

// MutateInt32Slot overwrites the int32 at vtable slot, returning false if absent.
func (t *Table) MutateInt32Slot(slot VOffsetT, n int32) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateInt32(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

// MutateInt64Slot overwrites the int64 at vtable slot, returning false if absent.
func (t *Table) MutateInt64Slot(slot VOffsetT, n int64) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateInt64(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

// MutateFloat32Slot overwrites the float32 at vtable slot, returning false if absent.
func (t *Table) MutateFloat32Slot(slot VOffsetT, n float32) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateFloat32(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}

// MutateFloat64Slot overwrites the float64 at vtable slot, returning false if absent.
func (t *Table) MutateFloat64Slot(slot VOffsetT, n float64) bool {
	if off := t.Offset(slot); off != 0 {
		t.MutateFloat64(t.Pos+UOffsetT(off), n)
		return true
	}
	return false
}
