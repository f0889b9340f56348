package flatbuffers

import "unicode/utf8"

// The accessors in this file sit above the raw Table navigator and
// return the error types declared in errors.go for the conditions they
// check: an absent required field, a vector index out of range, invalid
// UTF-8, an unknown enum or union value. Like Table, they follow
// offsets without bounds checks; an offset pointing outside the buffer
// panics.
// There is no code generator in this module (out of scope, see
// SPEC_FULL.md §1), so hand-written accessors for a particular
// generated table type are expected to call these directly rather than
// through per-field generated wrappers.

// RequiredString reads the string at slot, failing with MissingField
// if the field is absent and with Utf8DecodingError if its bytes are
// not valid UTF-8.
func (t *Table) RequiredString(slot VOffsetT, fieldName string) (string, error) {
	off := t.Offset(slot)
	if off == 0 {
		return "", &MissingField{FieldName: fieldName}
	}
	return decodeUTF8(t.ByteVector(t.Pos + UOffsetT(off)))
}

// OptionalString reads the string at slot. ok is false if the field is
// absent; err is non-nil only if the field is present but not valid
// UTF-8.
func (t *Table) OptionalString(slot VOffsetT) (s string, ok bool, err error) {
	off := t.Offset(slot)
	if off == 0 {
		return "", false, nil
	}
	s, err = decodeUTF8(t.ByteVector(t.Pos + UOffsetT(off)))
	return s, true, err
}

// RequiredByteVector reads the raw bytes of a ubyte vector at slot,
// failing with MissingField if absent.
func (t *Table) RequiredByteVector(slot VOffsetT, fieldName string) ([]byte, error) {
	off := t.Offset(slot)
	if off == 0 {
		return nil, &MissingField{FieldName: fieldName}
	}
	return t.ByteVector(t.Pos + UOffsetT(off)), nil
}

// OptionalByteVector reads the raw bytes of a ubyte vector at slot, or
// ok=false if absent.
func (t *Table) OptionalByteVector(slot VOffsetT) (b []byte, ok bool) {
	off := t.Offset(slot)
	if off == 0 {
		return nil, false
	}
	return t.ByteVector(t.Pos + UOffsetT(off)), true
}

// RequiredTable follows the uoffset at slot to a nested table, failing
// with MissingField if absent.
func (t *Table) RequiredTable(slot VOffsetT, fieldName string) (Table, error) {
	off := t.Offset(slot)
	if off == 0 {
		return Table{}, &MissingField{FieldName: fieldName}
	}
	pos := t.Indirect(t.Pos + UOffsetT(off))
	return Table{Bytes: t.Bytes, Pos: pos}, nil
}

// OptionalTable follows the uoffset at slot to a nested table, or
// ok=false if absent.
func (t *Table) OptionalTable(slot VOffsetT) (nested Table, ok bool) {
	off := t.Offset(slot)
	if off == 0 {
		return Table{}, false
	}
	pos := t.Indirect(t.Pos + UOffsetT(off))
	return Table{Bytes: t.Bytes, Pos: pos}, true
}

// RequiredStruct returns the inline struct at slot. Structs have no
// vtable and no uoffset indirection: the slot's recorded position is
// the struct's own first byte. Fails with MissingField if absent.
func (t *Table) RequiredStruct(slot VOffsetT, fieldName string) (Table, error) {
	off := t.Offset(slot)
	if off == 0 {
		return Table{}, &MissingField{FieldName: fieldName}
	}
	return Table{Bytes: t.Bytes, Pos: t.Pos + UOffsetT(off)}, nil
}

// OptionalStruct returns the inline struct at slot, or ok=false if absent.
func (t *Table) OptionalStruct(slot VOffsetT) (nested Table, ok bool) {
	off := t.Offset(slot)
	if off == 0 {
		return Table{}, false
	}
	return Table{Bytes: t.Bytes, Pos: t.Pos + UOffsetT(off)}, true
}

// RequiredVectorLength returns the element count of the vector at
// slot, failing with MissingField if the vector itself is absent (a
// vector field marked required in the schema but unset by the writer).
func (t *Table) RequiredVectorLength(slot VOffsetT, fieldName string) (int, error) {
	off := t.Offset(slot)
	if off == 0 {
		return 0, &MissingField{FieldName: fieldName}
	}
	return t.VectorLen(UOffsetT(off)), nil
}

// OptionalVectorLength returns the element count of the vector at
// slot, or ok=false if the vector is absent.
func (t *Table) OptionalVectorLength(slot VOffsetT) (n int, ok bool) {
	off := t.Offset(slot)
	if off == 0 {
		return 0, false
	}
	return t.VectorLen(UOffsetT(off)), true
}

// VectorElementPos returns the absolute byte position of element index
// within the elemSize-wide inline vector at slot. It is the primitive
// every typed vector-of-scalar accessor is built from: callers follow
// up with the matching GetX at the returned position. Fails with
// MissingField if the vector is absent, or VectorIndexOutOfBounds if
// index is not in [0, length).
func (t *Table) VectorElementPos(slot VOffsetT, index, elemSize int, fieldName string) (UOffsetT, error) {
	off := t.Offset(slot)
	if off == 0 {
		return 0, &MissingField{FieldName: fieldName}
	}
	n := t.VectorLen(UOffsetT(off))
	if index < 0 || index >= n {
		return 0, &VectorIndexOutOfBounds{Length: n, Index: index}
	}
	base := t.Vector(UOffsetT(off))
	return base + UOffsetT(index*elemSize), nil
}

// VectorTableElement follows the uoffset stored at element index of a
// vector-of-tables at slot and returns the referenced table.
func (t *Table) VectorTableElement(slot VOffsetT, index int, fieldName string) (Table, error) {
	pos, err := t.VectorElementPos(slot, index, SizeUOffsetT, fieldName)
	if err != nil {
		return Table{}, err
	}
	return Table{Bytes: t.Bytes, Pos: t.Indirect(pos)}, nil
}

// VectorStringElement follows the uoffset stored at element index of a
// vector-of-strings at slot and returns the decoded string.
func (t *Table) VectorStringElement(slot VOffsetT, index int, fieldName string) (string, error) {
	pos, err := t.VectorElementPos(slot, index, SizeUOffsetT, fieldName)
	if err != nil {
		return "", err
	}
	return decodeUTF8(t.ByteVector(pos))
}

// UnionTag reads the type tag of a union at tagSlot. Zero means the
// union is unset (the "NONE" variant), which is not itself an error —
// callers check for it before looking at the paired value slot.
func (t *Table) UnionTag(tagSlot VOffsetT) byte {
	return t.GetByteSlot(tagSlot, 0)
}

// UnionValue follows the uoffset at valueSlot (the field immediately
// after a union's type tag) to the tagged value's table. ok is false
// if the value slot itself carries no offset, which should not occur
// for a union whose tag is non-zero in a buffer produced by this
// module's own Builder, but is checked rather than assumed for
// buffers of unknown provenance.
func (t *Table) UnionValue(valueSlot VOffsetT) (value Table, ok bool) {
	off := t.Offset(valueSlot)
	if off == 0 {
		return Table{}, false
	}
	var nested Table
	t.Union(&nested, UOffsetT(off))
	return nested, true
}

// ValidateUnionTag checks tag against the set of tags a generated
// union type declares (excluding 0/NONE, which callers handle
// separately), returning UnionUnknown if tag matches none of them.
func ValidateUnionTag(name string, tag byte, known ...byte) error {
	for _, k := range known {
		if k == tag {
			return nil
		}
	}
	return &UnionUnknown{Name: name, Tag: tag}
}

// ValidateEnumValue checks value against the set of integer values a
// generated enum type declares, returning EnumUnknown if it matches
// none of them. The accessor that decoded the underlying integer calls
// this before handing the value back to the caller as the enum type.
func ValidateEnumValue(name string, value int64, known ...int64) error {
	for _, k := range known {
		if k == value {
			return nil
		}
	}
	return &EnumUnknown{Name: name, Value: value}
}

// decodeUTF8 validates b as UTF-8 and returns it as a string without
// copying (via byteSliceToString) when valid.
func decodeUTF8(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", &Utf8DecodingError{
			Message:    "invalid UTF-8 sequence",
			ByteOffset: firstInvalidUTF8Byte(b),
		}
	}
	return byteSliceToString(b), nil
}

// firstInvalidUTF8Byte returns the index of the first byte that fails
// to decode as part of a valid rune, or -1 if b is entirely valid.
func firstInvalidUTF8Byte(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
