package flatbuffers

import "fmt"

// ParsingError reports a malformed buffer discovered while chasing an
// offset: an offset that lands outside the buffer, a vtable whose
// declared size disagrees with the bytes available, or any other
// structural inconsistency that isn't specific enough to warrant one
// of the more precise error types below. No accessor in this package
// returns it: offsets are followed without bounds checks, so such a
// buffer makes the accessors panic instead.
type ParsingError struct {
	ByteOffset int
	Message    string
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("flatbuffers: parsing error at byte %d: %s", e.ByteOffset, e.Message)
}

// MissingField reports that a caller asked for a field the schema marks
// required, but the vtable has no entry for it — either the writer
// never set it or the buffer was produced against an older schema.
type MissingField struct {
	FieldName string
}

func (e *MissingField) Error() string {
	return fmt.Sprintf("flatbuffers: missing required field %q", e.FieldName)
}

// Utf8DecodingError reports that a string field's bytes are not valid
// UTF-8. ByteOffset is the position of the first invalid byte relative
// to the start of the string's data, or -1 if that position could not
// be pinpointed.
type Utf8DecodingError struct {
	Message    string
	ByteOffset int
}

func (e *Utf8DecodingError) Error() string {
	if e.ByteOffset < 0 {
		return fmt.Sprintf("flatbuffers: invalid UTF-8: %s", e.Message)
	}
	return fmt.Sprintf("flatbuffers: invalid UTF-8 at byte %d: %s", e.ByteOffset, e.Message)
}

// VectorIndexOutOfBounds reports an index at or beyond a vector's
// length. Length equal to Index is the canonical "one past the end"
// case: a vector of length n rejects index n just like any other index
// >= n.
type VectorIndexOutOfBounds struct {
	Length int
	Index  int
}

func (e *VectorIndexOutOfBounds) Error() string {
	return fmt.Sprintf("flatbuffers: vector index %d out of bounds (length %d)", e.Index, e.Length)
}

// EnumUnknown reports that a scalar read back from an enum-typed field
// does not match any declared enumerator.
type EnumUnknown struct {
	Name  string
	Value int64
}

func (e *EnumUnknown) Error() string {
	return fmt.Sprintf("flatbuffers: unknown value %d for enum %q", e.Value, e.Name)
}

// UnionUnknown reports that a union's type tag does not match any
// declared member.
type UnionUnknown struct {
	Name string
	Tag  uint8
}

func (e *UnionUnknown) Error() string {
	return fmt.Sprintf("flatbuffers: unknown union tag %d for %q", e.Tag, e.Name)
}
