// Package flatbuffers implements the FlatBuffers wire format: a
// zero-copy binary serialization in which readers access fields
// directly out of a byte buffer with no parsing pass and no per-field
// allocation.
//
// An encoded value is a byte-addressed, little-endian structure built
// from three shapes:
//
//   - a struct is a fixed-size inline record with no indirection and no
//     evolution — its layout is entirely determined by its schema;
//   - a table is a variable-length, evolvable object: each table carries
//     a vtable, a small shared index of per-field byte offsets, so that
//     a field added after a buffer was written reads back as absent
//     rather than corrupting older data, and a field left at its
//     default is never stored at all;
//   - a vector or string is a forward offset to a length-prefixed run of
//     elements or UTF-8 bytes.
//
// Builder, in builder.go, constructs a buffer bottom-up: it appends
// bytes growing toward lower addresses and only discovers an object's
// final size once every field inside it has been written, which is why
// fields of a table must be written before the table itself is closed
// and referenced objects (strings, nested tables, vectors) must be
// built before the table that references them. Despite writing
// back-to-front, the resulting buffer reads front-to-back in the
// conventional direction: a reader walks forward from a root offset,
// and the first bytes it reaches for any table are the vtable — the
// buffer's own summary of what fields that table has.
//
// Table, in table.go, and the accessors in decoder.go are the read
// side: they chase offsets without copying. The decoder.go accessors
// return structured errors (see errors.go) for an absent required
// field, an out-of-range vector index, invalid UTF-8, and an unknown
// enum or union value. No accessor bounds-checks the offsets it
// follows, so a buffer whose offsets point outside it panics with an
// index-out-of-range.
package flatbuffers
