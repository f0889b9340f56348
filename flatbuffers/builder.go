package flatbuffers

import "fmt"

// maxBufferSize is the largest buffer this builder will grow to. Every
// on-wire position must fit a signed 32-bit offset, so size is capped at
// 2^31-1 bytes (spec: "cap buffer size at 2^31-1 bytes (signed 32-bit
// position); exceeding this yields an overflow error at the encoder").
const maxBufferSize = 1<<31 - 1

// ErrBufferOverflow is panicked by the builder when growing the backing
// buffer would exceed maxBufferSize. The encoder has no recoverable error
// path; this is the one precondition violation callers are
// expected to guard against, surfaced as a typed value so a recover()
// can distinguish it from a programming-error panic.
var ErrBufferOverflow = fmt.Errorf("flatbuffers: buffer would exceed %d bytes", maxBufferSize)

// Builder is a state machine for assembling a FlatBuffers binary.
//
// Construction happens bottom-up: leaves are written first, compound
// objects (tables, vectors, unions) are written once all of their
// children already have positions, and the buffer grows from its
// capacity towards index 0. This lets every forward reference be
// computed directly — by the time an object writes an offset to a
// child, the child's final position is already known.
type Builder struct {
	// Bytes exposes the raw backing array. Most callers want
	// FinishedBytes instead, which trims off the unused head room.
	Bytes []byte

	minalign  int
	vtable    []UOffsetT
	objectEnd UOffsetT
	vtables   []UOffsetT
	head      UOffsetT
	nested    bool
	finished  bool
}

const fileIdentifierLength = 4

// NewBuilder returns a Builder whose backing array starts at initialSize
// bytes and grows (doubling) as needed. A non-positive initialSize is
// treated as zero — the first write triggers the first growth.
func NewBuilder(initialSize int) *Builder {
	if initialSize <= 0 {
		initialSize = 0
	}
	b := &Builder{
		Bytes:    make([]byte, initialSize),
		head:     UOffsetT(initialSize),
		minalign: 1,
		vtables:  make([]UOffsetT, 0, 16),
	}
	return b
}

// Reset truncates the backing buffer and clears bookkeeping so the
// Builder can be reused without a fresh allocation.
func (b *Builder) Reset() {
	if b.Bytes != nil {
		b.Bytes = b.Bytes[:cap(b.Bytes)]
	}
	if b.vtables != nil {
		b.vtables = b.vtables[:0]
	}
	if b.vtable != nil {
		b.vtable = b.vtable[:0]
	}
	b.head = UOffsetT(len(b.Bytes))
	b.minalign = 1
	b.nested = false
	b.finished = false
}

// FinishedBytes returns the written portion of the buffer. Panics if
// Finish hasn't been called yet.
func (b *Builder) FinishedBytes() []byte {
	b.assertFinished()
	return b.Bytes[b.Head():]
}

// StartObject begins a new table with numfields vtable slots, all
// initially absent.
func (b *Builder) StartObject(numfields int) {
	b.assertNotNested()
	b.nested = true

	if cap(b.vtable) < numfields || b.vtable == nil {
		b.vtable = make([]UOffsetT, numfields)
	} else {
		b.vtable = b.vtable[:numfields]
		for i := range b.vtable {
			b.vtable[i] = 0
		}
	}
	b.objectEnd = b.Offset()
}

// WriteVtable closes out the current object: it assembles the candidate
// vtable from whatever slots got filled, looks for an existing vtable
// with identical bytes, and either points the object at that vtable or
// appends a new one.
//
// A vtable is laid out as:
//
//	<VOffsetT: vtable size in bytes, including this field>
//	<VOffsetT: object size in bytes, including the leading soffset>
//	<VOffsetT: field offset> * N, one per slot up to the last present
//	field (deprecated included); trailing absent slots are not stored
//
// An object is laid out as:
//
//	<SOffsetT: offset back to this object's vtable, sign may be negative>
//	<field bytes>+
func (b *Builder) WriteVtable() (n UOffsetT) {
	// Reserve the leading soffset now; its real value is patched in below
	// once we know whether the vtable is new or reused.
	b.PrependSOffsetT(0)

	objectOffset := b.Offset()
	existingVtable := UOffsetT(0)

	// Trailing all-absent slots don't need to be stored.
	i := len(b.vtable) - 1
	for ; i >= 0 && b.vtable[i] == 0; i-- {
	}
	b.vtable = b.vtable[:i+1]

	// Search the most recently written vtables first: a batch of
	// same-shaped tables tends to cluster, so recent vtables are the
	// likeliest match.
	for i := len(b.vtables) - 1; i >= 0; i-- {
		vt2Offset := b.vtables[i]
		vt2Start := len(b.Bytes) - int(vt2Offset)
		vt2Len := GetVOffsetT(b.Bytes[vt2Start:])

		metadata := VtableMetadataFields * SizeVOffsetT
		vt2End := vt2Start + int(vt2Len)
		vt2 := b.Bytes[vt2Start+metadata : vt2End]
		vt2ObjectSize := GetVOffsetT(b.Bytes[vt2Start+SizeVOffsetT:])

		if vt2ObjectSize == VOffsetT(objectOffset-b.objectEnd) && vtableEqual(b.vtable, objectOffset, vt2) {
			existingVtable = vt2Offset
			break
		}
	}

	if existingVtable == 0 {
		// No match: write this vtable out, in reverse since the buffer
		// fills from the end.
		for i := len(b.vtable) - 1; i >= 0; i-- {
			var off UOffsetT
			if b.vtable[i] != 0 {
				off = objectOffset - b.vtable[i]
			}
			b.PrependVOffsetT(VOffsetT(off))
		}

		objectSize := objectOffset - b.objectEnd
		b.PrependVOffsetT(VOffsetT(objectSize))

		vBytes := (len(b.vtable) + VtableMetadataFields) * SizeVOffsetT
		b.PrependVOffsetT(VOffsetT(vBytes))

		// Patch the soffset reserved above to point at the vtable we
		// just finished writing, which sits immediately before it.
		objectStart := SOffsetT(len(b.Bytes)) - SOffsetT(objectOffset)
		WriteSOffsetT(b.Bytes[objectStart:], SOffsetT(b.Offset())-SOffsetT(objectOffset))

		b.vtables = append(b.vtables, b.Offset())
	} else {
		// Found a duplicate: rewind past the placeholder soffset and
		// point it at the existing vtable instead.
		objectStart := SOffsetT(len(b.Bytes)) - SOffsetT(objectOffset)
		b.head = UOffsetT(objectStart)
		WriteSOffsetT(b.Bytes[b.head:], SOffsetT(existingVtable)-SOffsetT(objectOffset))
	}

	b.vtable = b.vtable[:0]
	return objectOffset
}

// EndObject closes the table started by StartObject and returns its
// position (bytes from the end of the eventual buffer).
func (b *Builder) EndObject() UOffsetT {
	b.assertNested()
	n := b.WriteVtable()
	b.nested = false
	return n
}

// growByteBuffer doubles the backing array, copying the existing
// contents to the new array's tail (construction always proceeds
// towards index 0).
func (b *Builder) growByteBuffer() {
	if int64(len(b.Bytes))&0xC0000000 != 0 {
		panic(ErrBufferOverflow)
	}
	newLen := len(b.Bytes) * 2
	if newLen == 0 {
		newLen = 1
	}
	if newLen > maxBufferSize {
		panic(ErrBufferOverflow)
	}

	if cap(b.Bytes) >= newLen {
		b.Bytes = b.Bytes[:newLen]
	} else {
		extension := make([]byte, newLen-len(b.Bytes))
		b.Bytes = append(b.Bytes, extension...)
	}

	middle := newLen / 2
	copy(b.Bytes[middle:], b.Bytes[:middle])
}

// Head is the start of live data in the backing array, counted from the
// left — unlike every other position in this type, which counts from
// the end of the eventual buffer.
func (b *Builder) Head() UOffsetT { return b.head }

// Offset is the current write position, counted from the end of the
// eventual buffer.
func (b *Builder) Offset() UOffsetT { return UOffsetT(len(b.Bytes)) - b.head }

// Pad writes n zero bytes at the current position.
func (b *Builder) Pad(n int) {
	for i := 0; i < n; i++ {
		b.PlaceByte(0)
	}
}

// Prep reserves room for an element of size bytes that will be
// preceded by additionalBytes already written, growing and
// padding the buffer so that, once placed, the element lands on a
// size-byte boundary. Pass additionalBytes = 0 to just align.
func (b *Builder) Prep(size, additionalBytes int) {
	if size > b.minalign {
		b.minalign = size
	}

	// How much padding makes `size` land on a boundary once
	// additionalBytes more bytes are written after it.
	alignSize := (^(len(b.Bytes) - int(b.Head()) + additionalBytes)) + 1
	alignSize &= size - 1

	for int(b.head) <= alignSize+size+additionalBytes {
		oldBufSize := len(b.Bytes)
		b.growByteBuffer()
		b.head += UOffsetT(len(b.Bytes) - oldBufSize)
	}

	b.Pad(alignSize)
}

// PrependSOffsetT prepends an SOffsetT, relative to where it will land.
func (b *Builder) PrependSOffsetT(off SOffsetT) {
	b.Prep(SizeSOffsetT, 0)
	if !(UOffsetT(off) <= b.Offset()) {
		panic("unreachable: off <= b.Offset()")
	}
	off2 := SOffsetT(b.Offset()) - off + SOffsetT(SizeSOffsetT)
	b.PlaceSOffsetT(off2)
}

// PrependUOffsetT prepends a UOffsetT, relative to where it will land.
func (b *Builder) PrependUOffsetT(off UOffsetT) {
	b.Prep(SizeUOffsetT, 0)
	if !(off <= b.Offset()) {
		panic("unreachable: off <= b.Offset()")
	}
	off2 := b.Offset() - off + UOffsetT(SizeUOffsetT)
	b.PlaceUOffsetT(off2)
}

// StartVector begins a vector of numElems elements of elemSize bytes
// each, aligned to the larger of alignment and the 4-byte length prefix.
//
// A vector is laid out as:
//
//	<UOffsetT: element count>
//	<T: element>+
func (b *Builder) StartVector(elemSize, numElems, alignment int) UOffsetT {
	b.assertNotNested()
	b.nested = true

	b.Prep(SizeUint32, elemSize*numElems)
	b.Prep(alignment, elemSize*numElems)
	return b.Offset()
}

// EndVector writes the element-count prefix and closes the vector
// started by StartVector.
func (b *Builder) EndVector(vectorNumElems int) UOffsetT {
	b.assertNested()
	b.PlaceUOffsetT(UOffsetT(vectorNumElems))
	b.nested = false
	return b.Offset()
}

// CreateString writes s as a NUL-terminated byte vector: length prefix,
// UTF-8 bytes, trailing NUL not counted in the length.
func (b *Builder) CreateString(s string) UOffsetT {
	b.assertNotNested()
	b.nested = true

	b.Prep(SizeUOffsetT, (len(s)+1)*SizeByte)
	b.PlaceByte(0)

	l := UOffsetT(len(s))
	b.head -= l
	copy(b.Bytes[b.head:b.head+l], s)

	return b.EndVector(len(s))
}

// CreateByteString writes s as a NUL-terminated byte vector, for
// callers holding raw bytes that are already known to be UTF-8 (or
// that the caller has decided not to validate as text).
func (b *Builder) CreateByteString(s []byte) UOffsetT {
	b.assertNotNested()
	b.nested = true

	b.Prep(SizeUOffsetT, (len(s)+1)*SizeByte)
	b.PlaceByte(0)

	l := UOffsetT(len(s))
	b.head -= l
	copy(b.Bytes[b.head:b.head+l], s)

	return b.EndVector(len(s))
}

// CreateByteVector writes v as a plain (non-NUL-terminated) ubyte vector.
func (b *Builder) CreateByteVector(v []byte) UOffsetT {
	b.assertNotNested()
	b.nested = true

	b.Prep(SizeUOffsetT, len(v)*SizeByte)

	l := UOffsetT(len(v))
	b.head -= l
	copy(b.Bytes[b.head:b.head+l], v)

	return b.EndVector(len(v))
}

func (b *Builder) assertNested() {
	if !b.nested {
		panic("flatbuffers: must be inside an object to write this field")
	}
}

func (b *Builder) assertNotNested() {
	if b.nested {
		panic("flatbuffers: cannot start a sub-object while one is already open")
	}
}

func (b *Builder) assertFinished() {
	if !b.finished {
		panic("flatbuffers: FinishedBytes called before Finish")
	}
}

// PrependBoolSlot writes x at vtable slot o unless it equals default d,
// in which case the slot is left absent.
func (b *Builder) PrependBoolSlot(o int, x, d bool) {
	val, def := byte(0), byte(0)
	if x {
		val = 1
	}
	if d {
		def = 1
	}
	b.PrependByteSlot(o, val, def)
}

// PrependByteSlot writes x at vtable slot o unless it equals default d.
func (b *Builder) PrependByteSlot(o int, x, d byte) {
	if x != d {
		b.PrependByte(x)
		b.Slot(o)
	}
}

// PrependUint8Slot writes x at vtable slot o unless it equals default d.
func (b *Builder) PrependUint8Slot(o int, x, d uint8) {
	if x != d {
		b.PrependUint8(x)
		b.Slot(o)
	}
}

// PrependUint16Slot writes x at vtable slot o unless it equals default d.
func (b *Builder) PrependUint16Slot(o int, x, d uint16) {
	if x != d {
		b.PrependUint16(x)
		b.Slot(o)
	}
}

// PrependUint32Slot writes x at vtable slot o unless it equals default d.
func (b *Builder) PrependUint32Slot(o int, x, d uint32) {
	if x != d {
		b.PrependUint32(x)
		b.Slot(o)
	}
}

// PrependUint64Slot writes x at vtable slot o unless it equals default d.
func (b *Builder) PrependUint64Slot(o int, x, d uint64) {
	if x != d {
		b.PrependUint64(x)
		b.Slot(o)
	}
}

// PrependInt8Slot writes x at vtable slot o unless it equals default d.
func (b *Builder) PrependInt8Slot(o int, x, d int8) {
	if x != d {
		b.PrependInt8(x)
		b.Slot(o)
	}
}

// PrependInt16Slot writes x at vtable slot o unless it equals default d.
func (b *Builder) PrependInt16Slot(o int, x, d int16) {
	if x != d {
		b.PrependInt16(x)
		b.Slot(o)
	}
}

// PrependInt32Slot writes x at vtable slot o unless it equals default d.
func (b *Builder) PrependInt32Slot(o int, x, d int32) {
	if x != d {
		b.PrependInt32(x)
		b.Slot(o)
	}
}

// PrependInt64Slot writes x at vtable slot o unless it equals default d.
func (b *Builder) PrependInt64Slot(o int, x, d int64) {
	if x != d {
		b.PrependInt64(x)
		b.Slot(o)
	}
}

// PrependFloat32Slot writes x at vtable slot o unless it equals default d.
func (b *Builder) PrependFloat32Slot(o int, x, d float32) {
	if x != d {
		b.PrependFloat32(x)
		b.Slot(o)
	}
}

// PrependFloat64Slot writes x at vtable slot o unless it equals default d.
func (b *Builder) PrependFloat64Slot(o int, x, d float64) {
	if x != d {
		b.PrependFloat64(x)
		b.Slot(o)
	}
}

// PrependUOffsetTSlot writes the reference x at vtable slot o unless it
// equals default d (normally 0, meaning "no referenced object").
func (b *Builder) PrependUOffsetTSlot(o int, x, d UOffsetT) {
	if x != d {
		b.PrependUOffsetT(x)
		b.Slot(o)
	}
}

// PrependStructSlot records that the struct already written in-line at
// the current position belongs at vtable slot voffset. Structs carry no
// indirection, so nothing new is written here — generated code always
// passes d = 0.
func (b *Builder) PrependStructSlot(voffset int, x, d UOffsetT) {
	if x != d {
		b.assertNested()
		if x != b.Offset() {
			panic("flatbuffers: struct must be written immediately before its slot is set")
		}
		b.Slot(voffset)
	}
}

// Slot records the current write position as the location of vtable
// slot slotnum.
func (b *Builder) Slot(slotnum int) {
	b.vtable[slotnum] = b.Offset()
}

// FinishWithFileIdentifier finalizes the buffer with rootTable as its
// root and fid immediately following the root offset.
func (b *Builder) FinishWithFileIdentifier(rootTable UOffsetT, fid []byte) {
	if len(fid) != fileIdentifierLength {
		panic("flatbuffers: file identifier must be exactly 4 bytes")
	}
	b.Prep(b.minalign, SizeInt32+fileIdentifierLength)
	for i := fileIdentifierLength - 1; i >= 0; i-- {
		b.PlaceByte(fid[i])
	}
	b.Finish(rootTable)
}

// Finish finalizes the buffer with rootTable as its root.
func (b *Builder) Finish(rootTable UOffsetT) {
	b.assertNotNested()
	b.Prep(b.minalign, SizeUOffsetT)
	b.PrependUOffsetT(rootTable)
	b.finished = true
}

// vtableEqual reports whether the unwritten candidate vtable a (slot
// positions relative to objectStart) matches the already-written
// vtable bytes in written.
func vtableEqual(a []UOffsetT, objectStart UOffsetT, written []byte) bool {
	if len(a)*SizeVOffsetT != len(written) {
		return false
	}
	for i, slot := range a {
		x := GetVOffsetT(written[i*SizeVOffsetT : (i+1)*SizeVOffsetT])
		if x == 0 && slot == 0 {
			continue
		}
		if SOffsetT(x) != SOffsetT(objectStart)-SOffsetT(slot) {
			return false
		}
	}
	return true
}

// PrependBool prepends a bool, aligning and growing as needed.
func (b *Builder) PrependBool(x bool) {
	b.Prep(SizeBool, 0)
	b.PlaceBool(x)
}

// PrependUint8 prepends a uint8, aligning and growing as needed.
func (b *Builder) PrependUint8(x uint8) {
	b.Prep(SizeUint8, 0)
	b.PlaceUint8(x)
}

// PrependUint16 prepends a uint16, aligning and growing as needed.
func (b *Builder) PrependUint16(x uint16) {
	b.Prep(SizeUint16, 0)
	b.PlaceUint16(x)
}

// PrependUint32 prepends a uint32, aligning and growing as needed.
func (b *Builder) PrependUint32(x uint32) {
	b.Prep(SizeUint32, 0)
	b.PlaceUint32(x)
}

// PrependUint64 prepends a uint64, aligning and growing as needed.
func (b *Builder) PrependUint64(x uint64) {
	b.Prep(SizeUint64, 0)
	b.PlaceUint64(x)
}

// PrependInt8 prepends an int8, aligning and growing as needed.
func (b *Builder) PrependInt8(x int8) {
	b.Prep(SizeInt8, 0)
	b.PlaceInt8(x)
}

// PrependInt16 prepends an int16, aligning and growing as needed.
func (b *Builder) PrependInt16(x int16) {
	b.Prep(SizeInt16, 0)
	b.PlaceInt16(x)
}

// PrependInt32 prepends an int32, aligning and growing as needed.
func (b *Builder) PrependInt32(x int32) {
	b.Prep(SizeInt32, 0)
	b.PlaceInt32(x)
}

// PrependInt64 prepends an int64, aligning and growing as needed.
func (b *Builder) PrependInt64(x int64) {
	b.Prep(SizeInt64, 0)
	b.PlaceInt64(x)
}

// PrependFloat32 prepends a float32, aligning and growing as needed.
func (b *Builder) PrependFloat32(x float32) {
	b.Prep(SizeFloat32, 0)
	b.PlaceFloat32(x)
}

// PrependFloat64 prepends a float64, aligning and growing as needed.
func (b *Builder) PrependFloat64(x float64) {
	b.Prep(SizeFloat64, 0)
	b.PlaceFloat64(x)
}

// PrependByte prepends a byte, aligning and growing as needed.
func (b *Builder) PrependByte(x byte) {
	b.Prep(SizeByte, 0)
	b.PlaceByte(x)
}

// PrependVOffsetT prepends a VOffsetT, aligning and growing as needed.
func (b *Builder) PrependVOffsetT(x VOffsetT) {
	b.Prep(SizeVOffsetT, 0)
	b.PlaceVOffsetT(x)
}

// PlaceBool writes x at the current head without checking for space.
func (b *Builder) PlaceBool(x bool) {
	b.head -= SizeBool
	WriteBool(b.Bytes[b.head:], x)
}

// PlaceUint8 writes x at the current head without checking for space.
func (b *Builder) PlaceUint8(x uint8) {
	b.head -= SizeUint8
	WriteUint8(b.Bytes[b.head:], x)
}

// PlaceUint16 writes x at the current head without checking for space.
func (b *Builder) PlaceUint16(x uint16) {
	b.head -= SizeUint16
	WriteUint16(b.Bytes[b.head:], x)
}

// PlaceUint32 writes x at the current head without checking for space.
func (b *Builder) PlaceUint32(x uint32) {
	b.head -= SizeUint32
	WriteUint32(b.Bytes[b.head:], x)
}

// PlaceUint64 writes x at the current head without checking for space.
func (b *Builder) PlaceUint64(x uint64) {
	b.head -= SizeUint64
	WriteUint64(b.Bytes[b.head:], x)
}

// PlaceInt8 writes x at the current head without checking for space.
func (b *Builder) PlaceInt8(x int8) {
	b.head -= SizeInt8
	WriteInt8(b.Bytes[b.head:], x)
}

// PlaceInt16 writes x at the current head without checking for space.
func (b *Builder) PlaceInt16(x int16) {
	b.head -= SizeInt16
	WriteInt16(b.Bytes[b.head:], x)
}

// PlaceInt32 writes x at the current head without checking for space.
func (b *Builder) PlaceInt32(x int32) {
	b.head -= SizeInt32
	WriteInt32(b.Bytes[b.head:], x)
}

// PlaceInt64 writes x at the current head without checking for space.
func (b *Builder) PlaceInt64(x int64) {
	b.head -= SizeInt64
	WriteInt64(b.Bytes[b.head:], x)
}

// PlaceFloat32 writes x at the current head without checking for space.
func (b *Builder) PlaceFloat32(x float32) {
	b.head -= SizeFloat32
	WriteFloat32(b.Bytes[b.head:], x)
}

// PlaceFloat64 writes x at the current head without checking for space.
func (b *Builder) PlaceFloat64(x float64) {
	b.head -= SizeFloat64
	WriteFloat64(b.Bytes[b.head:], x)
}

// PlaceByte writes x at the current head without checking for space.
func (b *Builder) PlaceByte(x byte) {
	b.head -= SizeByte
	WriteByte(b.Bytes[b.head:], x)
}

// PlaceVOffsetT writes x at the current head without checking for space.
func (b *Builder) PlaceVOffsetT(x VOffsetT) {
	b.head -= SizeVOffsetT
	WriteVOffsetT(b.Bytes[b.head:], x)
}

// PlaceSOffsetT writes x at the current head without checking for space.
func (b *Builder) PlaceSOffsetT(x SOffsetT) {
	b.head -= SizeSOffsetT
	WriteSOffsetT(b.Bytes[b.head:], x)
}

// PlaceUOffsetT writes x at the current head without checking for space.
func (b *Builder) PlaceUOffsetT(x UOffsetT) {
	b.head -= SizeUOffsetT
	WriteUOffsetT(b.Bytes[b.head:], x)
}
