package flatbuffers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatbuffers "github.com/flatwire-go/flatwire/flatbuffers"
)

// buildPair writes a two-field table (u16, u32) and returns the
// table's offset; it does not finish the buffer.
func buildPair(t *testing.T, b *flatbuffers.Builder, u16 uint16, u32 uint32) flatbuffers.UOffsetT {
	t.Helper()
	b.StartObject(2)
	b.PrependUint16Slot(0, u16, 0)
	b.PrependUint32Slot(1, u32, 0)
	return b.EndObject()
}

func TestDefaultElisionProducesIdenticalBytes(t *testing.T) {
	b1 := flatbuffers.NewBuilder(0)
	off1 := buildPair(t, b1, 7, 0) // u32 left at its declared default
	b1.Finish(off1)

	b2 := flatbuffers.NewBuilder(0)
	b2.StartObject(2)
	b2.PrependUint16Slot(0, 7, 0)
	// field 1 never written at all
	off2 := b2.EndObject()
	b2.Finish(off2)

	assert.Equal(t, b1.FinishedBytes(), b2.FinishedBytes())
}

// vtablePos returns the absolute byte position of the vtable a table at
// pos points back to, replicating Table.Offset's own soffset arithmetic
// so a test can compare vtable identity without a public accessor for it.
func vtablePos(b *flatbuffers.Builder, pos flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	table := &flatbuffers.Table{Bytes: b.Bytes}
	return flatbuffers.UOffsetT(flatbuffers.SOffsetT(pos) - table.GetSOffsetT(pos))
}

func TestVtableDedupReusesIdenticalVtable(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	off1 := buildPair(t, b, 1, 100)
	off2 := buildPair(t, b, 2, 200)

	// Both tables declare the same two slots with the same types, so
	// their vtables are byte-identical and the builder must point both
	// tables' soffsets at the very same vtable bytes rather than writing
	// a second copy.
	pos1 := flatbuffers.UOffsetT(len(b.Bytes)) - off1
	pos2 := flatbuffers.UOffsetT(len(b.Bytes)) - off2
	assert.Equal(t, vtablePos(b, pos1), vtablePos(b, pos2), "second table should reuse the first table's vtable instead of writing a duplicate")

	b.Finish(off2)
	assert.True(t, len(b.FinishedBytes()) > 0)
}

func TestAllFieldsAbsentVtableIsAllZero(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartObject(3)
	off := b.EndObject()
	b.Finish(off)

	buf := b.FinishedBytes()
	root := flatbuffers.GetUOffsetT(buf)
	table := &flatbuffers.Table{Bytes: buf, Pos: root}

	for slot := flatbuffers.VOffsetT(0); slot < 3; slot++ {
		assert.Equal(t, flatbuffers.VOffsetT(0), table.Offset(4+slot*2))
	}
}

func TestScalarAlignment(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartObject(1)
	b.PrependFloat64Slot(0, 3.5, 0)
	off := b.EndObject()
	b.Finish(off)

	buf := b.FinishedBytes()
	root := flatbuffers.GetUOffsetT(buf)
	table := &flatbuffers.Table{Bytes: buf, Pos: root}
	fieldOff := table.Offset(4)
	require.NotZero(t, fieldOff)
	pos := int(table.Pos) + int(fieldOff)
	assert.Zero(t, pos%8, "float64 field must land on an 8-byte boundary")
}

func TestBuilderResetAllowsReuse(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	off := buildPair(t, b, 9, 99)
	b.Finish(off)
	first := append([]byte(nil), b.FinishedBytes()...)

	b.Reset()
	off2 := buildPair(t, b, 9, 99)
	b.Finish(off2)

	assert.Equal(t, first, b.FinishedBytes())
}

func TestStringRoundTripHasTrailingNUL(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	strOff := b.CreateString("hello")
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, strOff, 0)
	off := b.EndObject()
	b.Finish(off)

	buf := b.FinishedBytes()
	root := flatbuffers.GetUOffsetT(buf)
	table := &flatbuffers.Table{Bytes: buf, Pos: root}
	s, err := table.RequiredString(4, "name")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}
