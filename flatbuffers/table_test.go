package flatbuffers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatbuffers "github.com/flatwire-go/flatwire/flatbuffers"
)

func rootTableOf(buf []byte) *flatbuffers.Table {
	return &flatbuffers.Table{Bytes: buf, Pos: flatbuffers.GetUOffsetT(buf)}
}

func TestTableVectorNavigation(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartVector(flatbuffers.SizeInt32, 3, flatbuffers.SizeInt32)
	b.PrependInt32(30)
	b.PrependInt32(20)
	b.PrependInt32(10)
	vecOff := b.EndVector(3)

	b.StartObject(1)
	b.PrependUOffsetTSlot(0, vecOff, 0)
	off := b.EndObject()
	b.Finish(off)

	table := rootTableOf(b.FinishedBytes())
	slotOff := table.Offset(4)
	require.NotZero(t, slotOff)

	n := table.VectorLen(flatbuffers.UOffsetT(slotOff))
	require.Equal(t, 3, n)

	base := table.Vector(flatbuffers.UOffsetT(slotOff))
	assert.Equal(t, int32(10), table.GetInt32(base))
	assert.Equal(t, int32(20), table.GetInt32(base+flatbuffers.SizeInt32))
	assert.Equal(t, int32(30), table.GetInt32(base+2*flatbuffers.SizeInt32))
}

func TestTableMutateSlotInPlace(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartObject(1)
	b.PrependInt32Slot(0, 5, 0)
	off := b.EndObject()
	b.Finish(off)

	table := rootTableOf(b.FinishedBytes())
	ok := table.MutateInt32Slot(4, 99)
	require.True(t, ok)
	assert.Equal(t, int32(99), table.GetInt32Slot(4, -1))

	// A field that was never written cannot be mutated into existence.
	ok = table.MutateInt32Slot(6, 1)
	assert.False(t, ok)
}

func TestTableIndirectAndUnion(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartObject(1)
	b.PrependInt32Slot(0, 42, 0)
	inner := b.EndObject()

	b.StartObject(1)
	b.PrependUOffsetTSlot(0, inner, 0)
	outer := b.EndObject()
	b.Finish(outer)

	root := rootTableOf(b.FinishedBytes())
	off := root.Offset(4)
	require.NotZero(t, off)

	var nested flatbuffers.Table
	root.Union(&nested, flatbuffers.UOffsetT(off))
	assert.Equal(t, int32(42), nested.GetInt32Slot(4, -1))
}
