package flatbuffers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatbuffers "github.com/flatwire-go/flatwire/flatbuffers"
)

func TestRequiredStringMissing(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartObject(1)
	off := b.EndObject() // field 0 never set
	b.Finish(off)

	table := rootTableOf(b.FinishedBytes())
	_, err := table.RequiredString(4, "name")
	require.Error(t, err)
	var missing *flatbuffers.MissingField
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.FieldName)
}

func TestRequiredStringInvalidUTF8(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	bad := []byte{0xff, 0xfe, 0x41}
	strOff := b.CreateByteVector(bad)
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, strOff, 0)
	off := b.EndObject()
	b.Finish(off)

	table := rootTableOf(b.FinishedBytes())
	_, err := table.RequiredString(4, "name")
	require.Error(t, err)
	var utf8Err *flatbuffers.Utf8DecodingError
	require.ErrorAs(t, err, &utf8Err)
	assert.Equal(t, 0, utf8Err.ByteOffset)
}

func TestVectorIndexOutOfBounds(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartVector(flatbuffers.SizeInt32, 2, flatbuffers.SizeInt32)
	b.PrependInt32(2)
	b.PrependInt32(1)
	vecOff := b.EndVector(2)
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, vecOff, 0)
	off := b.EndObject()
	b.Finish(off)

	table := rootTableOf(b.FinishedBytes())
	_, err := table.VectorElementPos(4, 2, flatbuffers.SizeInt32, "values")
	require.Error(t, err)
	var oob *flatbuffers.VectorIndexOutOfBounds
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 2, oob.Length)
	assert.Equal(t, 2, oob.Index)

	pos, err := table.VectorElementPos(4, 1, flatbuffers.SizeInt32, "values")
	require.NoError(t, err)
	assert.Equal(t, int32(2), table.GetInt32(pos))
}

func TestVectorMissingFieldIsDistinctFromOutOfBounds(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartObject(1)
	off := b.EndObject()
	b.Finish(off)

	table := rootTableOf(b.FinishedBytes())
	_, err := table.VectorElementPos(4, 0, flatbuffers.SizeInt32, "values")
	var missing *flatbuffers.MissingField
	require.ErrorAs(t, err, &missing)
}

func TestValidateEnumValue(t *testing.T) {
	known := []int64{0, 1, 2} // Red, Green, Blue
	require.NoError(t, flatbuffers.ValidateEnumValue("Color", 2, known...))

	err := flatbuffers.ValidateEnumValue("Color", 7, known...)
	require.Error(t, err)
	var unknown *flatbuffers.EnumUnknown
	require.ErrorAs(t, err, &unknown)
	assert.EqualValues(t, 7, unknown.Value)
}

func TestValidateUnionTag(t *testing.T) {
	require.NoError(t, flatbuffers.ValidateUnionTag("Weapon", 1, 1, 2))

	err := flatbuffers.ValidateUnionTag("Weapon", 9, 1, 2)
	require.Error(t, err)
	var unknown *flatbuffers.UnionUnknown
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint8(9), unknown.Tag)
}

func TestOptionalTableAbsent(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartObject(1)
	off := b.EndObject()
	b.Finish(off)

	table := rootTableOf(b.FinishedBytes())
	_, ok := table.OptionalTable(4)
	assert.False(t, ok)
}

func TestCheckFileIdentifier(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartObject(0)
	off := b.EndObject()
	b.FinishWithFileIdentifier(off, []byte("MONS"))

	assert.True(t, flatbuffers.CheckFileIdentifier(b.FinishedBytes(), "MONS"))
	assert.False(t, flatbuffers.CheckFileIdentifier(b.FinishedBytes(), "NOPE"))
}
