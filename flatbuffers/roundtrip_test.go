package flatbuffers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatbuffers "github.com/flatwire-go/flatwire/flatbuffers"
)

// scalarsFixture is the stand-in for a generated "Scalars" table: one
// field of every scalar kind, plus a self-referencing nested field, so
// the scenario below can nest three deep. Field ids match the slot
// numbers used below, in declaration order.
type scalarsFixture struct {
	u8                        uint8
	u16                       uint16
	u32                       uint32
	u64                       uint64
	i8                        int8
	i16                       int16
	i32                       int32
	i64                       int64
	f32                       float32
	f64                       float64
	boolean                   bool
	nested                    flatbuffers.UOffsetT // 0 if no nested table
}

const (
	slotU8      = 0
	slotU16     = 1
	slotU32     = 2
	slotU64     = 3
	slotI8      = 4
	slotI16     = 5
	slotI32     = 6
	slotI64     = 7
	slotF32     = 8
	slotF64     = 9
	slotBool    = 10
	slotNested  = 11
	scalarsSlots = 12
)

func createScalars(b *flatbuffers.Builder, v scalarsFixture) flatbuffers.UOffsetT {
	b.StartObject(scalarsSlots)
	if v.nested != 0 {
		b.PrependUOffsetTSlot(slotNested, v.nested, 0)
	}
	b.PrependBoolSlot(slotBool, v.boolean, false)
	b.PrependFloat64Slot(slotF64, v.f64, 0)
	b.PrependFloat32Slot(slotF32, v.f32, 0)
	b.PrependInt64Slot(slotI64, v.i64, 0)
	b.PrependInt32Slot(slotI32, v.i32, 0)
	b.PrependInt16Slot(slotI16, v.i16, 0)
	b.PrependInt8Slot(slotI8, v.i8, 0)
	b.PrependUint64Slot(slotU64, v.u64, 0)
	b.PrependUint32Slot(slotU32, v.u32, 0)
	b.PrependUint16Slot(slotU16, v.u16, 0)
	b.PrependUint8Slot(slotU8, v.u8, 0)
	return b.EndObject()
}

func readScalars(t *flatbuffers.Table) scalarsFixture {
	return scalarsFixture{
		u8:      t.GetUint8Slot(4+slotU8*2, 0),
		u16:     t.GetUint16Slot(4+slotU16*2, 0),
		u32:     t.GetUint32Slot(4+slotU32*2, 0),
		u64:     t.GetUint64Slot(4+slotU64*2, 0),
		i8:      t.GetInt8Slot(4+slotI8*2, 0),
		i16:     t.GetInt16Slot(4+slotI16*2, 0),
		i32:     t.GetInt32Slot(4+slotI32*2, 0),
		i64:     t.GetInt64Slot(4+slotI64*2, 0),
		f32:     t.GetFloat32Slot(4+slotF32*2, 0),
		f64:     t.GetFloat64Slot(4+slotF64*2, 0),
		boolean: t.GetBoolSlot(4+slotBool*2, false),
	}
}

func TestRoundTripMaxScalarsThreeLevelNesting(t *testing.T) {
	b := flatbuffers.NewBuilder(0)

	innermost := scalarsFixture{
		u8: math.MaxUint8, u16: math.MaxUint16, u32: math.MaxUint32, u64: math.MaxUint64,
		i8: math.MaxInt8, i16: math.MaxInt16, i32: math.MaxInt32, i64: math.MaxInt64,
		f32: 1234.56, f64: 2873242.82782, boolean: true,
	}
	innerOff := createScalars(b, innermost)

	middle := innermost
	middle.nested = innerOff
	middleOff := createScalars(b, middle)

	outer := innermost
	outer.nested = middleOff
	outerOff := createScalars(b, outer)

	b.Finish(outerOff)

	buf := b.FinishedBytes()
	root := rootTableOf(buf)

	got := readScalars(root)
	innermost.nested = 0
	assert.Equal(t, innermost, got)

	middleTable, ok := root.OptionalTable(4 + slotNested*2)
	require.True(t, ok)
	gotMiddle := readScalars(&middleTable)
	wantMiddle := innermost
	assert.Equal(t, wantMiddle, gotMiddle)

	innerTable, ok := middleTable.OptionalTable(4 + slotNested*2)
	require.True(t, ok)
	gotInner := readScalars(&innerTable)
	assert.Equal(t, innermost, gotInner)
}

func TestRoundTripAllFieldsAbsentReturnDeclaredDefaults(t *testing.T) {
	b := flatbuffers.NewBuilder(0)
	b.StartObject(scalarsSlots)
	off := b.EndObject()
	b.Finish(off)

	root := rootTableOf(b.FinishedBytes())
	got := readScalars(root)
	assert.Equal(t, scalarsFixture{}, got)

	_, ok := root.OptionalTable(4 + slotNested*2)
	assert.False(t, ok)
}

func TestRoundTripEnumExplicitDefaultElided(t *testing.T) {
	const (
		colorRed   int32 = 0
		colorGreen int32 = 1
		colorBlue  int32 = 2
	)

	bExplicit := flatbuffers.NewBuilder(0)
	bExplicit.StartObject(1)
	bExplicit.PrependInt32Slot(0, colorBlue, colorBlue) // field defaults to Blue
	offExplicit := bExplicit.EndObject()
	bExplicit.Finish(offExplicit)

	bOmitted := flatbuffers.NewBuilder(0)
	bOmitted.StartObject(1)
	offOmitted := bOmitted.EndObject()
	bOmitted.Finish(offOmitted)

	assert.Equal(t, bOmitted.FinishedBytes(), bExplicit.FinishedBytes())

	root := rootTableOf(bExplicit.FinishedBytes())
	color := root.GetInt32Slot(4, colorBlue)
	err := flatbuffers.ValidateEnumValue("Color", int64(color), int64(colorRed), int64(colorGreen), int64(colorBlue))
	require.NoError(t, err)
	assert.EqualValues(t, colorBlue, color)
}

// createSword and createAxe stand in for the tables a real Weapon union
// of {Sword{name:string}, Axe{damage:int32}} would generate.
func createSword(b *flatbuffers.Builder, name string) flatbuffers.UOffsetT {
	nameOff := b.CreateString(name)
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, nameOff, 0)
	return b.EndObject()
}

func createAxe(b *flatbuffers.Builder, damage int32) flatbuffers.UOffsetT {
	b.StartObject(1)
	b.PrependInt32Slot(0, damage, 0)
	return b.EndObject()
}

const (
	weaponNone  uint8 = 0
	weaponSword uint8 = 1
	weaponAxe   uint8 = 2
)

func TestRoundTripVectorOfUnions(t *testing.T) {
	b := flatbuffers.NewBuilder(0)

	sword1 := createSword(b, "hi")
	axe := createAxe(b, math.MaxInt32)
	sword2 := createSword(b, "oi")

	tags := []uint8{weaponSword, weaponNone, weaponAxe, weaponSword}
	values := []flatbuffers.UOffsetT{sword1, 0, axe, sword2}

	b.StartVector(flatbuffers.SizeUint8, len(tags), 1)
	for i := len(tags) - 1; i >= 0; i-- {
		b.PrependByte(tags[i])
	}
	typesOff := b.EndVector(len(tags))

	b.StartVector(flatbuffers.SizeUOffsetT, len(values), flatbuffers.SizeUOffsetT)
	for i := len(values) - 1; i >= 0; i-- {
		b.PrependUOffsetT(values[i])
	}
	valuesOff := b.EndVector(len(values))

	b.StartObject(2)
	b.PrependUOffsetTSlot(1, valuesOff, 0)
	b.PrependUOffsetTSlot(0, typesOff, 0)
	off := b.EndObject()
	b.Finish(off)

	root := rootTableOf(b.FinishedBytes())

	n, err := root.RequiredVectorLength(4, "types")
	require.NoError(t, err)
	require.Equal(t, 4, n)

	gotTags := make([]uint8, n)
	for i := 0; i < n; i++ {
		pos, err := root.VectorElementPos(4, i, flatbuffers.SizeUint8, "types")
		require.NoError(t, err)
		gotTags[i] = root.GetUint8(pos)
	}
	assert.Equal(t, tags, gotTags)

	wantNames := []string{"hi", "", "", "oi"}
	wantDamage := []int32{0, 0, math.MaxInt32, 0}
	for i := 0; i < n; i++ {
		tag := gotTags[i]
		if tag == weaponNone {
			continue
		}
		require.NoError(t, flatbuffers.ValidateUnionTag("Weapon", tag, weaponSword, weaponAxe))
		table, err := root.VectorTableElement(6, i, "values")
		require.NoError(t, err)
		switch tag {
		case weaponSword:
			name, err := table.RequiredString(4, "name")
			require.NoError(t, err)
			assert.Equal(t, wantNames[i], name)
		case weaponAxe:
			damage := table.GetInt32Slot(4, 0)
			assert.Equal(t, wantDamage[i], damage)
		}
	}
}

// createAlign2 hand-builds the inline struct `struct Align2 { x: Align1,
// y: i64, z: f32 }` (Align1 { x: i32 }) with no force_align — natural
// alignment is max(4, 8, 4) = 8. A real implementation generates this
// from the schema; written by hand here since code generation is out
// of scope.
const align2Size = 24 // x:i32 @0, pad 4, y:i64 @8, z:f32 @16, pad to 24

func createAlign2(b *flatbuffers.Builder, x int32, y int64, z float32) flatbuffers.UOffsetT {
	b.Prep(8, align2Size)
	b.Pad(4)
	b.PrependFloat32(z)
	b.PrependInt64(y)
	b.Pad(4)
	b.PrependInt32(x)
	return b.Offset()
}

func TestRoundTripStructAlignment(t *testing.T) {
	b := flatbuffers.NewBuilder(0)

	const n = 3
	b.StartVector(align2Size, n, 8)
	for i := n - 1; i >= 0; i-- {
		createAlign2(b, int32(i), int64(i*10), float32(i)+0.5)
	}
	vecOff := b.EndVector(n)
	b.Finish(vecOff)

	buf := b.FinishedBytes()
	base := flatbuffers.GetUOffsetT(buf) + flatbuffers.SizeUOffsetT
	for i := 0; i < n; i++ {
		elemPos := int(base) + i*align2Size
		assert.Zero(t, elemPos%8, "Align2 element %d must land on an 8-byte boundary", i)
		x := flatbuffers.GetInt32(buf[elemPos:])
		y := flatbuffers.GetInt64(buf[elemPos+8:])
		z := flatbuffers.GetFloat32(buf[elemPos+16:])
		assert.Equal(t, int32(i), x)
		assert.Equal(t, int64(i*10), y)
		assert.Equal(t, float32(i)+0.5, z)
	}
}
