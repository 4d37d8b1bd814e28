package shape_test

import (
	"testing"

	"github.com/brimdata/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	x       int64
	visible bool
}

func pointType() *shape.TypeRecord {
	return &shape.TypeRecord{
		Name: "point",
		Fields: []shape.Field{
			{
				Name: "x",
				Type: shape.TypeInt,
				Get:  func(rec any) any { return rec.(*point).x },
				Set:  func(rec, val any) { rec.(*point).x = val.(int64) },
			},
			shape.NewField("visible", shape.TypeBool, func(rec any) any {
				return rec.(*point).visible
			}),
		},
		Construct: func(vals *shape.Seq) any {
			x, vals := vals.Split()
			visible, _ := vals.Split()
			return &point{x: x.(int64), visible: visible.(bool)}
		},
	}
}

func TestRecordMakeAndGet(t *testing.T) {
	typ := pointType()
	rec, err := typ.Make(shape.SeqOf(int64(3), true))
	require.NoError(t, err)
	assert.Equal(t, int64(3), typ.Fields[0].Get(rec))
	assert.Equal(t, true, typ.Fields[1].Get(rec))
}

func TestRecordMakeArityMismatch(t *testing.T) {
	typ := pointType()
	_, err := typ.Make(shape.SeqOf(int64(3)))
	var mismatch *shape.SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.Want)
	assert.Equal(t, 1, mismatch.Got)
}

func TestFieldUpdate(t *testing.T) {
	typ := pointType()
	rec, err := typ.Make(shape.SeqOf(int64(3), true))
	require.NoError(t, err)
	require.NoError(t, typ.Fields[0].Update(rec, int64(9)))
	assert.Equal(t, int64(9), typ.Fields[0].Get(rec))
}

func TestFieldUpdateImmutable(t *testing.T) {
	typ := pointType()
	rec, err := typ.Make(shape.SeqOf(int64(3), true))
	require.NoError(t, err)
	err = typ.Fields[1].Update(rec, false)
	var immutable *shape.ImmutableFieldError
	require.ErrorAs(t, err, &immutable)
	assert.Equal(t, "visible", immutable.Field)
	// The failed write left the field untouched.
	assert.Equal(t, true, typ.Fields[1].Get(rec))
}

func TestCellType(t *testing.T) {
	typ := shape.NewCellType(shape.TypeInt)
	require.Len(t, typ.Fields, 1)
	cell := shape.NewCell(int64(42))
	assert.Equal(t, int64(42), typ.Fields[0].Get(cell))
	rec, err := typ.Make(shape.SeqOf(int64(7)))
	require.NoError(t, err)
	assert.Equal(t, int64(7), typ.Fields[0].Get(rec))
}

func TestCellTypeReadOnly(t *testing.T) {
	typ := shape.NewCellType(shape.TypeInt)
	cell := shape.NewCell(int64(42))
	err := typ.Fields[0].Update(cell, int64(1))
	var immutable *shape.ImmutableFieldError
	require.ErrorAs(t, err, &immutable)
	// The cell itself stays mutable outside the generic interface.
	cell.Contents = int64(1)
	assert.Equal(t, int64(1), typ.Fields[0].Get(cell))
}
