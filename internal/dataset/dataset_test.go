package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellTrimsAndNulls(t *testing.T) {
	assert.False(t, Cell("x").Null)
	assert.Equal(t, "x", Cell("  x ").Raw)
	assert.True(t, Cell("").Null)
	assert.True(t, Cell("   ").Null)
	assert.True(t, Null().Null)
}

func TestRecordAccessors(t *testing.T) {
	ds := New([]string{"id", "age", "bmi", "dob", "note"}, [][]Value{
		{Cell("P1"), Cell("45"), Cell("24.5"), Cell("1980-05-12"), Null()},
	})
	r := ds.Record(0)

	s, ok := r.String("id")
	require.True(t, ok)
	assert.Equal(t, "P1", s)

	n, ok := r.Int("age")
	require.True(t, ok)
	assert.Equal(t, 45, n)

	f, ok := r.Float("bmi")
	require.True(t, ok)
	assert.Equal(t, 24.5, f)

	d, ok := r.Date("dob")
	require.True(t, ok)
	assert.Equal(t, time.Date(1980, 5, 12, 0, 0, 0, 0, time.UTC), d)

	// Null reads as absent from every accessor, but the field exists.
	_, ok = r.String("note")
	assert.False(t, ok)
	assert.True(t, r.Has("note"))

	// Truly absent field.
	_, ok = r.String("ghost")
	assert.False(t, ok)
	assert.False(t, r.Has("ghost"))
}

func TestRecordUnparsableValues(t *testing.T) {
	ds := New([]string{"dob", "age"}, [][]Value{
		{Cell("not a date"), Cell("forty")},
	})
	r := ds.Record(0)
	_, ok := r.Date("dob")
	assert.False(t, ok)
	_, ok = r.Int("age")
	assert.False(t, ok)
	// The raw value is still readable as a string.
	s, ok := r.String("dob")
	require.True(t, ok)
	assert.Equal(t, "not a date", s)
}

func TestIntAcceptsWholeFloats(t *testing.T) {
	ds := New([]string{"age"}, [][]Value{{Cell("45.0")}, {Cell("45.5")}})
	n, ok := ds.Record(0).Int("age")
	require.True(t, ok)
	assert.Equal(t, 45, n)
	_, ok = ds.Record(1).Int("age")
	assert.False(t, ok)
}

func TestDatasetShapeAndPadding(t *testing.T) {
	ds := New([]string{"a", "b", "c"}, [][]Value{
		{Cell("1")},
	})
	assert.Equal(t, 1, ds.Len())
	assert.Equal(t, []string{"a", "b", "c"}, ds.Fields())
	// Short rows pad with nulls.
	_, ok := ds.Record(0).String("b")
	assert.False(t, ok)
	assert.True(t, ds.Record(0).Has("b"))
}

func TestDatasetHas(t *testing.T) {
	ds := New([]string{"patient_id", "dob"}, nil)
	assert.True(t, ds.Has("patient_id"))
	assert.True(t, ds.Has("patient_id", "dob"))
	assert.False(t, ds.Has("patient_id", "age"))
	assert.True(t, ds.Has())
}

func TestDemoShape(t *testing.T) {
	ds := Demo()
	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, DemoFields, ds.Fields())

	// P004 carries the all-null vitals row.
	p4 := ds.Record(4)
	id, _ := p4.String("patient_id")
	assert.Equal(t, "P004", id)
	for _, f := range []string{"gender", "admission_date", "heart_rate", "bmi"} {
		_, ok := p4.String(f)
		assert.False(t, ok, "expected %s to be null on P004", f)
	}
}
