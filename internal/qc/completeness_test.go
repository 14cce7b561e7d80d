package qc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/ehrqc-cli/internal/dataset"
)

func TestAnalyzeCompletenessCounts(t *testing.T) {
	ds := dataset.New([]string{"patient_id", "age", "gender"}, [][]dataset.Value{
		{dataset.Cell("P1"), dataset.Cell("40"), dataset.Cell("F")},
		{dataset.Cell("P2"), dataset.Null(), dataset.Cell("M")},
		{dataset.Cell("P3"), dataset.Null(), dataset.Null()},
	})
	rows := AnalyzeCompleteness(ds)
	require.Len(t, rows, 3)

	byField := map[string]CompletenessRow{}
	for _, r := range rows {
		byField[r.Field] = r
		assert.Equal(t, ds.Len(), r.MissingCount+r.NonMissingCount, "count invariant for %s", r.Field)
	}
	assert.Equal(t, 2, byField["age"].MissingCount)
	assert.InDelta(t, 66.67, byField["age"].MissingPercent, 1e-9)
	assert.Equal(t, 1, byField["gender"].MissingCount)
	assert.InDelta(t, 33.33, byField["gender"].MissingPercent, 1e-9)
	assert.Equal(t, 0, byField["patient_id"].MissingCount)

	// Sorted by missing percent descending.
	assert.Equal(t, []string{"age", "gender", "patient_id"},
		[]string{rows[0].Field, rows[1].Field, rows[2].Field})
}

func TestAnalyzeCompletenessTiesKeepColumnOrder(t *testing.T) {
	ds := dataset.New([]string{"b_field", "a_field", "c_field"}, [][]dataset.Value{
		{dataset.Null(), dataset.Null(), dataset.Cell("x")},
		{dataset.Cell("y"), dataset.Cell("z"), dataset.Cell("w")},
	})
	rows := AnalyzeCompleteness(ds)
	require.Len(t, rows, 3)
	assert.Equal(t, "b_field", rows[0].Field)
	assert.Equal(t, "a_field", rows[1].Field)
	assert.Equal(t, "c_field", rows[2].Field)
}

func TestAnalyzeCompletenessEmptyDataset(t *testing.T) {
	ds := dataset.New([]string{"patient_id", "age"}, nil)
	rows := AnalyzeCompleteness(ds)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, 0, r.MissingCount)
		assert.Equal(t, 0, r.NonMissingCount)
		assert.Equal(t, 0.0, r.MissingPercent)
	}
}

func TestAnalyzeCompletenessUnparsableIsNotMissing(t *testing.T) {
	// "not a date" is a present value; only true nulls count as missing.
	ds := dataset.New([]string{"dob"}, [][]dataset.Value{
		{dataset.Cell("not a date")},
		{dataset.Null()},
	})
	rows := AnalyzeCompleteness(ds)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].MissingCount)
	assert.Equal(t, 1, rows[0].NonMissingCount)
}
