package qc

import (
	"math"
	"sort"

	"github.com/KaramelBytes/ehrqc-cli/internal/dataset"
)

// CompletenessRow is the per-field missingness summary.
// MissingCount + NonMissingCount always equals the dataset size.
type CompletenessRow struct {
	Field           string
	MissingCount    int
	MissingPercent  float64
	NonMissingCount int
}

// AnalyzeCompleteness computes missing statistics for every field in
// the dataset, sorted by missing percent descending. Ties keep the
// dataset's natural column order. For an empty dataset the percent is
// defined as 0.0 and a row is still emitted per field.
func AnalyzeCompleteness(ds *dataset.Dataset) []CompletenessRow {
	total := ds.Len()
	fields := ds.Fields()
	rows := make([]CompletenessRow, 0, len(fields))
	for _, f := range fields {
		missing := 0
		for i := 0; i < total; i++ {
			if _, ok := ds.Record(i).String(f); !ok {
				missing++
			}
		}
		pct := 0.0
		if total > 0 {
			pct = round2(float64(missing) / float64(total) * 100)
		}
		rows = append(rows, CompletenessRow{
			Field:           f,
			MissingCount:    missing,
			MissingPercent:  pct,
			NonMissingCount: total - missing,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MissingPercent > rows[j].MissingPercent
	})
	return rows
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
