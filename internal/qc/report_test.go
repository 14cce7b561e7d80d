package qc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/ehrqc-cli/internal/dataset"
)

// The demo extract is evaluated against a reference day inside its
// admission window so the stored ages agree with the dates of birth.
func demoReport() *Report {
	return GenerateSummaryReport(dataset.Demo(), refConfig("2025-11-15"))
}

func TestReportScenarioOnDemoExtract(t *testing.T) {
	rep := demoReport()
	assert.Equal(t, 5, rep.TotalRecords)

	want := map[string]int{
		"duplicate_patient_id":                2,
		"admission_after_discharge":           1,
		"unexpected_gender_codes":             1,
		"out_of_range_heart_rate":             1,
		"out_of_range_bmi":                    1,
		"hb_implausible":                      1,
		"systolic_not_greater_than_diastolic": 1,
	}
	require.Len(t, rep.Issues, len(want))
	for name, count := range want {
		tbl, ok := rep.Table(name)
		require.True(t, ok, "expected issue %s", name)
		assert.Equal(t, count, tbl.Len(), "row count for %s", name)
	}

	// age_vs_dob must not fire: P003's dob is unparsable and the rest agree.
	_, ok := rep.Table("age_vs_dob")
	assert.False(t, ok)

	// Both P001 entries appear in the duplicate table.
	dupes, _ := rep.Table("duplicate_patient_id")
	assert.Equal(t, "P001", dupes.Rows[0][0])
	assert.Equal(t, "P001", dupes.Rows[1][0])

	// Offending values survive into the detail tables.
	hr, _ := rep.Table("out_of_range_heart_rate")
	assert.Equal(t, []string{"P002", "10"}, hr.Rows[0])
	bp, _ := rep.Table("systolic_not_greater_than_diastolic")
	assert.Equal(t, []string{"P002", "80", "90"}, bp.Rows[0])
}

func TestReportRowOrder(t *testing.T) {
	rep := demoReport()
	require.NotEmpty(t, rep.Rows)
	assert.Equal(t, ReportRow{Check: CheckTotalRecords, Detail: "5"}, rep.Rows[0])

	// total_records, then all missing_summary rows, then all issue_detected rows.
	checks := make([]string, 0, len(rep.Rows))
	for _, row := range rep.Rows {
		checks = append(checks, row.Check)
	}
	require.Len(t, checks, 1+len(rep.Completeness)+len(rep.Issues))
	for i, c := range checks[1 : 1+len(rep.Completeness)] {
		assert.Equal(t, CheckMissingSummary, c, "row %d", i+1)
	}
	for i, c := range checks[1+len(rep.Completeness):] {
		assert.Equal(t, CheckIssueDetected, c, "row %d", 1+len(rep.Completeness)+i)
	}

	// Consistency issues come before plausibility issues.
	names := make([]string, 0, len(rep.Issues))
	for _, is := range rep.Issues {
		names = append(names, is.Name)
	}
	assert.Equal(t, []string{
		"admission_after_discharge",
		"unexpected_gender_codes",
		"duplicate_patient_id",
		"out_of_range_heart_rate",
		"out_of_range_bmi",
		"systolic_not_greater_than_diastolic",
		"hb_implausible",
	}, names)
}

func TestReportMissingSummaryFormatting(t *testing.T) {
	rep := demoReport()
	// P004 has nine null fields; each shows as one missing record at 20%.
	assert.Equal(t, ReportRow{Check: CheckMissingSummary, Detail: "gender: 1 missing (20%)"}, rep.Rows[1])
	// The fully-populated identifier columns trail the sort at 0%.
	last := rep.Rows[len(rep.Completeness)]
	assert.Equal(t, CheckMissingSummary, last.Check)
	assert.Equal(t, "age: 0 missing (0%)", last.Detail)
}

func TestReportEmptyDataset(t *testing.T) {
	ds := dataset.New([]string{"patient_id", "age"}, nil)
	rep := GenerateSummaryReport(ds, DefaultConfig())
	assert.Equal(t, 0, rep.TotalRecords)
	assert.Empty(t, rep.Issues)
	require.Len(t, rep.Rows, 3) // total_records + one missing_summary per field
	assert.Equal(t, ReportRow{Check: CheckTotalRecords, Detail: "0"}, rep.Rows[0])
	assert.Equal(t, "patient_id: 0 missing (0%)", rep.Rows[1].Detail)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "20", formatPercent(20))
	assert.Equal(t, "16.67", formatPercent(16.67))
	assert.Equal(t, "0", formatPercent(0))
	assert.Equal(t, "33.33", formatPercent(33.33))
}
