package qc

import (
	"fmt"
	"strconv"

	"github.com/KaramelBytes/ehrqc-cli/internal/dataset"
)

// Check kinds emitted in the summary report, in emission order.
const (
	CheckTotalRecords   = "total_records"
	CheckMissingSummary = "missing_summary"
	CheckIssueDetected  = "issue_detected"
)

// ReportRow is one line of the human-facing summary.
type ReportRow struct {
	Check  string
	Detail string
}

// Report is the aggregated result of one quality-check run: the
// ordered summary rows, the completeness table, and the full issue
// tables in evaluation order (consistency first, then plausibility).
type Report struct {
	TotalRecords int
	Rows         []ReportRow
	Completeness []CompletenessRow
	Issues       []Issue
}

// Table returns the detail table for a named issue.
func (r *Report) Table(name string) (Table, bool) {
	for _, is := range r.Issues {
		if is.Name == name {
			return is.Table, true
		}
	}
	return Table{}, false
}

// GenerateSummaryReport runs all three analyzers over the dataset and
// merges their output. It adds no analyzer logic of its own: one
// total_records row, one missing_summary row per completeness row in
// completeness order, then one issue_detected row per non-empty issue.
func GenerateSummaryReport(ds *dataset.Dataset, cfg Config) *Report {
	completeness := AnalyzeCompleteness(ds)
	issues := AnalyzeConsistency(ds, cfg)
	issues = append(issues, DetectPotentialErrors(ds, cfg)...)

	rows := make([]ReportRow, 0, 1+len(completeness)+len(issues))
	rows = append(rows, ReportRow{Check: CheckTotalRecords, Detail: strconv.Itoa(ds.Len())})
	for _, c := range completeness {
		rows = append(rows, ReportRow{
			Check:  CheckMissingSummary,
			Detail: fmt.Sprintf("%s: %d missing (%s%%)", c.Field, c.MissingCount, formatPercent(c.MissingPercent)),
		})
	}
	for _, is := range issues {
		rows = append(rows, ReportRow{
			Check:  CheckIssueDetected,
			Detail: fmt.Sprintf("%s: %d records", is.Name, is.Table.Len()),
		})
	}

	return &Report{
		TotalRecords: ds.Len(),
		Rows:         rows,
		Completeness: completeness,
		Issues:       issues,
	}
}

// formatPercent prints an already-rounded percent without trailing
// zeros: 20 not 20.00, 16.67 as-is.
func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
