package exporter

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/ehrqc-cli/internal/qc"
)

// Render produces the human-facing text view of a report.
func Render(rep *qc.Report) string {
	var b strings.Builder
	b.WriteString("[EHR QC SUMMARY]\n")
	b.WriteString(fmt.Sprintf("Records: %d\n", rep.TotalRecords))

	b.WriteString("\n[MISSING DATA]\n")
	for _, row := range rep.Rows {
		if row.Check == qc.CheckMissingSummary {
			b.WriteString("- ")
			b.WriteString(row.Detail)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n[ISSUES]\n")
	found := false
	for _, row := range rep.Rows {
		if row.Check == qc.CheckIssueDetected {
			b.WriteString("- ")
			b.WriteString(row.Detail)
			b.WriteString("\n")
			found = true
		}
	}
	if !found {
		b.WriteString("(none)\n")
	}
	return b.String()
}

// RenderIssues expands the full detail tables, one block per issue.
func RenderIssues(issues []qc.Issue) string {
	var b strings.Builder
	for i, is := range issues {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("-- %s (%d rows) --\n", is.Name, is.Table.Len()))
		b.WriteString("| ")
		b.WriteString(strings.Join(is.Table.Columns, " | "))
		b.WriteString(" |\n")
		for _, row := range is.Table.Rows {
			b.WriteString("| ")
			b.WriteString(strings.Join(row, " | "))
			b.WriteString(" |\n")
		}
	}
	return b.String()
}
