package qc

import (
	"github.com/KaramelBytes/ehrqc-cli/internal/dataset"
)

// Table is a named issue's detail rows: an ordered column set and one
// row per flagged record, cells already formatted for persistence.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of flagged records.
func (t Table) Len() int { return len(t.Rows) }

// Issue pairs a check name with its violation table. Issues are kept as
// an ordered list so rule-evaluation order stays a stated contract
// rather than map-iteration luck.
type Issue struct {
	Name  string
	Table Table
}

// rule is a self-describing check: it names itself, declares the fields
// it needs, and evaluates only when the dataset carries all of them.
type rule struct {
	name     string
	requires []string
	eval     func(ds *dataset.Dataset, cfg Config) Table
}

// evaluate runs rules in order. A rule whose required fields are absent
// is skipped entirely; a rule that flags nothing contributes no Issue.
func evaluate(ds *dataset.Dataset, cfg Config, rules []rule) []Issue {
	var issues []Issue
	for _, r := range rules {
		if !ds.Has(r.requires...) {
			continue
		}
		t := r.eval(ds, cfg)
		if t.Len() == 0 {
			continue
		}
		issues = append(issues, Issue{Name: r.name, Table: t})
	}
	return issues
}

// idColumns returns the identifier columns to prefix issue rows with,
// limited to those actually present in the dataset.
func idColumns(ds *dataset.Dataset) []string {
	if ds.Has("patient_id") {
		return []string{"patient_id"}
	}
	return nil
}

// idCells extracts the identifier cells for a record, aligned with idColumns.
func idCells(r dataset.Record, cols []string) []string {
	cells := make([]string, 0, len(cols))
	for _, c := range cols {
		s, _ := r.String(c)
		cells = append(cells, s)
	}
	return cells
}
