package qc

import (
	"github.com/KaramelBytes/ehrqc-cli/internal/dataset"
)

// DetectPotentialErrors runs the physiological plausibility checks:
// per-field closed-interval range rules in configured order, then the
// systolic/diastolic cross-check, then the hemoglobin rule. Null values
// are ignored; boundary values pass.
func DetectPotentialErrors(ds *dataset.Dataset, cfg Config) []Issue {
	rules := make([]rule, 0, len(cfg.Ranges)+2)
	for _, rg := range cfg.Ranges {
		rules = append(rules, rangeRule(rg))
	}
	rules = append(rules, rule{
		name:     "systolic_not_greater_than_diastolic",
		requires: []string{"systolic_bp", "diastolic_bp"},
		eval:     checkBloodPressure,
	})
	rules = append(rules, rangeRule(cfg.Hemoglobin))
	return evaluate(ds, cfg, rules)
}

// rangeRule builds the out-of-range check for one interval. The issue
// table carries the identifier column (when present) and the offending
// value only.
func rangeRule(rg Range) rule {
	return rule{
		name:     rg.Issue,
		requires: []string{rg.Field},
		eval: func(ds *dataset.Dataset, cfg Config) Table {
			ids := idColumns(ds)
			t := Table{Columns: append(append([]string{}, ids...), rg.Field)}
			for i := 0; i < ds.Len(); i++ {
				r := ds.Record(i)
				v, ok := r.Float(rg.Field)
				if !ok || (v >= rg.Min && v <= rg.Max) {
					continue
				}
				raw, _ := r.String(rg.Field)
				t.Rows = append(t.Rows, append(idCells(r, ids), raw))
			}
			return t
		},
	}
}

// checkBloodPressure flags records where systolic pressure is not
// strictly greater than diastolic. Equal readings are flagged.
func checkBloodPressure(ds *dataset.Dataset, cfg Config) Table {
	ids := idColumns(ds)
	t := Table{Columns: append(append([]string{}, ids...), "systolic_bp", "diastolic_bp")}
	for i := 0; i < ds.Len(); i++ {
		r := ds.Record(i)
		sys, ok := r.Float("systolic_bp")
		if !ok {
			continue
		}
		dia, ok := r.Float("diastolic_bp")
		if !ok {
			continue
		}
		if sys > dia {
			continue
		}
		sysRaw, _ := r.String("systolic_bp")
		diaRaw, _ := r.String("diastolic_bp")
		t.Rows = append(t.Rows, append(idCells(r, ids), sysRaw, diaRaw))
	}
	return t
}
