package qc

import (
	"math"
	"sort"
	"strconv"

	"github.com/KaramelBytes/ehrqc-cli/internal/dataset"
)

// consistencyRules are evaluated in this order; the order is part of
// the report contract.
var consistencyRules = []rule{
	{name: "age_vs_dob", requires: []string{"dob", "age"}, eval: checkAgeVsDOB},
	{name: "admission_after_discharge", requires: []string{"admission_date", "discharge_date"}, eval: checkAdmissionOrder},
	{name: "unexpected_gender_codes", requires: []string{"gender"}, eval: checkGenderCodes},
	{name: "duplicate_patient_id", requires: []string{"patient_id"}, eval: checkDuplicatePatientIDs},
}

// AnalyzeConsistency runs the cross-field logical checks. Rules whose
// fields are absent from the dataset are skipped; rules with no flagged
// records contribute no issue.
func AnalyzeConsistency(ds *dataset.Dataset, cfg Config) []Issue {
	return evaluate(ds, cfg, consistencyRules)
}

// checkAgeVsDOB flags records whose stored age disagrees with the age
// derived from dob by more than the configured tolerance. Unparsable
// dob values read as missing and are skipped, not flagged.
func checkAgeVsDOB(ds *dataset.Dataset, cfg Config) Table {
	ids := idColumns(ds)
	t := Table{Columns: append(append([]string{}, ids...), "dob", "age", "computed_age")}
	ref := cfg.referenceDay()
	for i := 0; i < ds.Len(); i++ {
		r := ds.Record(i)
		dob, ok := r.Date("dob")
		if !ok {
			continue
		}
		age, ok := r.Int("age")
		if !ok {
			continue
		}
		days := ref.Sub(dob).Hours() / 24
		computed := int(math.Floor(days / 365))
		diff := computed - age
		if diff < 0 {
			diff = -diff
		}
		if diff <= cfg.AgeToleranceYears {
			continue
		}
		dobRaw, _ := r.String("dob")
		ageRaw, _ := r.String("age")
		row := append(idCells(r, ids), dobRaw, ageRaw, strconv.Itoa(computed))
		t.Rows = append(t.Rows, row)
	}
	return t
}

// checkAdmissionOrder flags records admitted after they were
// discharged. Equal dates pass.
func checkAdmissionOrder(ds *dataset.Dataset, cfg Config) Table {
	ids := idColumns(ds)
	t := Table{Columns: append(append([]string{}, ids...), "admission_date", "discharge_date")}
	for i := 0; i < ds.Len(); i++ {
		r := ds.Record(i)
		adm, ok := r.Date("admission_date")
		if !ok {
			continue
		}
		dis, ok := r.Date("discharge_date")
		if !ok {
			continue
		}
		if !adm.After(dis) {
			continue
		}
		admRaw, _ := r.String("admission_date")
		disRaw, _ := r.String("discharge_date")
		t.Rows = append(t.Rows, append(idCells(r, ids), admRaw, disRaw))
	}
	return t
}

// checkGenderCodes flags non-null gender values outside the allowed
// vocabulary. Missing gender is never flagged.
func checkGenderCodes(ds *dataset.Dataset, cfg Config) Table {
	ids := idColumns(ds)
	t := Table{Columns: append(append([]string{}, ids...), "gender")}
	for i := 0; i < ds.Len(); i++ {
		r := ds.Record(i)
		code, ok := r.String("gender")
		if !ok || cfg.genderAllowed(code) {
			continue
		}
		t.Rows = append(t.Rows, append(idCells(r, ids), code))
	}
	return t
}

// checkDuplicatePatientIDs flags every record of any patient_id that
// appears more than once, not just the extra occurrences. The table
// carries the full record and is ordered by patient_id.
func checkDuplicatePatientIDs(ds *dataset.Dataset, cfg Config) Table {
	counts := make(map[string]int)
	for i := 0; i < ds.Len(); i++ {
		if id, ok := ds.Record(i).String("patient_id"); ok {
			counts[id]++
		}
	}
	fields := ds.Fields()
	t := Table{Columns: fields}
	for i := 0; i < ds.Len(); i++ {
		r := ds.Record(i)
		id, ok := r.String("patient_id")
		if !ok || counts[id] < 2 {
			continue
		}
		row := make([]string, 0, len(fields))
		for _, f := range fields {
			s, _ := r.String(f)
			row = append(row, s)
		}
		t.Rows = append(t.Rows, row)
	}
	idCol := 0
	for i, f := range fields {
		if f == "patient_id" {
			idCol = i
			break
		}
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i][idCol] < t.Rows[j][idCol]
	})
	return t
}
