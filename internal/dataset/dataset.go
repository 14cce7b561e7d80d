package dataset

import (
	"strconv"
	"strings"
	"time"
)

// Value is a single cell: a raw string plus an explicit null marker.
// Parse failures downstream are treated the same as null, so this is
// the only "missing" representation in the system.
type Value struct {
	Raw  string
	Null bool
}

// Cell builds a Value from a raw string. Empty input becomes null.
func Cell(raw string) Value {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Value{Null: true}
	}
	return Value{Raw: raw}
}

// Null returns the explicit missing value.
func Null() Value { return Value{Null: true} }

// Record is one patient-encounter row. Records are immutable once the
// Dataset is constructed; accessors return (value, ok) pairs where ok
// is false for absent, null, or unparsable values.
type Record struct {
	values map[string]Value
}

// Has reports whether the field exists on this record (null counts as present).
func (r Record) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Value returns the raw cell for a field.
func (r Record) Value(field string) (Value, bool) {
	v, ok := r.values[field]
	return v, ok
}

// String returns the non-null string value of a field.
func (r Record) String(field string) (string, bool) {
	v, ok := r.values[field]
	if !ok || v.Null {
		return "", false
	}
	return v.Raw, true
}

// Float parses a field as a float64.
func (r Record) Float(field string) (float64, bool) {
	s, ok := r.String(field)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int parses a field as an int. Values stored as floats ("45.0") are
// accepted when they carry no fractional part.
func (r Record) Int(field string) (int, bool) {
	s, ok := r.String(field)
	if !ok {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

var dateLayouts = []string{
	time.RFC3339, "2006-01-02", "2006/01/02", "02/01/2006", "01/02/2006",
}

// Date parses a field as a calendar date. Unparsable values read as
// missing, never as an error.
func (r Record) Date(field string) (time.Time, bool) {
	s, ok := r.String(field)
	if !ok {
		return time.Time{}, false
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Dataset is an ordered collection of Records sharing a common field
// set. Field order is the natural column order used for reporting.
type Dataset struct {
	fields  []string
	records []Record
}

// New builds a Dataset from an ordered field list and row cells. Rows
// shorter than the field list are padded with nulls.
func New(fields []string, rows [][]Value) *Dataset {
	ds := &Dataset{fields: append([]string(nil), fields...)}
	for _, row := range rows {
		values := make(map[string]Value, len(fields))
		for i, f := range fields {
			if i < len(row) {
				values[f] = row[i]
			} else {
				values[f] = Null()
			}
		}
		ds.records = append(ds.records, Record{values: values})
	}
	return ds
}

// Len returns the number of records.
func (ds *Dataset) Len() int { return len(ds.records) }

// Fields returns the column order.
func (ds *Dataset) Fields() []string { return append([]string(nil), ds.fields...) }

// Record returns the i-th record.
func (ds *Dataset) Record(i int) Record { return ds.records[i] }

// Has reports whether every named field is part of the dataset's field
// set. Rules use this as their presence guard before evaluating.
func (ds *Dataset) Has(fields ...string) bool {
	for _, want := range fields {
		found := false
		for _, f := range ds.fields {
			if f == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
