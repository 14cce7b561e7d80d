package qc

import "time"

// Range is a closed plausibility interval for a numeric field. Issue is
// the name the violation table is published under.
type Range struct {
	Field string  `mapstructure:"field" yaml:"field"`
	Min   float64 `mapstructure:"min" yaml:"min"`
	Max   float64 `mapstructure:"max" yaml:"max"`
	Issue string  `mapstructure:"issue" yaml:"issue"`
}

// Config carries the named thresholds the checks evaluate against.
// Everything here was a hard-coded constant in early revisions; keeping
// them together makes overrides explicit.
type Config struct {
	// AgeToleranceYears is the allowed |computed − stored| age gap before
	// age_vs_dob flags a record. A gap of exactly this many years passes.
	AgeToleranceYears int

	// AllowedGenderCodes is the fixed clinical vocabulary for gender.
	AllowedGenderCodes []string

	// Ranges are the per-field plausibility intervals, evaluated in order.
	Ranges []Range

	// Hemoglobin keeps its historical issue name (hb_implausible) and is
	// evaluated after the blood-pressure cross-check.
	Hemoglobin Range

	// ReferenceDate anchors age computation, at date precision. The zero
	// value means "the day of evaluation".
	ReferenceDate time.Time
}

// DefaultConfig returns the clinical defaults.
func DefaultConfig() Config {
	return Config{
		AgeToleranceYears:  1,
		AllowedGenderCodes: []string{"M", "F", "Male", "Female", "O", "Other", "U", "Unknown"},
		Ranges: []Range{
			{Field: "heart_rate", Min: 20, Max: 250, Issue: "out_of_range_heart_rate"},
			{Field: "systolic_bp", Min: 40, Max: 300, Issue: "out_of_range_systolic_bp"},
			{Field: "diastolic_bp", Min: 20, Max: 200, Issue: "out_of_range_diastolic_bp"},
			{Field: "temperature_c", Min: 30.0, Max: 45.0, Issue: "out_of_range_temperature_c"},
			{Field: "bmi", Min: 8.0, Max: 80.0, Issue: "out_of_range_bmi"},
		},
		Hemoglobin:    Range{Field: "hb_g_dl", Min: 4, Max: 25, Issue: "hb_implausible"},
		ReferenceDate: time.Time{},
	}
}

// referenceDay resolves the age baseline to date-only precision.
func (c Config) referenceDay() time.Time {
	ref := c.ReferenceDate
	if ref.IsZero() {
		ref = time.Now()
	}
	y, m, d := ref.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (c Config) genderAllowed(code string) bool {
	for _, a := range c.AllowedGenderCodes {
		if code == a {
			return true
		}
	}
	return false
}
