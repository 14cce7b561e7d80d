package dataset

// DemoFields is the column order of the bundled demonstration extract.
var DemoFields = []string{
	"patient_id", "dob", "age", "gender", "admission_date", "discharge_date",
	"heart_rate", "systolic_bp", "diastolic_bp", "temperature_c", "hb_g_dl", "bmi",
}

// Demo returns the reference five-record extract used by the demo
// command and the regression tests. It deliberately contains a
// duplicated patient, reversed admission dates, an unparsable date of
// birth, an unexpected gender code, implausible vitals, and a record
// with all vitals null.
func Demo() *Dataset {
	rows := [][]Value{
		{Cell("P001"), Cell("1980-05-12"), Cell("45"), Cell("F"), Cell("2025-10-10"), Cell("2025-10-12"),
			Cell("78"), Cell("120"), Cell("80"), Cell("37.0"), Cell("13.5"), Cell("24.5")},
		{Cell("P002"), Cell("1990-01-01"), Cell("35"), Cell("Male"), Cell("2025-09-20"), Cell("2025-09-19"),
			Cell("10"), Cell("80"), Cell("90"), Cell("36.8"), Cell("2.9"), Cell("22.0")},
		{Cell("P003"), Cell("not a date"), Cell("30"), Cell("X"), Cell("2025-11-01"), Cell("2025-11-05"),
			Cell("85"), Cell("110"), Cell("70"), Cell("40.5"), Cell("15.0"), Cell("300.0")},
		{Cell("P001"), Cell("1980-05-12"), Cell("45"), Cell("F"), Cell("2025-10-10"), Cell("2025-10-12"),
			Cell("78"), Cell("120"), Cell("80"), Cell("37.0"), Cell("13.5"), Cell("24.5")},
		{Cell("P004"), Cell("2000-07-15"), Cell("25"), Null(), Null(), Null(),
			Null(), Null(), Null(), Null(), Null(), Null()},
	}
	return New(DemoFields, rows)
}
