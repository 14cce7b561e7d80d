package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/ehrqc-cli/internal/run"
)

const fixtureCSV = `patient_id,dob,age,gender,admission_date,discharge_date,heart_rate,systolic_bp,diastolic_bp,temperature_c,hb_g_dl,bmi
P001,1980-05-12,45,F,2025-10-10,2025-10-12,78,120,80,37.0,13.5,24.5
P002,1990-01-01,35,Male,2025-09-20,2025-09-19,10,80,90,36.8,2.9,22.0
P001,1980-05-12,45,F,2025-10-10,2025-10-12,78,120,80,37.0,13.5,24.5
`

func writeFixtureCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "extract.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixtureCSV), 0o644))
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCheckWritesCSVReport(t *testing.T) {
	src := writeFixtureCSV(t)
	out := filepath.Join(t.TempDir(), "qc")
	require.NoError(t, execute(t,
		"check", src,
		"--output-dir", out,
		"--reference-date", "2025-11-15",
	))

	assert.FileExists(t, filepath.Join(out, "ehr_qc_summary.csv"))
	assert.FileExists(t, filepath.Join(out, "duplicate_patient_id.csv"))
	assert.FileExists(t, filepath.Join(out, "admission_after_discharge.csv"))

	meta, err := run.Load(out)
	require.NoError(t, err)
	assert.Equal(t, src, meta.Source)
	assert.Equal(t, 3, meta.Records)
	assert.Equal(t, 2, meta.Issues["duplicate_patient_id"])
}

func TestCheckWritesWorkbook(t *testing.T) {
	src := writeFixtureCSV(t)
	out := filepath.Join(t.TempDir(), "qc")
	require.NoError(t, execute(t,
		"check", src,
		"--output-dir", out,
		"--format", "xlsx",
		"--reference-date", "2025-11-15",
	))
	assert.FileExists(t, filepath.Join(out, "ehr_qc_report.xlsx"))
}

func TestCheckRejectsUnknownFormat(t *testing.T) {
	src := writeFixtureCSV(t)
	err := execute(t,
		"check", src,
		"--output-dir", t.TempDir(),
		"--format", "parquet",
	)
	assert.Error(t, err)
}

func TestDemoWritesBundledExtract(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, execute(t,
		"demo",
		"--output-dir", out,
		"--reference-date", "2025-11-15",
	))
	assert.FileExists(t, filepath.Join(out, "demo_ehr_data.csv"))
	assert.FileExists(t, filepath.Join(out, "ehr_qc_summary.csv"))
	assert.FileExists(t, filepath.Join(out, "hb_implausible.csv"))
}

func TestCompletenessCommand(t *testing.T) {
	src := writeFixtureCSV(t)
	require.NoError(t, execute(t, "completeness", src))
}
