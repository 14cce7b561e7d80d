package run

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/ehrqc-cli/internal/qc"
	"github.com/KaramelBytes/ehrqc-cli/internal/utils"
)

const runFileName = "run.json"

// Run is the metadata persisted alongside one quality-check export, so
// downstream consumers can tell which source and run produced a set of
// tables.
type Run struct {
	ID        string         `json:"id"`
	Source    string         `json:"source"`
	Records   int            `json:"records"`
	Issues    map[string]int `json:"issues"`
	CreatedAt time.Time      `json:"created_at"`
}

// New builds run metadata for a completed report.
func New(source string, rep *qc.Report) *Run {
	issues := make(map[string]int, len(rep.Issues))
	for _, is := range rep.Issues {
		issues[is.Name] = is.Table.Len()
	}
	return &Run{
		ID:        uuid.NewString(),
		Source:    source,
		Records:   rep.TotalRecords,
		Issues:    issues,
		CreatedAt: time.Now(),
	}
}

// Save writes run.json into dir using an atomic write.
func (r *Run) Save(dir string) error {
	if err := utils.EnsureDir(dir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	data, err := utils.PrettyJSON(r)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(dir, runFileName), data)
}

// Load reads a run.json from the provided directory.
func Load(dir string) (*Run, error) {
	path := filepath.Join(dir, runFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("run not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read run: %w", err)
	}
	var r Run
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse run: %w", err)
	}
	return &r, nil
}
