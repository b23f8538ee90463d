package source

import (
	"context"
	"fmt"
	"os"

	"github.com/arloliu/teamsplit/duration"
	"github.com/arloliu/teamsplit/types"
	"gopkg.in/yaml.v3"
)

// Sheet is a parsed job sheet.
type Sheet struct {
	// TeamCount and Quantum are optional request defaults (0 = unset).
	TeamCount int
	Quantum   int

	Jobs []types.Job
}

// Problem converts the sheet into a Problem, falling back to the given
// defaults for unset team count and quantum.
func (s Sheet) Problem(defaultTeams, defaultQuantum int) types.Problem {
	p := types.Problem{Jobs: s.Jobs, TeamCount: s.TeamCount, Quantum: s.Quantum}
	if p.TeamCount == 0 {
		p.TeamCount = defaultTeams
	}
	if p.Quantum == 0 {
		p.Quantum = defaultQuantum
	}

	return p
}

type sheetFile struct {
	TeamCount int        `yaml:"teamCount"`
	Quantum   int        `yaml:"quantum"`
	Jobs      []sheetJob `yaml:"jobs"`
}

type sheetJob struct {
	Name     string `yaml:"name"`
	Duration string `yaml:"duration"`
	Team     int    `yaml:"team"`
}

// ParseSheet decodes a YAML job sheet.
//
// Format:
//
//	teamCount: 3        # optional
//	quantum: 15         # optional
//	jobs:
//	  - name: 12 Oak St
//	    duration: 1h30m # optional; omitted durations are resolved by lookup
//	  - name: 3 Elm Ave
//	    duration: "45"
//	    team: 2         # optional pinned team
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Sheet: Parsed sheet, jobs in document order
//   - error: YAML or duration error
func ParseSheet(data []byte) (Sheet, error) {
	var doc sheetFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Sheet{}, fmt.Errorf("failed to parse job sheet: %w", err)
	}

	sheet := Sheet{
		TeamCount: doc.TeamCount,
		Quantum:   doc.Quantum,
		Jobs:      make([]types.Job, len(doc.Jobs)),
	}

	for i, j := range doc.Jobs {
		job := types.Job{Name: j.Name, FixedTeam: j.Team}
		if j.Duration != "" {
			minutes, err := duration.Parse(j.Duration)
			if err != nil {
				return Sheet{}, fmt.Errorf("job %d (%q): %w", i+1, j.Name, err)
			}
			job.DurationMinutes = minutes
		}
		sheet.Jobs[i] = job
	}

	return sheet, nil
}

// File implements a job source reading a YAML job sheet from disk.
//
// The file is read on every call so edits are picked up without restarts.
type File struct {
	path string
}

var _ types.JobSource = (*File)(nil)

// NewFile creates a job source for the sheet at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads and parses the whole sheet, including its optional defaults.
func (f *File) Load(ctx context.Context) (Sheet, error) {
	if err := ctx.Err(); err != nil {
		return Sheet{}, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return Sheet{}, fmt.Errorf("failed to read job sheet %s: %w", f.path, err)
	}

	sheet, err := ParseSheet(data)
	if err != nil {
		return Sheet{}, fmt.Errorf("%s: %w", f.path, err)
	}

	return sheet, nil
}

// ListJobs returns the sheet's jobs in file order.
func (f *File) ListJobs(ctx context.Context) ([]types.Job, error) {
	sheet, err := f.Load(ctx)
	if err != nil {
		return nil, err
	}

	return sheet.Jobs, nil
}
