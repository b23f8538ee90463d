package lookup

import (
	"context"
	"fmt"
	"maps"
	"os"

	"github.com/arloliu/teamsplit/duration"
	"github.com/arloliu/teamsplit/types"
	"gopkg.in/yaml.v3"
)

// StaticFetcher serves a fixed table.
type StaticFetcher struct {
	durations map[string]int
}

var _ types.DurationFetcher = (*StaticFetcher)(nil)

// NewStaticFetcher creates a fetcher that always returns a copy of durations.
func NewStaticFetcher(durations map[string]int) *StaticFetcher {
	return &StaticFetcher{durations: maps.Clone(durations)}
}

// FetchDurations returns a copy of the fixed table.
func (s *StaticFetcher) FetchDurations(_ context.Context) (map[string]int, error) {
	return maps.Clone(s.durations), nil
}

// FileFetcher reads a YAML duration table from disk on every fetch.
//
// File format:
//
//	durations:
//	  "12 Oak St": 1h30m
//	  "3 Elm Ave": 45
//	  "7 Pine Rd": "1:15"
type FileFetcher struct {
	path string
}

var _ types.DurationFetcher = (*FileFetcher)(nil)

// NewFileFetcher creates a fetcher reading path.
func NewFileFetcher(path string) *FileFetcher {
	return &FileFetcher{path: path}
}

type durationFile struct {
	Durations map[string]string `yaml:"durations"`
}

// FetchDurations reads and parses the file.
func (f *FileFetcher) FetchDurations(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read duration table %s: %w", f.path, err)
	}

	var doc durationFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse duration table %s: %w", f.path, err)
	}

	out := make(map[string]int, len(doc.Durations))
	for name, text := range doc.Durations {
		minutes, err := duration.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("duration table %s, entry %q: %w", f.path, name, err)
		}
		out[name] = minutes
	}

	return out, nil
}
