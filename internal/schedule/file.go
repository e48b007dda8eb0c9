package schedule

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Schedule is a persisted strength plan: named tracks, each a chain of steps
type Schedule struct {
	Version string  `yaml:"version"`
	Tracks  []Track `yaml:"tracks"`
}

// Track is one independent strength timeline, e.g. one conditioning input
type Track struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one entry-point invocation. Kind selects which path runs; only the
// matching fields apply.
type Step struct {
	Kind string `yaml:"kind"` // "single", "indexes", "curve" or "batch"

	// single
	Index    int     `yaml:"index,omitempty"`
	Strength float64 `yaml:"strength,omitempty"`

	// indexes
	Indexes string `yaml:"indexes,omitempty"`

	// curve
	From             int     `yaml:"from,omitempty"`
	ToExcl           int     `yaml:"to_excl,omitempty"`
	StrengthFrom     float64 `yaml:"strength_from,omitempty"`
	StrengthTo       float64 `yaml:"strength_to,omitempty"`
	Shape            string  `yaml:"shape,omitempty"`
	RevertAtMidpoint bool    `yaml:"revert_at_midpoint,omitempty"`

	// batch
	Batch []float64 `yaml:"batch,omitempty,flow"`
}

// Resolved is the evaluated form of a schedule: plain per-frame strengths
// ready for a downstream consumer.
type Resolved struct {
	Version string          `yaml:"version"`
	Tracks  []ResolvedTrack `yaml:"tracks"`
}

type ResolvedTrack struct {
	Name   string          `yaml:"name"`
	Frames []ResolvedFrame `yaml:"frames"`
}

type ResolvedFrame struct {
	Index    int     `yaml:"index"`
	Strength float64 `yaml:"strength"`
}

// ReadSchedule reads a schedule from a YAML file
func ReadSchedule(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Schedule
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// WriteSchedule writes a schedule to a YAML file
func WriteSchedule(s *Schedule, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// WriteResolved writes evaluated per-frame strengths to a YAML file
func WriteResolved(r *Resolved, path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
