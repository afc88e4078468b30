// Package profile loads and validates student profile documents.
//
// A profile is a small JSON object describing how a student studies. Every
// field is optional; omitted fields get conservative defaults so a student
// can start with an empty object and refine later.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/studiz/internal/planner"
)

// Defaults used when a profile omits a field.
const (
	DefaultPace       = planner.PaceModerate
	DefaultPattern    = planner.PatternPomodoro
	DefaultDailyHours = 3.0
)

// DefaultPreferredTimes is the time-of-day slot used when none are given.
func DefaultPreferredTimes() []string { return []string{"evening"} }

// Parse validates raw profile JSON and returns a planner.Profile with
// defaults applied for any omitted fields.
func Parse(raw []byte) (planner.Profile, error) {
	if err := validateDocument(raw); err != nil {
		return planner.Profile{}, err
	}

	// The schema guarantees types and enum membership; decode is mechanical.
	var doc struct {
		LearningPace        *string  `json:"learning_pace"`
		StudyPattern        *string  `json:"study_pattern"`
		DailyAvailableHours *float64 `json:"daily_available_hours"`
		PreferredTimes      []string `json:"preferred_times"`
		WeakAreas           []string `json:"weak_areas"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return planner.Profile{}, fmt.Errorf("decode profile: %w", err)
	}

	p := planner.Profile{
		LearningPace:        DefaultPace,
		StudyPattern:        DefaultPattern,
		DailyAvailableHours: DefaultDailyHours,
		PreferredTimes:      DefaultPreferredTimes(),
		WeakAreas:           []string{},
	}

	if doc.LearningPace != nil {
		pace, err := planner.ParsePace(*doc.LearningPace)
		if err != nil {
			return planner.Profile{}, err
		}
		p.LearningPace = pace
	}
	if doc.StudyPattern != nil {
		pattern, err := planner.ParsePattern(*doc.StudyPattern)
		if err != nil {
			return planner.Profile{}, err
		}
		p.StudyPattern = pattern
	}
	if doc.DailyAvailableHours != nil {
		p.DailyAvailableHours = *doc.DailyAvailableHours
	}
	if doc.PreferredTimes != nil {
		p.PreferredTimes = doc.PreferredTimes
	}
	if doc.WeakAreas != nil {
		p.WeakAreas = doc.WeakAreas
	}

	return p, nil
}

// LoadFile reads and parses a profile document from disk.
func LoadFile(path string) (planner.Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return planner.Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}
	p, err := Parse(raw)
	if err != nil {
		return planner.Profile{}, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}
