package profile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/abhisek/studiz/internal/planner"
)

func TestParseEmptyObjectGetsDefaults(t *testing.T) {
	p, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.LearningPace != planner.PaceModerate {
		t.Errorf("pace = %q", p.LearningPace)
	}
	if p.StudyPattern != planner.PatternPomodoro {
		t.Errorf("pattern = %q", p.StudyPattern)
	}
	if p.DailyAvailableHours != 3.0 {
		t.Errorf("daily hours = %v", p.DailyAvailableHours)
	}
	if !reflect.DeepEqual(p.PreferredTimes, []string{"evening"}) {
		t.Errorf("preferred times = %v", p.PreferredTimes)
	}
	if p.WeakAreas == nil || len(p.WeakAreas) != 0 {
		t.Errorf("weak areas = %v, want empty non-nil", p.WeakAreas)
	}
}

func TestParseFullProfile(t *testing.T) {
	raw := []byte(`{
		"learning_pace": "fast",
		"study_pattern": "deep_work",
		"daily_available_hours": 5.5,
		"preferred_times": ["morning", "evening"],
		"weak_areas": ["calculus"]
	}`)
	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := planner.Profile{
		LearningPace:        planner.PaceFast,
		StudyPattern:        planner.PatternDeepWork,
		DailyAvailableHours: 5.5,
		PreferredTimes:      []string{"morning", "evening"},
		WeakAreas:           []string{"calculus"},
	}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("Parse() = %+v, want %+v", p, want)
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{`},
		{"unknown pace", `{"learning_pace": "turbo"}`},
		{"unknown pattern", `{"study_pattern": "all_nighter"}`},
		{"zero hours", `{"daily_available_hours": 0}`},
		{"negative hours", `{"daily_available_hours": -2}`},
		{"too many hours", `{"daily_available_hours": 25}`},
		{"empty preferred times", `{"preferred_times": []}`},
		{"blank preferred time", `{"preferred_times": [""]}`},
		{"unknown field", `{"favourite_snack": "coffee"}`},
		{"wrong type", `{"weak_areas": "calculus"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw)); err == nil {
				t.Errorf("Parse(%s) succeeded, want error", tt.raw)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	if err := os.WriteFile(path, []byte(`{"learning_pace": "slow"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if p.LearningPace != planner.PaceSlow {
		t.Errorf("pace = %q", p.LearningPace)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
