package planner

import (
	"strings"
	"testing"
	"time"
)

func renderedPlan(t *testing.T) *Plan {
	t.Helper()
	g := NewWithClock(func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	})
	profile := Profile{
		LearningPace:        PaceModerate,
		StudyPattern:        PatternPomodoro,
		DailyAvailableHours: 4,
		PreferredTimes:      []string{"morning", "evening"},
		WeakAreas:           []string{"Neural Networks"},
	}
	plan, err := g.GeneratePlan(profile, "Deep Learning",
		[]string{"Linear Regression", "Neural Networks", "CNN"}, 10, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return plan
}

func TestSummaryFeasible(t *testing.T) {
	out := Summary(renderedPlan(t))

	for _, want := range []string{
		"PERSONALIZED STUDY PLAN FOR DEEP LEARNING",
		"Total Topics: 3",
		"Deadline: 2026-03-12",
		"Learning Pace: Moderate",
		"Study Pattern: Pomodoro",
		"Day 1 (2026-03-02) - Learning",
		"Preferred Time: Morning",
		"Final Review & Mock Test",
		"PERSONALIZED TIPS:",
		"(Weak Area)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestSummaryIdempotent(t *testing.T) {
	plan := renderedPlan(t)
	if Summary(plan) != Summary(plan) {
		t.Error("rendering the same plan twice differs")
	}
}

func TestSummaryTruncatesSessions(t *testing.T) {
	plan := &Plan{
		Feasible:    true,
		Subject:     "Maths",
		Profile:     &Profile{LearningPace: PaceModerate, StudyPattern: PatternPomodoro},
		TotalTopics: 5,
		DailyPlan: []DaySchedule{{
			Day:           1,
			Date:          "2026-03-02",
			Phase:         PhaseLearning,
			PreferredTime: "morning",
			Sessions: []Session{
				{Topic: "a", DurationMinutes: 25},
				{Topic: "b", DurationMinutes: 25},
				{Topic: "c", DurationMinutes: 25},
				{Topic: "d", DurationMinutes: 25},
				{Topic: "e", DurationMinutes: 25},
			},
			TotalHours: 2,
		}},
	}

	out := Summary(plan)
	if !strings.Contains(out, "... and 2 more sessions") {
		t.Errorf("missing overflow count:\n%s", out)
	}
	if strings.Contains(out, "4. d") || strings.Contains(out, "5. e") {
		t.Error("sessions beyond the first three were rendered")
	}
}

func TestSummaryInfeasible(t *testing.T) {
	plan := infeasiblePlan(16.8, 6, 2, 3)
	out := Summary(plan)

	if !strings.Contains(out, "Not enough time!") {
		t.Errorf("missing message:\n%s", out)
	}
	if !strings.Contains(out, "1. Study 8.4 hours per day instead of 3") {
		t.Errorf("missing numbered suggestion:\n%s", out)
	}
	if !strings.Contains(out, "3. Consider switching to 'fast' learning pace") {
		t.Errorf("missing pace suggestion:\n%s", out)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"moderate", "Moderate"},
		{"deep_work", "Deep_Work"},
		{"late night", "Late Night"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
