package planner

import (
	"strings"
	"testing"
	"time"
)

// fixedClock returns a Generator pinned to a known date.
func fixedClock(t *testing.T) *Generator {
	t.Helper()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return NewWithClock(func() time.Time { return start })
}

func baseProfile() Profile {
	return Profile{
		LearningPace:        PaceModerate,
		StudyPattern:        PatternPomodoro,
		DailyAvailableHours: 4,
		PreferredTimes:      []string{"morning", "evening"},
		WeakAreas:           []string{"Neural Networks", "Backpropagation"},
	}
}

func TestGeneratePlanFeasible(t *testing.T) {
	g := fixedClock(t)
	topics := []string{
		"Linear Regression", "Logistic Regression", "Decision Trees",
		"Neural Networks", "Backpropagation", "CNN",
	}
	diffs := map[string]Difficulty{
		"Linear Regression":   DifficultyEasy,
		"Logistic Regression": DifficultyEasy,
		"Decision Trees":      DifficultyMedium,
		"Neural Networks":     DifficultyHard,
		"Backpropagation":     DifficultyHard,
		"CNN":                 DifficultyHard,
	}

	plan, err := g.GeneratePlan(baseProfile(), "Deep Learning", topics, 10, diffs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Feasible {
		t.Fatalf("plan infeasible: %s", plan.Message)
	}

	if plan.Subject != "Deep Learning" {
		t.Errorf("subject = %q", plan.Subject)
	}
	if plan.TotalTopics != 6 {
		t.Errorf("total topics = %d, want 6", plan.TotalTopics)
	}
	if plan.Deadline != "2026-03-12" {
		t.Errorf("deadline = %q, want 2026-03-12", plan.Deadline)
	}
	if plan.TotalHoursAvailable != 40 {
		t.Errorf("available = %g, want 40", plan.TotalHoursAvailable)
	}

	// Σalloc = 1.8+1.8+2.5+4.9+4.9+3.3 = 19.2; ×1.3 revision = 24.96 → 25.0
	if plan.TotalHoursNeeded != 25.0 {
		t.Errorf("needed = %g, want 25.0", plan.TotalHoursNeeded)
	}
	if plan.BufferHours != 15.0 {
		t.Errorf("buffer = %g, want 15.0", plan.BufferHours)
	}

	// Infeasible-branch fields must stay empty on the feasible branch.
	if plan.Message != "" || plan.HoursShort != 0 || plan.Suggestions != nil {
		t.Error("feasible plan carries infeasible-branch fields")
	}
}

func TestGeneratePlanDayCountInvariant(t *testing.T) {
	g := fixedClock(t)
	profile := baseProfile()

	for _, days := range []int{2, 3, 5, 10, 30} {
		plan, err := g.GeneratePlan(profile, "Maths", []string{"fractions"}, days, nil)
		if err != nil {
			t.Fatalf("days=%d: %v", days, err)
		}
		if !plan.Feasible {
			t.Fatalf("days=%d: unexpectedly infeasible", days)
		}
		if len(plan.DailyPlan) != days {
			t.Errorf("days=%d: len(daily_plan) = %d", days, len(plan.DailyPlan))
		}
	}
}

func TestGeneratePlanRevisionPhases(t *testing.T) {
	g := fixedClock(t)
	plan, err := g.GeneratePlan(baseProfile(), "Maths", []string{"fractions", "decimals"}, 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// deadline 10 → revision_days = max(2, ⌊2.0⌋) = 2, study_days = 8.
	days := plan.DailyPlan
	for i := 0; i < 8; i++ {
		if days[i].Phase != PhaseLearning {
			t.Errorf("day %d phase = %q, want Learning", i+1, days[i].Phase)
		}
	}
	if days[8].Phase != PhaseIntensive {
		t.Errorf("day 9 phase = %q, want Intensive Revision", days[8].Phase)
	}
	if days[9].Phase != PhaseFinalReview {
		t.Errorf("day 10 phase = %q, want Final Review & Mock Test", days[9].Phase)
	}
}

func TestGeneratePlanFeasibilityBoundaryInclusive(t *testing.T) {
	g := fixedClock(t)
	profile := Profile{
		LearningPace:        PaceModerate,
		StudyPattern:        PatternPomodoro,
		DailyAvailableHours: 1.3,
		PreferredTimes:      []string{"evening"},
	}
	// 4 topics × 2.5h = 10h; ×1.3 revision = 10×1.3 needed.
	// Available = 10 days × 1.3h = the same product. Equality is feasible.
	topics := []string{"a", "b", "c", "d"}

	plan, err := g.GeneratePlan(profile, "Maths", topics, 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !plan.Feasible {
		t.Fatalf("needed == available must be feasible, got: %s", plan.Message)
	}
	if plan.BufferHours != 0 {
		t.Errorf("buffer = %g, want 0", plan.BufferHours)
	}
}

func TestGeneratePlanInfeasible(t *testing.T) {
	g := fixedClock(t)
	profile := Profile{
		LearningPace:        PaceSlow,
		StudyPattern:        PatternPomodoro,
		DailyAvailableHours: 3,
		PreferredTimes:      []string{"evening"},
	}

	// Spec worked example: 3 topics × 4h × 1.4 = 16.8h needed, 6h available.
	plan, err := g.GeneratePlan(profile, "Physics", []string{"A", "B", "C"}, 2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Feasible {
		t.Fatal("expected infeasible plan")
	}

	if plan.HoursShort != 10.8 {
		t.Errorf("hours short = %g, want 10.8", plan.HoursShort)
	}
	if !strings.Contains(plan.Message, "16.8") || !strings.Contains(plan.Message, "6.0") {
		t.Errorf("message = %q", plan.Message)
	}

	want := []string{
		"Study 8.4 hours per day instead of 3",
		"Extend deadline by 4 days",
		"Consider switching to 'fast' learning pace if you're confident",
	}
	if len(plan.Suggestions) != len(want) {
		t.Fatalf("suggestions = %v", plan.Suggestions)
	}
	for i, s := range want {
		if plan.Suggestions[i] != s {
			t.Errorf("suggestion[%d] = %q, want %q", i, plan.Suggestions[i], s)
		}
	}

	// Feasible-branch fields must stay empty on the infeasible branch.
	if plan.DailyPlan != nil || plan.StudyTips != nil || plan.Subject != "" {
		t.Error("infeasible plan carries feasible-branch fields")
	}
}

func TestInfeasibleOmitsUnrealisticDailyHours(t *testing.T) {
	// needed/days > 12 → the daily-hours suggestion is dropped.
	plan := infeasiblePlan(40, 10, 2, 5)
	for _, s := range plan.Suggestions {
		if strings.Contains(s, "per day instead of") {
			t.Errorf("unexpected daily-hours suggestion: %q", s)
		}
	}
	if len(plan.Suggestions) != 2 {
		t.Errorf("suggestions = %v, want 2 entries", plan.Suggestions)
	}
}

func TestGeneratePlanValidation(t *testing.T) {
	g := fixedClock(t)
	valid := baseProfile()

	tests := []struct {
		name    string
		mutate  func(*Profile)
		topics  []string
		days    int
		diffs   map[string]Difficulty
		wantErr string
	}{
		{
			name:    "empty topics",
			topics:  nil,
			days:    5,
			wantErr: "at least one topic",
		},
		{
			name:    "duplicate topic",
			topics:  []string{"algebra", "algebra"},
			days:    5,
			wantErr: "duplicate topic",
		},
		{
			name:    "zero deadline",
			topics:  []string{"algebra"},
			days:    0,
			wantErr: "deadline must be positive",
		},
		{
			name:    "unknown pace",
			mutate:  func(p *Profile) { p.LearningPace = "turbo" },
			topics:  []string{"algebra"},
			days:    5,
			wantErr: "unknown learning pace",
		},
		{
			name:    "unknown pattern",
			mutate:  func(p *Profile) { p.StudyPattern = "cramming" },
			topics:  []string{"algebra"},
			days:    5,
			wantErr: "unknown study pattern",
		},
		{
			name:    "no preferred times",
			mutate:  func(p *Profile) { p.PreferredTimes = nil },
			topics:  []string{"algebra"},
			days:    5,
			wantErr: "preferred time",
		},
		{
			name:    "non-positive hours",
			mutate:  func(p *Profile) { p.DailyAvailableHours = 0 },
			topics:  []string{"algebra"},
			days:    5,
			wantErr: "hours must be positive",
		},
		{
			name:    "bad difficulty",
			topics:  []string{"algebra"},
			days:    5,
			diffs:   map[string]Difficulty{"algebra": "brutal"},
			wantErr: "unknown difficulty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := valid
			if tt.mutate != nil {
				tt.mutate(&profile)
			}
			_, err := g.GeneratePlan(profile, "Maths", tt.topics, tt.days, tt.diffs)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestGeneratePlanIsDeterministic(t *testing.T) {
	g := fixedClock(t)
	topics := []string{"fractions", "decimals", "percentages"}

	first, err := g.GeneratePlan(baseProfile(), "Maths", topics, 7, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := g.GeneratePlan(baseProfile(), "Maths", topics, 7, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Summary(first) != Summary(second) {
		t.Error("identical inputs produced different plans")
	}
}
