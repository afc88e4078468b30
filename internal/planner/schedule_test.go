package planner

import (
	"testing"
	"time"
)

var scheduleStart = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestBuildDailyPlanLearningDay(t *testing.T) {
	profile := Profile{
		LearningPace:        PaceFast,
		StudyPattern:        PatternPomodoro,
		DailyAvailableHours: 2,
		PreferredTimes:      []string{"morning"},
	}
	alloc := map[string]float64{"algebra": 1.5}

	plan := buildDailyPlan(scheduleStart, []string{"algebra"}, alloc, 3, profile)
	if len(plan) != 3 {
		t.Fatalf("len(plan) = %d, want 3", len(plan))
	}

	// Day 1: three full pomodoros plus a 15-minute remainder session,
	// with a 5-minute break deducted after each session.
	day := plan[0]
	if day.Date != "2026-03-02" {
		t.Errorf("date = %q", day.Date)
	}
	wantDurations := []int{25, 25, 25, 15}
	if len(day.Sessions) != len(wantDurations) {
		t.Fatalf("sessions = %d, want %d", len(day.Sessions), len(wantDurations))
	}
	for i, want := range wantDurations {
		if day.Sessions[i].DurationMinutes != want {
			t.Errorf("session %d duration = %d, want %d", i, day.Sessions[i].DurationMinutes, want)
		}
		if day.Sessions[i].Topic != "algebra" {
			t.Errorf("session %d topic = %q", i, day.Sessions[i].Topic)
		}
	}
	if day.TotalHours != 1.5 {
		t.Errorf("total hours = %g, want 1.5", day.TotalHours)
	}
}

func TestBuildDailyPlanTopicQueueCarriesAcrossDays(t *testing.T) {
	profile := Profile{
		LearningPace:        PaceModerate,
		StudyPattern:        PatternDeepWork,
		DailyAvailableHours: 2,
		PreferredTimes:      []string{"evening"},
	}
	// Topic "a" needs 2.5h but only ~2h fit on day 1, so day 2 starts
	// with "a" before moving on to "b".
	alloc := map[string]float64{"a": 2.5, "b": 2.5}

	plan := buildDailyPlan(scheduleStart, []string{"a", "b"}, alloc, 5, profile)

	if got := plan[0].Sessions[0].Topic; got != "a" {
		t.Errorf("day 1 first topic = %q, want a", got)
	}
	if got := plan[1].Sessions[0].Topic; got != "a" {
		t.Errorf("day 2 should resume topic a, got %q", got)
	}
}

func TestBuildDailyPlanDropsNegligibleRemainder(t *testing.T) {
	profile := Profile{
		LearningPace:        PaceFast,
		StudyPattern:        PatternPomodoro,
		DailyAvailableHours: 2,
		PreferredTimes:      []string{"morning"},
	}
	// Remaining need below the 0.1h floor: the topic is dropped without a
	// session and the loop terminates.
	alloc := map[string]float64{"a": 0.05}

	plan := buildDailyPlan(scheduleStart, []string{"a"}, alloc, 3, profile)
	if got := len(plan[0].Sessions); got != 0 {
		t.Errorf("day 1 sessions = %d, want 0", got)
	}
}

func TestBuildDailyPlanPreferredTimesCycle(t *testing.T) {
	profile := Profile{
		LearningPace:        PaceFast,
		StudyPattern:        PatternPomodoro,
		DailyAvailableHours: 1,
		PreferredTimes:      []string{"morning", "evening"},
	}
	alloc := map[string]float64{"a": 6}

	plan := buildDailyPlan(scheduleStart, []string{"a"}, alloc, 5, profile)

	// Learning days cycle from the phase start, and revision days restart
	// the cycle at their own offset zero.
	want := []string{"morning", "evening", "morning", "morning", "evening"}
	for i, w := range want {
		if plan[i].PreferredTime != w {
			t.Errorf("day %d preferred time = %q, want %q", i+1, plan[i].PreferredTime, w)
		}
	}
}

func TestBuildDailyPlanShortDeadlineIsAllRevision(t *testing.T) {
	profile := Profile{
		LearningPace:        PaceFast,
		StudyPattern:        PatternPomodoro,
		DailyAvailableHours: 8,
		PreferredTimes:      []string{"evening"},
		WeakAreas:           []string{"a"},
	}
	alloc := map[string]float64{"a": 1.5}

	// revision_days = max(2, 0) = 2 but clamped to the 1-day deadline.
	plan := buildDailyPlan(scheduleStart, []string{"a"}, alloc, 1, profile)
	if len(plan) != 1 {
		t.Fatalf("len(plan) = %d, want 1", len(plan))
	}
	if plan[0].Phase != PhaseFinalReview {
		t.Errorf("phase = %q, want Final Review & Mock Test", plan[0].Phase)
	}
}

func TestRevisionSessions(t *testing.T) {
	topics := []string{"a", "b", "c"}
	weak := []string{"b"}

	t.Run("final review", func(t *testing.T) {
		sessions := revisionSessions(topics, weak, 4, PhaseFinalReview)
		if len(sessions) != 1 {
			t.Fatalf("sessions = %d, want 1", len(sessions))
		}
		if sessions[0].Topic != "All Topics" {
			t.Errorf("topic = %q", sessions[0].Topic)
		}
		if sessions[0].DurationMinutes != 120 { // 4h × 30
			t.Errorf("duration = %d, want 120", sessions[0].DurationMinutes)
		}
		if len(sessions[0].Activities) != 3 {
			t.Errorf("activities = %d, want 3", len(sessions[0].Activities))
		}
	})

	t.Run("intensive revision covers weak areas", func(t *testing.T) {
		sessions := revisionSessions(topics, weak, 4, PhaseIntensive)
		if len(sessions) != 1 {
			t.Fatalf("sessions = %d, want 1", len(sessions))
		}
		if sessions[0].Topic != "b" || !sessions[0].IsWeakArea {
			t.Errorf("session = %+v", sessions[0])
		}
		if sessions[0].DurationMinutes != 240 { // (4×60) ÷ 1 weak area
			t.Errorf("duration = %d, want 240", sessions[0].DurationMinutes)
		}
	})

	t.Run("intensive revision with no weak areas is empty", func(t *testing.T) {
		sessions := revisionSessions(topics, nil, 4, PhaseIntensive)
		if len(sessions) != 0 {
			t.Errorf("sessions = %d, want 0", len(sessions))
		}
	})

	t.Run("plain revision covers every topic", func(t *testing.T) {
		sessions := revisionSessions(topics, weak, 4, PhaseRevision)
		if len(sessions) != 3 {
			t.Fatalf("sessions = %d, want 3", len(sessions))
		}
		for i, s := range sessions {
			if s.Topic != topics[i] {
				t.Errorf("session %d topic = %q, want %q", i, s.Topic, topics[i])
			}
			if s.DurationMinutes != 80 { // (4×60) ÷ 3 topics, integer division
				t.Errorf("session %d duration = %d, want 80", i, s.DurationMinutes)
			}
		}
	})
}
