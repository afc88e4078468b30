package planner

import "testing"

func TestAllocateBaseHoursByPace(t *testing.T) {
	tests := []struct {
		pace Pace
		want float64
	}{
		{PaceSlow, 4.0},
		{PaceModerate, 2.5},
		{PaceFast, 1.5},
	}

	for _, tt := range tests {
		profile := Profile{LearningPace: tt.pace}
		alloc := allocateTopicHours([]string{"algebra"}, profile, nil)
		if got := alloc["algebra"]; got != tt.want {
			t.Errorf("pace %s: alloc = %g, want %g", tt.pace, got, tt.want)
		}
	}
}

func TestAllocateWeakAreaMultiplier(t *testing.T) {
	profile := Profile{
		LearningPace: PaceModerate,
		WeakAreas:    []string{"calculus"},
	}
	alloc := allocateTopicHours([]string{"calculus", "algebra"}, profile, nil)

	if got := alloc["calculus"]; got != 3.8 { // 2.5 × 1.5 = 3.75 → 3.8
		t.Errorf("weak area alloc = %g, want 3.8", got)
	}
	if got := alloc["algebra"]; got != 2.5 {
		t.Errorf("normal alloc = %g, want 2.5", got)
	}
}

func TestAllocateDifficultyMultipliers(t *testing.T) {
	profile := Profile{LearningPace: PaceModerate}
	diffs := map[string]Difficulty{
		"hard-topic":   DifficultyHard,
		"easy-topic":   DifficultyEasy,
		"medium-topic": DifficultyMedium,
	}
	topics := []string{"hard-topic", "easy-topic", "medium-topic", "untagged"}
	alloc := allocateTopicHours(topics, profile, diffs)

	tests := []struct {
		topic string
		want  float64
	}{
		{"hard-topic", 3.3},   // 2.5 × 1.3 = 3.25 → 3.3
		{"easy-topic", 1.8},   // 2.5 × 0.7 = 1.75 → 1.8
		{"medium-topic", 2.5}, // no multiplier
		{"untagged", 2.5},     // no multiplier
	}
	for _, tt := range tests {
		if got := alloc[tt.topic]; got != tt.want {
			t.Errorf("%s alloc = %g, want %g", tt.topic, got, tt.want)
		}
	}
}

func TestAllocateWeakAndHardCompose(t *testing.T) {
	// Spec example: moderate pace, weak area, hard difficulty.
	profile := Profile{
		LearningPace: PaceModerate,
		WeakAreas:    []string{"neural-nets"},
	}
	diffs := map[string]Difficulty{"neural-nets": DifficultyHard}

	alloc := allocateTopicHours([]string{"neural-nets"}, profile, diffs)
	if got := alloc["neural-nets"]; got != 4.9 { // 2.5 × 1.5 × 1.3 = 4.875 → 4.9
		t.Errorf("weak+hard alloc = %g, want 4.9", got)
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{4.875, 4.9},
		{1.04, 1.0},
		{2.5, 2.5},
		{0, 0},
	}
	for _, tt := range tests {
		if got := round1(tt.in); got != tt.want {
			t.Errorf("round1(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}
