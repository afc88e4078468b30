package planner

import (
	"reflect"
	"strings"
	"testing"
)

func TestStudyTipsSlowPomodoro(t *testing.T) {
	profile := Profile{
		LearningPace: PaceSlow,
		StudyPattern: PatternPomodoro,
	}
	tips := studyTips(profile)

	want := []string{
		"Take your time - deep understanding beats speed",
		"Make detailed notes and revisit them daily",
		"Use a Pomodoro timer app to stay on track",
		"Stay hydrated and take regular breaks",
		"Get 7-8 hours of sleep for better retention",
	}
	if !reflect.DeepEqual(tips, want) {
		t.Errorf("tips = %v, want %v", tips, want)
	}
}

func TestStudyTipsFastDeepWork(t *testing.T) {
	profile := Profile{
		LearningPace: PaceFast,
		StudyPattern: PatternDeepWork,
	}
	tips := studyTips(profile)

	if tips[0] != "You learn quickly - but don't skip revision!" {
		t.Errorf("tips[0] = %q", tips[0])
	}
	if tips[2] != "Eliminate all distractions during 90-min sessions" {
		t.Errorf("tips[2] = %q", tips[2])
	}
}

func TestStudyTipsModerateShortBurstAddsOnlyUniversal(t *testing.T) {
	profile := Profile{
		LearningPace: PaceModerate,
		StudyPattern: PatternShortBurst,
	}
	tips := studyTips(profile)

	want := []string{
		"Stay hydrated and take regular breaks",
		"Get 7-8 hours of sleep for better retention",
	}
	if !reflect.DeepEqual(tips, want) {
		t.Errorf("tips = %v, want %v", tips, want)
	}
}

func TestStudyTipsNameAtMostThreeWeakAreas(t *testing.T) {
	profile := Profile{
		LearningPace: PaceModerate,
		StudyPattern: PatternShortBurst,
		WeakAreas:    []string{"a", "b", "c", "d"},
	}
	tips := studyTips(profile)

	var focus string
	for _, tip := range tips {
		if strings.HasPrefix(tip, "Extra focus on:") {
			focus = tip
		}
	}
	if focus != "Extra focus on: a, b, c" {
		t.Errorf("focus tip = %q", focus)
	}
}

func TestStudyTipsUniversalTipsComeLast(t *testing.T) {
	profile := Profile{
		LearningPace: PaceSlow,
		StudyPattern: PatternDeepWork,
		WeakAreas:    []string{"a"},
	}
	tips := studyTips(profile)

	n := len(tips)
	if tips[n-2] != "Stay hydrated and take regular breaks" ||
		tips[n-1] != "Get 7-8 hours of sleep for better retention" {
		t.Errorf("last tips = %v", tips[n-2:])
	}
}

func TestStudyTipsDeterministic(t *testing.T) {
	profile := Profile{
		LearningPace: PaceFast,
		StudyPattern: PatternPomodoro,
		WeakAreas:    []string{"x", "y"},
	}
	first := studyTips(profile)
	second := studyTips(profile)
	if !reflect.DeepEqual(first, second) {
		t.Error("tips are not order-stable for identical input")
	}
}
