package planner

import (
	"fmt"
	"strings"
)

// studyTips produces the personalized tip list. The rules are a fixed table
// keyed by pace, pattern and weak-area presence, so identical profiles always
// yield the same tips in the same order.
func studyTips(profile Profile) []string {
	var tips []string

	switch profile.LearningPace {
	case PaceSlow:
		tips = append(tips,
			"Take your time - deep understanding beats speed",
			"Make detailed notes and revisit them daily")
	case PaceFast:
		tips = append(tips,
			"You learn quickly - but don't skip revision!",
			"Challenge yourself with advanced problems")
	}

	switch profile.StudyPattern {
	case PatternPomodoro:
		tips = append(tips, "Use a Pomodoro timer app to stay on track")
	case PatternDeepWork:
		tips = append(tips, "Eliminate all distractions during 90-min sessions")
	}

	if len(profile.WeakAreas) > 0 {
		named := profile.WeakAreas
		if len(named) > 3 {
			named = named[:3]
		}
		tips = append(tips,
			fmt.Sprintf("Extra focus on: %s", strings.Join(named, ", ")),
			"Consider finding a study partner for weak topics")
	}

	tips = append(tips,
		"Stay hydrated and take regular breaks",
		"Get 7-8 hours of sleep for better retention")

	return tips
}
