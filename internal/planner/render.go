package planner

import (
	"fmt"
	"strings"
)

// maxRenderedSessions caps how many sessions a day block shows before
// collapsing the rest into an overflow count.
const maxRenderedSessions = 3

// Summary renders a plan as human-readable text. It is a pure formatter:
// calling it twice on the same plan yields identical output.
func Summary(plan *Plan) string {
	if !plan.Feasible {
		var b strings.Builder
		b.WriteString(plan.Message)
		b.WriteString("\n\nSuggestions:\n")
		for i, s := range plan.Suggestions {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
		}
		return b.String()
	}

	var b strings.Builder

	fmt.Fprintf(&b, "PERSONALIZED STUDY PLAN FOR %s\n\n", strings.ToUpper(plan.Subject))
	b.WriteString("OVERVIEW:\n")
	fmt.Fprintf(&b, "  Total Topics: %d\n", plan.TotalTopics)
	fmt.Fprintf(&b, "  Deadline: %s\n", plan.Deadline)
	fmt.Fprintf(&b, "  Total Hours Needed: %gh\n", plan.TotalHoursNeeded)
	fmt.Fprintf(&b, "  Buffer Time: %gh\n", plan.BufferHours)
	fmt.Fprintf(&b, "  Learning Pace: %s\n", titleCase(string(plan.Profile.LearningPace)))
	fmt.Fprintf(&b, "  Study Pattern: %s\n", titleCase(string(plan.Profile.StudyPattern)))

	b.WriteString("\nDAILY SCHEDULE:\n")
	for _, day := range plan.DailyPlan {
		fmt.Fprintf(&b, "\nDay %d (%s) - %s\n", day.Day, day.Date, day.Phase)
		fmt.Fprintf(&b, "  Preferred Time: %s\n", titleCase(day.PreferredTime))
		fmt.Fprintf(&b, "  Total Hours: %.1fh\n", day.TotalHours)

		if len(day.Sessions) == 0 {
			continue
		}
		b.WriteString("  Sessions:\n")
		for i, session := range day.Sessions {
			if i == maxRenderedSessions {
				fmt.Fprintf(&b, "    ... and %d more sessions\n", len(day.Sessions)-maxRenderedSessions)
				break
			}
			marker := ""
			if session.IsWeakArea {
				marker = " (Weak Area)"
			}
			fmt.Fprintf(&b, "    %d. %s%s (%d min)\n", i+1, session.Topic, marker, session.DurationMinutes)
		}
	}

	b.WriteString("\nPERSONALIZED TIPS:\n")
	for _, tip := range plan.StudyTips {
		fmt.Fprintf(&b, "  - %s\n", tip)
	}

	return b.String()
}

// titleCase uppercases the first letter of every word-like run, so
// "deep_work" renders as "Deep_Work" and "evening" as "Evening".
func titleCase(s string) string {
	out := []rune(s)
	atStart := true
	for i, r := range out {
		if atStart && 'a' <= r && r <= 'z' {
			out[i] = r - 'a' + 'A'
		}
		atStart = !isLetter(r)
	}
	return string(out)
}

func isLetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
