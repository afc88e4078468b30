package planner

import "fmt"

// sessionActivities produces the activity checklist for a learning session,
// sized by the session duration.
func sessionActivities(topic string, durationHours float64, isWeak bool) []string {
	var activities []string

	switch {
	case durationHours >= 1.5:
		activities = []string{
			fmt.Sprintf("Watch tutorial/lecture on %s (30 min)", topic),
			fmt.Sprintf("Read textbook chapter on %s (25 min)", topic),
			"Take notes and summarize key concepts (20 min)",
			"Practice problems/examples (25 min)",
			fmt.Sprintf("Create flashcards for %s (10 min)", topic),
		}
	case durationHours >= 1:
		activities = []string{
			fmt.Sprintf("Study %s theory (30 min)", topic),
			fmt.Sprintf("Practice 3-5 problems on %s (20 min)", topic),
			"Review and summarize (10 min)",
		}
	default:
		activities = []string{
			fmt.Sprintf("Quick review of %s concepts", topic),
			"Practice 2-3 problems",
		}
	}

	if isWeak {
		activities = append(activities, "Extra focus needed - spend more time on examples")
	}

	return activities
}

// revisionSessions builds the session list for a revision-phase day.
func revisionSessions(topics, weakAreas []string, dailyHours float64, phase Phase) []Session {
	switch phase {
	case PhaseFinalReview:
		return []Session{{
			Topic:           "All Topics",
			DurationMinutes: int(dailyHours * 30),
			Activities: []string{
				"Quick review of all topics (1 hour)",
				"Take full mock test (1.5 hours)",
				"Review mistakes and weak areas (30 min)",
			},
		}}

	case PhaseIntensive:
		perTopic := int(dailyHours*60) / max(len(weakAreas), 1)
		sessions := make([]Session, 0, len(weakAreas))
		for _, topic := range weakAreas {
			sessions = append(sessions, Session{
				Topic:           topic,
				DurationMinutes: perTopic,
				Activities: []string{
					fmt.Sprintf("Intensive review of %s", topic),
					fmt.Sprintf("Practice difficult problems on %s", topic),
					"Clarify doubts",
				},
				IsWeakArea: true,
			})
		}
		return sessions

	default:
		perTopic := int(dailyHours*60) / len(topics)
		sessions := make([]Session, 0, len(topics))
		for _, topic := range topics {
			sessions = append(sessions, Session{
				Topic:           topic,
				DurationMinutes: perTopic,
				Activities: []string{
					fmt.Sprintf("Review %s notes", topic),
					"Practice mixed problems",
				},
			})
		}
		return sessions
	}
}
