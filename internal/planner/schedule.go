package planner

import "time"

const dateLayout = "2006-01-02"

// buildDailyPlan lays topics out across learning days and appends the
// revision phase. start is the date stamped on day 1.
func buildDailyPlan(start time.Time, topics []string, alloc map[string]float64, deadlineDays int, profile Profile) []DaySchedule {
	pattern := patternTable[profile.StudyPattern]
	daily := profile.DailyAvailableHours
	times := profile.PreferredTimes

	// Revision claims the tail of the deadline but can never exceed it;
	// for very short deadlines the learning phase is empty.
	revisionDays := max(2, int(0.2*float64(deadlineDays)))
	if revisionDays > deadlineDays {
		revisionDays = deadlineDays
	}
	studyDays := deadlineDays - revisionDays

	plan := make([]DaySchedule, 0, deadlineDays)

	// Topics are consumed from a single FIFO queue shared across days;
	// progress tracks hours already scheduled per topic.
	queue := append([]string(nil), topics...)
	progress := make(map[string]float64, len(topics))
	dayNum := 0

	for day := 0; day < studyDays; day++ {
		dayNum++
		sched := DaySchedule{
			Day:           dayNum,
			Date:          start.AddDate(0, 0, day).Format(dateLayout),
			Phase:         PhaseLearning,
			PreferredTime: times[day%len(times)],
			Sessions:      []Session{},
		}

		hoursRemaining := daily
		for hoursRemaining > 0 && len(queue) > 0 {
			topic := queue[0]
			timeNeeded := alloc[topic] - progress[topic]

			sessionHours := min(float64(pattern.SessionLength)/60, hoursRemaining, timeNeeded)
			if sessionHours <= minSessionHours {
				queue = queue[1:]
				continue
			}

			isWeak := profile.IsWeakArea(topic)
			sched.Sessions = append(sched.Sessions, Session{
				Topic:           topic,
				DurationMinutes: int(sessionHours * 60),
				Activities:      sessionActivities(topic, sessionHours, isWeak),
				IsWeakArea:      isWeak,
			})
			sched.TotalHours += sessionHours

			progress[topic] += sessionHours
			hoursRemaining -= sessionHours

			// A break follows every session that doesn't end the day.
			// Breaks consume the hour budget but are not sessions.
			if hoursRemaining > 0 {
				hoursRemaining -= float64(pattern.BreakLength) / 60
			}

			if progress[topic] >= alloc[topic] {
				queue = queue[1:]
			}
		}

		plan = append(plan, sched)
	}

	for day := 0; day < revisionDays; day++ {
		dayNum++

		var phase Phase
		switch day {
		case revisionDays - 1:
			phase = PhaseFinalReview
		case revisionDays - 2:
			phase = PhaseIntensive
		default:
			phase = PhaseRevision
		}

		plan = append(plan, DaySchedule{
			Day:           dayNum,
			Date:          start.AddDate(0, 0, studyDays+day).Format(dateLayout),
			Phase:         phase,
			PreferredTime: times[day%len(times)],
			Sessions:      revisionSessions(topics, profile.WeakAreas, daily, phase),
			TotalHours:    daily,
		})
	}

	return plan
}
