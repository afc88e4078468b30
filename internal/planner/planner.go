// Package planner generates personalized day-by-day study schedules.
//
// A plan is a pure function of its inputs: per-topic time budgets are derived
// from the student's pace, weak areas and topic difficulty; a feasibility
// check gates scheduling; feasible plans get a learning phase (topics consumed
// from a FIFO queue in pattern-sized sessions) followed by a revision phase.
// The wall clock is injected so runs are reproducible.
package planner

import (
	"fmt"
	"time"
)

// Generator builds study plans. The zero value is not usable; construct with
// New or NewWithClock.
type Generator struct {
	now func() time.Time
}

// New creates a Generator stamping calendar dates from the system clock.
func New() *Generator {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Generator with an injected time source.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// GeneratePlan computes a study plan for the given profile, topic list and
// deadline. difficulties may be nil; entries for topics not in topics are
// ignored. The returned plan is either fully feasible or fully infeasible.
// A non-nil error means the inputs were invalid and no plan was produced.
func (g *Generator) GeneratePlan(profile Profile, subject string, topics []string, deadlineDays int, difficulties map[string]Difficulty) (*Plan, error) {
	if err := validateInputs(profile, topics, deadlineDays, difficulties); err != nil {
		return nil, err
	}

	alloc := allocateTopicHours(topics, profile, difficulties)

	var totalHours float64
	for _, hours := range alloc {
		totalHours += hours
	}

	revisionRatio := paceTable[profile.LearningPace].RevisionRatio
	needed := totalHours * (1 + revisionRatio)
	available := float64(deadlineDays) * profile.DailyAvailableHours

	if needed > available {
		return infeasiblePlan(needed, available, deadlineDays, profile.DailyAvailableHours), nil
	}

	start := g.now()
	snapshot := profile

	return &Plan{
		Feasible:            true,
		Subject:             subject,
		Profile:             &snapshot,
		TotalTopics:         len(topics),
		Deadline:            start.AddDate(0, 0, deadlineDays).Format(dateLayout),
		TotalHoursNeeded:    round1(needed),
		TotalHoursAvailable: available,
		BufferHours:         round1(available - needed),
		DailyPlan:           buildDailyPlan(start, topics, alloc, deadlineDays, profile),
		StudyTips:           studyTips(profile),
	}, nil
}

// validateInputs rejects malformed planning inputs eagerly rather than
// tolerating them with guessed behavior.
func validateInputs(profile Profile, topics []string, deadlineDays int, difficulties map[string]Difficulty) error {
	if _, err := ParsePace(string(profile.LearningPace)); err != nil {
		return err
	}
	if _, err := ParsePattern(string(profile.StudyPattern)); err != nil {
		return err
	}
	if profile.DailyAvailableHours <= 0 {
		return fmt.Errorf("daily available hours must be positive, got %g", profile.DailyAvailableHours)
	}
	if len(profile.PreferredTimes) == 0 {
		return fmt.Errorf("at least one preferred time is required")
	}

	if len(topics) == 0 {
		return fmt.Errorf("at least one topic is required")
	}
	seen := make(map[string]bool, len(topics))
	for _, topic := range topics {
		if topic == "" {
			return fmt.Errorf("topic names must not be empty")
		}
		if seen[topic] {
			return fmt.Errorf("duplicate topic: %q", topic)
		}
		seen[topic] = true
	}

	if deadlineDays <= 0 {
		return fmt.Errorf("deadline must be positive, got %d days", deadlineDays)
	}

	for topic, diff := range difficulties {
		if _, err := ParseDifficulty(string(diff)); err != nil {
			return fmt.Errorf("topic %q: %w", topic, err)
		}
	}

	return nil
}
