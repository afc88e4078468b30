package planner

import "fmt"

// Pace is the student's qualitative learning speed. It selects the base
// hours-per-topic and the revision buffer ratio.
type Pace string

const (
	PaceSlow     Pace = "slow"
	PaceModerate Pace = "moderate"
	PaceFast     Pace = "fast"
)

// ParsePace validates a raw pace tag.
func ParsePace(s string) (Pace, error) {
	switch Pace(s) {
	case PaceSlow, PaceModerate, PaceFast:
		return Pace(s), nil
	}
	return "", fmt.Errorf("unknown learning pace: %q", s)
}

// Pattern is the session/break timing template.
type Pattern string

const (
	PatternPomodoro   Pattern = "pomodoro"
	PatternDeepWork   Pattern = "deep_work"
	PatternShortBurst Pattern = "short_burst"
)

// ParsePattern validates a raw study pattern tag.
func ParsePattern(s string) (Pattern, error) {
	switch Pattern(s) {
	case PatternPomodoro, PatternDeepWork, PatternShortBurst:
		return Pattern(s), nil
	}
	return "", fmt.Errorf("unknown study pattern: %q", s)
}

// Difficulty is an optional per-topic difficulty tag.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a raw difficulty tag.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty: %q", s)
}

// Profile holds the student's learning preferences. Immutable input to a
// planning run.
type Profile struct {
	LearningPace        Pace     `json:"learning_pace"`
	StudyPattern        Pattern  `json:"study_pattern"`
	DailyAvailableHours float64  `json:"daily_available_hours"`
	PreferredTimes      []string `json:"preferred_times"`
	WeakAreas           []string `json:"weak_areas"`
}

// IsWeakArea reports whether topic is one of the student's weak areas.
func (p Profile) IsWeakArea(topic string) bool {
	for _, w := range p.WeakAreas {
		if w == topic {
			return true
		}
	}
	return false
}

// Phase labels what a scheduled day is for.
type Phase string

const (
	PhaseLearning    Phase = "Learning"
	PhaseRevision    Phase = "Revision"
	PhaseIntensive   Phase = "Intensive Revision"
	PhaseFinalReview Phase = "Final Review & Mock Test"
)

// Session is a single study block inside a day. It is a schedule unit,
// distinct from the persisted study-session record in the store.
type Session struct {
	Topic           string   `json:"topic"`
	DurationMinutes int      `json:"duration_minutes"`
	Activities      []string `json:"activities"`
	IsWeakArea      bool     `json:"is_weak_area"`
}

// DaySchedule is one calendar day of the plan.
type DaySchedule struct {
	Day           int       `json:"day"`
	Date          string    `json:"date"`
	Phase         Phase     `json:"phase"`
	PreferredTime string    `json:"preferred_time"`
	Sessions      []Session `json:"sessions"`
	TotalHours    float64   `json:"total_hours"`
}

// Plan is the result of a planning run. It is either fully feasible (all
// feasible-branch fields populated) or fully infeasible (message, shortfall
// and suggestions only) — never partial.
type Plan struct {
	Feasible bool `json:"feasible"`

	// Feasible branch.
	Subject             string        `json:"subject,omitempty"`
	Profile             *Profile      `json:"student_profile,omitempty"`
	TotalTopics         int           `json:"total_topics,omitempty"`
	Deadline            string        `json:"deadline,omitempty"`
	TotalHoursNeeded    float64       `json:"total_hours_needed,omitempty"`
	TotalHoursAvailable float64       `json:"total_hours_available,omitempty"`
	BufferHours         float64       `json:"buffer_hours"`
	DailyPlan           []DaySchedule `json:"daily_plan,omitempty"`
	StudyTips           []string      `json:"study_tips,omitempty"`

	// Infeasible branch.
	Message     string   `json:"message,omitempty"`
	HoursShort  float64  `json:"hours_short,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}
