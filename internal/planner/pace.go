package planner

// paceParams are the time characteristics of a learning pace.
type paceParams struct {
	// HoursPerTopic is the base study time per topic.
	HoursPerTopic float64
	// RevisionRatio is the extra fraction of study hours reserved for review.
	RevisionRatio float64
}

// paceTable is the exhaustive pace lookup. ParsePace guarantees every Pace
// reaching this table has an entry.
var paceTable = map[Pace]paceParams{
	PaceSlow:     {HoursPerTopic: 4.0, RevisionRatio: 0.4},
	PaceModerate: {HoursPerTopic: 2.5, RevisionRatio: 0.3},
	PaceFast:     {HoursPerTopic: 1.5, RevisionRatio: 0.2},
}

// patternParams are the timing characteristics of a study pattern, in minutes.
type patternParams struct {
	SessionLength int
	BreakLength   int
	LongBreak     int
}

var patternTable = map[Pattern]patternParams{
	PatternPomodoro:   {SessionLength: 25, BreakLength: 5, LongBreak: 15},
	PatternDeepWork:   {SessionLength: 90, BreakLength: 20, LongBreak: 30},
	PatternShortBurst: {SessionLength: 15, BreakLength: 5, LongBreak: 10},
}

// Weak-area and difficulty multipliers compose multiplicatively on the pace
// base hours.
const (
	weakAreaMultiplier = 1.5
	hardMultiplier     = 1.3
	easyMultiplier     = 0.7
)

// minSessionHours guards against emitting runaway tiny sessions when a topic
// is nearly exhausted but the remaining time is negligible.
const minSessionHours = 0.1
