package planner

import "math"

// allocateTopicHours computes the required hours per topic from the student's
// pace, weak areas and the optional difficulty tags. Each allocation is
// rounded to one decimal place.
func allocateTopicHours(topics []string, profile Profile, difficulties map[string]Difficulty) map[string]float64 {
	base := paceTable[profile.LearningPace].HoursPerTopic

	alloc := make(map[string]float64, len(topics))
	for _, topic := range topics {
		hours := base

		if profile.IsWeakArea(topic) {
			hours *= weakAreaMultiplier
		}

		switch difficulties[topic] {
		case DifficultyHard:
			hours *= hardMultiplier
		case DifficultyEasy:
			hours *= easyMultiplier
		}

		alloc[topic] = round1(hours)
	}
	return alloc
}

// round1 rounds to one decimal place, matching how all hour figures are
// reported in the plan.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
