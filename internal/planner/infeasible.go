package planner

import "fmt"

// maxSuggestedDailyHours caps the "study more per day" suggestion; beyond
// this the advice would be unrealistic.
const maxSuggestedDailyHours = 12

// infeasiblePlan builds the alternate result branch for plans that don't fit
// the deadline. It is a designed outcome, not an error.
func infeasiblePlan(needed, available float64, deadlineDays int, dailyHours float64) *Plan {
	var suggestions []string

	newDailyHours := needed / float64(deadlineDays)
	if newDailyHours <= maxSuggestedDailyHours {
		suggestions = append(suggestions,
			fmt.Sprintf("Study %.1f hours per day instead of %g", newDailyHours, dailyHours))
	}

	newDeadline := int(needed/dailyHours) + 1
	suggestions = append(suggestions,
		fmt.Sprintf("Extend deadline by %d days", newDeadline-deadlineDays))

	suggestions = append(suggestions,
		"Consider switching to 'fast' learning pace if you're confident")

	return &Plan{
		Feasible:    false,
		Message:     fmt.Sprintf("Not enough time! Need %.1f hours but only have %.1f hours.", needed, available),
		HoursShort:  round1(needed - available),
		Suggestions: suggestions,
	}
}
