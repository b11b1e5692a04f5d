package calldata

// Score weights. Visits dominate; the call-time and call-count terms are the
// literal legacy factors, not percentages of a 100% total.
const (
	WeightVisited    = 40.0
	WeightInterested = 30.0
	WeightCallTime   = 0.2
	WeightCalls      = 0.1
)

// ComputeScore derives the weighted productivity score from the four raw
// counters. Total function: negative inputs pass through unclamped.
func ComputeScore(visitedToday, interestedStudents int, totalCallTime float64, totalCalls int) float64 {
	return float64(visitedToday)*WeightVisited +
		float64(interestedStudents)*WeightInterested +
		totalCallTime*WeightCallTime +
		float64(totalCalls)*WeightCalls
}
