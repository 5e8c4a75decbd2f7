package match

import "math"

// Dimension weights of the total score.
const (
	WeightKeyword      = 0.40
	WeightCompleteness = 0.20
	WeightExperience   = 0.25
	WeightSkills       = 0.15
)

// Aggregate combines four sub-scores into the 0..100 total. Out-of-range
// inputs are clamped.
func Aggregate(keyword, completeness, work, skills int) int {
	total := math.Round(
		float64(clamp(keyword))*WeightKeyword +
			float64(clamp(completeness))*WeightCompleteness +
			float64(clamp(work))*WeightExperience +
			float64(clamp(skills))*WeightSkills,
	)
	return clamp(int(total))
}

func clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
