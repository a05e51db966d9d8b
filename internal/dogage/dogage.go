package dogage

import "math"

// MinElapsedYears is the smallest input the formula is evaluated at. The
// logarithm diverges toward negative infinity near zero, so smaller
// positive inputs are clamped up to this before conversion.
const MinElapsedYears = 0.01

// Convert maps elapsed dog years to a human-equivalent age. ok is false
// when elapsedYears is zero or negative, where no conversion is defined.
func Convert(elapsedYears float64) (age float64, ok bool) {
	if elapsedYears <= 0 {
		return 0, false
	}
	if elapsedYears < MinElapsedYears {
		elapsedYears = MinElapsedYears
	}
	return 16*math.Log(elapsedYears) + 31, true
}
