package board

import "slices"

// Difficulty selects the per-cell mine probability.
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 2
	DifficultyHard   Difficulty = 3
)

// Sizes lists the supported board edge lengths.
var Sizes = []int{8, 16, 24, 32}

// MineProbability returns the chance that any one cell holds a mine.
func (d Difficulty) MineProbability() float64 {
	return float64(d) / 8
}

// Valid reports whether d is one of the three presets.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// String returns a human-readable difficulty name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ValidSize reports whether size is one of Sizes.
func ValidSize(size int) bool {
	return slices.Contains(Sizes, size)
}
