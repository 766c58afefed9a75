package domain

import "strings"

// Difficulty selects the prompt pool and the length constraint of a paragraph.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a raw query value to a Difficulty.
// Empty or unknown values fall back to DifficultyEasy.
func ParseDifficulty(raw string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(raw))) {
	case DifficultyMedium:
		return DifficultyMedium
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

func (d Difficulty) String() string {
	return string(d)
}
