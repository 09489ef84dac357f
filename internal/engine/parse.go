package engine

import (
	"fmt"
	"strings"
)

// ParseDifficulty parses user input to a Difficulty.
// Empty input yields DefaultDifficulty; single-letter and numeric shorthands are accepted.
func ParseDifficulty(input string) (Difficulty, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "":
		return DefaultDifficulty, nil
	case "e", "1", "easy":
		return DifficultyEasy, nil
	case "m", "2", "medium", "med":
		return DifficultyMedium, nil
	case "h", "3", "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w: %q (choose %s)", ErrInvalidDifficulty, input, DifficultyChoices())
	}
}

// DifficultyChoices lists the difficulties as "easy|medium|hard".
func DifficultyChoices() string {
	names := make([]string, 0, 3)
	for _, d := range Difficulties() {
		names = append(names, string(d))
	}
	return strings.Join(names, "|")
}
