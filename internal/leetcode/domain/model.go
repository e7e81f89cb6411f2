package domain

import (
	"errors"

	"github.com/jobtrail/jobtrail-backend/internal/datetime"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

var ErrInvalidDifficulty = errors.New("invalid difficulty")

func IsValidDifficulty(d string) bool {
	for _, v := range Difficulties {
		if d == v {
			return true
		}
	}
	return false
}

// Problem is one solved LeetCode problem.
type Problem struct {
	ID               int64          `json:"id"`
	ProblemName      string         `json:"problemName"`
	ProblemNumber    *int           `json:"problemNumber"`
	Difficulty       *string        `json:"difficulty"`
	Topics           []string       `json:"topics"`
	SolvedDate       *datetime.Date `json:"solvedDate"`
	TimeMinutes      *int           `json:"timeMinutes"`
	Notes            *string        `json:"notes"`
	SolutionApproach *string        `json:"solutionApproach"`
}

// LogProblemRequest holds the fields accepted when logging a solve.
type LogProblemRequest struct {
	ProblemName      string
	ProblemNumber    *int
	Difficulty       *string
	Topics           []string
	TimeMinutes      *int
	Notes            *string
	SolutionApproach *string
}

// Stats summarises solved problems by difficulty.
type Stats struct {
	Total        int64            `json:"total"`
	ByDifficulty map[string]int64 `json:"byDifficulty"`
}
