package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/jobtrail/jobtrail-backend/internal/leetcode/domain"
)

const problemColumns = `id, problem_name, problem_number, difficulty, topics, solved_date,
	time_minutes, notes, solution_approach`

// ProblemRepository persists the LeetCode log
type ProblemRepository struct {
	db *sql.DB
}

func NewProblemRepository(db *sql.DB) *ProblemRepository {
	return &ProblemRepository{db: db}
}

func (r *ProblemRepository) Create(ctx context.Context, req *domain.LogProblemRequest) (int64, error) {
	const q = `
INSERT INTO leetcode (problem_name, problem_number, difficulty, topics, time_minutes, notes, solution_approach)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id;
`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		req.ProblemName, req.ProblemNumber, req.Difficulty, pq.Array(req.Topics),
		req.TimeMinutes, req.Notes, req.SolutionApproach,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to log problem: %w", err)
	}
	return id, nil
}

// List returns the most recently solved problems. An empty difficulty
// matches all of them.
func (r *ProblemRepository) List(ctx context.Context, difficulty string, limit int) ([]domain.Problem, error) {
	q := `SELECT ` + problemColumns + `
FROM leetcode
WHERE ($1 = '' OR difficulty::text = $1)
ORDER BY solved_date DESC
LIMIT $2;`

	rows, err := r.db.QueryContext(ctx, q, difficulty, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Problem, 0, limit)
	for rows.Next() {
		var (
			p      domain.Problem
			number sql.NullInt64
			mins   sql.NullInt64
		)
		err := rows.Scan(&p.ID, &p.ProblemName, &number, &p.Difficulty, pq.Array(&p.Topics),
			&p.SolvedDate, &mins, &p.Notes, &p.SolutionApproach)
		if err != nil {
			return nil, err
		}
		p.ProblemNumber = intPtr(number)
		p.TimeMinutes = intPtr(mins)
		if p.Topics == nil {
			p.Topics = []string{}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats counts solved problems overall and per difficulty.
func (r *ProblemRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{ByDifficulty: map[string]int64{}}

	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM leetcode;`).Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("failed to count problems: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT difficulty, count(*) FROM leetcode GROUP BY difficulty;`)
	if err != nil {
		return nil, fmt.Errorf("failed to group problems: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			difficulty sql.NullString
			count      int64
		)
		if err := rows.Scan(&difficulty, &count); err != nil {
			return nil, err
		}
		key := "null"
		if difficulty.Valid {
			key = difficulty.String
		}
		stats.ByDifficulty[key] = count
	}
	return stats, rows.Err()
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
