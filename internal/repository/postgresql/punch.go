package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepository{db: db}
}

// GetLogs implements attendance.PunchRepository. Rows come from the biometric
// import pipeline, one per punch event; start is inclusive, end exclusive.
func (r *punchRepository) GetLogs(ctx context.Context, branchID string, employeeIDs []string, start, end time.Time) (map[string][]attendance.PunchLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, punched_at, in_out, mode, COALESCE(notes, '')
		FROM punch_logs
		WHERE branch_id = $1
		  AND employee_id = ANY($2)
		  AND punched_at >= $3
		  AND punched_at < $4
		ORDER BY employee_id, punched_at
	`

	rows, err := q.Query(ctx, query, branchID, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch logs: %w", err)
	}
	defer rows.Close()

	logs := make(map[string][]attendance.PunchLog)
	for rows.Next() {
		var (
			employeeID string
			punchedAt  time.Time
			log        attendance.PunchLog
		)
		if err := rows.Scan(&employeeID, &punchedAt, &log.InOut, &log.Mode, &log.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan punch log: %w", err)
		}
		log.DateTime = attendance.NewFlexTime(punchedAt)
		logs[employeeID] = append(logs[employeeID], log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punch logs: %w", err)
	}
	return logs, nil
}
