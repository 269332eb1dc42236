package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/database"
)

type ruleRepository struct {
	db *database.DB
}

func NewRuleRepository(db *database.DB) attendance.RuleRepository {
	return &ruleRepository{db: db}
}

// GetByBranch implements attendance.RuleRepository.
func (r *ruleRepository) GetByBranch(ctx context.Context, branchID string) (attendance.AttendanceRules, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT attendance_rules
		FROM organization_settings
		WHERE branch_id = $1
	`

	var rules attendance.AttendanceRules
	err := q.QueryRow(ctx, query, branchID).Scan(&rules)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRules{}, attendance.ErrNoRulesConfigured
		}
		return attendance.AttendanceRules{}, fmt.Errorf("failed to get attendance rules: %w", err)
	}
	return rules, nil
}
