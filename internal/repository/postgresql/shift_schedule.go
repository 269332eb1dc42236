package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/schedule"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/database"
)

type shiftScheduleRepository struct {
	db *database.DB
}

func NewShiftScheduleRepository(db *database.DB) schedule.ShiftScheduleRepository {
	return &shiftScheduleRepository{db: db}
}

// GetByBranch implements schedule.ShiftScheduleRepository. Shift definitions
// live as one JSONB document per branch in the organization settings.
func (r *shiftScheduleRepository) GetByBranch(ctx context.Context, branchID string) ([]schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT shift_schedules
		FROM organization_settings
		WHERE branch_id = $1
	`

	var schedules []schedule.ShiftSchedule
	err := q.QueryRow(ctx, query, branchID).Scan(&schedules)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrNoSchedulesConfigured
		}
		return nil, fmt.Errorf("failed to get shift schedules: %w", err)
	}
	return schedules, nil
}
