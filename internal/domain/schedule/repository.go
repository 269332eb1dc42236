package schedule

import "context"

// ShiftScheduleRepository loads the branch-scoped shift schedule definitions
// from the organization settings.
type ShiftScheduleRepository interface {
	GetByBranch(ctx context.Context, branchID string) ([]ShiftSchedule, error)
}
