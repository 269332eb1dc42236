package attendance

import (
	"context"
	"time"
)

// AttendanceRepository persists processed day records and reads them back.
// SaveProcessed merges into existing month buckets; it never replaces a whole
// month.
type AttendanceRepository interface {
	SaveProcessed(ctx context.Context, branchID string, processed ProcessedAttendance) error

	// GetByEmployeeMonth returns the stored records for one employee and one
	// "MM-YYYY" bucket, keyed by date.
	GetByEmployeeMonth(ctx context.Context, employeeID, monthYear string) (map[string]DayAttendanceRecord, error)
}

// RuleRepository loads the branch-scoped deduction rule set.
type RuleRepository interface {
	GetByBranch(ctx context.Context, branchID string) (AttendanceRules, error)
}

// HolidayRepository loads the holiday calendar overlapping a date span.
type HolidayRepository interface {
	GetBetween(ctx context.Context, branchID string, start, end time.Time) ([]Holiday, error)
}

// PunchRepository loads raw biometric punch events per employee over a date
// span, already parsed out of whatever file format the import layer ingested.
type PunchRepository interface {
	GetLogs(ctx context.Context, branchID string, employeeIDs []string, start, end time.Time) (map[string][]PunchLog, error)
}
