package attendance

import (
	"context"
)

// AttendanceService runs the reconciliation engine over stored inputs and
// persists the resulting day records.
type AttendanceService interface {
	// ProcessMonth reprocesses every calendar day of the requested month for
	// all employees of the branch.
	ProcessMonth(ctx context.Context, req ProcessMonthRequest) (ProcessResponse, error)

	// ProcessRange reprocesses an explicit inclusive date span, optionally
	// restricted to specific employees.
	ProcessRange(ctx context.Context, req ProcessRangeRequest) (ProcessResponse, error)

	// ProcessOneDate reprocesses a single day for a single employee after a
	// manual punch edit.
	ProcessOneDate(ctx context.Context, req ProcessDateRequest) (DayAttendanceRecord, error)

	// GetEmployeeAttendance reads back one employee's stored month bucket.
	GetEmployeeAttendance(ctx context.Context, employeeID, monthYear string) (map[string]DayAttendanceRecord, error)
}
