package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNoRulesConfigured  = errors.New("no attendance rules configured for branch")
)
