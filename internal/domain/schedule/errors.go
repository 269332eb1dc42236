package schedule

import "errors"

var (
	ErrShiftNotFound         = errors.New("shift schedule not found")
	ErrNoSchedulesConfigured = errors.New("no shift schedules configured for branch")
)
