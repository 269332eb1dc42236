package attendance

import (
	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/schedule"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/timeparse"
)

// Fallback window for malformed schedules. Resolution never fails; a schedule
// with no usable times yields a standard office day.
var defaultShiftWindow = schedule.ShiftWindow{Start: "09:00", End: "17:00"}

// ResolveShiftTimes resolves the effective shift window for one calendar day.
// Precedence, strictly in order: the date override for the "YYYY-MM-DD" key,
// the weekday override, the schedule's default window, the legacy flat
// startTime/endTime fields. The first matching level supplies both bounds.
func ResolveShiftTimes(s schedule.ShiftSchedule, date, weekday string) schedule.ShiftWindow {
	if win, ok := s.DateOverrides[date]; ok && windowUsable(win) {
		return win
	}
	if win, ok := s.DayOverrides[weekday]; ok && windowUsable(win) {
		return win
	}
	if s.DefaultTimes != nil && windowUsable(*s.DefaultTimes) {
		return *s.DefaultTimes
	}
	if win := (schedule.ShiftWindow{Start: s.StartTime, End: s.EndTime}); windowUsable(win) {
		return win
	}
	return defaultShiftWindow
}

func windowUsable(win schedule.ShiftWindow) bool {
	if _, _, err := timeparse.ParseShiftClock(win.Start); err != nil {
		return false
	}
	if _, _, err := timeparse.ParseShiftClock(win.End); err != nil {
		return false
	}
	return true
}
