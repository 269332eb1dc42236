package attendance

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/employee"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/schedule"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/timeparse"
)

// DayInput is everything needed to produce one employee's verdict for one
// calendar day. All fields are read-only snapshots; ProcessDay has no side
// effects beyond logging.
type DayInput struct {
	Employee employee.Employee
	Schedule schedule.ShiftSchedule
	Rules    attendance.AttendanceRules
	Holidays map[string]attendance.Holiday
	Date     time.Time
	Logs     []attendance.PunchLog
	// NextDayLogs holds the following day's punches so a night shift can
	// claim its past-midnight DutyOff.
	NextDayLogs []attendance.PunchLog
	// Prior is the previously stored record for this date, if any. Only its
	// sanctioned flag and notes are carried over; everything else is
	// recomputed.
	Prior       *attendance.DayAttendanceRecord
	DailySalary decimal.Decimal
	Logger      *slog.Logger
}

// ProcessDay evaluates one employee-day. State selection order: Holiday, then
// Off Day, then absence/missing-punch/full evaluation. A panic while
// evaluating this date degrades to an "Error Processing" record instead of
// aborting the batch.
func ProcessDay(in DayInput) (rec attendance.DayAttendanceRecord) {
	dateKey := timeparse.DateKey(in.Date)
	weekday := in.Date.Weekday().String()
	sanctioned, notes := priorSeed(in.Prior)

	defer func() {
		if p := recover(); p != nil {
			in.Logger.Error("day processing failed",
				"employee", in.Employee.ID, "date", dateKey, "panic", p)
			rec = attendance.DayAttendanceRecord{
				Logs:             punchLogs(in.Logs),
				DayOfWeek:        weekday,
				Sanctioned:       sanctioned,
				Notes:            notes,
				WorkingHours:     timeparse.FormatHoursMinutes(0),
				Status:           attendance.StatusTextErrorProcessing,
				DeductionAmount:  decimal.Zero,
				DeductionRemarks: fmt.Sprintf("processing failed: %v", p),
				ProcessedAt:      time.Now().UTC(),
			}
		}
	}()

	win := ResolveShiftTimes(in.Schedule, dateKey, weekday)
	overnight, shiftStart, shiftEnd := shiftBounds(in.Date, win)

	evalLogs := in.Logs
	if overnight {
		evalLogs = append(append([]attendance.PunchLog{}, in.Logs...), carryOverPunches(in.NextDayLogs, in.Date, shiftEnd)...)
	}
	bounds := FirstInLastOut(evalLogs, in.Date, in.Logger)

	rec = attendance.DayAttendanceRecord{
		Logs:            punchLogs(in.Logs),
		DayOfWeek:       weekday,
		Sanctioned:      sanctioned,
		Notes:           notes,
		FirstIn:         clockString(bounds.FirstIn),
		LastOut:         clockString(bounds.LastOut),
		WorkingHours:    bounds.WorkingHours,
		ShiftStart:      win.Start,
		ShiftEnd:        win.End,
		DeductionAmount: decimal.Zero,
		ProcessedAt:     time.Now().UTC(),
	}

	// Holidays beat everything: zero deduction regardless of punches,
	// sanction state, or shift-day membership.
	if h, ok := in.Holidays[dateKey]; ok {
		rec.Status = attendance.HolidayStatus(h.Name)
		rec.Holiday = &attendance.HolidayRef{Name: h.Name, Type: h.Type}
		return rec
	}

	if !in.Schedule.HasDay(weekday) {
		rec.Status = attendance.StatusTextOffDay
		return rec
	}
	rec.IsWorkDay = true

	if len(evalLogs) == 0 {
		applyFullAbsence(&rec, in.Rules, in.DailySalary, sanctioned,
			"no punches recorded on a scheduled work day")
		return rec
	}
	if bounds.FirstIn == nil || bounds.LastOut == nil {
		side := attendance.PunchDutyOn
		if bounds.FirstIn != nil {
			side = attendance.PunchDutyOff
		}
		applyFullAbsence(&rec, in.Rules, in.DailySalary, sanctioned,
			fmt.Sprintf("missing %s punch", side))
		return rec
	}

	effectiveStart := shiftStart
	if in.Schedule.FlexibleTime.Enabled && in.Schedule.FlexibleTime.GraceMinutes > 0 {
		effectiveStart = effectiveStart.Add(time.Duration(in.Schedule.FlexibleTime.GraceMinutes) * time.Minute)
	}

	lateMinutes := timeparse.MinutesBetween(effectiveStart, *bounds.FirstIn)
	earlyMinutes := timeparse.MinutesBetween(*bounds.LastOut, shiftEnd)

	late := EvaluateDeviation(lateMinutes, in.Rules, in.DailySalary, sanctioned, attendance.DeviationLate)
	early := EvaluateDeviation(earlyMinutes, in.Rules, in.DailySalary, sanctioned, attendance.DeviationEarly)

	// Both deviations are evaluated independently; monetary deductions add
	// up, remarks concatenate. The attendance fraction comes from the late
	// evaluation; earliness may only set it when the arrival was on time.
	rec.DeductionAmount = late.Amount.Add(early.Amount)
	rec.AttendanceDeduction = late.Fraction
	rec.Status = late.Status()
	if late.Kind == attendance.StatusOnTime {
		rec.AttendanceDeduction = early.Fraction
		rec.Status = early.Status()
	}
	rec.DeductionRemarks = joinRemarks(late.Remark, early.Remark)
	return rec
}

func priorSeed(prior *attendance.DayAttendanceRecord) (sanctioned bool, notes string) {
	if prior == nil {
		return false, ""
	}
	return prior.Sanctioned, prior.Notes
}

// shiftBounds anchors the shift window to the date. A window whose end does
// not come after its start is a night shift; the end shifts forward 24h.
func shiftBounds(date time.Time, win schedule.ShiftWindow) (overnight bool, start, end time.Time) {
	startH, startM, _ := timeparse.ParseShiftClock(win.Start)
	endH, endM, _ := timeparse.ParseShiftClock(win.End)
	start = timeparse.At(date, startH, startM, 0)
	end = timeparse.At(date, endH, endM, 0)
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
		overnight = true
	}
	return overnight, start, end
}

// carryOverPunches selects next-day punches that still belong to this date's
// night shift: anything punched before the shifted end instant.
func carryOverPunches(nextDayLogs []attendance.PunchLog, date time.Time, shiftEnd time.Time) []attendance.PunchLog {
	var carried []attendance.PunchLog
	for _, log := range nextDayLogs {
		instant, ok := log.DateTime.Resolve(date)
		if !ok {
			continue
		}
		if !instant.After(shiftEnd) {
			carried = append(carried, log)
		}
	}
	return carried
}

func applyFullAbsence(rec *attendance.DayAttendanceRecord, rules attendance.AttendanceRules, dailySalary decimal.Decimal, sanctioned bool, reason string) {
	multiplier := one
	if !sanctioned {
		multiplier = rules.UnsanctionedMultiplier()
	}
	rec.AttendanceDeduction = 1
	rec.DeductionAmount = dailySalary.Mul(multiplier)
	rec.Status = attendance.MissingPunchStatus(sanctioned)
	rec.DeductionRemarks = fmt.Sprintf("%s: full day at %sx daily salary = %s",
		reason, multiplier, rec.DeductionAmount)
}

// punchLogs normalizes a nil slice so stored records always carry a logs
// array, never null.
func punchLogs(logs []attendance.PunchLog) []attendance.PunchLog {
	if logs == nil {
		return []attendance.PunchLog{}
	}
	return logs
}

func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}

func joinRemarks(remarks ...string) string {
	var parts []string
	for _, r := range remarks {
		if r != "" {
			parts = append(parts, r)
		}
	}
	return strings.Join(parts, "; ")
}
