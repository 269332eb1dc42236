package attendance

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/employee"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/schedule"
)

var (
	// 2025-03-10 is a Monday, 2025-03-09 a Sunday.
	testMonday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	testSunday = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
)

func officeSchedule() schedule.ShiftSchedule {
	return schedule.ShiftSchedule{
		ID:           "shift-office",
		Name:         "Office",
		DefaultTimes: &schedule.ShiftWindow{Start: "09:00", End: "17:00"},
		Days:         []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	}
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:       "emp-1",
		BranchID: "branch-1",
		Name:     "Asha",
		Employment: employee.Employment{
			ShiftID:      "shift-office",
			SalaryAmount: decimal.NewFromInt(31000),
		},
	}
}

func dayInput(date time.Time, logs []attendance.PunchLog) DayInput {
	return DayInput{
		Employee:    testEmployee(),
		Schedule:    officeSchedule(),
		Rules:       fixedRules(),
		Holidays:    map[string]attendance.Holiday{},
		Date:        date,
		Logs:        logs,
		DailySalary: decimal.NewFromInt(1000),
		Logger:      testLogger(),
	}
}

func TestProcessDayOnTime(t *testing.T) {
	in := dayInput(testMonday, []attendance.PunchLog{
		punchAt(attendance.PunchDutyOn, time.Date(2025, 3, 10, 8, 55, 0, 0, time.UTC)),
		punchAt(attendance.PunchDutyOff, time.Date(2025, 3, 10, 17, 5, 0, 0, time.UTC)),
	})

	rec := ProcessDay(in)
	assert.Equal(t, "On Time", rec.Status)
	assert.True(t, rec.IsWorkDay)
	assert.Zero(t, rec.AttendanceDeduction)
	assert.True(t, rec.DeductionAmount.IsZero())
	require.NotNil(t, rec.FirstIn)
	require.NotNil(t, rec.LastOut)
	assert.Equal(t, "08:55", *rec.FirstIn)
	assert.Equal(t, "17:05", *rec.LastOut)
	assert.Equal(t, "8h 10m", rec.WorkingHours)
	assert.Equal(t, "09:00", rec.ShiftStart)
	assert.Equal(t, "17:00", rec.ShiftEnd)
	assert.Equal(t, "Monday", rec.DayOfWeek)
}

func TestProcessDayLateArrival(t *testing.T) {
	in := dayInput(testMonday, []attendance.PunchLog{
		punchAt(attendance.PunchDutyOn, time.Date(2025, 3, 10, 9, 45, 0, 0, time.UTC)),
		punchAt(attendance.PunchDutyOff, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)),
	})

	rec := ProcessDay(in)
	assert.Equal(t, "Late In (45 min)", rec.Status)
	assert.True(t, rec.DeductionAmount.Equal(decimal.NewFromInt(450)), "amount = %s", rec.DeductionAmount)
}

func TestProcessDayLateAndEarlyAddUp(t *testing.T) {
	in := dayInput(testMonday, []attendance.PunchLog{
		punchAt(attendance.PunchDutyOn, time.Date(2025, 3, 10, 9, 20, 0, 0, time.UTC)),
		punchAt(attendance.PunchDutyOff, time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC)),
	})

	rec := ProcessDay(in)
	// Lateness names the day; both deductions are charged.
	assert.Equal(t, "Late In (20 min)", rec.Status)
	assert.True(t, rec.DeductionAmount.Equal(decimal.NewFromInt(500)), "amount = %s", rec.DeductionAmount)
	assert.Contains(t, rec.DeductionRemarks, "Late 20 min")
	assert.Contains(t, rec.DeductionRemarks, "Early 30 min")
}

func TestProcessDayEarlyOutOnly(t *testing.T) {
	in := dayInput(testMonday, []attendance.PunchLog{
		punchAt(attendance.PunchDutyOn, time.Date(2025, 3, 10, 8, 58, 0, 0, time.UTC)),
		punchAt(attendance.PunchDutyOff, time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC)),
	})

	rec := ProcessDay(in)
	assert.Equal(t, "Early Out (30 min)", rec.Status)
	assert.True(t, rec.DeductionAmount.Equal(decimal.NewFromInt(300)), "amount = %s", rec.DeductionAmount)
}

func TestProcessDayGracePeriod(t *testing.T) {
	in := dayInput(testMonday, []attendance.PunchLog{
		punchAt(attendance.PunchDutyOn, time.Date(2025, 3, 10, 9, 10, 0, 0, time.UTC)),
		punchAt(attendance.PunchDutyOff, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)),
	})
	in.Schedule.FlexibleTime = schedule.FlexibleTime{Enabled: true, GraceMinutes: 15}

	rec := ProcessDay(in)
	assert.Equal(t, "On Time", rec.Status)
	assert.True(t, rec.DeductionAmount.IsZero())

	// Same punches without grace are 10 minutes late.
	in.Schedule.FlexibleTime = schedule.FlexibleTime{}
	rec = ProcessDay(in)
	assert.Equal(t, "Late In (10 min)", rec.Status)
	assert.True(t, rec.DeductionAmount.Equal(decimal.NewFromInt(100)))
}

func TestProcessDayHolidayBeatsEverything(t *testing.T) {
	in := dayInput(testMonday, []attendance.PunchLog{
		punchAt(attendance.PunchDutyOn, time.Date(2025, 3, 10, 11, 45, 0, 0, time.UTC)),
	})
	in.Holidays = map[string]attendance.Holiday{
		"2025-03-10": {Date: "2025-03-10", Name: "Holi", Type: attendance.HolidayTypeFull},
	}

	rec := ProcessDay(in)
	assert.Equal(t, "Holiday: Holi", rec.Status)
	assert.False(t, rec.IsWorkDay)
	assert.Zero(t, rec.AttendanceDeduction)
	assert.True(t, rec.DeductionAmount.IsZero())
	require.NotNil(t, rec.Holiday)
	assert.Equal(t, "Holi", rec.Holiday.Name)
	assert.Equal(t, attendance.HolidayTypeFull, rec.Holiday.Type)
}

func TestProcessDayOffDay(t *testing.T) {
	rec := ProcessDay(dayInput(testSunday, nil))
	assert.Equal(t, "Off Day", rec.Status)
	assert.False(t, rec.IsWorkDay)
	assert.True(t, rec.DeductionAmount.IsZero())
	assert.Equal(t, "Sunday", rec.DayOfWeek)
}

func TestProcessDayNoPunchesUnsanctioned(t *testing.T) {
	rec := ProcessDay(dayInput(testMonday, nil))
	assert.Equal(t, "Absent: Missing Punch (Unsanctioned)", rec.Status)
	assert.True(t, rec.IsWorkDay)
	assert.Equal(t, 1.0, rec.AttendanceDeduction)
	assert.True(t, rec.DeductionAmount.Equal(decimal.NewFromInt(2000)), "amount = %s", rec.DeductionAmount)
	assert.Contains(t, rec.DeductionRemarks, "no punches recorded")
	assert.NotNil(t, rec.Logs)
}

func TestProcessDayNoPunchesSanctioned(t *testing.T) {
	in := dayInput(testMonday, nil)
	in.Prior = &attendance.DayAttendanceRecord{Sanctioned: true, Notes: "approved sick leave"}

	rec := ProcessDay(in)
	assert.Equal(t, "Absent: Missing Punch (Sanctioned)", rec.Status)
	assert.True(t, rec.Sanctioned)
	assert.Equal(t, "approved sick leave", rec.Notes)
	// Sanctioned absence is charged at exactly one daily salary.
	assert.True(t, rec.DeductionAmount.Equal(decimal.NewFromInt(1000)), "amount = %s", rec.DeductionAmount)
}

func TestProcessDayMissingDutyOff(t *testing.T) {
	in := dayInput(testMonday, []attendance.PunchLog{
		punchAt(attendance.PunchDutyOn, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)),
	})

	rec := ProcessDay(in)
	assert.Equal(t, "Absent: Missing Punch (Unsanctioned)", rec.Status)
	assert.Contains(t, rec.DeductionRemarks, "missing DutyOff punch")
	require.NotNil(t, rec.FirstIn)
	assert.Nil(t, rec.LastOut)
}

func TestProcessDayNightShiftClaimsNextDayCheckout(t *testing.T) {
	in := dayInput(testMonday, []attendance.PunchLog{
		punchAt(attendance.PunchDutyOn, time.Date(2025, 3, 10, 21, 58, 0, 0, time.UTC)),
	})
	in.Schedule.DefaultTimes = &schedule.ShiftWindow{Start: "22:00", End: "06:00"}
	in.NextDayLogs = []attendance.PunchLog{
		punchAt(attendance.PunchDutyOff, time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC)),
		// Next evening's own check-in must not leak into this shift.
		punchAt(attendance.PunchDutyOn, time.Date(2025, 3, 11, 21, 55, 0, 0, time.UTC)),
	}

	rec := ProcessDay(in)
	assert.Equal(t, "On Time", rec.Status)
	assert.True(t, rec.DeductionAmount.IsZero())
	require.NotNil(t, rec.LastOut)
	assert.Equal(t, "06:00", *rec.LastOut)
	assert.Equal(t, "8h 2m", rec.WorkingHours)
}

func TestProcessDayNightShiftMissingCheckout(t *testing.T) {
	in := dayInput(testMonday, []attendance.PunchLog{
		punchAt(attendance.PunchDutyOn, time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)),
	})
	in.Schedule.DefaultTimes = &schedule.ShiftWindow{Start: "22:00", End: "06:00"}

	rec := ProcessDay(in)
	assert.Equal(t, "Absent: Missing Punch (Unsanctioned)", rec.Status)
}

func TestProcessDayIdempotent(t *testing.T) {
	in := dayInput(testMonday, []attendance.PunchLog{
		punchAt(attendance.PunchDutyOn, time.Date(2025, 3, 10, 9, 45, 0, 0, time.UTC)),
		punchAt(attendance.PunchDutyOff, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)),
	})

	first := ProcessDay(in)
	second := ProcessDay(in)
	second.ProcessedAt = first.ProcessedAt
	assert.Equal(t, first, second)
}

// warnPanicHandler panics on warn-level records and swallows everything else,
// simulating a fault in the middle of evaluating one date.
type warnPanicHandler struct{}

func (warnPanicHandler) Enabled(_ context.Context, lvl slog.Level) bool { return lvl == slog.LevelWarn }
func (warnPanicHandler) Handle(context.Context, slog.Record) error      { panic("handler fault") }
func (warnPanicHandler) WithAttrs([]slog.Attr) slog.Handler             { return warnPanicHandler{} }
func (warnPanicHandler) WithGroup(string) slog.Handler                  { return warnPanicHandler{} }

func TestProcessDayPanicDegradesToErrorRecord(t *testing.T) {
	in := dayInput(testMonday, nil)
	in.Prior = &attendance.DayAttendanceRecord{Sanctioned: true, Notes: "keep me"}
	// The unparseable punch forces a warning, which the handler turns into a
	// panic mid-evaluation.
	in.Logs = []attendance.PunchLog{{DateTime: attendance.ParseFlexTime("junk"), InOut: attendance.PunchDutyOn}}
	in.Logger = slog.New(warnPanicHandler{})

	assert.NotPanics(t, func() {
		rec := ProcessDay(in)
		assert.Equal(t, "Error Processing", rec.Status)
		assert.Contains(t, rec.DeductionRemarks, "processing failed")
		assert.True(t, rec.Sanctioned)
		assert.Equal(t, "keep me", rec.Notes)
	})
}
