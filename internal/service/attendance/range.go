package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/employee"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/schedule"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/timeparse"
)

// RangeInput is the full read-only snapshot a batch run works from.
type RangeInput struct {
	Employees []employee.Employee
	Schedules []schedule.ShiftSchedule
	Rules     attendance.AttendanceRules
	Holidays  map[string]attendance.Holiday
	// Punches maps employee ID to that employee's flat punch list covering
	// the whole span (plus one trailing day for night-shift checkouts).
	Punches map[string][]attendance.PunchLog
	Dates   []time.Time
}

// RangeResult carries the merged buckets and the batch accounting.
type RangeResult struct {
	Processed          attendance.ProcessedAttendance
	Months             int
	ProcessedEmployees int
	Skipped            []string
}

// Employee-day cells share no mutable state, so employees fan out across
// workers freely.
const maxWorkers = 8

// ProcessRange evaluates every date for every employee and buckets the
// records by the date's own month. Employees whose shiftId resolves to no
// schedule are skipped, not failed. Nothing here returns an error: per-date
// failures degrade to "Error Processing" records inside the data.
func ProcessRange(ctx context.Context, in RangeInput, logger *slog.Logger) RangeResult {
	byID := schedule.ByID(in.Schedules)
	partials := make([]attendance.ProcessedAttendance, len(in.Employees))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)
	for i, emp := range in.Employees {
		g.Go(func() error {
			sched, ok := byID[emp.Employment.ShiftID]
			if !ok {
				logger.Warn("skipping employee with unresolvable shift",
					"employee", emp.ID, "shiftId", emp.Employment.ShiftID)
				return nil
			}
			byDate := GroupPunchesByDate(in.Punches[emp.ID], logger)
			part := make(attendance.ProcessedAttendance)
			for _, date := range in.Dates {
				monthKey := timeparse.MonthYearKey(date)
				dateKey := timeparse.DateKey(date)
				rec := ProcessDay(DayInput{
					Employee:    emp,
					Schedule:    sched,
					Rules:       in.Rules,
					Holidays:    in.Holidays,
					Date:        date,
					Logs:        byDate[dateKey],
					NextDayLogs: byDate[timeparse.DateKey(date.AddDate(0, 0, 1))],
					Prior:       emp.PriorRecord(monthKey, dateKey),
					DailySalary: DailySalary(emp.Employment.SalaryAmount, date),
					Logger:      logger,
				})
				part.Put(monthKey, emp.ID, dateKey, rec)
			}
			partials[i] = part
			return nil
		})
	}
	// Workers never return errors; waiting only fences the fan-out.
	_ = g.Wait()

	result := RangeResult{Processed: make(attendance.ProcessedAttendance)}
	for i, part := range partials {
		if part == nil {
			result.Skipped = append(result.Skipped, in.Employees[i].ID)
			continue
		}
		result.ProcessedEmployees++
		result.Processed.Merge(part)
	}
	sort.Strings(result.Skipped)
	result.Months = len(result.Processed)
	return result
}

// ProcessOneDate evaluates a single employee-day from the same snapshot
// shapes. Unlike the batch path, an unresolvable shift is a hard error here:
// the caller asked for exactly this employee.
func ProcessOneDate(emp employee.Employee, schedules []schedule.ShiftSchedule, rules attendance.AttendanceRules, holidays map[string]attendance.Holiday, date time.Time, logs []attendance.PunchLog, logger *slog.Logger) (attendance.DayAttendanceRecord, error) {
	sched, ok := schedule.ByID(schedules)[emp.Employment.ShiftID]
	if !ok {
		return attendance.DayAttendanceRecord{}, fmt.Errorf("employee %s shift %q: %w",
			emp.ID, emp.Employment.ShiftID, schedule.ErrShiftNotFound)
	}

	monthKey := timeparse.MonthYearKey(date)
	dateKey := timeparse.DateKey(date)
	nextKey := timeparse.DateKey(date.AddDate(0, 0, 1))

	// Clock-only punch times from manual entry are legal on this path: the
	// processing date is explicit, so they anchor to it directly.
	var dayLogs, nextLogs []attendance.PunchLog
	for _, log := range logs {
		if log.DateTime.ClockOnly() {
			dayLogs = append(dayLogs, log)
			continue
		}
		instant, ok := log.DateTime.Resolve(date)
		if !ok {
			logger.Warn("skipping punch with unparseable time",
				"employee", emp.ID, "raw", log.DateTime.String())
			continue
		}
		switch timeparse.DateKey(instant) {
		case dateKey:
			dayLogs = append(dayLogs, log)
		case nextKey:
			nextLogs = append(nextLogs, log)
		}
	}

	rec := ProcessDay(DayInput{
		Employee:    emp,
		Schedule:    sched,
		Rules:       rules,
		Holidays:    holidays,
		Date:        date,
		Logs:        dayLogs,
		NextDayLogs: nextLogs,
		Prior:       emp.PriorRecord(monthKey, dateKey),
		DailySalary: DailySalary(emp.Employment.SalaryAmount, date),
		Logger:      logger,
	})
	return rec, nil
}

// DailySalary divides the monthly salary by the day count of the month the
// date falls in. A span crossing months therefore uses a different divisor
// per bucket.
func DailySalary(monthly decimal.Decimal, date time.Time) decimal.Decimal {
	return monthly.Div(decimal.NewFromInt(int64(timeparse.DaysInMonth(date))))
}
