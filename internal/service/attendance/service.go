package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/employee"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/schedule"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/timeparse"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	ruleRepo       attendance.RuleRepository
	holidayRepo    attendance.HolidayRepository
	punchRepo      attendance.PunchRepository
	scheduleRepo   schedule.ShiftScheduleRepository
	employeeRepo   employee.EmployeeRepository
	logger         *slog.Logger
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	ruleRepo attendance.RuleRepository,
	holidayRepo attendance.HolidayRepository,
	punchRepo attendance.PunchRepository,
	scheduleRepo schedule.ShiftScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		ruleRepo:       ruleRepo,
		holidayRepo:    holidayRepo,
		punchRepo:      punchRepo,
		scheduleRepo:   scheduleRepo,
		employeeRepo:   employeeRepo,
		logger:         logger,
	}
}

// ProcessMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ProcessMonth(ctx context.Context, req attendance.ProcessMonthRequest) (attendance.ProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ProcessResponse{}, err
	}
	monthStart, err := timeparse.ParseMonthYear(req.MonthYear)
	if err != nil {
		return attendance.ProcessResponse{}, err
	}
	return a.process(ctx, req.BranchID, nil, timeparse.DatesInMonth(monthStart))
}

// ProcessRange implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ProcessRange(ctx context.Context, req attendance.ProcessRangeRequest) (attendance.ProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ProcessResponse{}, err
	}
	start, err := timeparse.ParseDateKey(req.StartDate)
	if err != nil {
		return attendance.ProcessResponse{}, err
	}
	end, err := timeparse.ParseDateKey(req.EndDate)
	if err != nil {
		return attendance.ProcessResponse{}, err
	}
	return a.process(ctx, req.BranchID, req.EmployeeIDs, timeparse.DatesBetween(start, end))
}

func (a *AttendanceServiceImpl) process(ctx context.Context, branchID string, employeeIDs []string, dates []time.Time) (attendance.ProcessResponse, error) {
	in, err := a.loadSnapshot(ctx, branchID, employeeIDs, dates)
	if err != nil {
		return attendance.ProcessResponse{}, err
	}

	result := ProcessRange(ctx, in, a.logger)

	if err := a.attendanceRepo.SaveProcessed(ctx, branchID, result.Processed); err != nil {
		return attendance.ProcessResponse{}, fmt.Errorf("failed to save processed attendance: %w", err)
	}

	return attendance.ProcessResponse{
		Summary: attendance.ProcessSummary{
			RunID:              uuid.NewString(),
			MonthsProcessed:    result.Months,
			DatesProcessed:     len(dates),
			ProcessedEmployees: result.ProcessedEmployees,
			SkippedEmployees:   result.Skipped,
		},
		Attendance: result.Processed,
	}, nil
}

// loadSnapshot gathers the read-only inputs for one batch run. Everything the
// engine sees comes from here; the engine itself performs no I/O.
func (a *AttendanceServiceImpl) loadSnapshot(ctx context.Context, branchID string, employeeIDs []string, dates []time.Time) (RangeInput, error) {
	rules, err := a.ruleRepo.GetByBranch(ctx, branchID)
	if err != nil {
		return RangeInput{}, fmt.Errorf("failed to load attendance rules: %w", err)
	}

	schedules, err := a.scheduleRepo.GetByBranch(ctx, branchID)
	if err != nil {
		return RangeInput{}, fmt.Errorf("failed to load shift schedules: %w", err)
	}
	if len(schedules) == 0 {
		return RangeInput{}, schedule.ErrNoSchedulesConfigured
	}

	employees, err := a.employeeRepo.GetByBranch(ctx, branchID, employeeIDs)
	if err != nil {
		return RangeInput{}, fmt.Errorf("failed to load employees: %w", err)
	}

	start, end := dates[0], dates[len(dates)-1]
	holidays, err := a.holidayRepo.GetBetween(ctx, branchID, start, end)
	if err != nil {
		return RangeInput{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	ids := make([]string, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}
	// The fetch extends one day past the span so night shifts can claim
	// their past-midnight checkouts.
	punches, err := a.punchRepo.GetLogs(ctx, branchID, ids, start, end.AddDate(0, 0, 2))
	if err != nil {
		return RangeInput{}, fmt.Errorf("failed to load punch logs: %w", err)
	}

	return RangeInput{
		Employees: employees,
		Schedules: schedules,
		Rules:     rules,
		Holidays:  attendance.BuildHolidayMap(holidays),
		Punches:   punches,
		Dates:     dates,
	}, nil
}

// ProcessOneDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ProcessOneDate(ctx context.Context, req attendance.ProcessDateRequest) (attendance.DayAttendanceRecord, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayAttendanceRecord{}, err
	}
	date, err := timeparse.ParseDateKey(req.Date)
	if err != nil {
		return attendance.DayAttendanceRecord{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID, req.BranchID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DayAttendanceRecord{}, employee.ErrEmployeeNotFound
		}
		return attendance.DayAttendanceRecord{}, fmt.Errorf("failed to load employee: %w", err)
	}

	rules, err := a.ruleRepo.GetByBranch(ctx, req.BranchID)
	if err != nil {
		return attendance.DayAttendanceRecord{}, fmt.Errorf("failed to load attendance rules: %w", err)
	}

	schedules, err := a.scheduleRepo.GetByBranch(ctx, req.BranchID)
	if err != nil {
		return attendance.DayAttendanceRecord{}, fmt.Errorf("failed to load shift schedules: %w", err)
	}

	holidays, err := a.holidayRepo.GetBetween(ctx, req.BranchID, date, date)
	if err != nil {
		return attendance.DayAttendanceRecord{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	punches, err := a.punchRepo.GetLogs(ctx, req.BranchID, []string{emp.ID}, date, date.AddDate(0, 0, 2))
	if err != nil {
		return attendance.DayAttendanceRecord{}, fmt.Errorf("failed to load punch logs: %w", err)
	}

	rec, err := ProcessOneDate(emp, schedules, rules, attendance.BuildHolidayMap(holidays), date, punches[emp.ID], a.logger)
	if err != nil {
		return attendance.DayAttendanceRecord{}, err
	}

	processed := make(attendance.ProcessedAttendance)
	processed.Put(timeparse.MonthYearKey(date), emp.ID, timeparse.DateKey(date), rec)
	if err := a.attendanceRepo.SaveProcessed(ctx, req.BranchID, processed); err != nil {
		return attendance.DayAttendanceRecord{}, fmt.Errorf("failed to save processed attendance: %w", err)
	}
	return rec, nil
}

// GetEmployeeAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetEmployeeAttendance(ctx context.Context, employeeID, monthYear string) (map[string]attendance.DayAttendanceRecord, error) {
	if _, err := timeparse.ParseMonthYear(monthYear); err != nil {
		return nil, err
	}
	records, err := a.attendanceRepo.GetByEmployeeMonth(ctx, employeeID, monthYear)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	return records, nil
}
