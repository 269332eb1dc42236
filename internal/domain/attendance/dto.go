package attendance

import (
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/timeparse"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/validator"
)

// ProcessMonthRequest asks for every calendar day of one month to be
// (re)processed for a branch.
type ProcessMonthRequest struct {
	BranchID  string `json:"branchId"`
	MonthYear string `json:"monthYear"`
}

func (r *ProcessMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branchId",
			Message: "branchId is required",
		})
	}

	if validator.IsEmpty(r.MonthYear) {
		errs = append(errs, validator.ValidationError{
			Field:   "monthYear",
			Message: "monthYear is required",
		})
	} else if _, err := timeparse.ParseMonthYear(r.MonthYear); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "monthYear",
			Message: "monthYear must be in MM-YYYY format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ProcessRangeRequest asks for an explicit inclusive date span, optionally
// restricted to a subset of employees. The span may cross month boundaries;
// each date is bucketed by its own month.
type ProcessRangeRequest struct {
	BranchID    string   `json:"branchId"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	EmployeeIDs []string `json:"employeeIds,omitempty"`
}

func (r *ProcessRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branchId",
			Message: "branchId is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) || !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate is required in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) || !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate is required in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ProcessDateRequest reprocesses exactly one day for one employee, used by the
// manual punch entry workflow after an edit.
type ProcessDateRequest struct {
	BranchID   string `json:"branchId"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
}

func (r *ProcessDateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branchId",
			Message: "branchId is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ProcessSummary reports what a batch run covered. Per-date failures are
// embedded in the records themselves as "Error Processing" statuses, so
// partial failures are visible in the data rather than only in logs.
type ProcessSummary struct {
	RunID              string   `json:"runId"`
	MonthsProcessed    int      `json:"monthsProcessed"`
	DatesProcessed     int      `json:"datesProcessed"`
	ProcessedEmployees int      `json:"processedEmployees"`
	SkippedEmployees   []string `json:"skippedEmployees,omitempty"`
}

// ProcessResponse is the batch result handed back to the caller and written
// to storage verbatim.
type ProcessResponse struct {
	Summary    ProcessSummary      `json:"summary"`
	Attendance ProcessedAttendance `json:"attendance"`
}
