package employee

import (
	"github.com/shopspring/decimal"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
)

// Employment carries the payroll-relevant fields of an employee's contract.
// SalaryAmount is the monthly salary; the engine derives a per-day rate from
// it using the day count of each processed month.
type Employment struct {
	ShiftID      string          `json:"shiftId"`
	SalaryAmount decimal.Decimal `json:"salaryAmount"`
}

// Employee is the roster entry consumed by the engine. Attendance is the
// prior processing history keyed "MM-YYYY" then "YYYY-MM-DD"; on recompute
// the engine preserves each prior record's sanctioned flag and notes.
type Employee struct {
	ID         string                                               `json:"id"`
	BranchID   string                                               `json:"branchId"`
	Name       string                                               `json:"name"`
	Employment Employment                                           `json:"employment"`
	Attendance map[string]map[string]attendance.DayAttendanceRecord `json:"attendance,omitempty"`
}

// PriorRecord returns the previously stored record for a date, if any.
func (e Employee) PriorRecord(monthYear, date string) *attendance.DayAttendanceRecord {
	byDate, ok := e.Attendance[monthYear]
	if !ok {
		return nil
	}
	rec, ok := byDate[date]
	if !ok {
		return nil
	}
	return &rec
}
