package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Punch event directions as emitted by the biometric devices.
const (
	PunchDutyOn  = "DutyOn"
	PunchDutyOff = "DutyOff"
)

// Deduction modes for minute-based late/early penalties.
const (
	DeductionTypePercentage = "percentage"
	DeductionTypeFixed      = "fixed"
)

// Holiday calendar entry types.
const (
	HolidayTypeFull = "full"
	HolidayTypeHalf = "half"
)

// PunchLog is a single biometric punch event. Mode identifies the capture
// device and is carried through untouched.
type PunchLog struct {
	DateTime FlexTime `json:"dateTime"`
	InOut    string   `json:"inOut"`
	Mode     string   `json:"mode,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// LateDeductionRules configures how a lateness or earliness magnitude turns
// into money. Thresholds are inclusive lower bounds in minutes and must
// satisfy AbsentThreshold >= HalfDayThreshold >= 0.
type LateDeductionRules struct {
	Enabled              bool            `json:"enabled"`
	DeductionType        string          `json:"deductionType"`
	DeductPerMinute      decimal.Decimal `json:"deductPerMinute"`
	FixedAmountPerMinute decimal.Decimal `json:"fixedAmountPerMinute"`
	MaxDeductionTime     int             `json:"maxDeductionTime"`
	HalfDayThreshold     int             `json:"halfDayThreshold"`
	AbsentThreshold      int             `json:"absentThreshold"`
}

// LeaveRules configures the penalty multiplier for absences that were not
// sanctioned by the office.
type LeaveRules struct {
	UnsanctionedMultiplier decimal.Decimal `json:"unsanctionedMultiplier"`
}

// AttendanceRules is the branch-scoped deduction rule set.
type AttendanceRules struct {
	LateDeductions LateDeductionRules `json:"lateDeductions"`
	LeaveRules     LeaveRules         `json:"leaveRules"`
}

var defaultUnsanctionedMultiplier = decimal.NewFromInt(2)

// UnsanctionedMultiplier returns the configured multiplier, defaulting to 2
// when the rules document leaves it unset.
func (r AttendanceRules) UnsanctionedMultiplier() decimal.Decimal {
	if r.LeaveRules.UnsanctionedMultiplier.IsPositive() {
		return r.LeaveRules.UnsanctionedMultiplier
	}
	return defaultUnsanctionedMultiplier
}

// Holiday is one calendar entry. Date is "YYYY-MM-DD".
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// HolidayRef is the holiday annotation embedded in a day record.
type HolidayRef struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// BuildHolidayMap reduces a holiday list to a date-keyed lookup.
func BuildHolidayMap(holidays []Holiday) map[string]Holiday {
	m := make(map[string]Holiday, len(holidays))
	for _, h := range holidays {
		m[h.Date] = h
	}
	return m
}

// DayAttendanceRecord is the single attendance verdict for one employee on
// one calendar day. Recomputation from identical inputs yields an identical
// record except for ProcessedAt.
type DayAttendanceRecord struct {
	Logs                []PunchLog      `json:"logs"`
	DayOfWeek           string          `json:"dayOfWeek"`
	IsWorkDay           bool            `json:"isWorkDay"`
	Sanctioned          bool            `json:"sanctioned"`
	FirstIn             *string         `json:"firstIn"`
	LastOut             *string         `json:"lastOut"`
	WorkingHours        string          `json:"workingHours"`
	Status              string          `json:"status"`
	AttendanceDeduction float64         `json:"attendanceDeduction"`
	DeductionAmount     decimal.Decimal `json:"deductionAmount"`
	DeductionRemarks    string          `json:"deductionRemarks"`
	ShiftStart          string          `json:"shiftStart"`
	ShiftEnd            string          `json:"shiftEnd"`
	Holiday             *HolidayRef     `json:"holiday,omitempty"`
	Notes               string          `json:"notes,omitempty"`
	ProcessedAt         time.Time       `json:"processedAt"`
}

// ProcessedAttendance buckets day records by monthYear ("MM-YYYY"), then
// employee ID, then date ("YYYY-MM-DD").
type ProcessedAttendance map[string]map[string]map[string]DayAttendanceRecord

// Put inserts one record, creating intermediate buckets as needed.
func (p ProcessedAttendance) Put(monthYear, employeeID, date string, rec DayAttendanceRecord) {
	if p[monthYear] == nil {
		p[monthYear] = make(map[string]map[string]DayAttendanceRecord)
	}
	if p[monthYear][employeeID] == nil {
		p[monthYear][employeeID] = make(map[string]DayAttendanceRecord)
	}
	p[monthYear][employeeID][date] = rec
}

// Merge folds other into p. Later records win per (monthYear, employee, date)
// cell; untouched cells are preserved, so month buckets are merged rather
// than replaced.
func (p ProcessedAttendance) Merge(other ProcessedAttendance) {
	for monthYear, byEmployee := range other {
		for employeeID, byDate := range byEmployee {
			for date, rec := range byDate {
				p.Put(monthYear, employeeID, date, rec)
			}
		}
	}
}

// Records counts the individual day records across all buckets.
func (p ProcessedAttendance) Records() int {
	n := 0
	for _, byEmployee := range p {
		for _, byDate := range byEmployee {
			n += len(byDate)
		}
	}
	return n
}
