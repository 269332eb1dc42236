package attendance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StatusKind is the internal tagged form of a day's verdict. The payroll
// office consumes the formatted display strings, which are the external
// contract; handlers and storage must go through the formatters below so the
// vocabulary stays closed.
type StatusKind int

const (
	StatusOnTime StatusKind = iota
	StatusLate
	StatusEarly
	StatusHalfDay
	StatusAbsent
)

// DeviationKind distinguishes a late arrival from an early departure.
type DeviationKind string

const (
	DeviationLate  DeviationKind = "Late"
	DeviationEarly DeviationKind = "Early"
)

// Verdict is the outcome of evaluating one deviation (late or early) against
// the deduction rules.
type Verdict struct {
	Kind       StatusKind
	Deviation  DeviationKind
	Minutes    int
	Sanctioned bool
	Fraction   float64
	Amount     decimal.Decimal
	Remark     string
}

// Status renders the verdict in the display vocabulary: "On Time",
// "Late In (45 min)", "Early Out (30 min)", "Half Day (Late 130 min)",
// "Absent: Late 250 min (Unsanctioned)".
func (v Verdict) Status() string {
	switch v.Kind {
	case StatusLate:
		return fmt.Sprintf("Late In (%d min)", v.Minutes)
	case StatusEarly:
		return fmt.Sprintf("Early Out (%d min)", v.Minutes)
	case StatusHalfDay:
		return fmt.Sprintf("Half Day (%s %d min)", v.Deviation, v.Minutes)
	case StatusAbsent:
		return fmt.Sprintf("Absent: %s %d min (%s)", v.Deviation, v.Minutes, sanctionLabel(v.Sanctioned))
	default:
		return "On Time"
	}
}

// Fixed display strings outside the deviation vocabulary.
const (
	StatusTextOffDay          = "Off Day"
	StatusTextErrorProcessing = "Error Processing"
)

// MissingPunchStatus labels a scheduled work day with no usable punch pair.
func MissingPunchStatus(sanctioned bool) string {
	return fmt.Sprintf("Absent: Missing Punch (%s)", sanctionLabel(sanctioned))
}

// HolidayStatus labels a holiday by name.
func HolidayStatus(name string) string {
	return fmt.Sprintf("Holiday: %s", name)
}

func sanctionLabel(sanctioned bool) string {
	if sanctioned {
		return "Sanctioned"
	}
	return "Unsanctioned"
}
