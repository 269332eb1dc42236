package attendance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
)

var (
	one     = decimal.NewFromInt(1)
	half    = decimal.RequireFromString("0.5")
	hundred = decimal.NewFromInt(100)
)

// EvaluateDeviation turns one lateness or earliness magnitude into a verdict.
// Decision order, first match wins:
//
//  1. minutes <= 0: on time, nothing charged.
//  2. minutes >= absentThreshold (when configured): full-day deduction, at
//     the unsanctioned multiplier unless the absence was sanctioned.
//  3. minutes >= halfDayThreshold (when configured): half-day deduction,
//     independent of sanction status.
//  4. otherwise a minute-based deduction over min(minutes, maxDeductionTime):
//     percentage mode charges a fraction of the daily salary and counts
//     toward the attendance fraction; fixed mode is purely monetary.
func EvaluateDeviation(minutes int, rules attendance.AttendanceRules, dailySalary decimal.Decimal, sanctioned bool, kind attendance.DeviationKind) attendance.Verdict {
	v := attendance.Verdict{
		Deviation:  kind,
		Minutes:    minutes,
		Sanctioned: sanctioned,
		Amount:     decimal.Zero,
	}

	if minutes <= 0 {
		v.Kind = attendance.StatusOnTime
		v.Minutes = 0
		return v
	}

	ld := rules.LateDeductions
	if !ld.Enabled {
		v.Kind = deviationStatus(kind)
		v.Remark = fmt.Sprintf("%s %d min (deductions disabled)", kind, minutes)
		return v
	}

	if ld.AbsentThreshold > 0 && minutes >= ld.AbsentThreshold {
		multiplier := one
		if !sanctioned {
			multiplier = rules.UnsanctionedMultiplier()
		}
		v.Kind = attendance.StatusAbsent
		v.Fraction = 1
		v.Amount = dailySalary.Mul(multiplier)
		v.Remark = fmt.Sprintf("%s %d min reached absent threshold (%d min): full day at %sx daily salary = %s",
			kind, minutes, ld.AbsentThreshold, multiplier, v.Amount)
		return v
	}

	if ld.HalfDayThreshold > 0 && minutes >= ld.HalfDayThreshold {
		v.Kind = attendance.StatusHalfDay
		v.Fraction = 0.5
		v.Amount = dailySalary.Mul(half)
		v.Remark = fmt.Sprintf("%s %d min reached half-day threshold (%d min): half day = %s",
			kind, minutes, ld.HalfDayThreshold, v.Amount)
		return v
	}

	chargeable := minutes
	if ld.MaxDeductionTime > 0 && chargeable > ld.MaxDeductionTime {
		chargeable = ld.MaxDeductionTime
	}

	v.Kind = deviationStatus(kind)
	switch ld.DeductionType {
	case attendance.DeductionTypePercentage:
		pct := ld.DeductPerMinute.Mul(decimal.NewFromInt(int64(chargeable)))
		v.Fraction, _ = pct.Div(hundred).Float64()
		v.Amount = dailySalary.Mul(pct).Div(hundred)
		v.Remark = fmt.Sprintf("%s %d min: %s%% of daily salary over %d chargeable min = %s",
			kind, minutes, pct, chargeable, v.Amount)
	default:
		// fixed: purely monetary, no attendance-fraction impact
		v.Amount = ld.FixedAmountPerMinute.Mul(decimal.NewFromInt(int64(chargeable)))
		v.Remark = fmt.Sprintf("%s %d min: fixed %s/min over %d chargeable min = %s",
			kind, minutes, ld.FixedAmountPerMinute, chargeable, v.Amount)
	}
	return v
}

func deviationStatus(kind attendance.DeviationKind) attendance.StatusKind {
	if kind == attendance.DeviationEarly {
		return attendance.StatusEarly
	}
	return attendance.StatusLate
}
