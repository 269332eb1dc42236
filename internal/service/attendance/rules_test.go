package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
)

func fixedRules() attendance.AttendanceRules {
	return attendance.AttendanceRules{
		LateDeductions: attendance.LateDeductionRules{
			Enabled:              true,
			DeductionType:        attendance.DeductionTypeFixed,
			FixedAmountPerMinute: decimal.NewFromInt(10),
			MaxDeductionTime:     60,
			HalfDayThreshold:     120,
			AbsentThreshold:      240,
		},
	}
}

func percentageRules() attendance.AttendanceRules {
	r := fixedRules()
	r.LateDeductions.DeductionType = attendance.DeductionTypePercentage
	r.LateDeductions.DeductPerMinute = decimal.RequireFromString("0.5")
	return r
}

var testDailySalary = decimal.NewFromInt(1000)

func TestEvaluateDeviationOnTime(t *testing.T) {
	for _, minutes := range []int{0, -5, -120} {
		v := EvaluateDeviation(minutes, fixedRules(), testDailySalary, false, attendance.DeviationLate)
		assert.Equal(t, attendance.StatusOnTime, v.Kind, "minutes=%d", minutes)
		assert.Equal(t, "On Time", v.Status())
		assert.Zero(t, v.Minutes)
		assert.Zero(t, v.Fraction)
		assert.True(t, v.Amount.IsZero())
	}
}

func TestEvaluateDeviationDisabled(t *testing.T) {
	rules := fixedRules()
	rules.LateDeductions.Enabled = false

	v := EvaluateDeviation(45, rules, testDailySalary, false, attendance.DeviationLate)
	assert.Equal(t, "Late In (45 min)", v.Status())
	assert.Zero(t, v.Fraction)
	assert.True(t, v.Amount.IsZero())
	assert.Contains(t, v.Remark, "deductions disabled")
}

func TestEvaluateDeviationFixed(t *testing.T) {
	v := EvaluateDeviation(45, fixedRules(), testDailySalary, false, attendance.DeviationLate)
	assert.Equal(t, "Late In (45 min)", v.Status())
	assert.True(t, v.Amount.Equal(decimal.NewFromInt(450)), "amount = %s", v.Amount)
	// Fixed-mode deductions are purely monetary.
	assert.Zero(t, v.Fraction)
}

func TestEvaluateDeviationFixedCappedAtMaxDeductionTime(t *testing.T) {
	// 90 chargeable minutes, but the cap stops the meter at 60.
	v := EvaluateDeviation(90, fixedRules(), testDailySalary, false, attendance.DeviationLate)
	assert.Equal(t, "Late In (90 min)", v.Status())
	assert.True(t, v.Amount.Equal(decimal.NewFromInt(600)), "amount = %s", v.Amount)
}

func TestEvaluateDeviationPercentage(t *testing.T) {
	// 0.5% per minute over 45 minutes is 22.5% of the daily salary.
	v := EvaluateDeviation(45, percentageRules(), testDailySalary, false, attendance.DeviationLate)
	assert.Equal(t, "Late In (45 min)", v.Status())
	assert.True(t, v.Amount.Equal(decimal.NewFromInt(225)), "amount = %s", v.Amount)
	assert.InDelta(t, 0.225, v.Fraction, 1e-9)
}

func TestEvaluateDeviationHalfDay(t *testing.T) {
	v := EvaluateDeviation(130, fixedRules(), testDailySalary, false, attendance.DeviationLate)
	assert.Equal(t, "Half Day (Late 130 min)", v.Status())
	assert.Equal(t, 0.5, v.Fraction)
	assert.True(t, v.Amount.Equal(decimal.NewFromInt(500)), "amount = %s", v.Amount)
}

func TestEvaluateDeviationHalfDaySanctionIndependent(t *testing.T) {
	sanctioned := EvaluateDeviation(130, fixedRules(), testDailySalary, true, attendance.DeviationLate)
	unsanctioned := EvaluateDeviation(130, fixedRules(), testDailySalary, false, attendance.DeviationLate)
	assert.True(t, sanctioned.Amount.Equal(unsanctioned.Amount))
}

func TestEvaluateDeviationAbsent(t *testing.T) {
	v := EvaluateDeviation(250, fixedRules(), testDailySalary, false, attendance.DeviationLate)
	assert.Equal(t, "Absent: Late 250 min (Unsanctioned)", v.Status())
	assert.Equal(t, 1.0, v.Fraction)
	// Unsanctioned full-day absence is charged at twice the daily salary.
	assert.True(t, v.Amount.Equal(decimal.NewFromInt(2000)), "amount = %s", v.Amount)

	v = EvaluateDeviation(250, fixedRules(), testDailySalary, true, attendance.DeviationLate)
	assert.Equal(t, "Absent: Late 250 min (Sanctioned)", v.Status())
	assert.True(t, v.Amount.Equal(decimal.NewFromInt(1000)), "amount = %s", v.Amount)
}

func TestEvaluateDeviationAbsentCustomMultiplier(t *testing.T) {
	rules := fixedRules()
	rules.LeaveRules.UnsanctionedMultiplier = decimal.RequireFromString("1.5")

	v := EvaluateDeviation(250, rules, testDailySalary, false, attendance.DeviationLate)
	assert.True(t, v.Amount.Equal(decimal.NewFromInt(1500)), "amount = %s", v.Amount)
}

func TestEvaluateDeviationEarlyVocabulary(t *testing.T) {
	v := EvaluateDeviation(30, fixedRules(), testDailySalary, false, attendance.DeviationEarly)
	assert.Equal(t, "Early Out (30 min)", v.Status())

	v = EvaluateDeviation(130, fixedRules(), testDailySalary, false, attendance.DeviationEarly)
	assert.Equal(t, "Half Day (Early 130 min)", v.Status())

	v = EvaluateDeviation(250, fixedRules(), testDailySalary, false, attendance.DeviationEarly)
	assert.Equal(t, "Absent: Early 250 min (Unsanctioned)", v.Status())
}

func TestEvaluateDeviationThresholdBoundaries(t *testing.T) {
	// Thresholds are inclusive lower bounds.
	v := EvaluateDeviation(120, fixedRules(), testDailySalary, false, attendance.DeviationLate)
	assert.Equal(t, attendance.StatusHalfDay, v.Kind)

	v = EvaluateDeviation(119, fixedRules(), testDailySalary, false, attendance.DeviationLate)
	assert.Equal(t, attendance.StatusLate, v.Kind)

	v = EvaluateDeviation(240, fixedRules(), testDailySalary, false, attendance.DeviationLate)
	assert.Equal(t, attendance.StatusAbsent, v.Kind)

	v = EvaluateDeviation(239, fixedRules(), testDailySalary, false, attendance.DeviationLate)
	assert.Equal(t, attendance.StatusHalfDay, v.Kind)
}

func TestEvaluateDeviationAmountMonotonic(t *testing.T) {
	// With a per-minute rate whose cap stays under the half-day amount, the
	// charged amount never decreases as the deviation grows.
	rules := fixedRules()
	rules.LateDeductions.FixedAmountPerMinute = decimal.NewFromInt(5)

	prev := decimal.Zero
	for minutes := 1; minutes <= 300; minutes++ {
		v := EvaluateDeviation(minutes, rules, testDailySalary, false, attendance.DeviationLate)
		require.True(t, v.Amount.GreaterThanOrEqual(prev),
			"amount decreased at %d min: %s < %s", minutes, v.Amount, prev)
		prev = v.Amount
	}
}
