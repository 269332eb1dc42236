package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/validator"
)

func TestProcessMonthRequestValidate(t *testing.T) {
	req := &ProcessMonthRequest{BranchID: "branch-1", MonthYear: "03-2025"}
	assert.NoError(t, req.Validate())

	req = &ProcessMonthRequest{}
	err := req.Validate()
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "branchId")
	assert.Contains(t, fields, "monthYear")

	req = &ProcessMonthRequest{BranchID: "branch-1", MonthYear: "2025-03"}
	err = req.Validate()
	require.Error(t, err)
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "monthYear")
}

func TestProcessRangeRequestValidate(t *testing.T) {
	req := &ProcessRangeRequest{BranchID: "branch-1", StartDate: "2025-03-01", EndDate: "2025-03-31"}
	assert.NoError(t, req.Validate())

	req = &ProcessRangeRequest{BranchID: "branch-1", StartDate: "2025-03-31", EndDate: "2025-03-01"}
	err := req.Validate()
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "endDate")

	req = &ProcessRangeRequest{BranchID: "branch-1", StartDate: "March 1", EndDate: "2025-03-31"}
	err = req.Validate()
	require.Error(t, err)
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "startDate")

	// Single-day span is legal.
	req = &ProcessRangeRequest{BranchID: "branch-1", StartDate: "2025-03-15", EndDate: "2025-03-15"}
	assert.NoError(t, req.Validate())
}

func TestProcessDateRequestValidate(t *testing.T) {
	req := &ProcessDateRequest{BranchID: "branch-1", EmployeeID: "emp-1", Date: "2025-03-10"}
	assert.NoError(t, req.Validate())

	req = &ProcessDateRequest{BranchID: "branch-1", EmployeeID: "emp-1", Date: "10-03-2025"}
	err := req.Validate()
	require.Error(t, err)
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "date")

	req = &ProcessDateRequest{Date: "2025-03-10"}
	err = req.Validate()
	require.Error(t, err)
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "branchId")
	assert.Contains(t, fields, "employeeId")
}
