package response

import (
	"errors"
	"net/http"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/employee"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/schedule"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift schedule not found")
	case errors.Is(err, schedule.ErrNoSchedulesConfigured):
		BadRequest(w, "No shift schedules configured for this branch", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoRulesConfigured):
		BadRequest(w, "No attendance rules configured for this branch", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
