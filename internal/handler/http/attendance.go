package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/handler/http/response"
)

type AttendanceHandler interface {
	ProcessMonth(w http.ResponseWriter, r *http.Request)
	ProcessRange(w http.ResponseWriter, r *http.Request)
	ProcessDate(w http.ResponseWriter, r *http.Request)
	GetEmployeeMonth(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ProcessMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) ProcessMonth(w http.ResponseWriter, r *http.Request) {
	var req attendance.ProcessMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode process month request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ProcessMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance processed successfully", result)
}

// ProcessRange implements AttendanceHandler.
func (h *attendanceHandlerImpl) ProcessRange(w http.ResponseWriter, r *http.Request) {
	var req attendance.ProcessRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode process range request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ProcessRange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance processed successfully", result)
}

// ProcessDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ProcessDate(w http.ResponseWriter, r *http.Request) {
	var req attendance.ProcessDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode process date request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ProcessOneDate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance reprocessed successfully", result)
}

// GetEmployeeMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	monthYear := r.URL.Query().Get("monthYear")
	if monthYear == "" {
		response.BadRequest(w, "Query parameter 'monthYear' is required", nil)
		return
	}

	records, err := h.attendanceService.GetEmployeeAttendance(r.Context(), employeeID, monthYear)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
