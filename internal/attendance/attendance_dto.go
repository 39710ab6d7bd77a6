package attendance

import "go-proyek/internal/state"

type ToggleRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
}

type OvertimeRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Date       string  `json:"date" binding:"required,datetime=2006-01-02"`
	Hours      float64 `json:"hours" binding:"gte=0,lte=24"`
}

type DayInput struct {
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	IsPresent     bool    `json:"is_present"`
	OvertimeHours float64 `json:"overtime_hours" binding:"gte=0"`
}

type RecordInput struct {
	EmployeeID string              `json:"employee_id" binding:"required"`
	Days       map[string]DayInput `json:"days"`
}

type ReplaceRequest struct {
	Records []RecordInput `json:"records" binding:"required"`
}

type DayResponse struct {
	Date          string  `json:"date"`
	IsPresent     bool    `json:"is_present"`
	OvertimeHours float64 `json:"overtime_hours"`
}

type RecordResponse struct {
	EmployeeID string                 `json:"employee_id"`
	Days       map[string]DayResponse `json:"days"`
}

func mapToResponse(records []state.AttendanceRecord) []RecordResponse {
	out := make([]RecordResponse, len(records))
	for i, rec := range records {
		days := make(map[string]DayResponse, len(rec.Days))
		for k, d := range rec.Days {
			days[k] = DayResponse{Date: d.Date, IsPresent: d.IsPresent, OvertimeHours: d.OvertimeHours}
		}
		out[i] = RecordResponse{EmployeeID: rec.EmployeeID, Days: days}
	}
	return out
}

func mapFromInput(records []RecordInput) []state.AttendanceRecord {
	out := make([]state.AttendanceRecord, len(records))
	for i, rec := range records {
		days := make(map[string]state.DailyAttendance, len(rec.Days))
		for k, d := range rec.Days {
			days[k] = state.DailyAttendance{Date: d.Date, IsPresent: d.IsPresent, OvertimeHours: d.OvertimeHours}
		}
		out[i] = state.AttendanceRecord{EmployeeID: rec.EmployeeID, Days: days}
	}
	return out
}
