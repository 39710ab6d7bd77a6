package employee

import "go-proyek/internal/state"

type CreateEmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	Position     string `json:"position"`
	DailyRate    int64  `json:"daily_rate" binding:"gte=0"`
	OvertimeRate int64  `json:"overtime_rate" binding:"gte=0"`
}

type UpdateEmployeeRequest struct {
	Name         string `json:"name" binding:"required"`
	Position     string `json:"position"`
	DailyRate    int64  `json:"daily_rate" binding:"gte=0"`
	OvertimeRate int64  `json:"overtime_rate" binding:"gte=0"`
}

// ImportRow adalah bentuk polos hasil konversi spreadsheet.
type ImportRow struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	DailyRate    int64  `json:"daily_rate"`
	OvertimeRate int64  `json:"overtime_rate"`
}

type ImportRequest struct {
	Rows []ImportRow `json:"rows" binding:"required"`
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	ProjectID    string `json:"project_id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	DailyRate    int64  `json:"daily_rate"`
	OvertimeRate int64  `json:"overtime_rate"`
}

func mapToResponse(e state.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		ProjectID:    e.ProjectID,
		Name:         e.Name,
		Position:     e.Position,
		DailyRate:    e.DailyRate,
		OvertimeRate: e.OvertimeRate,
	}
}
