package period

import "go-proyek/internal/state"

type CreateRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type UpdateRequest struct {
	StartDate  string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	KeepName   bool    `json:"keep_name"`
	CustomName *string `json:"custom_name"`
}

type PeriodResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Name      string `json:"name"`
	IsCurrent bool   `json:"is_current"`
}

func mapToResponse(p state.Period, currentPeriodID string) PeriodResponse {
	return PeriodResponse{
		ID:        p.ID,
		ProjectID: p.ProjectID,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Name:      p.Name,
		IsCurrent: p.ID == currentPeriodID,
	}
}
